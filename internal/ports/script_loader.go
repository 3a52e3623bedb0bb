package ports

import "github.com/tcztzy/wenyan/internal/domain"

// ScriptLoader loads wenyan scripts from a source (e.g., filesystem).
type ScriptLoader interface {
	LoadScript(path string) (domain.Script, error)
	ListScripts(root string) ([]domain.ScriptRef, error)
}

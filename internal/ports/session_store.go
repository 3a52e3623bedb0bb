package ports

import "github.com/tcztzy/wenyan/internal/domain"

// SessionStore persists REPL transcripts for later inspection.
type SessionStore interface {
	SaveSession(s domain.SessionArtifact) (id string, err error)
}

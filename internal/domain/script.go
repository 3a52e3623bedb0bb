package domain

// Script is a wenyan source file loaded into memory.
type Script struct {
	Name   string
	Path   string
	Source string
}

// ScriptRef is a lightweight reference to a script file on disk.
type ScriptRef struct {
	Name string
	Path string
}

// WorkspaceSpec describes a workspace to initialize.
type WorkspaceSpec struct {
	Root string
}

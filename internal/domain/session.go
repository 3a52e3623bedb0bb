package domain

import "time"

// SessionEntry is a single evaluated REPL input with what it printed.
// Error holds the rendered message when evaluation failed.
type SessionEntry struct {
	Input  string    `json:"input"`
	Output string    `json:"output,omitempty"`
	Error  string    `json:"error,omitempty"`
	At     time.Time `json:"at"`
}

// SessionArtifact is a persisted REPL transcript.
type SessionArtifact struct {
	StartedAt time.Time      `json:"started_at"`
	EndedAt   time.Time      `json:"ended_at"`
	Entries   []SessionEntry `json:"entries"`
}

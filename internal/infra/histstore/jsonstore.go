package histstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/lithammer/shortuuid/v4"

	"github.com/tcztzy/wenyan/internal/domain"
	"github.com/tcztzy/wenyan/internal/ports"
)

const defaultSessionsDir = ".wenyan/sessions"

var json = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

// JSONStore persists REPL transcripts as one JSON file per session
// under <root>/<sessions dir>.
type JSONStore struct {
	rootDir     string
	sessionsDir string
	writeIndex  bool
	now         func() time.Time
	newID       func() string
}

type Option func(*JSONStore)

// WithIndex enables a simple JSONL index: sessions/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

// WithIDFunc is useful for tests.
func WithIDFunc(f func() string) Option {
	return func(s *JSONStore) { s.newID = f }
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	dir := cfg.Paths.SessionsDir
	if strings.TrimSpace(dir) == "" {
		dir = defaultSessionsDir
	}

	s := &JSONStore{
		rootDir:     root,
		sessionsDir: dir,
		writeIndex:  false,
		now:         time.Now,
		newID:       shortuuid.New,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.SessionStore = (*JSONStore)(nil)

func (s *JSONStore) SaveSession(session domain.SessionArtifact) (string, error) {
	dir := filepath.Join(s.rootDir, filepath.FromSlash(s.sessionsDir))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "histstore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	ts := session.StartedAt
	if ts.IsZero() {
		ts = s.now()
	}
	ts = ts.UTC()

	toSave := session
	if toSave.StartedAt.IsZero() {
		toSave.StartedAt = ts
	}

	id := fmt.Sprintf("%s_%s", ts.Format("20060102T150405Z"), s.newID())
	path := filepath.Join(dir, id+".json")

	b, err := json.MarshalIndent(toSave, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "histstore.marshal",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return "", &domain.OpError{
			Op:   "histstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "histstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		_ = s.appendIndex(dir, id, toSave)
	}

	return id, nil
}

func (s *JSONStore) appendIndex(dir, id string, session domain.SessionArtifact) error {
	type idx struct {
		ID        string    `json:"id"`
		File      string    `json:"file"`
		Entries   int       `json:"entries"`
		StartedAt time.Time `json:"started_at"`
	}
	line, err := json.Marshal(idx{
		ID:        id,
		File:      id + ".json",
		Entries:   len(session.Entries),
		StartedAt: session.StartedAt,
	})
	if err != nil {
		return err
	}

	indexPath := filepath.Join(dir, "index.jsonl")
	f, err := os.OpenFile(indexPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	_, _ = f.Write(append(line, '\n'))
	return nil
}

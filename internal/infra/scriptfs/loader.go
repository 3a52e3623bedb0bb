package scriptfs

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tcztzy/wenyan/internal/domain"
	"github.com/tcztzy/wenyan/internal/ports"
)

// Loader reads wenyan scripts from the workspace scripts directory.
type Loader struct {
	scriptsDir string
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{scriptsDir: "scripts"}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type Option func(*Loader)

func WithScriptsDir(dir string) Option {
	return func(l *Loader) { l.scriptsDir = dir }
}

var _ ports.ScriptLoader = (*Loader)(nil)

func (l *Loader) LoadScript(path string) (domain.Script, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Script{}, &domain.OpError{
			Op:   "scriptfs.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return domain.Script{
		Name:   name,
		Path:   path,
		Source: string(b),
	}, nil
}

func (l *Loader) ListScripts(root string) ([]domain.ScriptRef, error) {
	dir := filepath.Join(root, l.scriptsDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "scriptfs.list",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var refs []domain.ScriptRef
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, ".wy") {
			continue
		}

		refs = append(refs, domain.ScriptRef{
			Name: strings.TrimSuffix(name, ".wy"),
			Path: filepath.Join(dir, name),
		})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

package fsworkspace

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	apptemplate "github.com/tcztzy/wenyan/internal/app/template"
	"github.com/tcztzy/wenyan/internal/domain"
)

//go:embed templates
var templatesFS embed.FS

type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

// Init lays out a workspace: the scripts and session directories, a
// .gitignore, and the scaffold files under templates/. Existing files
// are kept unless force is set.
func (i *Initializer) Init(spec domain.WorkspaceSpec, force bool) error {
	root := filepath.Clean(spec.Root)

	cfg := domain.DefaultConfig()
	dirs := []string{
		filepath.Join(root, cfg.Paths.ScriptsDir),
		filepath.Join(root, filepath.FromSlash(cfg.Paths.SessionsDir)),
		filepath.Join(root, ".wenyan", "logs"),
	}

	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return err
		}
	}

	if err := ensureGitignore(root); err != nil {
		return err
	}

	vars := map[string]string{
		"FORMAT":       cfg.Defaults.Format,
		"SCRIPTS_DIR":  cfg.Paths.ScriptsDir,
		"SESSIONS_DIR": cfg.Paths.SessionsDir,
	}

	return fs.WalkDir(templatesFS, "templates", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel := strings.TrimPrefix(p, "templates/")
		dst := filepath.Join(root, rel)

		if !force {
			if _, statErr := os.Stat(dst); statErr == nil {
				return nil
			}
		}

		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return err
		}

		b, err := fs.ReadFile(templatesFS, p)
		if err != nil {
			return err
		}

		content, err := apptemplate.RenderString(string(b), vars)
		if err != nil {
			return err
		}

		return os.WriteFile(dst, []byte(content), 0o644)
	})
}

func ensureGitignore(root string) error {
	const header = "# wenyan"
	entries := []string{
		".wenyan/",
	}

	path := filepath.Join(root, ".gitignore")
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			lines := append([]string{header}, entries...)
			lines = append(lines, "")
			return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644)
		}
		return err
	}

	existing := string(b)
	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		present[trimmed] = true
	}

	var missing []string
	for _, e := range entries {
		if !present[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(existing)
	if !strings.HasSuffix(existing, "\n") {
		sb.WriteString("\n")
	}
	if !present[header] {
		sb.WriteString(header)
		sb.WriteString("\n")
	}
	for _, m := range missing {
		sb.WriteString(m)
		sb.WriteString("\n")
	}

	return os.WriteFile(path, []byte(sb.String()), 0o644)
}

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tcztzy/wenyan/internal/domain"
	"github.com/tcztzy/wenyan/internal/infra/histstore"
	"github.com/tcztzy/wenyan/internal/infra/interprunner"
	"github.com/tcztzy/wenyan/internal/infra/logger"
	"github.com/tcztzy/wenyan/internal/infra/scriptfs"
	"github.com/tcztzy/wenyan/internal/infra/workspacefinder"
	"github.com/tcztzy/wenyan/internal/ports"
)

type workspaceCtx struct {
	root string
	cfg  domain.Config

	scripts ports.ScriptLoader
	runner  ports.ScriptRunner
	store   ports.SessionStore
}

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	loader := scriptfs.NewLoader(
		scriptfs.WithScriptsDir(cfg.Paths.ScriptsDir),
	)

	runner := interprunner.New(logger.L())
	store := histstore.NewJSONStore(root, cfg, histstore.WithIndex(true))

	return &workspaceCtx{
		root:    root,
		cfg:     cfg,
		scripts: loader,
		runner:  runner,
		store:   store,
	}, nil
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	locator := workspacefinder.NewFinder()
	root, err := locator.FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `wenyan init`): %w", wd, err)
	}
	return root, nil
}

// resolveScriptPath turns a run/lex/check argument into a file path.
// Paths and existing files pass through untouched so the commands work
// without a workspace; bare names resolve against the workspace
// scripts directory.
func resolveScriptPath(workspaceFlag, arg string) (string, error) {
	in := strings.TrimSpace(arg)
	if in == "" {
		return "", fmt.Errorf("script is required")
	}

	if looksLikePath(in) || fileExists(in) {
		abs, err := filepath.Abs(in)
		if err != nil {
			return "", fmt.Errorf("invalid script path: %w", err)
		}
		return filepath.Clean(abs), nil
	}

	ws, err := loadWorkspace(workspaceFlag)
	if err != nil {
		return "", err
	}

	scriptsDir := filepath.Join(ws.root, ws.cfg.Paths.ScriptsDir)

	// "demo.wy" is a file under the scripts dir.
	if hasWyExt(in) {
		p := filepath.Join(scriptsDir, in)
		if fileExists(p) {
			return p, nil
		}
	}

	// "demo" tries demo.wy in the scripts dir.
	p := filepath.Join(scriptsDir, in+".wy")
	if fileExists(p) {
		return p, nil
	}

	// As a last resort: match by listed script name.
	refs, err := ws.scripts.ListScripts(ws.root)
	if err == nil {
		for _, r := range refs {
			if strings.EqualFold(r.Name, in) {
				return r.Path, nil
			}
		}
	}

	return "", fmt.Errorf("script %q not found in %q", in, scriptsDir)
}

func looksLikePath(s string) bool {
	return strings.Contains(s, "/") || strings.Contains(s, string(filepath.Separator))
}

func hasWyExt(s string) bool {
	return strings.ToLower(filepath.Ext(s)) == ".wy"
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

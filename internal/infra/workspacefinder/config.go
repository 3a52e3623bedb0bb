package workspacefinder

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/tcztzy/wenyan/internal/domain"
)

// LoadConfig loads wenyan.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, "wenyan.yaml")
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if y.Wenyan.Defaults.Format != "" {
		cfg.Defaults.Format = y.Wenyan.Defaults.Format
	}
	if y.Wenyan.Paths.ScriptsDir != "" {
		cfg.Paths.ScriptsDir = y.Wenyan.Paths.ScriptsDir
	}
	if y.Wenyan.Paths.SessionsDir != "" {
		cfg.Paths.SessionsDir = y.Wenyan.Paths.SessionsDir
	}

	return cfg, nil
}

type yamlConfig struct {
	Wenyan struct {
		Defaults struct {
			Format string `yaml:"format"`
		} `yaml:"defaults"`

		Paths struct {
			ScriptsDir  string `yaml:"scripts_dir"`
			SessionsDir string `yaml:"sessions_dir"`
		} `yaml:"paths"`
	} `yaml:"wenyan"`
}

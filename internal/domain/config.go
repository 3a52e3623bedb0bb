package domain

// Config represents the minimal configuration loaded from wenyan.yaml.
type Config struct {
	Defaults DefaultsConfig
	Paths    PathsConfig
}

type DefaultsConfig struct {
	// Format is the default output format for token dumps: "pretty" or "json".
	Format string
}

type PathsConfig struct {
	ScriptsDir  string
	SessionsDir string
}

// DefaultConfig provides sane defaults if wenyan.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			Format: "pretty",
		},
		Paths: PathsConfig{
			ScriptsDir:  "scripts",
			SessionsDir: ".wenyan/sessions",
		},
	}
}

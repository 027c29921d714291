package regia

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultDatabasePath is used when no database path is configured.
const DefaultDatabasePath = ".regia.db"

// Config is the optional YAML configuration file.
//
//	contents:
//	  regia_db: ~/.regia.db
//	priorities:
//	  - below: 2
//	    color: red
//	  - below: 5
//	    color: yellow
type Config struct {
	Contents   map[string]string `yaml:"contents"`
	Priorities []PriorityColor   `yaml:"priorities"`
}

// PriorityColor maps priorities below a threshold to a display color.
type PriorityColor struct {
	Below uint32 `yaml:"below"`
	Color string `yaml:"color"`
}

// DefaultConfigPath returns the conventional config location.
func DefaultConfigPath() string {
	return ExpandTilde("~/.config/regia/default.yml")
}

// LoadConfig reads and parses the config file at path. A missing file is
// surfaced as-is; callers decide whether that is fatal (an explicit --config
// that does not exist) or fine (the default location).
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// DatabasePath resolves the database file location, falling back to the
// default relative path when unconfigured.
func (c Config) DatabasePath() string {
	if p, ok := c.Contents["regia_db"]; ok && p != "" {
		return ExpandTilde(p)
	}
	return DefaultDatabasePath
}

// ExpandTilde resolves a leading ~ against the user's home directory.
// Paths that cannot be resolved are returned unchanged.
func ExpandTilde(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}

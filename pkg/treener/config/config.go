package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/treener/pkg/treener/internalerr"
)

// Store backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendNone   = "none"
)

// Config is the annotation configuration file.
type Config struct {
	Language   string     `yaml:"language"`
	View       string     `yaml:"view"`
	Tags       Tags       `yaml:"tags"`
	Gazetteers Gazetteers `yaml:"gazetteers"`
	Lexical    Lexical    `yaml:"lexical"`
	Store      Store      `yaml:"store"`
}

// Tags names the parent category tags the detectors look at.
type Tags struct {
	ProperNoun string `yaml:"proper_noun"`
	Numeral    string `yaml:"numeral"`
}

// Gazetteers lists gazetteer sources: plain text files named after their
// category, and an optional YAML file holding several gazetteers.
type Gazetteers struct {
	Files []string `yaml:"files"`
	YAML  string   `yaml:"yaml"`
}

// Lexical lists extra trigger words added to the language defaults.
type Lexical struct {
	Honorific    []string `yaml:"honorific"`
	Organization []string `yaml:"organization"`
	Money        []string `yaml:"money"`
	Time         []string `yaml:"time"`
}

// Store selects where annotated trees go.
type Store struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

// Default returns the configuration used when no file is given: Turkish
// trees, written back next to the working directory under out/.
func Default() *Config {
	return &Config{
		Language: "tr",
		Tags:     Tags{ProperNoun: "NNP", Numeral: "CD"},
		Store:    Store{Backend: BackendFile, Path: "out"},
	}
}

// Load reads a YAML configuration file. Missing fields take their default
// values and relative paths are resolved against the file's directory.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", internalerr.ErrInvalidConfig, path, err)
	}

	base := filepath.Dir(path)
	for i, f := range cfg.Gazetteers.Files {
		cfg.Gazetteers.Files[i] = resolve(f, base)
	}
	cfg.Gazetteers.YAML = resolve(cfg.Gazetteers.YAML, base)
	cfg.Store.Path = resolve(cfg.Store.Path, base)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the fields that cannot be defaulted.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Language) == "" {
		return fmt.Errorf("%w: language is required", internalerr.ErrInvalidConfig)
	}
	switch c.Store.Backend {
	case BackendFile, BackendSQLite:
		if c.Store.Path == "" {
			return fmt.Errorf("%w: store.path is required for backend %q", internalerr.ErrInvalidConfig, c.Store.Backend)
		}
	case BackendNone, "":
	default:
		return fmt.Errorf("%w: unknown store backend %q", internalerr.ErrInvalidConfig, c.Store.Backend)
	}
	return nil
}

func resolve(path, base string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

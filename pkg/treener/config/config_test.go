package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cognicore/treener/pkg/treener/internalerr"
	"github.com/cognicore/treener/pkg/treener/tree"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeFile(t, tmpDir, "treener.yaml", `language: tr
view: turkish
tags:
  proper_noun: NNP
  numeral: CD
gazetteers:
  files:
    - person.txt
  yaml: gazetteers.yaml
lexical:
  time:
    - önce
store:
  backend: sqlite
  path: trees.db
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Language != "tr" || cfg.View != "turkish" {
		t.Errorf("Unexpected language/view: %q/%q", cfg.Language, cfg.View)
	}
	if got := cfg.Gazetteers.Files[0]; got != filepath.Join(tmpDir, "person.txt") {
		t.Errorf("Gazetteer file not resolved: %s", got)
	}
	if got := cfg.Gazetteers.YAML; got != filepath.Join(tmpDir, "gazetteers.yaml") {
		t.Errorf("Gazetteer yaml not resolved: %s", got)
	}
	if cfg.Store.Backend != BackendSQLite || cfg.Store.Path != filepath.Join(tmpDir, "trees.db") {
		t.Errorf("Unexpected store: %+v", cfg.Store)
	}
	if len(cfg.Lexical.Time) != 1 {
		t.Errorf("Expected 1 time word, got %d", len(cfg.Lexical.Time))
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeFile(t, tmpDir, "treener.yaml", "language: en\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Tags.ProperNoun != "NNP" || cfg.Tags.Numeral != "CD" {
		t.Errorf("Expected default tags, got %+v", cfg.Tags)
	}
	if cfg.Store.Backend != BackendFile || cfg.Store.Path != filepath.Join(tmpDir, "out") {
		t.Errorf("Expected default store, got %+v", cfg.Store)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tmpDir := t.TempDir()
	cases := map[string]string{
		"bad.yaml":     "language: [tr\n",
		"nolang.yaml":  "language: \"\"\n",
		"backend.yaml": "store:\n  backend: redis\n",
		"nopath.yaml":  "store:\n  backend: sqlite\n  path: \"\"\n",
	}
	for name, content := range cases {
		path := writeFile(t, tmpDir, name, content)
		if _, err := Load(path); !errors.Is(err, internalerr.ErrInvalidConfig) {
			t.Errorf("%s: expected ErrInvalidConfig, got %v", name, err)
		}
	}

	if _, err := Load(filepath.Join(tmpDir, "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestLoaderComponents(t *testing.T) {
	tmpDir := t.TempDir()
	person := writeFile(t, tmpDir, "person.txt", "# people\nAhmet\nAyşe\n")
	multi := writeFile(t, tmpDir, "gazetteers.yaml", `gazetteers:
  - name: location
    words: [İstanbul, Ankara]
  - name: person
    words: [Işık]
`)

	cfg := Default()
	cfg.View = string(tree.ViewTurkish)
	cfg.Gazetteers.Files = []string{person}
	cfg.Gazetteers.YAML = multi
	cfg.Lexical.Time = []string{"ÖNCE"}

	comps, err := (&Loader{Config: cfg}).Load()
	if err != nil {
		t.Fatalf("Failed to load components: %v", err)
	}

	res := comps.Resources
	if res.View != tree.ViewTurkish {
		t.Errorf("Expected view turkish, got %q", res.View)
	}
	if !res.Gazetteers.Contains("PERSON", "AHMET") {
		t.Error("Expected AHMET in person gazetteer")
	}
	if !res.Gazetteers.Contains("PERSON", "ışık") {
		t.Error("Expected merged YAML entries in person gazetteer")
	}
	if !res.Gazetteers.Contains("LOCATION", "istanbul'da") {
		t.Error("Expected apostrophe stem lookup in location gazetteer")
	}
	if !res.Predicates.Time.Match("önce") {
		t.Error("Expected configured time word to match")
	}
	if !res.Predicates.Money.Match("lira") {
		t.Error("Expected language default money word to match")
	}
	if res.Normalize("İZMİR") != "izmir" {
		t.Errorf("Expected Turkish casing, got %q", res.Normalize("İZMİR"))
	}
}

func TestLoaderErrors(t *testing.T) {
	cfg := Default()
	cfg.Language = "fa"
	if _, err := (&Loader{Config: cfg}).Load(); !errors.Is(err, internalerr.ErrUnsupportedLanguage) {
		t.Errorf("Expected ErrUnsupportedLanguage, got %v", err)
	}

	cfg = Default()
	cfg.Gazetteers.Files = []string{filepath.Join(t.TempDir(), "missing.txt")}
	if _, err := (&Loader{Config: cfg}).Load(); err == nil {
		t.Error("Expected error for missing gazetteer file")
	}
}

package gazetteer

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/treener/pkg/treener/casing"
	"github.com/cognicore/treener/pkg/treener/internalerr"
)

// Gazetteer is a named set of known entity surface forms.
//
// Entries are stored in normalized (lowercased) form. Lookups normalize
// their argument the same way and, for suffixed proper nouns such as
// "Ankara'dan", fall back to the stem before the apostrophe.
type Gazetteer struct {
	name      string
	words     map[string]struct{}
	normalize casing.Normalizer
}

// New creates a gazetteer named name (the entity category it feeds).
// A nil normalize falls back to strings.ToLower.
func New(name string, words []string, normalize casing.Normalizer) *Gazetteer {
	if normalize == nil {
		normalize = strings.ToLower
	}
	g := &Gazetteer{
		name:      strings.ToUpper(strings.TrimSpace(name)),
		words:     make(map[string]struct{}, len(words)),
		normalize: normalize,
	}
	for _, w := range words {
		g.Add(w)
	}
	return g
}

// LoadFromFile reads a plain text gazetteer: one entry per line, blank
// lines and lines starting with '#' ignored. The category is the file's
// base name without extension, e.g. "location.txt" feeds LOCATION.
func LoadFromFile(path string, normalize casing.Normalizer) (*Gazetteer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	scan := bufio.NewScanner(f)
	for scan.Scan() {
		line := strings.TrimSpace(scan.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scan.Err(); err != nil {
		return nil, fmt.Errorf("read gazetteer %s: %w", path, err)
	}

	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if name == "" {
		return nil, fmt.Errorf("%w: gazetteer %s has no name", internalerr.ErrInvalidInput, path)
	}
	return New(name, words, normalize), nil
}

// LoadFromYAML loads several gazetteers from one YAML file.
//
// Expected format:
//
//	gazetteers:
//	  - name: LOCATION
//	    words: [istanbul, ankara]
//	  - name: PERSON
//	    words: [atatürk]
func LoadFromYAML(path string, normalize casing.Normalizer) ([]*Gazetteer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config struct {
		Gazetteers []struct {
			Name  string   `yaml:"name"`
			Words []string `yaml:"words"`
		} `yaml:"gazetteers"`
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	out := make([]*Gazetteer, 0, len(config.Gazetteers))
	for i, entry := range config.Gazetteers {
		if strings.TrimSpace(entry.Name) == "" {
			return nil, fmt.Errorf("%w: %s: gazetteer %d has no name", internalerr.ErrInvalidInput, path, i)
		}
		out = append(out, New(entry.Name, entry.Words, normalize))
	}
	return out, nil
}

// Name returns the category name, upper case.
func (g *Gazetteer) Name() string { return g.name }

// Len returns the number of distinct entries.
func (g *Gazetteer) Len() int { return len(g.words) }

// Add inserts word in normalized form.
func (g *Gazetteer) Add(word string) {
	word = g.normalize(strings.TrimSpace(word))
	if word == "" {
		return
	}
	g.words[word] = struct{}{}
}

// Contains reports whether word, or its stem before an apostrophe, is an
// entry.
func (g *Gazetteer) Contains(word string) bool {
	word = g.normalize(word)
	if _, ok := g.words[word]; ok {
		return true
	}
	if i := strings.IndexAny(word, "'’"); i > 0 {
		_, ok := g.words[word[:i]]
		return ok
	}
	return false
}

// Words returns the entries in sorted order.
func (g *Gazetteer) Words() []string {
	out := make([]string, 0, len(g.words))
	for w := range g.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

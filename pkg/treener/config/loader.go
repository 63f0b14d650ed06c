package config

import (
	"fmt"

	"github.com/cognicore/treener/pkg/treener/casing"
	"github.com/cognicore/treener/pkg/treener/gazetteer"
	"github.com/cognicore/treener/pkg/treener/lexical"
	"github.com/cognicore/treener/pkg/treener/ner"
	"github.com/cognicore/treener/pkg/treener/tree"
)

// Loader loads the resources named by a Config
type Loader struct {
	Config *Config
}

// Components holds the loaded detection resources
type Components struct {
	Language  string
	Resources ner.Resources
}

// Load reads the gazetteers and builds the lexical predicates. The
// Resources leave View empty when the config does not set one, so the
// language default applies.
func (l *Loader) Load() (*Components, error) {
	cfg := l.Config
	if cfg == nil {
		cfg = Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	normalize, err := casing.ForLanguage(cfg.Language)
	if err != nil {
		return nil, err
	}

	predicates, err := lexical.ForLanguage(cfg.Language)
	if err != nil {
		return nil, err
	}
	predicates = predicates.Extend(lexical.Words{
		Honorific:    normalizeAll(normalize, cfg.Lexical.Honorific),
		Organization: normalizeAll(normalize, cfg.Lexical.Organization),
		Money:        normalizeAll(normalize, cfg.Lexical.Money),
		Time:         normalizeAll(normalize, cfg.Lexical.Time),
	})

	// Load gazetteers
	set := gazetteer.NewSet()
	for _, path := range cfg.Gazetteers.Files {
		g, err := gazetteer.LoadFromFile(path, normalize)
		if err != nil {
			return nil, fmt.Errorf("load gazetteer: %w", err)
		}
		set.Add(g)
	}
	if cfg.Gazetteers.YAML != "" {
		gs, err := gazetteer.LoadFromYAML(cfg.Gazetteers.YAML, normalize)
		if err != nil {
			return nil, fmt.Errorf("load gazetteers: %w", err)
		}
		for _, g := range gs {
			set.Add(g)
		}
	}

	return &Components{
		Language: cfg.Language,
		Resources: ner.Resources{
			View:       tree.View(cfg.View),
			Normalize:  normalize,
			Gazetteers: set,
			Predicates: predicates,
			Tags: ner.Tags{
				ProperNoun: cfg.Tags.ProperNoun,
				Numeral:    cfg.Tags.Numeral,
			},
		},
	}, nil
}

func normalizeAll(normalize casing.Normalizer, words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = normalize(w)
	}
	return out
}

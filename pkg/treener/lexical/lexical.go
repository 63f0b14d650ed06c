// Package lexical holds the rule based word tests that trigger entity
// labels without a gazetteer: honorifics, organization suffixes, money
// forms and time forms.
//
// Predicates expect a word that is already lowercased with the language's
// casing rules (see package casing). Suffixed forms are matched on the stem
// before the apostrophe, so "tl'den" matches the money unit "tl".
package lexical

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cognicore/treener/pkg/treener/internalerr"
)

// Predicate tests a normalized word.
type Predicate func(word string) bool

// Predicates is the trigger set consulted by the detectors. A nil field
// never matches.
type Predicates struct {
	Honorific    Predicate
	Organization Predicate
	Money        Predicate
	Time         Predicate
}

// Words lists extra trigger words per predicate, typically from
// configuration.
type Words struct {
	Honorific    []string
	Organization []string
	Money        []string
	Time         []string
}

// Match calls p and treats a nil predicate as no match.
func (p Predicate) Match(word string) bool {
	return p != nil && p(word)
}

// IsZero reports whether no predicate is set.
func (p Predicates) IsZero() bool {
	return p.Honorific == nil && p.Organization == nil && p.Money == nil && p.Time == nil
}

// ForLanguage returns the default predicates for a language tag.
func ForLanguage(tag string) (Predicates, error) {
	switch strings.ToLower(tag) {
	case "tr", "tr-tr":
		return Turkish(), nil
	case "en", "en-us", "en-gb":
		return English(), nil
	}
	return Predicates{}, fmt.Errorf("%w: no lexical rules for %q", internalerr.ErrUnsupportedLanguage, tag)
}

// Extend returns a copy of p whose predicates also accept the given words
// (compared on the stem, like the built-in rules).
func (p Predicates) Extend(w Words) Predicates {
	return Predicates{
		Honorific:    orWords(p.Honorific, w.Honorific),
		Organization: orWords(p.Organization, w.Organization),
		Money:        orWords(p.Money, w.Money),
		Time:         orWords(p.Time, w.Time),
	}
}

func orWords(base Predicate, words []string) Predicate {
	if len(words) == 0 {
		return base
	}
	extra := rule{exact: set(words...)}
	return func(word string) bool {
		return base.Match(word) || extra.match(word)
	}
}

// rule matches a word exactly, on its apostrophe stem, by prefix (for
// inflections written without an apostrophe), or by pattern.
type rule struct {
	exact    map[string]struct{}
	prefixes []string
	patterns []*regexp.Regexp
}

func (r rule) match(word string) bool {
	if word == "" {
		return false
	}
	if _, ok := r.exact[word]; ok {
		return true
	}
	if stem := Stem(word); stem != word {
		if _, ok := r.exact[stem]; ok {
			return true
		}
	}
	for _, p := range r.prefixes {
		if strings.HasPrefix(word, p) {
			return true
		}
	}
	for _, re := range r.patterns {
		if re.MatchString(word) {
			return true
		}
	}
	return false
}

func (r rule) predicate() Predicate {
	return r.match
}

// Stem returns the part of word before the first apostrophe, or word
// itself when there is none.
func Stem(word string) string {
	if i := strings.IndexAny(word, "'’"); i > 0 {
		return word[:i]
	}
	return word
}

func set(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w != "" {
			m[w] = struct{}{}
		}
	}
	return m
}

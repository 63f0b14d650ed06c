// Package casing provides locale-aware lowercasing for gazetteer and
// predicate lookups. Turkish and Azerbaijani need their own tables: a
// generic fold maps "I" to "i" where those languages expect "ı", and
// leaves "İ" as "i̇".
package casing

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cognicore/treener/pkg/treener/internalerr"
)

// Normalizer maps a raw word to its lookup form.
type Normalizer func(word string) string

// ForLanguage returns a lowercasing Normalizer for a BCP 47 tag such as
// "tr" or "en".
func ForLanguage(tag string) (Normalizer, error) {
	if strings.TrimSpace(tag) == "" {
		return nil, fmt.Errorf("%w: empty language tag", internalerr.ErrUnsupportedLanguage)
	}
	lang, err := language.Parse(tag)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", internalerr.ErrUnsupportedLanguage, tag, err)
	}
	// A Caser is stateful, so each call gets its own.
	return func(word string) string {
		return cases.Lower(lang).String(word)
	}, nil
}

// Turkish returns the Turkish lowercaser.
func Turkish() Normalizer {
	n, _ := ForLanguage("tr")
	return n
}

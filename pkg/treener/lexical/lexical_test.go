package lexical

import (
	"errors"
	"testing"

	"github.com/cognicore/treener/pkg/treener/internalerr"
)

func TestTurkishPredicates(t *testing.T) {
	p := Turkish()

	tests := []struct {
		name string
		pred Predicate
		word string
		want bool
	}{
		{"honorific bay", p.Honorific, "bay", true},
		{"honorific bayan", p.Honorific, "bayan", true},
		{"honorific suffixed", p.Honorific, "bay'ın", true},
		{"honorific miss", p.Honorific, "baykuş", false},

		{"organization inc", p.Organization, "inc.", true},
		{"organization co", p.Organization, "co", true},
		{"organization a.ş.", p.Organization, "a.ş.", true},
		{"organization miss", p.Organization, "company", false},

		{"money tl suffixed", p.Money, "tl'den", true},
		{"money lira", p.Money, "lira", true},
		{"money unmarked suffix", p.Money, "dolarlık", true},
		{"money symbol", p.Money, "$90", true},
		{"money trailing symbol", p.Money, "90₺", true},
		{"money plain number", p.Money, "90", false},
		{"money frankfurt", p.Money, "frankfurt", false},

		{"time weekday suffixed", p.Time, "pazartesi'den", true},
		{"time month", p.Time, "mart", true},
		{"time unmarked suffix", p.Time, "temmuzda", true},
		{"time clock", p.Time, "14:30", true},
		{"time clock suffixed", p.Time, "14.30'da", true},
		{"time martı", p.Time, "martı", false},
		{"time pazarlık", p.Time, "pazarlık", false},
		{"time number", p.Time, "1990", false},
		{"time empty", p.Time, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pred(tt.word); got != tt.want {
				t.Errorf("%s(%q) = %v, want %v", tt.name, tt.word, got, tt.want)
			}
		})
	}
}

func TestEnglishPredicates(t *testing.T) {
	p := English()

	if !p.Honorific("mr.") {
		t.Error("mr. should be an honorific")
	}
	if !p.Organization("llc") {
		t.Error("llc should be an organization suffix")
	}
	if !p.Money("dollars") {
		t.Error("dollars should be money")
	}
	if !p.Time("monday") {
		t.Error("monday should be time")
	}
	if p.Time("mondays") {
		t.Error("english time names only match exactly")
	}
}

func TestExtend(t *testing.T) {
	p := Turkish().Extend(Words{
		Honorific: []string{"sayın"},
		Money:     []string{"manat"},
	})

	if !p.Honorific("sayın") {
		t.Error("extended honorific sayın not matched")
	}
	if !p.Honorific("bayan") {
		t.Error("built-in honorific lost after Extend")
	}
	if !p.Money("manat'a") {
		t.Error("extended money word should match on stem")
	}
	if p.Time("manat") {
		t.Error("extra money word leaked into time")
	}
}

func TestNilPredicateNeverMatches(t *testing.T) {
	var p Predicates
	if p.Money.Match("tl") {
		t.Error("nil predicate matched")
	}
	ext := p.Extend(Words{Time: []string{"bayram"}})
	if !ext.Time.Match("bayram") {
		t.Error("Extend on nil predicate should still match extra words")
	}
	if ext.Money != nil {
		t.Error("Extend without words should keep nil predicate")
	}
}

func TestForLanguage(t *testing.T) {
	if _, err := ForLanguage("TR"); err != nil {
		t.Errorf("ForLanguage(TR): %v", err)
	}
	if _, err := ForLanguage("en"); err != nil {
		t.Errorf("ForLanguage(en): %v", err)
	}
	if _, err := ForLanguage("fa"); !errors.Is(err, internalerr.ErrUnsupportedLanguage) {
		t.Errorf("ForLanguage(fa) error = %v, want ErrUnsupportedLanguage", err)
	}
}

func TestStem(t *testing.T) {
	tests := map[string]string{
		"tl'den":    "tl",
		"ankara’ya": "ankara",
		"'quoted":   "'quoted",
		"plain":     "plain",
	}
	for in, want := range tests {
		if got := Stem(in); got != want {
			t.Errorf("Stem(%q) = %q, want %q", in, got, want)
		}
	}
}

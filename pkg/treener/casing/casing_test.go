package casing

import (
	"errors"
	"testing"

	"github.com/cognicore/treener/pkg/treener/internalerr"
)

func TestTurkishDottedDotless(t *testing.T) {
	lower := Turkish()

	tests := []struct {
		input string
		want  string
	}{
		{"İstanbul", "istanbul"},
		{"ISPARTA", "ısparta"},
		{"Işık", "ışık"},
		{"TL'den", "tl'den"},
		{"Pazartesi'den", "pazartesi'den"},
		{"90", "90"},
	}

	for _, tt := range tests {
		if got := lower(tt.input); got != tt.want {
			t.Errorf("lower(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestEnglishFold(t *testing.T) {
	lower, err := ForLanguage("en")
	if err != nil {
		t.Fatalf("ForLanguage(en): %v", err)
	}
	if got := lower("ISTANBUL"); got != "istanbul" {
		t.Errorf("lower(ISTANBUL) = %q, want istanbul", got)
	}
}

func TestForLanguageRejectsBadTags(t *testing.T) {
	for _, tag := range []string{"", "  ", "not a tag!"} {
		if _, err := ForLanguage(tag); !errors.Is(err, internalerr.ErrUnsupportedLanguage) {
			t.Errorf("ForLanguage(%q) error = %v, want ErrUnsupportedLanguage", tag, err)
		}
	}
}

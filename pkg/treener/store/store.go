package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cognicore/treener/pkg/treener/internalerr"
	"github.com/cognicore/treener/pkg/treener/ner"
	"github.com/cognicore/treener/pkg/treener/tree"
)

// Store persists annotated trees, keyed by tree name.
type Store interface {
	Close() error

	// Save stores t, replacing any tree saved under the same name.
	Save(ctx context.Context, t *tree.Tree) error
	// Load returns the tree saved under name, or ErrNotFound.
	Load(ctx context.Context, name string) (*tree.Tree, error)
	// List returns a summary of every saved tree ordered by name.
	List(ctx context.Context) ([]Record, error)
	// Labels returns the labeled word leaves of a saved tree in order.
	Labels(ctx context.Context, name string) ([]LeafLabel, error)
}

// Record summarizes a saved tree.
type Record struct {
	ID       string
	Name     string
	SavedAt  time.Time
	Leaves   int
	Entities int // leaves labeled with anything but NONE
}

// LeafLabel is one word leaf of a saved tree.
type LeafLabel struct {
	Position int
	Word     string
	Label    ner.Label // empty when the leaf was never labeled
}

// LeafLabels extracts the word leaves of t for view.
func LeafLabels(t *tree.Tree, view tree.View) []LeafLabel {
	leaves := t.Leaves(tree.IsLanguageLeaf(view))
	out := make([]LeafLabel, len(leaves))
	for i, leaf := range leaves {
		l, _ := ner.LabelOf(leaf)
		out[i] = LeafLabel{Position: i, Word: leaf.Layer(view), Label: l}
	}
	return out
}

// Summarize fills the leaf and entity counts of a record from labels.
func Summarize(rec Record, labels []LeafLabel) Record {
	rec.Leaves = len(labels)
	rec.Entities = 0
	for _, l := range labels {
		if l.Label != "" && l.Label != ner.None {
			rec.Entities++
		}
	}
	return rec
}

// ValidateName rejects tree names that cannot be used as keys or file
// names.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty tree name", internalerr.ErrInvalidInput)
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("%w: tree name %q", internalerr.ErrInvalidInput, name)
	}
	return nil
}

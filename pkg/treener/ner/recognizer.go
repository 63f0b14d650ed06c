package ner

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/cognicore/treener/pkg/treener/casing"
	"github.com/cognicore/treener/pkg/treener/internalerr"
	"github.com/cognicore/treener/pkg/treener/lexical"
	"github.com/cognicore/treener/pkg/treener/tree"
)

// Saver persists an annotated tree.
type Saver interface {
	Save(ctx context.Context, t *tree.Tree) error
}

// Recognizer runs the detectors over a tree, fills the remaining leaves
// with NONE and hands the tree to a Saver.
type Recognizer struct {
	detectors []Detector
	detect    tree.Condition
	fill      tree.Condition
	saver     Saver
	logger    *zap.Logger
}

// Options configures a Recognizer.
type Options struct {
	// Detectors run in slice order; the order is the label priority.
	Detectors []Detector
	// LeafCondition selects the leaves the detectors see.
	LeafCondition tree.Condition
	// FillCondition selects the leaves that default to NONE. Defaults to
	// LeafCondition.
	FillCondition tree.Condition
	// Saver is called once per tree after labeling; nil skips persistence.
	Saver  Saver
	Logger *zap.Logger
}

// New creates a Recognizer.
func New(opts Options) (*Recognizer, error) {
	if len(opts.Detectors) == 0 {
		return nil, fmt.Errorf("%w: no detectors", internalerr.ErrInvalidConfig)
	}
	if opts.LeafCondition == nil {
		return nil, fmt.Errorf("%w: no leaf condition", internalerr.ErrInvalidConfig)
	}
	if opts.FillCondition == nil {
		opts.FillCondition = opts.LeafCondition
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Recognizer{
		detectors: opts.Detectors,
		detect:    opts.LeafCondition,
		fill:      opts.FillCondition,
		saver:     opts.Saver,
		logger:    opts.Logger,
	}, nil
}

// language describes a supported annotation language.
type language struct {
	view tree.View
	// detectors builds the detector set for the language.
	detectors func(Resources) []Detector
}

var languages = map[string]language{
	"tr": {view: tree.ViewTurkish, detectors: StandardDetectors},
	"en": {view: tree.ViewEnglish, detectors: StandardDetectors},
}

// ForLanguage builds a Recognizer for a language tag ("tr", "en"). Empty
// fields of res are filled with the language defaults: word view, casing
// and lexical predicates. Detection uses the language's word leaves;
// default filling uses the leaves whose word is actually filled in.
func ForLanguage(tag string, res Resources, saver Saver) (*Recognizer, error) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	lang, ok := languages[tag]
	if !ok {
		return nil, fmt.Errorf("%w: %q", internalerr.ErrUnsupportedLanguage, tag)
	}

	if res.View == "" {
		res.View = lang.view
	}
	if res.Normalize == nil {
		n, err := casing.ForLanguage(tag)
		if err != nil {
			return nil, err
		}
		res.Normalize = n
	}
	if res.Predicates.IsZero() {
		p, err := lexical.ForLanguage(tag)
		if err != nil {
			return nil, err
		}
		res.Predicates = p
	}
	res = res.withDefaults()

	return New(Options{
		Detectors:     lang.detectors(res),
		LeafCondition: tree.IsLanguageLeaf(res.View),
		FillCondition: tree.IsTransferable(res.View),
		Saver:         saver,
		Logger:        res.Logger,
	})
}

// Stats counts labels on a tree after recognition.
type Stats struct {
	Leaves int
	Counts map[Label]int
}

// Entities returns the number of leaves with a label other than NONE.
func (s Stats) Entities() int {
	return s.Leaves - s.Counts[None]
}

// Add accumulates other into s.
func (s *Stats) Add(other Stats) {
	if s.Counts == nil {
		s.Counts = make(map[Label]int)
	}
	s.Leaves += other.Leaves
	for l, n := range other.Counts {
		s.Counts[l] += n
	}
}

// Count tallies the labels of the given leaves. Unlabeled leaves are not
// counted.
func Count(leaves []*tree.Node) Stats {
	s := Stats{Counts: make(map[Label]int)}
	for _, leaf := range leaves {
		if l, ok := LabelOf(leaf); ok {
			s.Leaves++
			s.Counts[l]++
		}
	}
	return s
}

// Recognize labels every selected leaf of t and saves it. Detection runs
// the passes in order, each seeing the labels of the ones before. Errors
// come only from the Saver; on error the tree is left labeled but unsaved.
func (r *Recognizer) Recognize(ctx context.Context, t *tree.Tree) (Stats, error) {
	if t == nil || t.Root() == nil {
		return Stats{}, fmt.Errorf("%w: nil tree", internalerr.ErrInvalidInput)
	}

	leaves := tree.Collect(t.Root(), r.detect)
	for _, d := range r.detectors {
		before := countLabel(leaves, d.Label())
		d.Detect(leaves)
		r.logger.Debug("detector pass",
			zap.String("tree", t.Name),
			zap.String("label", string(d.Label())),
			zap.Int("labeled", countLabel(leaves, d.Label())-before))
	}

	filled := 0
	for _, leaf := range tree.Collect(t.Root(), r.fill) {
		if labelIfAbsent(leaf, None) {
			filled++
		}
	}

	stats := Count(tree.Collect(t.Root(), tree.IsLeaf))
	r.logger.Debug("tree labeled",
		zap.String("tree", t.Name),
		zap.Int("leaves", stats.Leaves),
		zap.Int("entities", stats.Entities()),
		zap.Int("filled", filled))

	if r.saver == nil {
		return stats, nil
	}
	if err := ctx.Err(); err != nil {
		return stats, err
	}
	if err := r.saver.Save(ctx, t); err != nil {
		return stats, fmt.Errorf("save %s: %w", t.Name, err)
	}
	return stats, nil
}

func countLabel(leaves []*tree.Node, l Label) int {
	n := 0
	for _, leaf := range leaves {
		if got, ok := LabelOf(leaf); ok && got == l {
			n++
		}
	}
	return n
}

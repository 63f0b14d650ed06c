package ner

import (
	"strings"

	"go.uber.org/zap"

	"github.com/cognicore/treener/pkg/treener/casing"
	"github.com/cognicore/treener/pkg/treener/gazetteer"
	"github.com/cognicore/treener/pkg/treener/internalerr"
	"github.com/cognicore/treener/pkg/treener/lexical"
	"github.com/cognicore/treener/pkg/treener/tree"
)

// Detector runs one labeling pass over the ordered leaves of a tree.
type Detector interface {
	// Label is the category the detector assigns.
	Label() Label
	// Detect labels matching leaves in place. Labeled leaves are left alone.
	Detect(leaves []*tree.Node)
}

// Tags names the category tags detectors look for on a leaf's parent.
type Tags struct {
	ProperNoun string
	Numeral    string
}

// DefaultTags returns the Penn treebank tags.
func DefaultTags() Tags {
	return Tags{ProperNoun: "NNP", Numeral: "CD"}
}

// Resources is the read-only configuration shared by the detectors.
type Resources struct {
	View       tree.View
	Normalize  casing.Normalizer
	Gazetteers *gazetteer.Set
	Predicates lexical.Predicates
	Tags       Tags
	Logger     *zap.Logger
}

func (r Resources) withDefaults() Resources {
	if r.Normalize == nil {
		r.Normalize = strings.ToLower
	}
	if r.Tags.ProperNoun == "" {
		r.Tags.ProperNoun = DefaultTags().ProperNoun
	}
	if r.Tags.Numeral == "" {
		r.Tags.Numeral = DefaultTags().Numeral
	}
	if r.Logger == nil {
		r.Logger = zap.NewNop()
	}
	return r
}

func (r Resources) word(leaf *tree.Node) string {
	return r.Normalize(leaf.Layer(r.View))
}

func (r Resources) inGazetteer(l Label, word string) bool {
	return r.Gazetteers.Contains(string(l), word)
}

// parentTag returns the tag of leaf's parent. A leaf without a parent is
// reported as a structural problem and yields false.
func (r Resources) parentTag(leaf *tree.Node) (string, bool) {
	tag, ok := leaf.ParentData()
	if !ok {
		r.Logger.Debug("leaf has no parent",
			zap.String("word", leaf.Layer(r.View)),
			zap.Error(internalerr.ErrStructural))
	}
	return tag, ok
}

// isNumeral is the propagation test: the leaf's parent carries the
// numeral tag.
func (r Resources) isNumeral(leaf *tree.Node) bool {
	tag, ok := r.parentTag(leaf)
	return ok && tag == r.Tags.Numeral
}

package ner

import "github.com/cognicore/treener/pkg/treener/tree"

// Label is a named entity category.
type Label string

const (
	Person       Label = "PERSON"
	Location     Label = "LOCATION"
	Organization Label = "ORGANIZATION"
	Money        Label = "MONEY"
	Time         Label = "TIME"
	None         Label = "NONE"
)

// Labels lists every label a leaf can end up with, in detection order
// followed by the default.
var Labels = []Label{Person, Location, Organization, Money, Time, None}

// Valid reports whether l is one of Labels.
func (l Label) Valid() bool {
	for _, known := range Labels {
		if l == known {
			return true
		}
	}
	return false
}

// LabelOf returns the label stored on leaf, if any.
func LabelOf(leaf *tree.Node) (Label, bool) {
	if !leaf.HasLayer(tree.ViewNamedEntity) {
		return "", false
	}
	return Label(leaf.Layer(tree.ViewNamedEntity)), true
}

// HasLabel reports whether leaf already carries a label.
func HasLabel(leaf *tree.Node) bool {
	return leaf.HasLayer(tree.ViewNamedEntity)
}

// labelIfAbsent sets l on leaf unless a label is already present. It is
// the only place labels are written: first assignment wins.
func labelIfAbsent(leaf *tree.Node, l Label) bool {
	if HasLabel(leaf) {
		return false
	}
	leaf.SetLayer(tree.ViewNamedEntity, string(l))
	return true
}

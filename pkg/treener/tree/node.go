package tree

import "strings"

// View names a layer of data attached to a leaf: the word in a given
// language, or an annotation such as the named entity label.
type View string

const (
	ViewTurkish     View = "turkish"
	ViewEnglish     View = "english"
	ViewPersian     View = "persian"
	ViewNamedEntity View = "namedEntity"
)

// Layer is a single view=value pair of a leaf.
type Layer struct {
	View  View
	Value string
}

// Node is a constituent of a parse tree. Internal nodes carry a category
// tag (NP, NNP, CD, ...); leaves carry layered word data.
type Node struct {
	data     string
	parent   *Node
	children []*Node
	layers   []Layer // insertion order, kept for rendering
}

// NewNode creates an internal node with the given category tag and children.
func NewNode(data string, children ...*Node) *Node {
	n := &Node{data: data}
	for _, c := range children {
		n.AddChild(c)
	}
	return n
}

// NewLeaf creates a leaf holding word under view.
func NewLeaf(view View, word string) *Node {
	return &Node{layers: []Layer{{View: view, Value: word}}}
}

// AddChild appends child and sets its parent back-reference.
func (n *Node) AddChild(child *Node) {
	child.parent = n
	n.children = append(n.children, child)
}

// Parent returns the parent node, or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the child nodes in surface order.
func (n *Node) Children() []*Node { return n.children }

// Data returns the category tag of the node.
func (n *Node) Data() string { return n.data }

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return len(n.children) == 0 }

// HasLayer reports whether the node carries data for view.
func (n *Node) HasLayer(view View) bool {
	for _, l := range n.layers {
		if l.View == view {
			return true
		}
	}
	return false
}

// Layer returns the value stored under view, or "" when absent.
func (n *Node) Layer(view View) string {
	for _, l := range n.layers {
		if l.View == view {
			return l.Value
		}
	}
	return ""
}

// SetLayer stores value under view, replacing an existing value.
func (n *Node) SetLayer(view View, value string) {
	for i, l := range n.layers {
		if l.View == view {
			n.layers[i].Value = value
			return
		}
	}
	n.layers = append(n.layers, Layer{View: view, Value: value})
}

// Layers returns a copy of the node's layers in insertion order.
func (n *Node) Layers() []Layer {
	out := make([]Layer, len(n.layers))
	copy(out, n.layers)
	return out
}

// ParentData returns the category tag of the parent, and false when the
// node has no parent.
func (n *Node) ParentData() (string, bool) {
	if n.parent == nil {
		return "", false
	}
	return n.parent.data, true
}

func (n *Node) render(b *strings.Builder) {
	if n.IsLeaf() && len(n.layers) > 0 {
		for _, l := range n.layers {
			b.WriteByte('{')
			b.WriteString(string(l.View))
			b.WriteByte('=')
			b.WriteString(l.Value)
			b.WriteByte('}')
		}
		return
	}
	b.WriteByte('(')
	b.WriteString(n.data)
	for _, c := range n.children {
		b.WriteByte(' ')
		c.render(b)
	}
	b.WriteByte(')')
}

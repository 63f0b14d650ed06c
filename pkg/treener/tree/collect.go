package tree

import "strings"

// Condition selects nodes during collection.
type Condition func(n *Node) bool

// Collect walks the subtree rooted at root depth first, left to right, and
// returns every node satisfying cond. The result only depends on the tree
// structure and layers, never on labels set between calls.
func Collect(root *Node, cond Condition) []*Node {
	var out []*Node
	collect(root, cond, &out)
	return out
}

func collect(n *Node, cond Condition, out *[]*Node) {
	if n == nil {
		return
	}
	if cond(n) {
		*out = append(*out, n)
	}
	for _, c := range n.children {
		collect(c, cond, out)
	}
}

// IsLeaf matches every terminal node.
func IsLeaf(n *Node) bool {
	return n.IsLeaf()
}

// IsLanguageLeaf matches leaves carrying a real word for view. Traces
// ("*T*-1") and the "0" null element under -NONE- are skipped.
func IsLanguageLeaf(view View) Condition {
	return func(n *Node) bool {
		if !n.IsLeaf() || !n.HasLayer(view) {
			return false
		}
		word := n.Layer(view)
		if strings.Contains(word, "*") {
			return false
		}
		parent, _ := n.ParentData()
		return !(word == "0" && parent == "-NONE-")
	}
}

// IsTransferable matches leaves whose view word was actually filled in,
// i.e. is neither missing, "*NONE*" nor a null element.
func IsTransferable(view View) Condition {
	return func(n *Node) bool {
		if !n.IsLeaf() || !n.HasLayer(view) {
			return false
		}
		if parent, ok := n.ParentData(); ok && parent == "-NONE-" {
			return false
		}
		return n.Layer(view) != "*NONE*"
	}
}

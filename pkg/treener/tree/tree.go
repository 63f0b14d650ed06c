package tree

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cognicore/treener/pkg/treener/internalerr"
)

// Tree is a named parse tree. The name identifies it for persistence,
// usually the base name of the file it was read from.
type Tree struct {
	Name string
	root *Node
}

// New wraps root in a Tree.
func New(name string, root *Node) *Tree {
	return &Tree{Name: name, root: root}
}

// Root returns the root node.
func (t *Tree) Root() *Node { return t.root }

// Leaves collects the nodes of the tree matching cond.
func (t *Tree) Leaves(cond Condition) []*Node {
	return Collect(t.root, cond)
}

// String renders the tree in the bracketed format accepted by Read.
func (t *Tree) String() string {
	if t.root == nil {
		return ""
	}
	var b strings.Builder
	t.root.render(&b)
	return b.String()
}

// ReadFile reads a single bracketed tree from path.
func ReadFile(path string, defaultView View) (*Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, filepath.Base(path), defaultView)
}

// Read parses one bracketed tree. Bare leaf tokens are stored under
// defaultView; tokens of the form {view=value}{view=value} keep their
// layers as written.
func Read(r io.Reader, name string, defaultView View) (*Tree, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	root, err := Parse(string(data), defaultView)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return New(name, root), nil
}

// Parse parses the bracketed text of one tree and returns its root.
func Parse(src string, defaultView View) (*Node, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	if len(toks) == 0 {
		return nil, fmt.Errorf("%w: empty input", internalerr.ErrMalformedTree)
	}
	p := &parser{toks: toks, view: defaultView}
	root, err := p.node()
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.toks) {
		return nil, fmt.Errorf("%w: trailing input at offset %d", internalerr.ErrMalformedTree, p.toks[p.pos].pos)
	}
	return root, nil
}

type tokenKind int

const (
	tokOpen tokenKind = iota
	tokClose
	tokAtom
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

func lex(src string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == '(':
			toks = append(toks, token{kind: tokOpen, pos: i})
			i++
		case c == ')':
			toks = append(toks, token{kind: tokClose, pos: i})
			i++
		case isSpace(c):
			i++
		default:
			start := i
			depth := 0
			for i < len(src) {
				c = src[i]
				if c == '{' {
					depth++
				} else if c == '}' && depth > 0 {
					depth--
				} else if depth == 0 && (c == '(' || c == ')' || isSpace(c)) {
					break
				}
				i++
			}
			if depth != 0 {
				return nil, fmt.Errorf("%w: unbalanced '{' at offset %d", internalerr.ErrMalformedTree, start)
			}
			toks = append(toks, token{kind: tokAtom, text: src[start:i], pos: start})
		}
	}
	return toks, nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

type parser struct {
	toks []token
	pos  int
	view View
}

func (p *parser) node() (*Node, error) {
	if p.pos >= len(p.toks) {
		return nil, fmt.Errorf("%w: unexpected end of input", internalerr.ErrMalformedTree)
	}
	t := p.toks[p.pos]
	switch t.kind {
	case tokAtom:
		p.pos++
		return leafFromAtom(t, p.view)
	case tokClose:
		return nil, fmt.Errorf("%w: unexpected ')' at offset %d", internalerr.ErrMalformedTree, t.pos)
	}

	p.pos++
	n := &Node{}
	if p.pos < len(p.toks) && p.toks[p.pos].kind == tokAtom {
		n.data = p.toks[p.pos].text
		p.pos++
	}
	for {
		if p.pos >= len(p.toks) {
			return nil, fmt.Errorf("%w: unclosed '(' at offset %d", internalerr.ErrMalformedTree, t.pos)
		}
		if p.toks[p.pos].kind == tokClose {
			p.pos++
			return n, nil
		}
		child, err := p.node()
		if err != nil {
			return nil, err
		}
		n.AddChild(child)
	}
}

func leafFromAtom(t token, view View) (*Node, error) {
	if !strings.HasPrefix(t.text, "{") {
		return NewLeaf(view, t.text), nil
	}
	n := &Node{}
	rest := t.text
	for rest != "" {
		if rest[0] != '{' {
			return nil, fmt.Errorf("%w: text outside layer at offset %d", internalerr.ErrMalformedTree, t.pos)
		}
		end := strings.IndexByte(rest, '}')
		if end < 0 {
			return nil, fmt.Errorf("%w: unterminated layer at offset %d", internalerr.ErrMalformedTree, t.pos)
		}
		name, value, ok := strings.Cut(rest[1:end], "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: layer without name at offset %d", internalerr.ErrMalformedTree, t.pos)
		}
		n.SetLayer(View(name), value)
		rest = rest[end+1:]
	}
	return n, nil
}

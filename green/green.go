// Package green provides the immutable concrete syntax tree substrate the CST builder produces
// nodes into: GreenToken and GreenNode.
//
// Spec §6 names GreenToken/GreenNode as a consumed interface "supplied by the CST library" that
// the printer and CST builder are written against. This package gives that interface a concrete,
// minimal body: nodes and tokens are immutable once constructed, and identity (pointer) equality
// is the only equality the builder's reuse optimization (spec §4.4) relies on.
package green

import (
	"github.com/loomfmt/core/intern"
	"github.com/loomfmt/core/syntax"
)

// Token is an immutable leaf of the green tree, wrapping an interned (kind, text) handle.
type Token struct {
	handle intern.Handle
}

// NewToken wraps an interned handle as a green leaf.
func NewToken(handle intern.Handle) *Token {
	return &Token{handle: handle}
}

// Handle returns the token's interned handle.
func (t *Token) Handle() intern.Handle { return t.handle }

// Text returns the token's text payload.
func (t *Token) Text() string { return t.handle.Text() }

// Child is a member of a GreenNode's ordered children: either a *Token or a *Node.
type Child interface {
	// Text returns the concatenation of all token text reachable from this child, in preorder.
	Text() string
	// identical reports whether this child is the exact same green value (by identity) as other.
	identical(other Child) bool
}

func (t *Token) identical(other Child) bool {
	o, ok := other.(*Token)
	return ok && o == t
}

// Node is an immutable green tree node: a syntax Kind plus an ordered list of children, each
// either a token or another node.
type Node struct {
	kind     syntax.Kind
	children []Child
	text     string
}

// NewNode constructs a green node of the given kind from children. The children slice is copied;
// the returned Node owns its own slice.
func NewNode(kind syntax.Kind, children []Child) *Node {
	cs := make([]Child, len(children))
	copy(cs, children)
	var text string
	for _, c := range cs {
		text += c.Text()
	}
	return &Node{kind: kind, children: cs, text: text}
}

// Kind returns the node's syntax kind.
func (n *Node) Kind() syntax.Kind { return n.kind }

// Children returns the node's children in source order. The returned slice must not be mutated.
func (n *Node) Children() []Child { return n.children }

// Text returns the concatenation of all token text under this node, in preorder.
func (n *Node) Text() string { return n.text }

func (n *Node) identical(other Child) bool {
	o, ok := other.(*Node)
	return ok && o == n
}

// SameChildren reports whether children is, element for element, identical (by pointer identity)
// to n's own children: same length, each child the exact same Token or Node value. This is the
// "shallow equality" spec §4.4 defines and the CST builder's reuse optimization relies on.
func (n *Node) SameChildren(children []Child) bool {
	if len(children) != len(n.children) {
		return false
	}
	for i, c := range children {
		if !n.children[i].identical(c) {
			return false
		}
	}
	return true
}

// Identical reports whether a and b are the pointer-identical same child. Two nil children are
// identical; a nil and a non-nil child are not.
func Identical(a, b Child) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.identical(b)
}

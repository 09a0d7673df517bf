// Package cst implements the CST Builder with snapshot/restore (spec §4.4): the structure that, in
// tandem with the printer, reconstructs a concrete syntax tree annotated with the printed tokens,
// reusing subtrees that did not change and supporting rewind when a speculative "fit on one line"
// attempt fails.
package cst

import (
	"github.com/loomfmt/core/green"
	"github.com/loomfmt/core/internal/invariant"
	"github.com/loomfmt/core/intern"
	"github.com/loomfmt/core/syntax"
)

// ParentNodeID denotes "insert into the currently open frame at this id"; 0 denotes the implicit
// root (spec §3).
type ParentNodeID int

// RootID is the implicit root parent, before any frame has been opened.
const RootID ParentNodeID = 0

type frame struct {
	kind          syntax.Kind
	template      *green.Node // reuse candidate, or nil
	childrenStart int
}

// Builder holds the open-frame stack and the flat preorder buffer of completed children
// (spec §3 "CST Builder State"). The zero value is ready to use.
type Builder struct {
	parents  []*frame
	children []green.Child
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Snapshot captures (parents.len, children.len) plus enough identity information to detect, at
// Restore time, whether a frame opened before the snapshot was finished in the meantime
// (spec §3 "Snapshot").
type Snapshot struct {
	parentsLen int
	topFrame   *frame
	childrenLen int
}

// Snapshot captures the builder's current state for later Restore.
func (b *Builder) Snapshot() Snapshot {
	s := Snapshot{parentsLen: len(b.parents), childrenLen: len(b.children)}
	if len(b.parents) > 0 {
		s.topFrame = b.parents[len(b.parents)-1]
	}
	return s
}

// Restore truncates the builder back to a previously captured Snapshot. It panics (a programmer
// error per spec §7) if any frame open at snapshot time has since been finished: that would mean
// the tree structure below the snapshot has changed, and truncating would silently discard or
// corrupt completed nodes rather than merely rewinding speculative work.
func (b *Builder) Restore(s Snapshot) {
	invariant.That(s.parentsLen <= len(b.parents),
		"cst: invalid snapshot: %d frames were open at snapshot time but only %d are open now",
		s.parentsLen, len(b.parents))
	if s.parentsLen > 0 {
		invariant.That(b.parents[s.parentsLen-1] == s.topFrame,
			"cst: invalid snapshot restore: a frame opened before the snapshot was finished in the meantime")
	}
	invariant.That(s.childrenLen <= len(b.children),
		"cst: invalid snapshot: %d children were recorded at snapshot time but only %d exist now",
		s.childrenLen, len(b.children))
	b.parents = b.parents[:s.parentsLen]
	b.children = b.children[:s.childrenLen]
}

// closeAbove finishes and pops any frames strictly deeper than parent, draining each into a
// single completed green child of its own enclosing frame.
func (b *Builder) closeAbove(parent ParentNodeID) {
	invariant.That(int(parent) <= len(b.parents),
		"cst: parent id %d does not refer to a currently open frame (only %d are open)", parent, len(b.parents))
	for ParentNodeID(len(b.parents)) > parent {
		b.finishTop()
	}
}

func (b *Builder) finishTop() {
	idx := len(b.parents) - 1
	f := b.parents[idx]
	b.parents = b.parents[:idx]

	drained := make([]green.Child, len(b.children)-f.childrenStart)
	copy(drained, b.children[f.childrenStart:])
	b.children = b.children[:f.childrenStart]

	var node *green.Node
	if f.template != nil && f.template.Kind() == f.kind && f.template.SameChildren(drained) {
		node = f.template
	} else {
		node = green.NewNode(f.kind, drained)
	}
	b.children = append(b.children, node)
}

// AppendNode finishes and pops any frames strictly above parent, then opens a new frame of kind
// and returns its id. If template is non-nil and, at Finish/closeAbove time, its kind matches and
// its existing children are pointer-identical in order to what was actually appended into the new
// frame, the template itself is reused verbatim instead of allocating a new green node
// (spec §4.4 "Reuse optimization").
func (b *Builder) AppendNode(parent ParentNodeID, kind syntax.Kind, template *green.Node) ParentNodeID {
	b.closeAbove(parent)
	b.parents = append(b.parents, &frame{kind: kind, template: template, childrenStart: len(b.children)})
	return ParentNodeID(len(b.parents))
}

// AppendRawNode finishes and pops any frames strictly above parent, then appends green as a
// completed child with no structural descent (spec §4.4).
func (b *Builder) AppendRawNode(parent ParentNodeID, g *green.Node) {
	b.closeAbove(parent)
	b.children = append(b.children, g)
}

// AppendToken finishes and pops any frames strictly above parent, then appends a leaf token built
// from handle (spec §4.4).
func (b *Builder) AppendToken(parent ParentNodeID, handle intern.Handle) {
	b.closeAbove(parent)
	b.children = append(b.children, green.NewToken(handle))
}

// Finish finishes all remaining open frames from top to bottom and returns the single remaining
// child as the root. It panics if zero or more than one child remains, per spec §4.4 and §7.
func (b *Builder) Finish() green.Child {
	b.closeAbove(RootID)
	invariant.That(len(b.children) == 1,
		"cst: finish requires exactly one remaining root child, got %d", len(b.children))
	return b.children[0]
}

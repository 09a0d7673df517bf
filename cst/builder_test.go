package cst_test

import (
	"testing"

	"github.com/teleivo/assertive/assert"
	"github.com/teleivo/assertive/require"

	"github.com/loomfmt/core/cst"
	"github.com/loomfmt/core/green"
	"github.com/loomfmt/core/intern"
	"github.com/loomfmt/core/syntax"
)

var (
	kindRoot   = syntax.Kind(1)
	kindLeaf   = syntax.Kind(2)
	kindMember = syntax.Kind(3)
)

func TestBuilderSimpleTree(t *testing.T) {
	in := intern.New()
	b := cst.NewBuilder()

	root := b.AppendNode(cst.RootID, kindRoot, nil)
	b.AppendToken(root, in.Get(kindLeaf, "a"))
	b.AppendToken(root, in.Get(kindLeaf, "b"))

	got := b.Finish()

	assert.Equals(t, got.Text(), "ab")
}

func TestBuilderNestedNodes(t *testing.T) {
	in := intern.New()
	b := cst.NewBuilder()

	root := b.AppendNode(cst.RootID, kindRoot, nil)
	member := b.AppendNode(root, kindMember, nil)
	b.AppendToken(member, in.Get(kindLeaf, "x"))
	b.AppendToken(root, in.Get(kindLeaf, "y"))

	got := b.Finish()

	assert.Equals(t, got.Text(), "xy")
}

func TestBuilderSnapshotRestoreDiscardsSpeculativeWork(t *testing.T) {
	in := intern.New()
	b := cst.NewBuilder()

	root := b.AppendNode(cst.RootID, kindRoot, nil)
	b.AppendToken(root, in.Get(kindLeaf, "a"))

	snap := b.Snapshot()
	speculative := b.AppendNode(root, kindMember, nil)
	b.AppendToken(speculative, in.Get(kindLeaf, "discarded"))

	b.Restore(snap)
	b.AppendToken(root, in.Get(kindLeaf, "b"))

	got := b.Finish()

	assert.Equals(t, got.Text(), "ab")
}

func TestBuilderRestoreAfterFrameFinishedPanics(t *testing.T) {
	in := intern.New()
	b := cst.NewBuilder()

	root := b.AppendNode(cst.RootID, kindRoot, nil)
	member := b.AppendNode(root, kindMember, nil)
	snap := b.Snapshot()
	b.AppendToken(member, in.Get(kindLeaf, "x"))
	b.AppendNode(root, kindMember, nil) // closes and finishes the member frame above

	defer func() {
		r := recover()
		require.NotNil(t, r)
	}()
	b.Restore(snap)
}

func TestBuilderFinishWithZeroChildrenPanics(t *testing.T) {
	b := cst.NewBuilder()

	defer func() {
		r := recover()
		require.NotNil(t, r)
	}()
	b.Finish()
}

// TestBuilderReusesTemplateOnIdenticalChildren simulates the incremental-formatting case spec §4.4
// describes: a caller holds a subtree from a previous run (template) and re-inserts the exact same
// child objects this run. The builder must hand back the template itself rather than allocate a
// new green node.
func TestBuilderReusesTemplateOnIdenticalChildren(t *testing.T) {
	in := intern.New()
	unchanged := green.NewNode(kindLeaf, []green.Child{green.NewToken(in.Get(kindLeaf, "x"))})
	template := green.NewNode(kindMember, []green.Child{unchanged})

	b := cst.NewBuilder()
	root := b.AppendNode(cst.RootID, kindRoot, nil)
	member := b.AppendNode(root, kindMember, template)
	b.AppendRawNode(member, unchanged)
	b.AppendNode(root, kindLeaf, nil) // closes "member"

	rootChild := b.Finish()
	rootNode, ok := rootChild.(interface{ Children() []green.Child })
	require.True(t, ok)

	got, ok := rootNode.Children()[0].(*green.Node)
	require.True(t, ok)
	assert.True(t, got == template)
}

// TestBuilderDoesNotReuseWhenChildrenDiffer confirms a changed child skips reuse: the builder must
// allocate a fresh node rather than returning the stale template.
func TestBuilderDoesNotReuseWhenChildrenDiffer(t *testing.T) {
	in := intern.New()
	oldChild := green.NewNode(kindLeaf, []green.Child{green.NewToken(in.Get(kindLeaf, "old"))})
	template := green.NewNode(kindMember, []green.Child{oldChild})

	b := cst.NewBuilder()
	root := b.AppendNode(cst.RootID, kindRoot, nil)
	member := b.AppendNode(root, kindMember, template)
	b.AppendToken(member, in.Get(kindLeaf, "new"))
	b.AppendNode(root, kindLeaf, nil)

	rootChild := b.Finish()
	rootNode, ok := rootChild.(interface{ Children() []green.Child })
	require.True(t, ok)

	got, ok := rootNode.Children()[0].(*green.Node)
	require.True(t, ok)
	assert.True(t, got != template)
	assert.Equals(t, rootChild.Text(), "new")
}

func TestBuilderEmptyNodeHasEmptyText(t *testing.T) {
	b := cst.NewBuilder()

	root := b.AppendNode(cst.RootID, kindRoot, nil)
	b.AppendNode(root, kindMember, nil)
	b.AppendNode(root, kindLeaf, nil) // closes "member" with zero children

	got := b.Finish()

	assert.Equals(t, got.Text(), "")
}

func TestBuilderAppendRawNode(t *testing.T) {
	in := intern.New()
	b := cst.NewBuilder()

	root := b.AppendNode(cst.RootID, kindRoot, nil)
	raw := green.NewNode(kindLeaf, []green.Child{green.NewToken(in.Get(kindLeaf, "raw"))})

	b.AppendRawNode(root, raw)
	got := b.Finish()

	assert.Equals(t, got.Text(), "raw")
}

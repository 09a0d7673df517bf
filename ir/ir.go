// Package ir implements the Format IR: the compositional tree of formatting intents produced by
// front-end converters and consumed by the printer (spec §3, §4.2).
//
// The IR is a tagged sum of variants, mirroring the teacher's internal/layout tag design but
// carrying the richer per-variant contract the printer's snapshot/restore and CST-building
// traversal needs: a structural Node envelope, a RawNode escape hatch, and Text leaves bound to
// interned tokens rather than bare strings.
package ir

import (
	"fmt"
	"strings"

	"github.com/loomfmt/core/green"
	"github.com/loomfmt/core/intern"
	"github.com/loomfmt/core/syntax"
)

// LineMode selects how a Line token renders depending on the enclosing group's mode (spec §3).
type LineMode int

const (
	// Soft emits nothing flat, newline+indent broken.
	Soft LineMode = iota
	// SoftOrSpace emits a single space flat, newline+indent broken.
	SoftOrSpace
	// Hard always emits newline+indent and forces any enclosing group to break.
	Hard
)

func (m LineMode) String() string {
	switch m {
	case Soft:
		return "Soft"
	case SoftOrSpace:
		return "SoftOrSpace"
	case Hard:
		return "Hard"
	default:
		return fmt.Sprintf("LineMode(%d)", int(m))
	}
}

// FormatToken is a node of the Format IR. It is a tagged sum; callers build values exclusively
// through the factory functions in this package and consume them by type-switching on the
// concrete variant types, as the printer package does.
type FormatToken interface {
	fmt.Stringer
	tag()
}

// Text is a literal leaf bound to an interned token (spec §3 "Text"). The factories are [Token],
// which interns (kind, text) first, per spec §4.2, and [TokenHandle], which takes an
// already-interned handle.
type Text struct {
	Handle intern.Handle
}

func (Text) tag() {}
func (t Text) String() string {
	return fmt.Sprintf("<text content=%q/>", t.Handle.Text())
}

// SpaceToken is a single space (spec §3 "Space"). The printer emits it even at the end of a line.
type SpaceToken struct{}

func (SpaceToken) tag() {}
func (SpaceToken) String() string { return "<space/>" }

// LineToken is one of the three Line variants (spec §3 "Line").
type LineToken struct {
	Mode LineMode
}

func (LineToken) tag() {}
func (l LineToken) String() string { return fmt.Sprintf("<line mode=%s/>", l.Mode) }

// IndentToken increases the indent level by one for Body (spec §3 "Indent").
type IndentToken struct {
	Body FormatToken
}

func (IndentToken) tag() {}
func (i IndentToken) String() string {
	return fmt.Sprintf("<indent>%s</indent>", i.Body)
}

// GroupToken is the unit of layout choice (spec §3 "Group").
type GroupToken struct {
	Body FormatToken
}

func (GroupToken) tag() {}
func (g GroupToken) String() string {
	return fmt.Sprintf("<group>%s</group>", g.Body)
}

// IfBreakToken emits BreakBody when the nearest enclosing group is expanded, else FlatBody
// (spec §3 "IfBreak"). Outside any group it behaves as the flat branch (spec §4.2).
type IfBreakToken struct {
	BreakBody FormatToken
	FlatBody  FormatToken // may be nil, meaning empty
}

func (IfBreakToken) tag() {}
func (b IfBreakToken) String() string {
	flat := "<empty/>"
	if b.FlatBody != nil {
		flat = b.FlatBody.String()
	}
	return fmt.Sprintf("<if-break>%s<else>%s</else></if-break>", b.BreakBody, flat)
}

// ListToken is concatenation with no separator (spec §3 "List").
type ListToken struct {
	Items []FormatToken
}

func (ListToken) tag() {}
func (l ListToken) String() string {
	var sb strings.Builder
	sb.WriteString("<list>")
	for _, it := range l.Items {
		sb.WriteString(it.String())
	}
	sb.WriteString("</list>")
	return sb.String()
}

// JoinToken is [ListToken] with Separator interleaved between consecutive Items (spec §3 "Join").
type JoinToken struct {
	Separator FormatToken
	Items     []FormatToken
}

func (JoinToken) tag() {}
func (j JoinToken) String() string {
	var sb strings.Builder
	sb.WriteString("<join>")
	for i, it := range j.Items {
		if i > 0 {
			sb.WriteString(j.Separator.String())
		}
		sb.WriteString(it.String())
	}
	sb.WriteString("</join>")
	return sb.String()
}

// NodeToken wraps Body so the printer opens a CST node of Kind before emitting Body and closes it
// after (spec §3 "Node").
type NodeToken struct {
	Kind syntax.Kind
	Body FormatToken
}

func (NodeToken) tag() {}
func (n NodeToken) String() string {
	return fmt.Sprintf("<node kind=%s>%s</node>", n.Kind, n.Body)
}

// RawNodeToken is an opaque, already-formatted subtree emitted verbatim and attached to the CST
// builder via AppendRawNode, without the printer descending into it (spec §3 "RawNode").
type RawNodeToken struct {
	Green *green.Node
}

func (RawNodeToken) tag() {}
func (r RawNodeToken) String() string {
	return fmt.Sprintf("<raw-node content=%q/>", r.Green.Text())
}

// --- Factory functions (spec §4.2) ---

// Token wraps an interned (kind, text) token in a Text variant bound to a leaf CST token.
func Token(in *intern.Interner, kind syntax.Kind, text string) FormatToken {
	return Text{Handle: in.Get(kind, text)}
}

// TokenHandle wraps an already-interned handle in a Text variant. Useful when the caller reuses a
// handle obtained from the interner's convenience punctuation accessors.
func TokenHandle(handle intern.Handle) FormatToken {
	return Text{Handle: handle}
}

// Space is a single Space.
func Space() FormatToken { return SpaceToken{} }

// SoftLine renders as nothing when flat, newline+indent when broken.
func SoftLine() FormatToken { return LineToken{Mode: Soft} }

// SoftLineOrSpace renders as a single space when flat, newline+indent when broken.
func SoftLineOrSpace() FormatToken { return LineToken{Mode: SoftOrSpace} }

// HardLine always renders as newline+indent and forces any enclosing group to break.
func HardLine() FormatToken { return LineToken{Mode: Hard} }

// Indent wraps body in an Indent, increasing the indent level by one level while emitting it.
func Indent(body FormatToken) FormatToken { return IndentToken{Body: body} }

// Group wraps body in a Group, the unit of layout choice. An empty group (body == nil) renders as
// empty in either mode.
func Group(body FormatToken) FormatToken {
	if body == nil {
		body = List()
	}
	return GroupToken{Body: body}
}

// IfBreak emits breakBody when the nearest enclosing group is expanded, else flatBody. flatBody
// may be nil, meaning emit nothing flat. Outside any Group this is equivalent to flatBody.
func IfBreak(breakBody, flatBody FormatToken) FormatToken {
	return IfBreakToken{BreakBody: breakBody, FlatBody: flatBody}
}

// List concatenates items with no separator. An empty or nil items emits nothing.
func List(items ...FormatToken) FormatToken {
	return ListToken{Items: items}
}

// Join concatenates items with sep between consecutive elements. Empty items emits nothing;
// a single item emits that item with no separator (spec §4.2).
func Join(sep FormatToken, items ...FormatToken) FormatToken {
	return JoinToken{Separator: sep, Items: items}
}

// Node wraps body so the printer opens a CST node of kind before emitting body.
func Node(kind syntax.Kind, body FormatToken) FormatToken {
	return NodeToken{Kind: kind, Body: body}
}

// RawNode wraps an already-formatted green node as an escape hatch: the printer emits its text
// verbatim and attaches it to the CST via AppendRawNode without descending into it.
func RawNode(g *green.Node) FormatToken {
	return RawNodeToken{Green: g}
}

// Equal reports whether a and b describe the same layout, structurally (spec §4.2: "Equality on
// the IR is structural and is required for golden-test comparison").
func Equal(a, b FormatToken) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch av := a.(type) {
	case Text:
		bv, ok := b.(Text)
		return ok && av.Handle.Kind() == bv.Handle.Kind() && av.Handle.Text() == bv.Handle.Text()
	case SpaceToken:
		_, ok := b.(SpaceToken)
		return ok
	case LineToken:
		bv, ok := b.(LineToken)
		return ok && av.Mode == bv.Mode
	case IndentToken:
		bv, ok := b.(IndentToken)
		return ok && Equal(av.Body, bv.Body)
	case GroupToken:
		bv, ok := b.(GroupToken)
		return ok && Equal(av.Body, bv.Body)
	case IfBreakToken:
		bv, ok := b.(IfBreakToken)
		return ok && Equal(av.BreakBody, bv.BreakBody) && Equal(av.FlatBody, bv.FlatBody)
	case ListToken:
		bv, ok := b.(ListToken)
		return ok && equalSlices(av.Items, bv.Items)
	case JoinToken:
		bv, ok := b.(JoinToken)
		return ok && Equal(av.Separator, bv.Separator) && equalSlices(av.Items, bv.Items)
	case NodeToken:
		bv, ok := b.(NodeToken)
		return ok && av.Kind == bv.Kind && Equal(av.Body, bv.Body)
	case RawNodeToken:
		bv, ok := b.(RawNodeToken)
		return ok && av.Green == bv.Green
	default:
		return false
	}
}

func equalSlices(a, b []FormatToken) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Package printer implements the Printer: the single-pass, work-stack layout engine that turns a
// Format IR tree into text plus a reconstructed CST (spec §4.3).
//
// The printer never recurses into the IR directly; it walks an explicit command stack of
// (indentLevel, mode, inGroup, parent, token) entries so that a speculative "does this Group fit flat" attempt is
// just a snapshot, a sequence of ordinary dispatches, and either a commit or a restore. This keeps
// stack depth bounded by configuration (command count), not by IR nesting depth, and makes the
// snapshot/restore pair the only undo mechanism the printer needs.
package printer

import (
	"strings"
	"unicode/utf8"

	"github.com/loomfmt/core/cst"
	"github.com/loomfmt/core/green"
	"github.com/loomfmt/core/ir"
)

// Result is the outcome of a format run: the printed text and the reconstructed CST root.
type Result struct {
	Text string
	Root green.Child
}

type mode int

const (
	modeBreak mode = iota
	modeFlat
)

// command is one entry of the work stack. A plain command carries a token to dispatch; a sentinel
// marks the point at which a Group's flat attempt, if not yet failed, has fully succeeded.
type command struct {
	sentinel bool

	indentLevel int
	mode        mode
	inGroup     bool
	parent      cst.ParentNodeID
	token       ir.FormatToken
}

// fitAttempt records everything needed to roll back a Group's speculative flat rendering: the CST
// and text state right before the attempt began, and the body to retry in Break mode if the
// attempt fails (spec §4.3 "Fitting policy").
type fitAttempt struct {
	snap        cst.Snapshot
	textLen     int
	column      int
	indentLevel int
	parent      cst.ParentNodeID
	body        ir.FormatToken
	sentinelAt  int // stack length at the moment the sentinel for this attempt was pushed
}

type printer struct {
	opts    Options
	builder *cst.Builder

	out    []byte
	column int

	stack []command
	fits  []fitAttempt
}

// Format runs the printer over root and returns the printed text plus the reconstructed CST
// (spec §4.3, the "format_ir" entry point of spec §6).
func Format(root ir.FormatToken, opts Options) Result {
	opts = opts.normalize()
	p := &printer{
		opts:    opts,
		builder: cst.NewBuilder(),
	}
	p.push(command{indentLevel: 0, mode: modeBreak, inGroup: false, parent: cst.RootID, token: root})

	for len(p.stack) > 0 {
		n := len(p.stack) - 1
		c := p.stack[n]
		p.stack = p.stack[:n]

		if c.sentinel {
			p.fits = p.fits[:len(p.fits)-1]
			continue
		}
		p.dispatch(c)
	}

	return Result{
		Text: string(p.out),
		Root: p.builder.Finish(),
	}
}

func (p *printer) push(c command) {
	p.stack = append(p.stack, c)
}

// pushChildren pushes items in reverse order so the first item is dispatched next, preserving
// preorder traversal on a LIFO stack.
func (p *printer) pushChildren(base command, items []ir.FormatToken) {
	for i := len(items) - 1; i >= 0; i-- {
		c := base
		c.token = items[i]
		p.push(c)
	}
}

func (p *printer) dispatch(c command) {
	switch t := c.token.(type) {
	case ir.Text:
		p.emitToken(c, t)
	case ir.SpaceToken:
		p.emitSpace(c)
	case ir.LineToken:
		p.emitLine(c, t)
	case ir.IndentToken:
		c.indentLevel++
		c.token = t.Body
		p.push(c)
	case ir.GroupToken:
		p.dispatchGroup(c, t)
	case ir.IfBreakToken:
		p.dispatchIfBreak(c, t)
	case ir.ListToken:
		p.pushChildren(c, t.Items)
	case ir.JoinToken:
		p.dispatchJoin(c, t)
	case ir.NodeToken:
		p.dispatchNode(c, t)
	case ir.RawNodeToken:
		p.emitRawNode(c, t)
	case nil:
		// an empty body (e.g. IfBreak with a nil flat branch): nothing to do.
	default:
		panic("printer: unknown ir.FormatToken variant")
	}
}

func (p *printer) dispatchGroup(c command, g ir.GroupToken) {
	switch {
	case !c.inGroup:
		// The first Group encountered along this path always gets its own flat attempt,
		// regardless of the ambient mode: outside any group there is no enclosing flat
		// measurement to inline into (spec §4.2, §4.3 dispatch rule 13).
		p.beginFit(c, g.Body)
	case c.mode == modeFlat:
		// Already inside an active flat attempt: inline, following the outer decision
		// rather than starting an independent measurement (spec §4.3: "nested Group
		// tokens encountered during a flat attempt are inlined into the outer flat
		// measurement").
		c.token = g.Body
		c.inGroup = true
		p.push(c)
	default:
		// Already broken: groups do not attempt flat inside an already-broken context at
		// this level (spec §4.3 dispatch rule 13).
		c.token = g.Body
		c.inGroup = true
		p.push(c)
	}
}

func (p *printer) beginFit(c command, body ir.FormatToken) {
	snap := p.builder.Snapshot()
	sentinelAt := len(p.stack)
	p.push(command{sentinel: true})

	p.push(command{indentLevel: c.indentLevel, mode: modeFlat, inGroup: true, parent: c.parent, token: body})

	p.fits = append(p.fits, fitAttempt{
		snap:        snap,
		textLen:     len(p.out),
		column:      p.column,
		indentLevel: c.indentLevel,
		parent:      c.parent,
		body:        body,
		sentinelAt:  sentinelAt,
	})
}

// failFit rolls the innermost active flat attempt back to its snapshot and retries its body in
// Break mode. A Break-mode attempt never retries again (spec §4.3 "Fitting policy").
func (p *printer) failFit() {
	n := len(p.fits) - 1
	f := p.fits[n]
	p.fits = p.fits[:n]

	p.opts.debugf("printer: group did not fit flat, restarting in break mode at column %d", p.column)

	p.builder.Restore(f.snap)
	p.out = p.out[:f.textLen]
	p.column = f.column
	p.stack = p.stack[:f.sentinelAt]

	p.push(command{indentLevel: f.indentLevel, mode: modeBreak, inGroup: true, parent: f.parent, token: f.body})
}

func (p *printer) dispatchIfBreak(c command, b ir.IfBreakToken) {
	if c.inGroup && c.mode == modeBreak {
		c.token = b.BreakBody
	} else {
		c.token = b.FlatBody
	}
	if c.token == nil {
		return
	}
	p.push(c)
}

func (p *printer) dispatchJoin(c command, j ir.JoinToken) {
	if len(j.Items) == 0 {
		return
	}
	items := make([]ir.FormatToken, 0, len(j.Items)*2-1)
	for i, it := range j.Items {
		if i > 0 {
			items = append(items, j.Separator)
		}
		items = append(items, it)
	}
	p.pushChildren(c, items)
}

func (p *printer) dispatchNode(c command, n ir.NodeToken) {
	template := green.NewNode(n.Kind, nil)
	newParent := p.builder.AppendNode(c.parent, n.Kind, template)
	c.parent = newParent
	c.token = n.Body
	p.push(c)
}

func (p *printer) emitToken(c command, t ir.Text) {
	text := t.Handle.Text()
	p.builder.AppendToken(c.parent, t.Handle)
	p.out = append(p.out, text...)
	p.column += runeWidth(text)

	if c.mode == modeFlat && p.column > int(p.opts.PrintWidth) {
		p.failFit()
	}
}

func (p *printer) emitSpace(c command) {
	p.out = append(p.out, ' ')
	p.column++

	if c.mode == modeFlat && p.column > int(p.opts.PrintWidth) {
		p.failFit()
	}
}

func (p *printer) emitLine(c command, l ir.LineToken) {
	if c.mode == modeFlat {
		switch l.Mode {
		case ir.Soft:
			return
		case ir.SoftOrSpace:
			p.emitSpace(c)
		case ir.Hard:
			p.failFit()
		}
		return
	}
	p.emitNewline(c.indentLevel)
}

func (p *printer) emitNewline(indentLevel int) {
	p.out = append(p.out, '\n')
	p.out = append(p.out, p.opts.Indent.text(indentLevel)...)
	p.column = p.opts.Indent.width(indentLevel)
}

func (p *printer) emitRawNode(c command, r ir.RawNodeToken) {
	p.builder.AppendRawNode(c.parent, r.Green)
	text := r.Green.Text()
	p.out = append(p.out, text...)

	if idx := strings.LastIndexByte(text, '\n'); idx >= 0 {
		p.column = runeWidth(text[idx+1:])
	} else {
		p.column += runeWidth(text)
	}

	if c.mode == modeFlat && p.column > int(p.opts.PrintWidth) {
		p.failFit()
	}
}

func runeWidth(s string) int {
	return utf8.RuneCountInString(s)
}

// Package intern provides hash-consing for (kind, text) leaf tokens, so that equality and reuse
// across an entire format run (and, if the caller chooses to share an Interner, across runs) is
// O(1) pointer comparison (spec §4.1).
package intern

import (
	"sync"

	"github.com/loomfmt/core/syntax"
)

// Handle is a hash-consed (kind, text) pair. Two handles obtained from the same Interner for
// equal (kind, text) inputs are both value-equal (Handle is comparable) and pointer-equal in the
// sense that they wrap the same canonical *entry, so comparing handles with == is correct and is
// the fast path; Handle itself does not need a custom Equal method.
type Handle struct {
	entry *entry
}

type entry struct {
	kind syntax.Kind
	text string
}

// Kind returns the handle's syntax kind.
func (h Handle) Kind() syntax.Kind { return h.entry.kind }

// Text returns the handle's text payload.
func (h Handle) Text() string { return h.entry.text }

func (h Handle) String() string { return h.entry.text }

// Interner hash-conses (kind, text) pairs into canonical, reference-equal handles. The zero value
// is not usable; construct one with New. An Interner is safe for concurrent use, so a single
// Interner may be shared across format runs that execute on disjoint inputs (spec §5); each run
// may equally construct its own Interner if no cross-run sharing is desired.
type Interner struct {
	mu      sync.Mutex
	entries map[key]*entry

	once         sync.Once
	comma        Handle
	colon        Handle
	leftBrace    Handle
	rightBrace   Handle
	leftBracket  Handle
	rightBracket Handle
	doubleQuote  Handle
	singleQuote  Handle
	null         Handle
}

type key struct {
	kind syntax.Kind
	text string
}

// New creates an empty Interner.
func New() *Interner {
	return &Interner{entries: make(map[key]*entry)}
}

// Get returns the canonical handle for (kind, text), interning it on first use. Get is total: it
// never fails and never blocks beyond the interner's own mutex.
func (in *Interner) Get(kind syntax.Kind, text string) Handle {
	k := key{kind: kind, text: text}

	in.mu.Lock()
	defer in.mu.Unlock()

	e, ok := in.entries[k]
	if !ok {
		e = &entry{kind: kind, text: text}
		in.entries[k] = e
	}
	return Handle{entry: e}
}

func (in *Interner) initPunctuation() {
	in.once.Do(func() {
		in.comma = in.Get(syntax.KindComma, ",")
		in.colon = in.Get(syntax.KindColon, ":")
		in.leftBrace = in.Get(syntax.KindLeftBrace, "{")
		in.rightBrace = in.Get(syntax.KindRightBrace, "}")
		in.leftBracket = in.Get(syntax.KindLeftBracket, "[")
		in.rightBracket = in.Get(syntax.KindRightBracket, "]")
		in.doubleQuote = in.Get(syntax.KindDoubleQuote, `"`)
		in.singleQuote = in.Get(syntax.KindSingleQuote, "'")
		in.null = in.Get(syntax.KindNull, "null")
	})
}

// Comma returns the interned handle for ",".
func (in *Interner) Comma() Handle { in.initPunctuation(); return in.comma }

// Colon returns the interned handle for ":".
func (in *Interner) Colon() Handle { in.initPunctuation(); return in.colon }

// LeftBrace returns the interned handle for "{".
func (in *Interner) LeftBrace() Handle { in.initPunctuation(); return in.leftBrace }

// RightBrace returns the interned handle for "}".
func (in *Interner) RightBrace() Handle { in.initPunctuation(); return in.rightBrace }

// LeftBracket returns the interned handle for "[".
func (in *Interner) LeftBracket() Handle { in.initPunctuation(); return in.leftBracket }

// RightBracket returns the interned handle for "]".
func (in *Interner) RightBracket() Handle { in.initPunctuation(); return in.rightBracket }

// DoubleQuote returns the interned handle for `"`.
func (in *Interner) DoubleQuote() Handle { in.initPunctuation(); return in.doubleQuote }

// SingleQuote returns the interned handle for "'".
func (in *Interner) SingleQuote() Handle { in.initPunctuation(); return in.singleQuote }

// Null returns the interned handle for "null".
func (in *Interner) Null() Handle { in.initPunctuation(); return in.null }

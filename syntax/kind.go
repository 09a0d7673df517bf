// Package syntax provides the opaque syntactic tag type shared by the token interner, the green
// tree, and the Format IR's structural node envelopes.
//
// A real deployment of this core would consume a SyntaxKind supplied by an existing CST library
// (spec §6 names it as a consumed interface: "an opaque, cheaply-copyable tag type with a total
// conversion to a numeric id, supplied by the CST library"). This package provides the minimal
// concrete type the bundled front-ends and tests instantiate against, with no assumptions about
// what the numbers mean beyond equality and a human-readable name.
package syntax

import "fmt"

// Kind is an opaque, cheaply-copyable syntactic tag. Front-ends define their own Kind values;
// the core only ever compares them for equality and asks for their numeric id or name.
type Kind uint32

// ID returns the total numeric id of the kind.
func (k Kind) ID() uint32 { return uint32(k) }

// String returns the registered name for k, or a numeric fallback if none was registered.
func (k Kind) String() string {
	if name, ok := names[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint32(k))
}

var names = map[Kind]string{}

// Register associates a human-readable name with a Kind for debugging and error messages.
// Front-ends call this once per Kind at package init time; it is not required for correctness.
func Register(k Kind, name string) {
	names[k] = name
}

// Reserved kinds used internally by the interner's convenience punctuation leaves (spec §4.1).
// Front-ends should not reuse these values for their own syntax kinds; they occupy the top of the
// 32-bit space specifically so an ordinary front-end's small, zero-based Kind enumeration never
// collides with them.
const (
	KindComma Kind = 1<<32 - 1 - iota
	KindColon
	KindLeftBrace
	KindRightBrace
	KindLeftBracket
	KindRightBracket
	KindDoubleQuote
	KindSingleQuote
	KindNull
)

func init() {
	Register(KindComma, "Comma")
	Register(KindColon, "Colon")
	Register(KindLeftBrace, "LeftBrace")
	Register(KindRightBrace, "RightBrace")
	Register(KindLeftBracket, "LeftBracket")
	Register(KindRightBracket, "RightBracket")
	Register(KindDoubleQuote, "DoubleQuote")
	Register(KindSingleQuote, "SingleQuote")
	Register(KindNull, "Null")
}

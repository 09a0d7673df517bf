package intern_test

import (
	"testing"

	"github.com/teleivo/assertive/assert"

	"github.com/loomfmt/core/intern"
	"github.com/loomfmt/core/syntax"
)

var kindLeaf = syntax.Kind(1)

func TestGetReturnsCanonicalHandle(t *testing.T) {
	in := intern.New()
	a := in.Get(kindLeaf, "x")
	b := in.Get(kindLeaf, "x")

	assert.True(t, a == b)
}

func TestGetDistinguishesKindAndText(t *testing.T) {
	in := intern.New()
	other := syntax.Kind(2)

	a := in.Get(kindLeaf, "x")
	b := in.Get(other, "x")
	c := in.Get(kindLeaf, "y")

	assert.True(t, a != b)
	assert.True(t, a != c)
}

func TestHandleAccessors(t *testing.T) {
	in := intern.New()
	h := in.Get(kindLeaf, "hello")

	assert.Equals(t, h.Kind(), kindLeaf)
	assert.Equals(t, h.Text(), "hello")
	assert.Equals(t, h.String(), "hello")
}

func TestPunctuationAccessorsAreInternedAndStable(t *testing.T) {
	in := intern.New()

	assert.Equals(t, in.Comma().Text(), ",")
	assert.Equals(t, in.Colon().Text(), ":")
	assert.Equals(t, in.LeftBrace().Text(), "{")
	assert.Equals(t, in.RightBrace().Text(), "}")
	assert.Equals(t, in.LeftBracket().Text(), "[")
	assert.Equals(t, in.RightBracket().Text(), "]")
	assert.Equals(t, in.DoubleQuote().Text(), `"`)
	assert.Equals(t, in.SingleQuote().Text(), "'")
	assert.Equals(t, in.Null().Text(), "null")

	assert.True(t, in.Comma() == in.Comma())
}

func TestPunctuationMatchesGet(t *testing.T) {
	in := intern.New()

	assert.True(t, in.Comma() == in.Get(syntax.KindComma, ","))
}

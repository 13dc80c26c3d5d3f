package dgparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testTokenize(t *testing.T, text string) ([]Token, *Diagnostic) {
	t.Helper()
	cfg := DefaultConfig()
	kwt := newKeywordTable(cfg.SysNamespacePrefix)
	types := newTypeList()
	return tokenizeLine(cfg, kwt, types, Pos{File: "t", Line: 1}, text, 0, OriginSource)
}

func TestNumericLiteralNarrowestFit(t *testing.T) {
	cases := []struct {
		text string
		kind Kind
	}{
		{"127", KindChar},
		{"128", KindShort},
		{"0xFF", KindShort},
		{"0xFFFFL", KindLong},
		{"0c77", KindChar},
	}
	for _, c := range cases {
		toks, diag := testTokenize(t, c.text)
		assert.Nilf(t, diag, "tokenizing %q", c.text)
		if assert.Len(t, toks, 1, "tokenizing %q", c.text) {
			assert.Equalf(t, c.kind, toks[0].Kind(), "tokenizing %q", c.text)
		}
	}
}

func TestNumericSuffixOverflow(t *testing.T) {
	_, diag := testTokenize(t, "130R")
	assert.NotNil(t, diag, "130R should not fit char")

	toks, diag := testTokenize(t, "127R")
	assert.Nil(t, diag)
	if assert.Len(t, toks, 1) {
		assert.Equal(t, KindChar, toks[0].Kind())
		assert.Equal(t, byte(127), toks[0].Char())
	}
}

func TestLongestMatchOperator(t *testing.T) {
	toks, diag := testTokenize(t, "a<<=b")
	assert.Nil(t, diag)
	if assert.Len(t, toks, 3) {
		assert.Equal(t, KindOperator, toks[1].Kind())
		assert.Equal(t, OpShlAssign, toks[1].Operator())
	}
}

func TestKeywordVsIdentifierBoundary(t *testing.T) {
	toks, diag := testTokenize(t, "iffy")
	assert.Nil(t, diag)
	if assert.Len(t, toks, 1) {
		assert.Equal(t, KindIdentifier, toks[0].Kind())
	}

	toks, diag = testTokenize(t, "if(x)")
	assert.Nil(t, diag)
	if assert.Len(t, toks, 4) {
		assert.Equal(t, KindKeyword, toks[0].Kind())
		assert.Equal(t, KwIf, toks[0].Keyword())
	}
}

func TestStringDoubledQuoteEscape(t *testing.T) {
	toks, diag := testTokenize(t, `"hello ""world"""`)
	assert.Nil(t, diag)
	if assert.Len(t, toks, 1) {
		assert.Equal(t, KindString, toks[0].Kind())
		assert.Equal(t, `hello "world"`, toks[0].Text())
	}
}

func TestRawStringSingleLine(t *testing.T) {
	toks, diag := testTokenize(t, `r"[line1 contents]"`)
	assert.Nil(t, diag)
	if assert.Len(t, toks, 1) {
		assert.Equal(t, KindString, toks[0].Kind())
	}
}

func TestSyntheticTokenMarker(t *testing.T) {
	tok := newIdentifierToken(Pos{File: "t", Line: 1, Column: 0}, "x")
	assert.True(t, tok.Synthetic())

	tok2 := newIdentifierToken(Pos{File: "t", Line: 1, Column: 5}, "x")
	assert.False(t, tok2.Synthetic())
}

func TestRenderRoundTrip(t *testing.T) {
	toks, diag := testTokenize(t, `var x = 5`)
	assert.Nil(t, diag)
	if assert.Len(t, toks, 4) {
		assert.Equal(t, "var", toks[0].Render())
		assert.Equal(t, "x", toks[1].Render())
		assert.Equal(t, "=", toks[2].Render())
		assert.Equal(t, "5R", toks[3].Render())
	}
}

package dgparse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/dungeonlang/dgparse/dgparse"
)

func TestReadExprStopsAtLevelZeroOperator(t *testing.T) {
	sents := wrapBody(t, "a(b,c) == d\n")
	require.Len(t, sents, 1)
	s := sents[0]

	start, end, ok := s.ReadExpr(StopOperator(OpEq))
	require.True(t, ok)
	assert.True(t, s.Ok())
	assert.Equal(t, 0, start)
	// a ( b , c ) == d -> stop token is "==" at index 6
	assert.Equal(t, 6, end)
	assert.Equal(t, 6, s.Cursor())

	assert.True(t, s.GetOperator(OpEq))
	name, ok := s.ReadIdentifier()
	require.True(t, ok)
	assert.Equal(t, "d", name)
}

func TestReadExprWithoutStopsConsumesToEnd(t *testing.T) {
	sents := wrapBody(t, "a(b,c)\n")
	require.Len(t, sents, 1)
	s := sents[0]

	start, end, ok := s.ReadExpr()
	require.True(t, ok)
	assert.Equal(t, 0, start)
	assert.Equal(t, s.Count()+end-start, len(s.Tokens[start:]))
	assert.Equal(t, len(s.Tokens), end)
}

func TestReadExprUnfoundStopSetsStickyError(t *testing.T) {
	sents := wrapBody(t, "a+b\n")
	require.Len(t, sents, 1)
	s := sents[0]

	_, _, ok := s.ReadExpr(StopPunctuator(PnComma))
	assert.False(t, ok)
	assert.False(t, s.Ok())
	assert.NotEmpty(t, s.Err())

	// every subsequent cursor helper is a no-op while the sticky flag is set
	assert.False(t, s.GetOperator(OpAdd))
	// the failed ReadExpr left the cursor on "a"; after clearing, the
	// helpers work again from there.
	s.ClearError()
	assert.True(t, s.Ok())
	name, ok := s.ReadIdentifier()
	assert.True(t, ok)
	assert.Equal(t, "a", name)
	assert.True(t, s.GetOperator(OpAdd))
}

func TestZeroLevelFindSkipsNestedPunctuator(t *testing.T) {
	sents := wrapBody(t, "a(b,c),d\n")
	require.Len(t, sents, 1)
	s := sents[0]

	// the first comma is nested inside (...) at level 1; ZeroLevelFind
	// must skip it and report the level-zero one that follows the ')'.
	idx := s.ZeroLevelFind(PnComma, 0)
	require.GreaterOrEqual(t, idx, 0)
	assert.Equal(t, KindPunctuator, s.Tokens[idx].Kind())
	assert.Equal(t, PnComma, s.Tokens[idx].Punctuator())
	assert.True(t, idx > 4) // past the whole "a(b,c)" span

	assert.Equal(t, -1, s.ZeroLevelFind(PnComma, idx+1))
}

func TestSubSentenceAndConcat(t *testing.T) {
	sents := wrapBody(t, "a+b\n")
	require.Len(t, sents, 1)
	s := sents[0]

	sub := s.SubSentence(0, 1)
	require.Len(t, sub.Tokens, 1)
	assert.Equal(t, "a", sub.Tokens[0].Render())
	assert.Equal(t, 0, sub.Cursor())

	other := s.SubSentence(2, 3)
	sub.Concat(other)
	require.Len(t, sub.Tokens, 2)
	assert.Equal(t, "b", sub.Tokens[1].Render())
}

func TestAddAndInsSyntheticTokens(t *testing.T) {
	sents := wrapBody(t, "a\n")
	require.Len(t, sents, 1)
	s := sents[0]
	require.Len(t, s.Tokens, 1)

	s.AddOperator(OpAssign)
	s.AddIdentifier("b")
	require.Len(t, s.Tokens, 3)
	assert.True(t, s.Tokens[1].Synthetic())
	assert.True(t, s.Tokens[2].Synthetic())
	assert.Equal(t, "b", s.Tokens[2].Render())

	s.InsIdentifier(0, "prefix")
	require.Len(t, s.Tokens, 4)
	assert.Equal(t, "prefix", s.Tokens[0].Render())
	assert.Equal(t, "a", s.Tokens[1].Render())
}

func TestIsPredicatesDoNotAdvanceCursor(t *testing.T) {
	sents := wrapBody(t, "while x\n:while\n")
	require.Len(t, sents, 2)
	s := sents[0]

	assert.True(t, s.IsKeyword(KwWhile, 0))
	assert.Equal(t, 0, s.Cursor())
	assert.True(t, s.IsKind(KindIdentifier, 1))
	assert.Equal(t, 0, s.Cursor())

	assert.True(t, s.GetKeyword(KwWhile))
	assert.Equal(t, 1, s.Cursor())
	name, ok := s.ReadIdentifier()
	require.True(t, ok)
	assert.Equal(t, "x", name)
}

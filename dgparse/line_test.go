package dgparse

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAssembler(t *testing.T, src string) *assembler {
	t.Helper()
	cfg := DefaultConfig()
	kwt := newKeywordTable(cfg.SysNamespacePrefix)
	sc := bufio.NewScanner(strings.NewReader(src))
	return newAssembler(cfg, kwt, "t", sc)
}

func drainLines(t *testing.T, a *assembler) []assembledLine {
	t.Helper()
	var out []assembledLine
	for {
		line, diag, ok := a.Next()
		require.Nil(t, diag)
		if !ok {
			return out
		}
		out = append(out, line)
	}
}

func TestAutoSplitOnParenColonBigraph(t *testing.T) {
	a := newTestAssembler(t, "if(a==1): b=c")
	lines := drainLines(t, a)
	if assert.Len(t, lines, 2) {
		assert.Equal(t, "if(a==1):", lines[0].Text)
		assert.Equal(t, OriginSource, lines[0].Origin)
		assert.Equal(t, " b=c", lines[1].Text)
		assert.Equal(t, OriginSplit, lines[1].Origin)
	}
}

func TestAutoSplitOnColonKeyword(t *testing.T) {
	a := newTestAssembler(t, "main: b=c")
	lines := drainLines(t, a)
	if assert.Len(t, lines, 2) {
		assert.Equal(t, "main:", lines[0].Text)
		assert.Equal(t, OriginSource, lines[0].Origin)
		assert.Equal(t, " b=c", lines[1].Text)
		assert.Equal(t, OriginSplit, lines[1].Origin)
	}
}

func TestTernaryColonIsNotAutoSplit(t *testing.T) {
	a := newTestAssembler(t, "x=cond ? a : b")
	lines := drainLines(t, a)
	if assert.Len(t, lines, 1) {
		assert.Equal(t, "x=cond ? a : b", lines[0].Text)

		toks, diag := testTokenize(t, lines[0].Text)
		assert.Nil(t, diag)
		if assert.Len(t, toks, 7) {
			assert.Equal(t, KindPunctuator, toks[5].Kind())
			assert.Equal(t, PnColon, toks[5].Punctuator())
		}
	}
}

func TestMultilineBackslashJoin(t *testing.T) {
	a := newTestAssembler(t, "a= \\\n  b")
	lines := drainLines(t, a)
	if assert.Len(t, lines, 1) {
		assert.Equal(t, "a=b", lines[0].Text)

		toks, diag := testTokenize(t, lines[0].Text)
		assert.Nil(t, diag)
		if assert.Len(t, toks, 3) {
			assert.Equal(t, "a", toks[0].Render())
			assert.Equal(t, "=", toks[1].Render())
			assert.Equal(t, "b", toks[2].Render())
		}
	}
}

func TestRawStringAcrossLines(t *testing.T) {
	a := newTestAssembler(t, "r\"[ line1\nline2 ]\"")
	lines := drainLines(t, a)
	if assert.Len(t, lines, 1) {
		assert.Contains(t, lines[0].Text, "\n")
	}
}

func TestCommentStripping(t *testing.T) {
	a := newTestAssembler(t, `x=1 // a trailing comment`)
	lines := drainLines(t, a)
	if assert.Len(t, lines, 1) {
		assert.Equal(t, "x=1", lines[0].Text)
	}
}

func TestCommentNotStrippedInsideString(t *testing.T) {
	a := newTestAssembler(t, `x="http://example.com"`)
	lines := drainLines(t, a)
	if assert.Len(t, lines, 1) {
		assert.Equal(t, `x="http://example.com"`, lines[0].Text)
	}
}

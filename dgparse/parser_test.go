package dgparse_test

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/dungeonlang/dgparse/dgparse"
)

func openParser(t *testing.T, src string) *Parser {
	t.Helper()
	sc := bufio.NewScanner(strings.NewReader(src))
	return Open(DefaultConfig(), "t", sc, nil)
}

func getAll(t *testing.T, p *Parser) []*Sentence {
	t.Helper()
	var out []*Sentence
	for {
		s, ok, err := p.Get()
		require.NoError(t, err)
		if !ok {
			return out
		}
		if s != nil {
			out = append(out, s)
		}
	}
}

// wrapBody places body inside a minimal ".implem"/"main:"/":main" shell so
// body-only sentence kinds (Expression, While, Switch, Break, ...) have a
// legal BlockLocal to classify against; the caller gets back only the
// sentences body itself produced.
func wrapBody(t *testing.T, body string) []*Sentence {
	t.Helper()
	p := openParser(t, ".implem\nmain:\n"+body+":main\n")
	sents := getAll(t, p)
	require.True(t, len(sents) >= 3)
	return sents[2 : len(sents)-1]
}

func TestEndToEndVarDeclInPublic(t *testing.T) {
	p := openParser(t, ".public\nvar int x\n")
	p.SetTypeIDs("int")
	sents := getAll(t, p)
	require.Len(t, sents, 2)

	s := sents[1]
	assert.Equal(t, KindVarDecl, s.Kind)
	assert.False(t, s.Static)
	require.Len(t, s.Tokens, 3)
	assert.Equal(t, KindKeyword, s.Tokens[0].Kind())
	assert.Equal(t, KwVar, s.Tokens[0].Keyword())
	assert.Equal(t, KindTypeName, s.Tokens[1].Kind())
	assert.Equal(t, KindIdentifier, s.Tokens[2].Kind())
}

func TestEndToEndStaticVarDeclInPublic(t *testing.T) {
	p := openParser(t, ".public\nstatic var int x\n")
	p.SetTypeIDs("int")
	sents := getAll(t, p)
	require.Len(t, sents, 2)

	s := sents[1]
	assert.Equal(t, KindVarDecl, s.Kind)
	assert.True(t, s.Static)
}

func TestEndToEndSwitchWhenBreakEndSwitch(t *testing.T) {
	sents := wrapBody(t, "switch x; when 1; break; :switch\n")
	require.Len(t, sents, 4)

	assert.Equal(t, KindSwitch, sents[0].Kind)
	assert.Equal(t, KindFirstWhen, sents[1].Kind)

	brk := sents[2]
	assert.Equal(t, KindBreak, brk.Kind)
	assert.False(t, brk.Labels.HasLoopTarget())
	assert.Equal(t, int32(-1), brk.Labels.LoopBase)

	assert.Equal(t, KindEndSwitch, sents[3].Kind)
}

func TestSwitchAndEndSwitchEachPublishAClosedBlock(t *testing.T) {
	p := openParser(t, ".implem\nmain:\nswitch x; when 1; break; :switch\n")
	getAll(t, p)

	// the Switch sentence and the EndSwitch sentence each contribute one
	// closed_blocks entry, and the stack is fully
	// unwound back out of the switch construct to the enclosing Local body.
	closed := p.ClosedBlocks()
	assert.Len(t, closed, 2) // FirstWhen (EndSwitch's own), Switch (deferred)
	assert.Equal(t, BlockLocal, p.CurrentBlock())
}

func TestEndToEndNumericLiteralNarrowestFit(t *testing.T) {
	sents := wrapBody(t, "127\n")
	require.Len(t, sents, 1)
	require.Len(t, sents[0].Tokens, 1)
	assert.Equal(t, KindChar, sents[0].Tokens[0].Kind())
}

func TestStateBackRollsBackAfterFatalDiagnostic(t *testing.T) {
	p := openParser(t, ".implem\nmain:\nwhile x\n:loop\n:while\n")
	getAll2 := func() (*Sentence, bool, error) { return p.Get() }

	s, ok, err := getAll2()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, KindImplemSection, s.Kind)

	s, ok, err = getAll2()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, KindMainDecl, s.Kind)

	s, ok, err = getAll2()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, KindWhile, s.Kind)
	assert.Equal(t, BlockWhile, p.CurrentBlock())

	// :loop only ends a DoLoop, not a While; the stack state must not
	// move on a fatal diagnostic.
	_, _, err = getAll2()
	require.Error(t, err)
	p.StateBack()
	assert.Equal(t, BlockWhile, p.CurrentBlock())

	s, ok, err = getAll2()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, KindEndWhile, s.Kind)
	assert.Equal(t, BlockLocal, p.CurrentBlock())
}

func TestEnqueueDrainsBeforeSource(t *testing.T) {
	p := openParser(t, ".implem\nmain:\nb\n:main\n")

	s, ok, err := p.Get()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, KindImplemSection, s.Kind)

	s, ok, err = p.Get()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, KindMainDecl, s.Kind)

	// enqueuing mid-stream injects ahead of the next source line
	// (insertion buffer outranks source).
	p.Enqueue("a")

	s, ok, err = p.Get()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, KindExpression, s.Kind)
	assert.Equal(t, "a", s.Tokens[0].Render())

	s, ok, err = p.Get()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, KindExpression, s.Kind)
	assert.Equal(t, "b", s.Tokens[0].Render())
}

func TestAppendDrainsAfterSourceEOF(t *testing.T) {
	// the addition buffer only drains once the source reader is
	// exhausted, so appending the closing line
	// lets a driver finish off a body the source left open.
	p := openParser(t, ".implem\nmain:\na\n")
	p.Append(":main")
	sents := getAll(t, p)
	require.Len(t, sents, 4)

	assert.Equal(t, KindExpression, sents[2].Kind)
	assert.Equal(t, "a", sents[2].Tokens[0].Render())
	assert.Equal(t, KindEndMain, sents[3].Kind)
	assert.Equal(t, BlockImplem, p.CurrentBlock())
}

func TestClearClosedBlocks(t *testing.T) {
	p := openParser(t, ".implem\nmain:\nwhile x\n:while\n:main\n")
	getAll(t, p)
	require.NotEmpty(t, p.ClosedBlocks())
	p.ClearClosedBlocks()
	assert.Empty(t, p.ClosedBlocks())
}

func TestLibraryOptionFoundBeforeSections(t *testing.T) {
	p := openParser(t, "set library=true\n.public\nvar int x\n")
	found, err := p.LibraryOptionFound()
	require.NoError(t, err)
	assert.True(t, found)
}

func TestLibraryOptionFoundSectionMarkerWins(t *testing.T) {
	p := openParser(t, ".public\nset library=true\nvar int x\n")
	found, err := p.LibraryOptionFound()
	require.NoError(t, err)
	assert.False(t, found)
}

func TestLibraryOptionFoundThenParsesNormally(t *testing.T) {
	// the pre-scan consumes the whole source, but the lines it read must
	// still surface through the ordinary Get loop afterward, in order and
	// with their line numbers intact.
	p := openParser(t, "set library=true\n.public\nvar int x\n")
	p.SetTypeIDs("int")
	found, err := p.LibraryOptionFound()
	require.NoError(t, err)
	assert.True(t, found)

	sents := getAll(t, p)
	require.Len(t, sents, 3)
	assert.Equal(t, KindSetOption, sents[0].Kind)
	assert.Equal(t, 1, sents[0].Pos.Line)
	assert.Equal(t, KindPublicSection, sents[1].Kind)
	assert.Equal(t, 2, sents[1].Pos.Line)
	assert.Equal(t, KindVarDecl, sents[2].Kind)
	assert.Equal(t, 3, sents[2].Pos.Line)
}

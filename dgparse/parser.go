package dgparse

import (
	"bufio"

	"github.com/dungeonlang/dgparse/internal/lexio"
)

// Parser ties the Line Assembler, Token Recognizer, Sentence Parser,
// Block Classifier and Label Assigner and State Machine into the single
// Get-loop driver a downstream caller repeatedly invokes.
type Parser struct {
	cfg   Config
	kwt   *keywordTable
	asm   *assembler
	sink  Sink
	state *ParserState
	prev  *ParserState

	sysNamespace bool
}

// Open constructs a Parser reading from src under the logical name file,
// reporting fatal diagnostics to sink.
func Open(cfg Config, file string, src LineSource, sink Sink) *Parser {
	cfg = cfg.withDefaults()
	if sink == nil {
		sink = DiscardSink
	}
	kwt := newKeywordTable(cfg.SysNamespacePrefix)
	return &Parser{
		cfg:   cfg,
		kwt:   kwt,
		asm:   newAssembler(cfg, kwt, file, src),
		sink:  sink,
		state: newParserState(),
	}
}

// OpenScanner constructs a Parser over a raw *bufio.Scanner, wrapping it in
// a lexio.FileLineSource so each scanned line is held in a byte arena
// rather than bufio.Scanner's own reused read buffer. Callers that already
// have a LineSource of their own (or a fake for tests) should call Open
// directly instead.
func OpenScanner(cfg Config, file string, sc *bufio.Scanner, sink Sink) *Parser {
	return Open(cfg, file, lexio.NewFileLineSource(sc), sink)
}

// Enqueue pushes a compiler-generated line onto the insertion buffer,
// consumed before the next source or addition line.
func (p *Parser) Enqueue(text string) { p.asm.Enqueue(text) }

// Append pushes a compiler-generated line onto the addition buffer,
// consumed only once the source reader is exhausted.
func (p *Parser) Append(text string) { p.asm.Append(text) }

// SetTypeIDs replaces the known type-name list.
func (p *Parser) SetTypeIDs(csv string) { p.state.SetTypeIDs(csv) }

// LibraryOptionFound pre-scans the source for `set library=true`
// appearing before any of the four top-level section markers, so the
// driver can pick a compilation mode without running the full parser.
// The source is fully buffered in the process and subsequent Get calls
// see exactly the lines this scan consumed, in the same order.
func (p *Parser) LibraryOptionFound() (bool, error) {
	lines, diag := p.asm.bufferSource()
	if diag != nil {
		p.sink.Report(diag)
		return false, diag
	}
	return libraryOptionFound(lines), nil
}

// ClearClosedBlocks empties the closed-block list.
func (p *Parser) ClearClosedBlocks() { p.state.ClearClosedBlocks() }

// ClosedBlocks returns the closed-block list accumulated since the last
// ClearClosedBlocks call.
func (p *Parser) ClosedBlocks() []CodeBlockID { return p.state.ClosedBlocks }

// CurrentBlock returns the code block at the top of the stack.
func (p *Parser) CurrentBlock() CodeBlock { return p.state.top().Block }

// StateBack restores the snapshot taken before the most recent Get call,
// giving the caller single-step rollback after a sentence-level error.
func (p *Parser) StateBack() {
	if p.prev != nil {
		p.state = p.prev
	}
}

// Get produces the next Sentence in source order, or reports false once
// every buffer (insertion, split, source, addition) is exhausted. A fatal
// diagnostic is reported to the sink and returned; the caller typically
// calls StateBack and continues.
func (p *Parser) Get() (*Sentence, bool, error) {
	p.prev = p.state.snapshot()

	line, diag, ok := p.asm.Next()
	if diag != nil {
		p.sink.Report(diag)
		return nil, false, diag
	}
	if !ok {
		return nil, false, nil
	}

	s, diag := parseSentence(p.cfg, p.kwt, p.state.Types, line.Pos, line.Text, line.CumulLen, p.CurrentBlock(), line.Origin)
	if diag != nil {
		p.sink.Report(diag)
		return nil, true, diag
	}

	if s.Kind != KindEmpty {
		if diag := classify(p.cfg, p.state, s); diag != nil {
			p.sink.Report(diag)
			return nil, true, diag
		}
	}

	return s, true, nil
}

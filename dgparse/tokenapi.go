package dgparse

import "fmt"

// Ok reports whether the sticky per-sentence error flag is clear. Once
// set, the consuming helpers below (Get*, Read*, ReadExpr) return false
// without moving the cursor until ClearError is called; the Is*
// predicates and the structural helpers do not consult the flag.
func (s *Sentence) Ok() bool { return !s.failed }

// Err returns the message attached when the sticky error flag was set, or
// the empty string if it is clear.
func (s *Sentence) Err() string { return s.failMsg }

// ClearError resets the sticky error flag so the caller may attempt a
// different parse path over the same tokens
func (s *Sentence) ClearError() {
	s.failed = false
	s.failMsg = ""
}

// Cursor returns the current read position.
func (s *Sentence) Cursor() int { return s.cursor }

func (s *Sentence) fail(format string, args ...interface{}) {
	if s.failed {
		return
	}
	s.failed = true
	s.failMsg = fmt.Sprintf(format, args...)
}

// at returns the token at cursor+offset and whether that index is valid;
// it never advances the cursor
func (s *Sentence) at(offset int) (Token, bool) {
	i := s.cursor + offset
	if i < 0 || i >= len(s.Tokens) {
		return Token{}, false
	}
	return s.Tokens[i], true
}

// IsKeyword tests the token at cursor+offset without advancing.
func (s *Sentence) IsKeyword(kw Keyword, offset int) bool {
	t, ok := s.at(offset)
	return ok && t.Kind() == KindKeyword && t.Keyword() == kw
}

// IsOperator tests the token at cursor+offset without advancing.
func (s *Sentence) IsOperator(op Operator, offset int) bool {
	t, ok := s.at(offset)
	return ok && t.Kind() == KindOperator && t.Operator() == op
}

// IsPunctuator tests the token at cursor+offset without advancing.
func (s *Sentence) IsPunctuator(pn Punctuator, offset int) bool {
	t, ok := s.at(offset)
	return ok && t.Kind() == KindPunctuator && t.Punctuator() == pn
}

// IsKind tests the token kind at cursor+offset without advancing.
func (s *Sentence) IsKind(k Kind, offset int) bool {
	t, ok := s.at(offset)
	return ok && t.Kind() == k
}

// GetKeyword advances the cursor past a matching keyword, or sets the
// sticky error flag and returns false
func (s *Sentence) GetKeyword(kw Keyword) bool {
	if !s.Ok() {
		return false
	}
	if !s.IsKeyword(kw, 0) {
		s.fail("expected keyword %v, got %v", kw, s.describeCursor())
		return false
	}
	s.cursor++
	return true
}

// GetOperator advances the cursor past a matching operator, or sets the
// sticky error flag and returns false.
func (s *Sentence) GetOperator(op Operator) bool {
	if !s.Ok() {
		return false
	}
	if !s.IsOperator(op, 0) {
		s.fail("expected operator %v, got %v", op, s.describeCursor())
		return false
	}
	s.cursor++
	return true
}

// GetPunctuator advances the cursor past a matching punctuator, or sets
// the sticky error flag and returns false.
func (s *Sentence) GetPunctuator(pn Punctuator) bool {
	if !s.Ok() {
		return false
	}
	if !s.IsPunctuator(pn, 0) {
		s.fail("expected punctuator %c, got %v", byte(pn), s.describeCursor())
		return false
	}
	s.cursor++
	return true
}

func (s *Sentence) describeCursor() string {
	t, ok := s.at(0)
	if !ok {
		return "end of sentence"
	}
	return t.String()
}

// ReadIdentifier pulls an Identifier token's text and advances, or sets
// the sticky error flag.
func (s *Sentence) ReadIdentifier() (string, bool) {
	if !s.Ok() {
		return "", false
	}
	t, ok := s.at(0)
	if !ok || t.Kind() != KindIdentifier {
		s.fail("expected identifier, got %v", s.describeCursor())
		return "", false
	}
	s.cursor++
	return t.Text(), true
}

// ReadString pulls a String token's value and advances, or sets the
// sticky error flag.
func (s *Sentence) ReadString() (string, bool) {
	if !s.Ok() {
		return "", false
	}
	t, ok := s.at(0)
	if !ok || t.Kind() != KindString {
		s.fail("expected string, got %v", s.describeCursor())
		return "", false
	}
	s.cursor++
	return t.Text(), true
}

// ReadInt pulls an Integer token's value and advances, or sets the sticky
// error flag.
func (s *Sentence) ReadInt() (int32, bool) {
	if !s.Ok() {
		return 0, false
	}
	t, ok := s.at(0)
	if !ok || t.Kind() != KindInteger {
		s.fail("expected int, got %v", s.describeCursor())
		return 0, false
	}
	s.cursor++
	return t.Int(), true
}

// Count returns the number of tokens remaining from the cursor to the end
// of the sentence.
func (s *Sentence) Count() int {
	n := len(s.Tokens) - s.cursor
	if n < 0 {
		return 0
	}
	return n
}

func isOpenPunct(t Token) bool {
	if t.Kind() != KindPunctuator {
		return false
	}
	switch t.Punctuator() {
	case PnLParen, PnLBracket, PnLBrace:
		return true
	}
	return false
}

func isClosePunct(t Token) bool {
	if t.Kind() != KindPunctuator {
		return false
	}
	switch t.Punctuator() {
	case PnRParen, PnRBracket, PnRBrace:
		return true
	}
	return false
}

// stopMatch describes one possible stop condition for ReadExpr: at most
// one of kw/op/pn is meaningful, selected by kind.
type stopMatch struct {
	kind Kind
	kw   Keyword
	op   Operator
	pn   Punctuator
}

// StopKeyword builds a ReadExpr stop condition matching a keyword.
func StopKeyword(kw Keyword) stopMatch { return stopMatch{kind: KindKeyword, kw: kw} }

// StopOperator builds a ReadExpr stop condition matching an operator.
func StopOperator(op Operator) stopMatch { return stopMatch{kind: KindOperator, op: op} }

// StopPunctuator builds a ReadExpr stop condition matching a punctuator.
func StopPunctuator(pn Punctuator) stopMatch { return stopMatch{kind: KindPunctuator, pn: pn} }

func (m stopMatch) matches(t Token) bool {
	if t.Kind() != m.kind {
		return false
	}
	switch m.kind {
	case KindKeyword:
		return t.Keyword() == m.kw
	case KindOperator:
		return t.Operator() == m.op
	case KindPunctuator:
		return t.Punctuator() == m.pn
	default:
		return false
	}
}

// ReadExpr consumes tokens from the cursor until a level-zero occurrence
// of one of stops (levels tracked over ()[]{}), returning the half-open
// [start,end) index range and advancing the cursor to end. With no stops,
// it consumes to end-of-sentence. An empty range or an unfound stop sets
// the sticky error flag
func (s *Sentence) ReadExpr(stops ...stopMatch) (start, end int, ok bool) {
	if !s.Ok() {
		return 0, 0, false
	}
	start = s.cursor
	level := 0
	i := start
	for i < len(s.Tokens) {
		t := s.Tokens[i]
		if level == 0 {
			for _, m := range stops {
				if m.matches(t) {
					goto found
				}
			}
		}
		if isOpenPunct(t) {
			level++
		} else if isClosePunct(t) {
			level--
		}
		i++
	}
	if len(stops) > 0 {
		s.fail("expected expression terminator, ran past end of sentence")
		return 0, 0, false
	}
found:
	if i == start {
		s.fail("expected expression, found none")
		return 0, 0, false
	}
	s.cursor = i
	return start, i, true
}

// SubSentence copies the token window [start,end) into a fresh Sentence
// with its own cursor reset to zero
func (s *Sentence) SubSentence(start, end int) *Sentence {
	toks := append([]Token(nil), s.Tokens[start:end]...)
	return &Sentence{Pos: s.Pos, Kind: s.Kind, Tokens: toks, Origin: s.Origin}
}

// Concat appends other's tokens to s.
func (s *Sentence) Concat(other *Sentence) {
	s.Tokens = append(s.Tokens, other.Tokens...)
}

// lastPos returns the position to stamp onto a synthetic token: the last
// existing token's position with Column forced to 0, the agreed synthetic
// marker
func (s *Sentence) lastPos() Pos {
	pos := s.Pos
	if n := len(s.Tokens); n > 0 {
		pos = s.Tokens[n-1].Pos()
	}
	pos.Column = 0
	return pos
}

// AddIdentifier appends a synthetic Identifier token.
func (s *Sentence) AddIdentifier(name string) {
	s.Tokens = append(s.Tokens, newIdentifierToken(s.lastPos(), name))
}

// AddOperator appends a synthetic Operator token.
func (s *Sentence) AddOperator(op Operator) {
	s.Tokens = append(s.Tokens, newOperatorToken(s.lastPos(), op))
}

// AddPunctuator appends a synthetic Punctuator token.
func (s *Sentence) AddPunctuator(pn Punctuator) {
	s.Tokens = append(s.Tokens, newPunctuatorToken(s.lastPos(), pn))
}

// InsIdentifier inserts a synthetic Identifier token at index at.
func (s *Sentence) InsIdentifier(at int, name string) {
	s.insert(at, newIdentifierToken(s.lastPos(), name))
}

// InsOperator inserts a synthetic Operator token at index at.
func (s *Sentence) InsOperator(at int, op Operator) {
	s.insert(at, newOperatorToken(s.lastPos(), op))
}

func (s *Sentence) insert(at int, t Token) {
	s.Tokens = append(s.Tokens, Token{})
	copy(s.Tokens[at+1:], s.Tokens[at:])
	s.Tokens[at] = t
}

// ZeroLevelFind returns the first index at or after from of a token
// matching pn that sits outside any nested ()[]{} pair, or -1 if none
// exists
func (s *Sentence) ZeroLevelFind(pn Punctuator, from int) int {
	level := 0
	for i := from; i < len(s.Tokens); i++ {
		t := s.Tokens[i]
		if level == 0 && t.Kind() == KindPunctuator && t.Punctuator() == pn {
			return i
		}
		if isOpenPunct(t) {
			level++
		} else if isClosePunct(t) {
			level--
		}
	}
	return -1
}

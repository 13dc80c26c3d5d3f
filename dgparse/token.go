package dgparse

import "fmt"

// Kind discriminates the tagged cases of a Token.
type Kind int

// Token kinds, one per case of the tagged union described by the language
// grammar.
const (
	KindInvalid Kind = iota
	KindKeyword
	KindOperator
	KindPunctuator
	KindTypeName
	KindIdentifier
	KindBoolean
	KindChar
	KindShort
	KindInteger
	KindLong
	KindFloat
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindKeyword:
		return "Keyword"
	case KindOperator:
		return "Operator"
	case KindPunctuator:
		return "Punctuator"
	case KindTypeName:
		return "TypeName"
	case KindIdentifier:
		return "Identifier"
	case KindBoolean:
		return "Boolean"
	case KindChar:
		return "Char"
	case KindShort:
		return "Short"
	case KindInteger:
		return "Integer"
	case KindLong:
		return "Long"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	default:
		return "Invalid"
	}
}

// Pos holds the source coordinates of a token. Column is the byte offset in
// the assembled logical line; for a token from a split fragment it is
// reconstructed to the offset in the original, unsplit line. A token that
// follows a line join carries the first joined line's number and its offset
// in the joined text.
type Pos struct {
	File   string
	Line   int // 1-based
	Column int // 0-based; 0 is also the synthetic-token marker, see Token.Synthetic
}

func (pos Pos) String() string {
	return fmt.Sprintf("%s:%d:%d", pos.File, pos.Line, pos.Column)
}

// Token is an immutable, tagged lexical unit carrying its source
// coordinates. Once constructed a Token's identity never changes in place;
// downstream code that wants to "edit" a token replaces it wholesale (see
// the SubSentence / concat / insert helpers in tokenapi.go).
type Token struct {
	pos Pos
	kind Kind

	kw Keyword
	op Operator
	pn Punctuator

	text string // TypeName, Identifier, String payload
	b    bool
	ch   byte
	i16  int16
	i32  int32
	i64  int64
	f64  float64
}

// Pos returns the token's source coordinates.
func (t Token) Pos() Pos { return t.pos }

// Kind returns the token's tagged case.
func (t Token) Kind() Kind { return t.kind }

// Synthetic reports whether the token carries the synthetic-position
// marker, column 0. Tokens injected by the Add*/Ins* helpers always carry
// it; a token scanned from the very first column of a line carries it too.
func (t Token) Synthetic() bool { return t.pos.Column == 0 }

// Keyword returns the token's keyword value; only meaningful if Kind() ==
// KindKeyword.
func (t Token) Keyword() Keyword { return t.kw }

// Operator returns the token's operator value; only meaningful if Kind()
// == KindOperator.
func (t Token) Operator() Operator { return t.op }

// Punctuator returns the token's punctuator value; only meaningful if
// Kind() == KindPunctuator.
func (t Token) Punctuator() Punctuator { return t.pn }

// Text returns the token's string payload for KindTypeName, KindIdentifier
// and KindString tokens.
func (t Token) Text() string { return t.text }

// Bool returns the token's boolean payload for KindBoolean tokens.
func (t Token) Bool() bool { return t.b }

// Char returns the token's byte payload for KindChar tokens.
func (t Token) Char() byte { return t.ch }

// Short returns the token's int16 payload for KindShort tokens.
func (t Token) Short() int16 { return t.i16 }

// Int returns the token's int32 payload for KindInteger tokens.
func (t Token) Int() int32 { return t.i32 }

// Long returns the token's int64 payload for KindLong tokens.
func (t Token) Long() int64 { return t.i64 }

// Float returns the token's float64 payload for KindFloat tokens.
func (t Token) Float() float64 { return t.f64 }

// Constructors. Each builds a fully formed, immutable Token value.

func newKeywordToken(pos Pos, kw Keyword) Token {
	return Token{pos: pos, kind: KindKeyword, kw: kw}
}

func newOperatorToken(pos Pos, op Operator) Token {
	return Token{pos: pos, kind: KindOperator, op: op}
}

func newPunctuatorToken(pos Pos, pn Punctuator) Token {
	return Token{pos: pos, kind: KindPunctuator, pn: pn}
}

func newTypeNameToken(pos Pos, name string) Token {
	return Token{pos: pos, kind: KindTypeName, text: name}
}

func newIdentifierToken(pos Pos, name string) Token {
	return Token{pos: pos, kind: KindIdentifier, text: name}
}

func newBooleanToken(pos Pos, b bool) Token {
	return Token{pos: pos, kind: KindBoolean, b: b}
}

func newCharToken(pos Pos, c byte) Token {
	return Token{pos: pos, kind: KindChar, ch: c}
}

func newShortToken(pos Pos, v int16) Token {
	return Token{pos: pos, kind: KindShort, i16: v}
}

func newIntegerToken(pos Pos, v int32) Token {
	return Token{pos: pos, kind: KindInteger, i32: v}
}

func newLongToken(pos Pos, v int64) Token {
	return Token{pos: pos, kind: KindLong, i64: v}
}

func newFloatToken(pos Pos, v float64) Token {
	return Token{pos: pos, kind: KindFloat, f64: v}
}

func newStringToken(pos Pos, s string) Token {
	return Token{pos: pos, kind: KindString, text: s}
}

// Render produces a textual form of the token suitable for round-tripping
// through the tokenizer again (property 6 of the testable-properties
// table): whitespace-insensitive re-tokenization equivalence, not a
// byte-exact reproduction of the source.
func (t Token) Render() string {
	switch t.kind {
	case KindKeyword:
		return t.kw.String()
	case KindOperator:
		return t.op.String()
	case KindPunctuator:
		return string(t.pn)
	case KindTypeName, KindIdentifier:
		return t.text
	case KindBoolean:
		if t.b {
			return "true"
		}
		return "false"
	case KindChar:
		return fmt.Sprintf("%dR", t.ch)
	case KindShort:
		return fmt.Sprintf("%dS", t.i16)
	case KindInteger:
		return fmt.Sprintf("%dN", t.i32)
	case KindLong:
		return fmt.Sprintf("%dL", t.i64)
	case KindFloat:
		s := fmt.Sprintf("%g", t.f64)
		for i := 0; i < len(s); i++ {
			if s[i] == '.' || s[i] == 'e' {
				return s
			}
		}
		return s + ".0"
	case KindString:
		return `"` + escapeString(t.text) + `"`
	default:
		return ""
	}
}

func (t Token) String() string {
	return fmt.Sprintf("%v(%s)@%v", t.kind, t.Render(), t.pos)
}

func escapeString(s string) string {
	out := make([]byte, 0, len(s)+2)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			out = append(out, '"', '"')
		case '\\':
			out = append(out, '\\', '\\')
		case '\n':
			out = append(out, '\\', 'n')
		case '\t':
			out = append(out, '\\', 't')
		default:
			out = append(out, c)
		}
	}
	return string(out)
}

package dgparse

import "strings"

// scanRawString recognizes the r"[ ... ]" raw-string form:
// everything between the opener and closer is taken literally, with no
// escape processing, so the recognizer itself never fails on a backslash.
// It returns ok=false (not a diagnostic) when text[at] isn't actually the
// start of a raw string, so the caller falls through to ordinary
// identifier/keyword recognition for a plain "r" identifier.
//
// By the time this runs, the Line Assembler (C1) has already joined a
// raw string spanning multiple source lines into one logical line with
// embedded '\n' bytes, so a single-line scan for the closer suffices here.
func scanRawString(tokPos Pos, text string, at int) (Token, int, bool, *Diagnostic) {
	if at+2 >= len(text) || text[at] != 'r' || text[at+1] != '"' || text[at+2] != '[' {
		return Token{}, at, false, nil
	}
	content := at + 3
	end := strings.Index(text[content:], "]\"")
	if end < 0 {
		return Token{}, len(text), true, newDiag(ErrRawStringOpenAtEOF, tokPos, "raw string not closed before end of line")
	}
	closeAt := content + end
	return newStringToken(tokPos, text[content:closeAt]), closeAt + 2, true, nil
}

// scanString recognizes a double-quoted string literal with backslash
// escapes and a doubled `""` for an embedded quote
func scanString(cfg Config, tokPos Pos, text string, at int) (Token, int, *Diagnostic) {
	var sb strings.Builder
	i := at + 1
	for {
		if i >= len(text) {
			return Token{}, i, newDiag(ErrUnterminatedString, tokPos, "string literal not closed before end of line")
		}
		c := text[i]
		if c == '"' {
			if i+1 < len(text) && text[i+1] == '"' {
				sb.WriteByte('"')
				i += 2
				continue
			}
			i++
			break
		}
		if c == '\\' {
			r, next, diag := scanEscape(tokPos, text, i)
			if diag != nil {
				return Token{}, next, diag
			}
			sb.WriteByte(r)
			i = next
			continue
		}
		sb.WriteByte(c)
		i++
		if sb.Len() > cfg.MaxStringLen {
			return Token{}, i, newDiag(ErrStringTooLong, tokPos, "string literal exceeds maximum length %d", cfg.MaxStringLen)
		}
	}
	return newStringToken(tokPos, sb.String()), i, nil
}

// scanChar recognizes a single-quoted character literal, accepting the
// same escapes as a string literal
func scanChar(tokPos Pos, text string, at int) (Token, int, *Diagnostic) {
	i := at + 1
	if i >= len(text) {
		return Token{}, i, newDiag(ErrUnterminatedString, tokPos, "char literal not closed before end of line")
	}
	var ch byte
	if text[i] == '\\' {
		r, next, diag := scanEscape(tokPos, text, i)
		if diag != nil {
			return Token{}, next, diag
		}
		ch = r
		i = next
	} else {
		ch = text[i]
		i++
	}
	if i >= len(text) || text[i] != '\'' {
		return Token{}, i, newDiag(ErrUnterminatedString, tokPos, "char literal not closed before end of line")
	}
	return newCharToken(tokPos, ch), i + 1, nil
}

// scanEscape decodes one backslash escape starting at text[i] (text[i] ==
// '\\'), returning the decoded byte and the index just past the escape.
func scanEscape(tokPos Pos, text string, i int) (byte, int, *Diagnostic) {
	if i+1 >= len(text) {
		return 0, i + 1, newDiag(ErrUnknownEscape, tokPos, "dangling escape at end of line")
	}
	switch text[i+1] {
	case 'a':
		return '\a', i + 2, nil
	case 'b':
		return '\b', i + 2, nil
	case 'f':
		return '\f', i + 2, nil
	case 'n':
		return '\n', i + 2, nil
	case 'r':
		return '\r', i + 2, nil
	case 't':
		return '\t', i + 2, nil
	case 'v':
		return '\v', i + 2, nil
	case '\'':
		return '\'', i + 2, nil
	case '"':
		return '"', i + 2, nil
	case '\\':
		return '\\', i + 2, nil
	case 'x':
		if i+3 >= len(text) {
			return 0, i + 2, newDiag(ErrBadHexNibble, tokPos, "incomplete \\x escape")
		}
		hi, ok1 := hexNibble(text[i+2])
		lo, ok2 := hexNibble(text[i+3])
		if !ok1 || !ok2 {
			return 0, i + 4, newDiag(ErrBadHexNibble, tokPos, "invalid hex digit in \\x escape")
		}
		return hi<<4 | lo, i + 4, nil
	default:
		return 0, i + 2, newDiag(ErrUnknownEscape, tokPos, "unknown escape \\%c", text[i+1])
	}
}

func hexNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

package dgparse

import "strings"

// tokenizeLine implements the Token Recognizer (C2) driven to exhaustion
// over one already-assembled logical line, producing the full token list
// consumed by the Sentence Parser (C3).
func tokenizeLine(cfg Config, kwt *keywordTable, types *typeList, pos Pos, text string, cumulLen int, origin Origin) ([]Token, *Diagnostic) {
	var toks []Token
	at := 0
	sysAllowed := origin == OriginInsertion || origin == OriginAddition
	for at < len(text) {
		for at < len(text) && (text[at] == ' ' || text[at] == '\t') {
			at++
		}
		if at >= len(text) {
			break
		}
		tok, end, diag := nextToken(cfg, kwt, types, pos, text, at, cumulLen, sysAllowed)
		if diag != nil {
			return nil, diag
		}
		toks = append(toks, tok)
		if end <= at {
			end = at + 1
		}
		at = end
	}
	return toks, nil
}

// nextToken recognizes exactly one token starting at text[at], dispatching
// by the first non-space byte.
func nextToken(cfg Config, kwt *keywordTable, types *typeList, pos Pos, text string, at int, cumulLen int, sysAllowed bool) (Token, int, *Diagnostic) {
	tokPos := Pos{File: pos.File, Line: pos.Line, Column: cumulLen + at}
	c := text[at]

	switch {
	case isDigit(c):
		return scanNumber(tokPos, text, at)

	case isLetter(c) || c == '_' || c == '$':
		if c == 'r' {
			if tok, end, ok, diag := scanRawString(tokPos, text, at); ok || diag != nil {
				return tok, end, diag
			}
		}
		return scanWordlike(cfg, kwt, types, tokPos, text, at, sysAllowed)

	case c == '"':
		return scanString(cfg, tokPos, text, at)

	case c == '\'':
		return scanChar(tokPos, text, at)

	case c == '.' || c == ':':
		if tok, end, ok := scanKeywordAt(kwt, tokPos, text, at, sysAllowed); ok {
			return tok, end, nil
		}
		return scanOperatorOrPunctuator(tokPos, text, at)

	default:
		return scanOperatorOrPunctuator(tokPos, text, at)
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
func isIdentByte(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '_' || c == '$'
}

// scanKeywordAt tries the longest keyword spelling starting at at. A
// spelling that ends in an identifier byte must be followed by a
// non-identifier byte; one ending in ':' (such as "main:") needs no
// boundary.
func scanKeywordAt(kwt *keywordTable, tokPos Pos, text string, at int, sysAllowed bool) (Token, int, bool) {
	best := -1
	var bestKw Keyword
	for spelling, kw := range kwt.bySpelling {
		if !strings.HasPrefix(text[at:], spelling) {
			continue
		}
		end := at + len(spelling)
		if end < len(text) && isIdentByte(text[end]) && isIdentByte(spelling[len(spelling)-1]) {
			continue // not a boundary match
		}
		if len(spelling) > best {
			if isSysKeyword(kw) && !sysAllowed {
				continue
			}
			best = len(spelling)
			bestKw = kw
		}
	}
	if best < 0 {
		return Token{}, at, false
	}
	return newKeywordToken(tokPos, bestKw), at + best, true
}

func isSysKeyword(kw Keyword) bool {
	return kw == KwSysXlvset || kw == KwSysInitVar
}

// scanWordlike recognizes a keyword, else a type name, else a boolean,
// else a plain identifier, starting at a letter/_/$ byte.
func scanWordlike(cfg Config, kwt *keywordTable, types *typeList, tokPos Pos, text string, at int, sysAllowed bool) (Token, int, *Diagnostic) {
	if tok, end, ok := scanKeywordAt(kwt, tokPos, text, at, sysAllowed); ok {
		return tok, end, nil
	}

	end := at
	for end < len(text) && isIdentByte(text[end]) {
		end++
	}
	word := text[at:end]

	if types.contains(word) {
		return newTypeNameToken(tokPos, word), end, nil
	}
	if word == "true" {
		return newBooleanToken(tokPos, true), end, nil
	}
	if word == "false" {
		return newBooleanToken(tokPos, false), end, nil
	}

	return scanIdentifier(cfg, tokPos, word, end, sysAllowed)
}

func scanIdentifier(cfg Config, tokPos Pos, word string, end int, sysAllowed bool) (Token, int, *Diagnostic) {
	if len(word) == 0 {
		return Token{}, end, newDiag(ErrUnclassifiedByte, tokPos, "unclassified byte")
	}
	if isDigit(word[0]) {
		return Token{}, end, newDiag(ErrIdentifierStartsWithDigit, tokPos, "identifier %q starts with a digit", word)
	}
	allDigits := true
	for i := 0; i < len(word); i++ {
		if !isDigit(word[i]) {
			allDigits = false
			break
		}
	}
	if allDigits {
		return Token{}, end, newDiag(ErrIdentifierStartsWithDigit, tokPos, "identifier %q has no non-digit byte", word)
	}
	if len(word) > cfg.MaxIdentifierLen {
		return Token{}, end, newDiag(ErrIdentifierTooLong, tokPos, "identifier %q exceeds maximum length %d", word, cfg.MaxIdentifierLen)
	}
	if strings.Contains(word, cfg.SysNamespacePrefix) && !sysAllowed {
		return Token{}, end, newDiag(ErrSysNamespaceForbidden, tokPos, "identifier %q uses the reserved system-namespace prefix", word)
	}
	return newIdentifierToken(tokPos, word), end, nil
}

// scanOperatorOrPunctuator tries the operator table (longest spelling
// first, per declared order) then the punctuator set.
func scanOperatorOrPunctuator(tokPos Pos, text string, at int) (Token, int, *Diagnostic) {
	for _, e := range opSpellings {
		if strings.HasPrefix(text[at:], e.s) {
			return newOperatorToken(tokPos, e.op), at + len(e.s), nil
		}
	}
	if isPunctuatorByte(text[at]) {
		return newPunctuatorToken(tokPos, Punctuator(text[at])), at + 1, nil
	}
	end := at
	for end < len(text) && text[end] != ' ' {
		end++
	}
	return Token{}, end, newDiag(ErrUnclassifiedByte, tokPos, "unclassified byte sequence %q", text[at:end])
}

// scanNumber implements numeric-literal parsing: base prefixes,
// narrowest-fit integer type absent a suffix, forced type with a suffix,
// and fallback to a float literal when a '.' or exponent is present.
func scanNumber(tokPos Pos, text string, at int) (Token, int, *Diagnostic) {
	start := at
	base := 10
	digitsStart := at

	if at+1 < len(text) && text[at] == '0' && (text[at+1] == 'c') {
		base = 8
		digitsStart = at + 2
	} else if at+1 < len(text) && text[at] == '0' && (text[at+1] == 'x' || text[at+1] == 'X') {
		base = 16
		digitsStart = at + 2
	}

	end := digitsStart
	for end < len(text) && isBaseDigit(text[end], base) {
		end++
	}

	// float form: decimal point or exponent, only for base-10 literals.
	if base == 10 {
		floatEnd := end
		isFloat := false
		if floatEnd < len(text) && text[floatEnd] == '.' && floatEnd+1 < len(text) && isDigit(text[floatEnd+1]) {
			isFloat = true
			floatEnd++
			for floatEnd < len(text) && isDigit(text[floatEnd]) {
				floatEnd++
			}
		}
		if floatEnd < len(text) && (text[floatEnd] == 'e' || text[floatEnd] == 'E') {
			expEnd := floatEnd + 1
			if expEnd < len(text) && (text[expEnd] == '+' || text[expEnd] == '-') {
				expEnd++
			}
			if expEnd < len(text) && isDigit(text[expEnd]) {
				isFloat = true
				for expEnd < len(text) && isDigit(text[expEnd]) {
					expEnd++
				}
				floatEnd = expEnd
			}
		}
		if isFloat {
			f := parseFloat(text[start:floatEnd])
			return newFloatToken(tokPos, f), floatEnd, nil
		}
	}

	value := parseUint(text[digitsStart:end], base)

	var suffix byte
	if end < len(text) {
		switch text[end] {
		case 'R', 'S', 'N', 'L':
			suffix = text[end]
			end++
		}
	}

	switch suffix {
	case 'R':
		if value > 127 {
			return Token{}, end, newDiag(ErrNumericOverflow, tokPos, "%d does not fit char", value)
		}
		return newCharToken(tokPos, byte(value)), end, nil
	case 'S':
		if value > 32767 {
			return Token{}, end, newDiag(ErrNumericOverflow, tokPos, "%d does not fit short", value)
		}
		return newShortToken(tokPos, int16(value)), end, nil
	case 'N':
		if value > 2147483647 {
			return Token{}, end, newDiag(ErrNumericOverflow, tokPos, "%d does not fit int", value)
		}
		return newIntegerToken(tokPos, int32(value)), end, nil
	case 'L':
		return newLongToken(tokPos, int64(value)), end, nil
	}

	switch {
	case value <= 127:
		return newCharToken(tokPos, byte(value)), end, nil
	case value <= 32767:
		return newShortToken(tokPos, int16(value)), end, nil
	case value <= 2147483647:
		return newIntegerToken(tokPos, int32(value)), end, nil
	default:
		return newLongToken(tokPos, int64(value)), end, nil
	}
}

func isBaseDigit(c byte, base int) bool {
	switch base {
	case 8:
		return c >= '0' && c <= '7'
	case 16:
		return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
	default:
		return isDigit(c)
	}
}

func parseUint(digits string, base int) uint64 {
	var v uint64
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		var d uint64
		switch {
		case c >= '0' && c <= '9':
			d = uint64(c - '0')
		case c >= 'a' && c <= 'f':
			d = uint64(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = uint64(c-'A') + 10
		}
		v = v*uint64(base) + d
	}
	return v
}

func parseFloat(s string) float64 {
	var intPart, fracPart float64
	var fracDiv float64 = 1
	var exp int
	expSign := 1
	i := 0
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	for i < len(s) && isDigit(s[i]) {
		intPart = intPart*10 + float64(s[i]-'0')
		i++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			fracPart = fracPart*10 + float64(s[i]-'0')
			fracDiv *= 10
			i++
		}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			if s[i] == '-' {
				expSign = -1
			}
			i++
		}
		for i < len(s) && isDigit(s[i]) {
			exp = exp*10 + int(s[i]-'0')
			i++
		}
	}
	v := intPart + fracPart/fracDiv
	if neg {
		v = -v
	}
	for e := 0; e < exp; e++ {
		if expSign < 0 {
			v /= 10
		} else {
			v *= 10
		}
	}
	return v
}

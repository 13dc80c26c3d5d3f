package dgparse

// Labels holds the five label fields a classified sentence carries for
// downstream branch/jump code generation
type Labels struct {
	Base     uint16
	Sub      uint16
	BlockID  CodeBlockID
	LoopBase int32 // -1 when no enclosing loop exists
	LoopID   CodeBlockID
}

// HasLoopTarget reports whether the sentence resolved to an enclosing
// loop; false for break/continue detached from any loop, in which case
// downstream code must diagnose the misuse.
func (l Labels) HasLoopTarget() bool { return l.LoopBase >= 0 }

// Sentence is one logical source statement after line assembly,
// tokenization and classification
type Sentence struct {
	Pos    Pos
	Kind   SentenceKind
	Tokens []Token

	Static bool
	Let    bool
	Init   bool

	Labels Labels
	Origin Origin

	cursor int
	failed bool
	failMsg string
}

// Modifiers reports which of the three leading modifiers are set:
// static, let, init.
func (s *Sentence) Modifiers() (static, let, init bool) {
	return s.Static, s.Let, s.Init
}

// parseSentence implements the Sentence Parser (C3): consume leading
// modifiers, tokenize the remainder, and infer the sentence kind.
func parseSentence(cfg Config, kwt *keywordTable, types *typeList, pos Pos, text string, cumulLen int, currentBlock CodeBlock, origin Origin) (*Sentence, *Diagnostic) {
	if isBlankStatement(text) {
		return &Sentence{Pos: pos, Kind: KindEmpty, Origin: origin}, nil
	}

	toks, diag := tokenizeLine(cfg, kwt, types, pos, text, cumulLen, origin)
	if diag != nil {
		return nil, diag
	}

	s := &Sentence{Pos: pos, Origin: origin}

	// consume leading modifiers
	i := 0
	for i < len(toks) && toks[i].Kind() == KindKeyword && sentenceModifierKeywords[toks[i].Keyword()] {
		switch toks[i].Keyword() {
		case KwStatic:
			s.Static = true
		case KwLet:
			s.Let = true
		case KwInit:
			s.Init = true
		}
		i++
	}
	rest := toks[i:]

	// drop a single trailing splitter punctuator, retained during lexing
	// only to preserve column indices
	if n := len(rest); n > 0 && rest[n-1].Kind() == KindPunctuator && rest[n-1].Punctuator() == PnSplitter {
		rest = rest[:n-1]
	}

	if len(rest) == 0 {
		s.Kind = KindEmpty
		s.Tokens = rest
		return s, nil
	}

	head := rest[0]
	switch head.Kind() {
	case KindKeyword:
		if nonHeadKeywords[head.Keyword()] {
			return nil, newDiag(ErrUnexpectedKeyword, head.Pos(), "unexpected keyword %v here", head.Keyword())
		}
		kind, ok := headKeywordKind[head.Keyword()]
		if !ok {
			return nil, newDiag(ErrUnexpectedKeyword, head.Pos(), "unexpected keyword %v here", head.Keyword())
		}
		s.Kind = kind

	case KindTypeName:
		s.Kind = classifyTypeNameHead(rest)

	case KindIdentifier:
		if currentBlock == BlockEnum {
			s.Kind = KindEnumField
		} else {
			s.Kind = KindExpression
		}

	default:
		s.Kind = KindExpression
	}

	s.Tokens = rest

	if diag := validateModifiers(s, currentBlock); diag != nil {
		return nil, diag
	}

	return s, nil
}

// classifyTypeNameHead implements the TypeName head-dispatch rule: a
// function declaration if immediately followed by '(', a function
// declaration if followed by a bracketed span and then '(' (or
// "(identifier)("), otherwise a variable declaration.
func classifyTypeNameHead(toks []Token) SentenceKind {
	if len(toks) < 2 {
		return KindVarDecl
	}
	next := toks[1]
	if next.Kind() == KindPunctuator && next.Punctuator() == PnLParen {
		return KindFunDecl
	}
	if next.Kind() == KindPunctuator && next.Punctuator() == PnLBracket {
		end := findMatchingBracket(toks, 1)
		if end > 0 && end+1 < len(toks) {
			after := toks[end+1]
			if after.Kind() == KindPunctuator && after.Punctuator() == PnLParen {
				return KindFunDecl
			}
			if end+3 < len(toks) &&
				after.Kind() == KindPunctuator && after.Punctuator() == PnLParen &&
				toks[end+2].Kind() == KindIdentifier &&
				toks[end+3].Kind() == KindPunctuator && toks[end+3].Punctuator() == PnRParen {
				return KindFunDecl
			}
		}
	}
	return KindVarDecl
}

// findMatchingBracket does a level-aware scan from the '[' at toks[start]
// for its matching ']', returning its index or -1 if unmatched.
func findMatchingBracket(toks []Token, start int) int {
	level := 0
	for i := start; i < len(toks); i++ {
		t := toks[i]
		if t.Kind() != KindPunctuator {
			continue
		}
		switch t.Punctuator() {
		case PnLBracket:
			level++
		case PnRBracket:
			level--
			if level == 0 {
				return i
			}
		}
	}
	return -1
}

// validateModifiers checks that static/let/init attach only to the
// sentence kinds that accept them.
func validateModifiers(s *Sentence, currentBlock CodeBlock) *Diagnostic {
	if s.Static && s.Kind != KindVarDecl {
		return newDiag(ErrUnexpectedModifier, s.Pos, "static modifier only legal on VarDecl, not %v", s.Kind)
	}
	if s.Let && !(s.Kind == KindFuncDecl || s.Kind == KindOperDecl) {
		return newDiag(ErrUnexpectedModifier, s.Pos, "let modifier only legal on Function or Operator declarations, not %v", s.Kind)
	}
	if s.Let && currentBlock != BlockLocal {
		return newDiag(ErrUnexpectedModifier, s.Pos, "let modifier only legal inside a Local block")
	}
	if s.Init && s.Kind != KindFunDecl {
		return newDiag(ErrUnexpectedModifier, s.Pos, "init modifier only legal on FunDecl, not %v", s.Kind)
	}
	// NOTE: static+VarDecl inside Local is deliberately NOT re-checked
	// against the enclosing block here; see DESIGN.md for the lenient-
	// behavior rationale.
	return nil
}

func isBlankStatement(text string) bool {
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case ' ', '\t', '\r', byte(PnSplitter):
		default:
			return false
		}
	}
	return true
}

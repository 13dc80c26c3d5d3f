package dgparse

// SentenceKind classifies a Sentence into one of the language's 54
// statement shapes
type SentenceKind int

const (
	KindInvalidSentence SentenceKind = iota

	KindEmpty
	KindExpression
	KindVarDecl
	KindFunDecl
	KindEnumField

	KindLibsSection
	KindPublicSection
	KindPrivateSection
	KindImplemSection

	KindSetOption
	KindImportDecl
	KindIncludeDecl

	KindConstDecl
	KindTypeAliasDecl

	KindClassDecl
	KindPublSection
	KindPrivSection
	KindEndClass
	KindAllowDecl

	KindEnumDecl
	KindEndEnum

	KindVoidDecl

	KindMainDecl
	KindEndMain
	KindFuncDecl
	KindEndFunc
	KindFMemDecl
	KindEndFMem
	KindOperDecl
	KindEndOper

	KindReturn

	KindIf
	KindElseIf
	KindElse
	KindEndIf

	KindWhile
	KindEndWhile
	KindDoLoop
	KindEndDoLoop
	KindFor
	KindEndFor
	KindWalk
	KindEndWalk

	KindSwitch
	KindFirstWhen
	KindNextWhen
	KindDefault
	KindEndSwitch

	KindBreak
	KindContinue

	KindSyscall
	KindSysfunc
	KindDlfunc
	KindDltype

	// kindWhenPending is a transient tag assigned by the Sentence Parser
	// (C3) for a leading `when` keyword; the Block Classifier (C4)
	// resolves it to KindFirstWhen or KindNextWhen per the two-entry
	// disjunction a bare `when` keyword admits. It is never observed as
	// the final Kind of a successfully classified Sentence.
	kindWhenPending
)

var sentenceKindNames = map[SentenceKind]string{
	KindEmpty:          "Empty",
	KindExpression:     "Expression",
	KindVarDecl:        "VarDecl",
	KindFunDecl:        "FunDecl",
	KindEnumField:      "EnumField",
	KindLibsSection:    "LibsSection",
	KindPublicSection:  "PublicSection",
	KindPrivateSection: "PrivateSection",
	KindImplemSection:  "ImplemSection",
	KindSetOption:      "SetOption",
	KindImportDecl:     "Import",
	KindIncludeDecl:    "Include",
	KindConstDecl:      "ConstDecl",
	KindTypeAliasDecl:  "TypeAliasDecl",
	KindClassDecl:      "ClassDecl",
	KindPublSection:    "PublSection",
	KindPrivSection:    "PrivSection",
	KindEndClass:       "EndClass",
	KindAllowDecl:      "AllowDecl",
	KindEnumDecl:       "EnumDecl",
	KindEndEnum:        "EndEnum",
	KindVoidDecl:       "VoidDecl",
	KindMainDecl:       "MainDecl",
	KindEndMain:        "EndMain",
	KindFuncDecl:       "FuncDecl",
	KindEndFunc:        "EndFunc",
	KindFMemDecl:       "FMemDecl",
	KindEndFMem:        "EndFMem",
	KindOperDecl:       "OperDecl",
	KindEndOper:        "EndOper",
	KindReturn:         "Return",
	KindIf:             "If",
	KindElseIf:         "ElseIf",
	KindElse:           "Else",
	KindEndIf:          "EndIf",
	KindWhile:          "While",
	KindEndWhile:       "EndWhile",
	KindDoLoop:         "DoLoop",
	KindEndDoLoop:      "EndDoLoop",
	KindFor:            "For",
	KindEndFor:         "EndFor",
	KindWalk:           "Walk",
	KindEndWalk:        "EndWalk",
	KindSwitch:         "Switch",
	KindFirstWhen:      "FirstWhen",
	KindNextWhen:       "NextWhen",
	KindDefault:        "Default",
	KindEndSwitch:      "EndSwitch",
	KindBreak:          "Break",
	KindContinue:       "Continue",
	KindSyscall:        "Syscall",
	KindSysfunc:        "Sysfunc",
	KindDlfunc:         "Dlfunc",
	KindDltype:         "Dltype",
}

func (k SentenceKind) String() string {
	if s, ok := sentenceKindNames[k]; ok {
		return s
	}
	return "InvalidSentence"
}

// headKeywordKind maps a head-position keyword directly to the sentence
// kind it introduces. Keywords absent from this map (those in
// nonHeadKeywords and the two system-namespace keywords) are rejected in
// head position with an unexpected-keyword diagnostic. Non-keyword heads
// take a different inference path (TypeName -> VarDecl or FunDecl,
// Identifier -> EnumField/Expression).
var headKeywordKind = map[Keyword]SentenceKind{
	KwLibs:      KindLibsSection,
	KwPublic:    KindPublicSection,
	KwPrivate:   KindPrivateSection,
	KwImplem:    KindImplemSection,
	KwSet:       KindSetOption,
	KwImport:    KindImportDecl,
	KwInclude:   KindIncludeDecl,
	KwVar:       KindVarDecl,
	KwConst:     KindConstDecl,
	KwType:      KindTypeAliasDecl,
	KwClass:     KindClassDecl,
	KwPubl:      KindPublSection,
	KwPriv:      KindPrivSection,
	KwEndClass:  KindEndClass,
	KwAllow:     KindAllowDecl,
	KwEnum:      KindEnumDecl,
	KwEndEnum:   KindEndEnum,
	KwVoid:      KindVoidDecl,
	KwMain:      KindMainDecl,
	KwEndMain:   KindEndMain,
	KwFunc:      KindFuncDecl,
	KwEndFunc:   KindEndFunc,
	KwFMem:      KindFMemDecl,
	KwEndFMem:   KindEndFMem,
	KwOper:      KindOperDecl,
	KwEndOper:   KindEndOper,
	KwReturn:    KindReturn,
	KwIf:        KindIf,
	KwElif:      KindElseIf,
	KwElse:      KindElse,
	KwEndIf:     KindEndIf,
	KwWhile:     KindWhile,
	KwEndWhile:  KindEndWhile,
	KwDo:        KindDoLoop,
	KwEndLoop:   KindEndDoLoop,
	KwFor:       KindFor,
	KwEndFor:    KindEndFor,
	KwWalk:      KindWalk,
	KwEndWalk:   KindEndWalk,
	KwSwitch:    KindSwitch,
	KwWhen:      kindWhenPending,
	KwDefault:   KindDefault,
	KwEndSwitch: KindEndSwitch,
	KwBreak:     KindBreak,
	KwContinue:  KindContinue,
	KwSyscall:   KindSyscall,
	KwSysfunc:   KindSysfunc,
	KwDlfunc:    KindDlfunc,
	KwDltype:    KindDltype,
}

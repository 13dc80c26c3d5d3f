package dgparse

// Keyword enumerates the 62 fixed keyword spellings of the language,
// including the two reserved system-namespace keywords that may only
// originate from compiler-injected lines (OriginInsertion / OriginAddition).
type Keyword int

// Keyword values. Order does not matter for correctness (matching is done
// through a map) but is kept stable here to match the declared order in
// the language grammar
const (
	KwInvalid Keyword = iota
	KwLibs
	KwPublic
	KwPrivate
	KwImplem
	KwSet
	KwImport
	KwInclude
	KwAs
	KwVersion
	KwStatic
	KwVar
	KwConst
	KwType
	KwClass
	KwPubl
	KwPriv
	KwEndClass
	KwAllow
	KwTo
	KwFrom
	KwEnum
	KwEndEnum
	KwVoid
	KwMain
	KwEndMain
	KwFunc
	KwEndFunc
	KwFMem
	KwEndFMem
	KwOper
	KwEndOper
	KwLet
	KwInit
	KwReturn
	KwRef
	KwIf
	KwElif
	KwElse
	KwEndIf
	KwWhile
	KwEndWhile
	KwDo
	KwEndLoop
	KwFor
	KwEndFor
	KwWalk
	KwEndWalk
	KwOn
	KwSwitch
	KwWhen
	KwDefault
	KwEndSwitch
	KwBreak
	KwContinue
	KwArray
	KwIndex
	KwSyscall
	KwSysfunc
	KwDlfunc
	KwDltype
	KwSysXlvset  // reserved system-namespace keyword
	KwSysInitVar // reserved system-namespace keyword
)

// keywordBaseSpellings gives the canonical source spelling of every keyword
// except the two system-namespace keywords, keyed by its Keyword value.
// Those two spellings carry the configured system-namespace prefix and are
// added to the lookup table by newKeywordTable.
var keywordBaseSpellings = map[Keyword]string{
	KwLibs:      ".libs",
	KwPublic:    ".public",
	KwPrivate:   ".private",
	KwImplem:    ".implem",
	KwSet:       "set",
	KwImport:    "import",
	KwInclude:   "include",
	KwAs:        "as",
	KwVersion:   "version",
	KwStatic:    "static",
	KwVar:       "var",
	KwConst:     "const",
	KwType:      "type",
	KwClass:     "class",
	KwPubl:      ".publ",
	KwPriv:      ".priv",
	KwEndClass:  ":class",
	KwAllow:     "allow",
	KwTo:        "to",
	KwFrom:      "from",
	KwEnum:      "enum",
	KwEndEnum:   ":enum",
	KwVoid:      "void",
	KwMain:      "main:",
	KwEndMain:   ":main",
	KwFunc:      "func",
	KwEndFunc:   ":func",
	KwFMem:      "fmem",
	KwEndFMem:   ":fmem",
	KwOper:      "oper",
	KwEndOper:   ":oper",
	KwLet:       "let",
	KwInit:      "init",
	KwReturn:    "return",
	KwRef:       "ref",
	KwIf:        "if",
	KwElif:      "elif",
	KwElse:      "else",
	KwEndIf:     ":if",
	KwWhile:     "while",
	KwEndWhile:  ":while",
	KwDo:        "do",
	KwEndLoop:   ":loop",
	KwFor:       "for",
	KwEndFor:    ":for",
	KwWalk:      "walk",
	KwEndWalk:   ":walk",
	KwOn:        "on",
	KwSwitch:    "switch",
	KwWhen:      "when",
	KwDefault:   "default:",
	KwEndSwitch: ":switch",
	KwBreak:     "break",
	KwContinue:  "continue",
	KwArray:     "array",
	KwIndex:     "index",
	KwSyscall:   "syscall",
	KwSysfunc:   "sysfunc",
	KwDlfunc:    "dlfunc",
	KwDltype:    "dltype",
}

func (kw Keyword) String() string {
	if s, ok := keywordBaseSpellings[kw]; ok {
		return s
	}
	switch kw {
	case KwSysXlvset:
		return "xlvset"
	case KwSysInitVar:
		return "initvar"
	default:
		return "<invalid-keyword>"
	}
}

// sysNamespaceKeywords are the keywords only visible to tokens originating
// from OriginInsertion / OriginAddition buffers; their spelling carries the
// configured system-namespace prefix.
var sysNamespaceKeywords = []Keyword{KwSysXlvset, KwSysInitVar}

// keywordTable is a built keyword lookup: spelling (without namespace
// prefix applied to the two system keywords) -> Keyword.
type keywordTable struct {
	bySpelling map[string]Keyword
	sysPrefix  string
}

func newKeywordTable(sysPrefix string) *keywordTable {
	t := &keywordTable{bySpelling: make(map[string]Keyword, len(keywordBaseSpellings)+2), sysPrefix: sysPrefix}
	for kw, spelling := range keywordBaseSpellings {
		t.bySpelling[spelling] = kw
	}
	t.bySpelling[sysPrefix+"xlvset"] = KwSysXlvset
	t.bySpelling[sysPrefix+"initvar"] = KwSysInitVar
	return t
}

// nonHeadKeywords are the keywords that never start a sentence; they are
// consumed as leading modifiers instead (static, let, init) or are only
// legal in non-head position (as, version, ref, on, to, from, array, index).
var nonHeadKeywords = map[Keyword]bool{
	KwAs:      true,
	KwVersion: true,
	KwStatic:  true,
	KwLet:     true,
	KwInit:    true,
	KwRef:     true,
	KwOn:      true,
	KwTo:      true,
	KwFrom:    true,
	KwArray:   true,
	KwIndex:   true,
}

// sentenceModifierKeywords identify the three leading modifiers a sentence
// may carry
var sentenceModifierKeywords = map[Keyword]bool{
	KwStatic: true,
	KwLet:    true,
	KwInit:   true,
}

// autoSplitKeyword reports whether kw triggers statement auto-splitting:
// every keyword spelling that starts or ends with ':', except :loop.
func autoSplitKeyword(kw Keyword) bool {
	if kw == KwEndLoop {
		return false
	}
	s := kw.String()
	return len(s) > 0 && (s[0] == ':' || s[len(s)-1] == ':')
}

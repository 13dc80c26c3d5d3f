package dgparse

import "fmt"

// CodeBlock is a lexical scope kind. Each named constant occupies a single
// bit so that the "allowed enclosing blocks" column of the sentence-def
// table (sentencedef.go) can be expressed as a plain bitwise union, and
// legality checks reduce to a single AND
type CodeBlock uint32

// The 21 code-block kinds, grouped by category: file sections,
// definitions, subroutine body, control flow.
const (
	BlockInit CodeBlock = 1 << iota
	BlockLibs
	BlockPublic
	BlockPrivate
	BlockImplem

	BlockClass
	BlockPubl
	BlockPriv
	BlockEnum

	BlockLocal

	BlockSwitch
	BlockFirstWhen
	BlockNextWhen
	BlockDefault
	BlockDoLoop
	BlockWhile
	BlockIf
	BlockElseIf
	BlockElse
	BlockFor
	BlockWalk
)

var blockNames = map[CodeBlock]string{
	BlockInit:      "Init",
	BlockLibs:      "Libs",
	BlockPublic:    "Public",
	BlockPrivate:   "Private",
	BlockImplem:    "Implem",
	BlockClass:     "Class",
	BlockPubl:      "Publ",
	BlockPriv:      "Priv",
	BlockEnum:      "Enum",
	BlockLocal:     "Local",
	BlockSwitch:    "Switch",
	BlockFirstWhen: "FirstWhen",
	BlockNextWhen:  "NextWhen",
	BlockDefault:   "Default",
	BlockDoLoop:    "DoLoop",
	BlockWhile:     "While",
	BlockIf:        "If",
	BlockElseIf:    "ElseIf",
	BlockElse:      "Else",
	BlockFor:       "For",
	BlockWalk:      "Walk",
}

// loopBlocks is the set of CodeBlock kinds that constitute a break/continue
// target
const loopBlocks = BlockDoLoop | BlockWhile | BlockFor | BlockWalk

func (b CodeBlock) String() string {
	if name, ok := blockNames[b]; ok {
		return name
	}
	return fmt.Sprintf("CodeBlock(%#x)", uint32(b))
}

// has reports whether mask shares any bit with b (b is typically a
// single block kind, mask an "allowed" union of several).
func (mask CodeBlock) has(b CodeBlock) bool { return mask&b != 0 }

// CodeBlockDef is one live frame of the code-block stack: which kind of
// block it is, and its assigned base/sub label counters.
type CodeBlockDef struct {
	Block CodeBlock
	Base  uint16
	Sub   uint16
}

// ID packs the frame into a stable 64-bit identity: (block<<32)|(base<<16)|sub.
func (d CodeBlockDef) ID() CodeBlockID {
	return CodeBlockID(uint64(d.Block)<<32 | uint64(d.Base)<<16 | uint64(d.Sub))
}

// CodeBlockID is the packed, stable identity of a CodeBlockDef, used as a
// key in the closed-block list and the deletion stack.
type CodeBlockID uint64

// Block unpacks the block-kind component of the identity.
func (id CodeBlockID) Block() CodeBlock { return CodeBlock(uint64(id) >> 32) }

// Base unpacks the base-label component of the identity.
func (id CodeBlockID) Base() uint16 { return uint16(uint64(id) >> 16) }

// Sub unpacks the sub-label component of the identity.
func (id CodeBlockID) Sub() uint16 { return uint16(id) }

func (id CodeBlockID) String() string {
	return fmt.Sprintf("%v#%05d.%d", id.Block(), id.Base(), id.Sub())
}

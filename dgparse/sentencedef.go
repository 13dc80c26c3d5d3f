package dgparse

// Action is what a classified sentence does to the code-block stack.
type Action int

const (
	ActionKeep Action = iota
	ActionPush
	ActionPop
	ActionReplace
)

// JumpMode selects how a classified sentence transforms the (global, base,
// sub) label counters
type JumpMode int

const (
	JumpNone JumpMode = iota
	JumpBlockBeg
	JumpBlockEnd
	JumpLoopBeg
	JumpFirstCase
	JumpNextCase
	JumpLastCase
	JumpLoopEnd
	JumpEndCase
)

// sentenceDef is one row of the static classification table: which
// enclosing blocks allow this sentence, what stack action it
// performs, which block kind it opens (if any), how it moves the label
// counters, and whether it pushes/pops the deletion stack that defers
// publication of a Switch id until its matching EndSwitch.
type sentenceDef struct {
	kind     SentenceKind
	allowed  CodeBlock
	action   Action
	newBlock CodeBlock
	jump     JumpMode
	pushDel  bool
	popDel   bool
}

const bodyBlocks = BlockLocal | BlockIf | BlockElseIf | BlockElse |
	BlockDoLoop | BlockWhile | BlockFor | BlockWalk |
	BlockFirstWhen | BlockNextWhen | BlockDefault

const allBlocks = BlockInit | BlockLibs | BlockPublic | BlockPrivate | BlockImplem |
	BlockClass | BlockPubl | BlockPriv | BlockEnum | BlockLocal |
	BlockSwitch | BlockFirstWhen | BlockNextWhen | BlockDefault |
	BlockDoLoop | BlockWhile | BlockIf | BlockElseIf | BlockElse | BlockFor | BlockWalk

const loopKeywordBlocks = BlockDoLoop | BlockWhile | BlockFor | BlockWalk
const switchCaseBlocks = BlockFirstWhen | BlockNextWhen | BlockDefault
const breakAllowed = loopKeywordBlocks | BlockIf | BlockElseIf | BlockElse | switchCaseBlocks
const continueAllowed = loopKeywordBlocks | BlockIf | BlockElseIf | BlockElse

// sentenceDefTable is keyed in probe order; for KindFirstWhen/KindNextWhen
// two entries share the transient kindWhenPending lookup key used by
// classify
var sentenceDefTable = []sentenceDef{
	{kind: KindEmpty, allowed: allBlocks, action: ActionKeep, jump: JumpNone},

	{kind: KindExpression, allowed: bodyBlocks, action: ActionKeep, jump: JumpNone},
	{kind: KindVarDecl, allowed: BlockPublic | BlockPrivate | BlockImplem | BlockLocal | BlockClass | BlockPubl | BlockPriv, action: ActionKeep, jump: JumpNone},
	{kind: KindFunDecl, allowed: BlockLibs | BlockPublic | BlockPrivate | BlockImplem | BlockPubl | BlockPriv, action: ActionPush, newBlock: BlockLocal, jump: JumpBlockBeg},
	{kind: KindEnumField, allowed: BlockEnum, action: ActionKeep, jump: JumpNone},

	{kind: KindLibsSection, allowed: BlockInit, action: ActionPush, newBlock: BlockLibs, jump: JumpNone},
	{kind: KindPublicSection, allowed: BlockInit | BlockLibs, action: ActionPush, newBlock: BlockPublic, jump: JumpNone},
	{kind: KindPrivateSection, allowed: BlockInit | BlockLibs | BlockPublic, action: ActionPush, newBlock: BlockPrivate, jump: JumpNone},
	{kind: KindImplemSection, allowed: BlockInit | BlockLibs | BlockPublic | BlockPrivate, action: ActionPush, newBlock: BlockImplem, jump: JumpNone},

	{kind: KindSetOption, allowed: BlockInit | BlockLibs, action: ActionKeep, jump: JumpNone},
	{kind: KindImportDecl, allowed: BlockInit | BlockLibs, action: ActionKeep, jump: JumpNone},
	{kind: KindIncludeDecl, allowed: BlockInit | BlockLibs, action: ActionKeep, jump: JumpNone},

	{kind: KindConstDecl, allowed: BlockPublic | BlockPrivate | BlockImplem | BlockLocal, action: ActionKeep, jump: JumpNone},
	{kind: KindTypeAliasDecl, allowed: BlockPublic | BlockPrivate | BlockImplem, action: ActionKeep, jump: JumpNone},

	{kind: KindClassDecl, allowed: BlockPublic | BlockPrivate | BlockImplem, action: ActionPush, newBlock: BlockClass, jump: JumpNone},
	{kind: KindPublSection, allowed: BlockClass, action: ActionPush, newBlock: BlockPubl, jump: JumpNone},
	{kind: KindPrivSection, allowed: BlockClass, action: ActionPush, newBlock: BlockPriv, jump: JumpNone},
	{kind: KindEndClass, allowed: BlockClass | BlockPubl | BlockPriv, action: ActionPop, jump: JumpBlockEnd},
	{kind: KindAllowDecl, allowed: BlockClass, action: ActionKeep, jump: JumpNone},

	{kind: KindEnumDecl, allowed: BlockPublic | BlockPrivate | BlockImplem | BlockClass | BlockPubl | BlockPriv, action: ActionPush, newBlock: BlockEnum, jump: JumpNone},
	{kind: KindEndEnum, allowed: BlockEnum, action: ActionPop, jump: JumpBlockEnd},

	{kind: KindVoidDecl, allowed: BlockPublic | BlockPrivate | BlockImplem | BlockPubl | BlockPriv, action: ActionKeep, jump: JumpNone},

	{kind: KindMainDecl, allowed: BlockImplem, action: ActionPush, newBlock: BlockLocal, jump: JumpBlockBeg},
	{kind: KindEndMain, allowed: BlockLocal, action: ActionPop, jump: JumpBlockEnd},
	{kind: KindFuncDecl, allowed: BlockLibs | BlockPublic | BlockPrivate | BlockImplem, action: ActionPush, newBlock: BlockLocal, jump: JumpBlockBeg},
	{kind: KindEndFunc, allowed: BlockLocal, action: ActionPop, jump: JumpBlockEnd},
	{kind: KindFMemDecl, allowed: BlockPubl | BlockPriv, action: ActionPush, newBlock: BlockLocal, jump: JumpBlockBeg},
	{kind: KindEndFMem, allowed: BlockLocal, action: ActionPop, jump: JumpBlockEnd},
	{kind: KindOperDecl, allowed: BlockPubl | BlockPriv, action: ActionPush, newBlock: BlockLocal, jump: JumpBlockBeg},
	{kind: KindEndOper, allowed: BlockLocal, action: ActionPop, jump: JumpBlockEnd},

	{kind: KindReturn, allowed: BlockLocal, action: ActionKeep, jump: JumpNone},

	{kind: KindIf, allowed: bodyBlocks, action: ActionPush, newBlock: BlockIf, jump: JumpLoopBeg},
	{kind: KindElseIf, allowed: BlockIf | BlockElseIf, action: ActionReplace, newBlock: BlockElseIf, jump: JumpNextCase},
	{kind: KindElse, allowed: BlockIf | BlockElseIf, action: ActionReplace, newBlock: BlockElse, jump: JumpLastCase},
	{kind: KindEndIf, allowed: BlockIf | BlockElseIf | BlockElse, action: ActionPop, jump: JumpLoopEnd},

	{kind: KindWhile, allowed: bodyBlocks, action: ActionPush, newBlock: BlockWhile, jump: JumpLoopBeg},
	{kind: KindEndWhile, allowed: BlockWhile, action: ActionPop, jump: JumpLoopEnd},
	{kind: KindDoLoop, allowed: bodyBlocks, action: ActionPush, newBlock: BlockDoLoop, jump: JumpLoopBeg},
	{kind: KindEndDoLoop, allowed: BlockDoLoop, action: ActionPop, jump: JumpLoopEnd},
	{kind: KindFor, allowed: bodyBlocks, action: ActionPush, newBlock: BlockFor, jump: JumpLoopBeg},
	{kind: KindEndFor, allowed: BlockFor, action: ActionPop, jump: JumpLoopEnd},
	{kind: KindWalk, allowed: bodyBlocks, action: ActionPush, newBlock: BlockWalk, jump: JumpLoopBeg},
	{kind: KindEndWalk, allowed: BlockWalk, action: ActionPop, jump: JumpLoopEnd},

	{kind: KindSwitch, allowed: bodyBlocks, action: ActionPush, newBlock: BlockSwitch, jump: JumpLoopBeg, pushDel: true},
	{kind: KindFirstWhen, allowed: BlockSwitch, action: ActionReplace, newBlock: BlockFirstWhen, jump: JumpFirstCase},
	{kind: KindNextWhen, allowed: BlockFirstWhen | BlockNextWhen, action: ActionReplace, newBlock: BlockNextWhen, jump: JumpNextCase},
	{kind: KindDefault, allowed: BlockFirstWhen | BlockNextWhen, action: ActionReplace, newBlock: BlockDefault, jump: JumpLastCase},
	{kind: KindEndSwitch, allowed: BlockSwitch | switchCaseBlocks, action: ActionPop, jump: JumpEndCase, popDel: true},

	{kind: KindBreak, allowed: breakAllowed, action: ActionKeep, jump: JumpNone},
	{kind: KindContinue, allowed: continueAllowed, action: ActionKeep, jump: JumpNone},

	{kind: KindSyscall, allowed: BlockLibs | BlockPublic | BlockPrivate | BlockImplem, action: ActionKeep, jump: JumpNone},
	{kind: KindSysfunc, allowed: BlockLibs | BlockPublic | BlockPrivate | BlockImplem, action: ActionKeep, jump: JumpNone},
	{kind: KindDlfunc, allowed: BlockLibs | BlockPublic | BlockPrivate | BlockImplem, action: ActionKeep, jump: JumpNone},
	{kind: KindDltype, allowed: BlockLibs | BlockPublic | BlockPrivate | BlockImplem, action: ActionKeep, jump: JumpNone},
}

func defsFor(kind SentenceKind) []sentenceDef {
	if kind == kindWhenPending {
		return []sentenceDef{defByKind(KindFirstWhen), defByKind(KindNextWhen)}
	}
	return []sentenceDef{defByKind(kind)}
}

func defByKind(kind SentenceKind) sentenceDef {
	for _, d := range sentenceDefTable {
		if d.kind == kind {
			return d
		}
	}
	return sentenceDef{kind: KindInvalidSentence}
}

package dgparse

import "fmt"

// CodeLabelId selects one of the nine textual label forms downstream code
// emits from a sentence's label fields
type CodeLabelId int

const (
	LabelNextBlock CodeLabelId = iota
	LabelLoopBeg
	LabelLoopEnd
	LabelLoopExit
	LabelLoopNext
	LabelCurrCond
	LabelPrevCond
	LabelNextCond
	LabelExit
)

// blockTag is the three-letter block abbreviation used in textual labels,
// empty for blocks that never produce jump labels
func blockTag(b CodeBlock) string {
	switch b {
	case BlockSwitch, BlockFirstWhen, BlockNextWhen, BlockDefault:
		return "swi"
	case BlockDoLoop:
		return "dlp"
	case BlockWhile:
		return "whi"
	case BlockIf, BlockElseIf, BlockElse:
		return "ifs"
	case BlockFor:
		return "for"
	case BlockWalk:
		return "wlk"
	default:
		return ""
	}
}

// FormatLabel renders one of the nine textual label forms
func FormatLabel(cfg Config, id CodeLabelId, block CodeBlock, l Labels) (string, *Diagnostic) {
	base5, diag := pad5(cfg, l.Base)
	if diag != nil {
		return "", diag
	}
	tag := blockTag(block)

	switch id {
	case LabelNextBlock:
		return base5 + tag + "-next", nil
	case LabelLoopBeg:
		return base5 + tag + "-beg", nil
	case LabelLoopEnd:
		return base5 + tag + "-end", nil
	case LabelCurrCond:
		return fmt.Sprintf("%s%s-cond%d", base5, tag, l.Sub), nil
	case LabelPrevCond:
		return fmt.Sprintf("%s%s-cond%d", base5, tag, int(l.Sub)-1), nil
	case LabelNextCond:
		return fmt.Sprintf("%s%s-cond%d", base5, tag, l.Sub+1), nil
	case LabelExit:
		return base5 + tag + "-exit", nil
	case LabelLoopExit, LabelLoopNext:
		if !l.HasLoopTarget() {
			return "", newDiag(ErrExpectedExpression, Pos{}, "label %v requires an enclosing loop", id)
		}
		loop5, diag := pad5(cfg, uint16(l.LoopBase))
		if diag != nil {
			return "", diag
		}
		loopTag := blockTag(l.LoopID.Block())
		if id == LabelLoopExit {
			return loop5 + loopTag + "-exit", nil
		}
		return loop5 + loopTag + "-end", nil
	default:
		return "", newDiag(ErrExpectedExpression, Pos{}, "unknown label id %d", id)
	}
}

func pad5(cfg Config, v uint16) (string, *Diagnostic) {
	s := fmt.Sprintf("%d", v)
	for len(s) < cfg.LabelWidth {
		s = "0" + s
	}
	if len(s) > cfg.LabelWidth {
		return "", newDiag(ErrLabelWidthExceeded, Pos{}, "label %q exceeds configured width %d", s, cfg.LabelWidth)
	}
	return s, nil
}

// maxShort is the resource ceiling a label counter must stay under; a
// counter reaching maxShort-1 is fatal ("too many labels").
const maxShort = 32767

// bumpCounter implements the "bump global counter" / "bump top's sub
// label" primitive shared by every jump mode, diagnosing exhaustion
// before it would wrap
func bumpCounter(cfg Config, pos Pos, v uint16) (uint16, *Diagnostic) {
	if v >= maxShort-1 {
		return v, newDiag(ErrLabelCounterExhausted, pos, "label counter exhausted")
	}
	next := v + 1
	if _, diag := pad5(cfg, next); diag != nil {
		return v, diag
	}
	return next, nil
}

package dgparse

// classify implements the Block Classifier (C4) and Label Assigner (C5)
// together: look up the sentence kind
// in sentenceDefTable, enforce the allowed-blocks mask against the current
// stack top, mutate the stack per the matched action, then compute the
// sentence's labels from the matched jump mode.
func classify(cfg Config, st *ParserState, s *Sentence) *Diagnostic {
	currentBlock := st.top().Block
	defs := defsFor(s.Kind)

	var matched *sentenceDef
	for i := range defs {
		if defs[i].allowed.has(currentBlock) {
			matched = &defs[i]
			break
		}
	}
	if matched == nil {
		return newDiag(ErrSentenceNotAllowed, s.Pos, "sentence %v not allowed inside block %v", s.Kind, currentBlock)
	}
	// Resolves the transient kindWhenPending tag to KindFirstWhen or
	// KindNextWhen, whichever of the two disjunction entries matched.
	s.Kind = matched.kind

	var base, sub uint16
	var blockID CodeBlockID

	switch matched.action {
	case ActionPush:
		prevTop := st.top()
		switch matched.jump {
		case JumpBlockBeg:
			if prevTop.Block == BlockLocal {
				gb, diag := bumpCounter(cfg, s.Pos, st.GlobalBase)
				if diag != nil {
					return diag
				}
				st.GlobalBase = gb
				base, sub = gb, 0
			} else {
				st.GlobalBase = 0
				base, sub = 0, 0
			}
		case JumpLoopBeg, JumpFirstCase:
			gb, diag := bumpCounter(cfg, s.Pos, st.GlobalBase)
			if diag != nil {
				return diag
			}
			st.GlobalBase = gb
			base, sub = gb, 0
		default:
			base, sub = prevTop.Base, prevTop.Sub
		}
		def := CodeBlockDef{Block: matched.newBlock, Base: base, Sub: sub}
		st.Stack = append(st.Stack, def)
		blockID = def.ID()
		if matched.pushDel {
			st.DelStack = append(st.DelStack, blockID)
		}

	case ActionPop:
		popped := st.top()
		st.Stack = st.Stack[:len(st.Stack)-1]
		poppedID := popped.ID()
		st.ClosedBlocks = append(st.ClosedBlocks, poppedID)
		base, sub = popped.Base, popped.Sub
		blockID = poppedID
		if matched.popDel && len(st.DelStack) > 0 {
			delID := st.DelStack[len(st.DelStack)-1]
			st.DelStack = st.DelStack[:len(st.DelStack)-1]
			st.ClosedBlocks = append(st.ClosedBlocks, delID)
		}

	case ActionReplace:
		popped := st.top()
		st.Stack = st.Stack[:len(st.Stack)-1]
		poppedID := popped.ID()
		switch matched.jump {
		case JumpNextCase, JumpLastCase:
			sb, diag := bumpCounter(cfg, s.Pos, popped.Sub)
			if diag != nil {
				return diag
			}
			base, sub = popped.Base, sb
		default:
			base, sub = popped.Base, popped.Sub
		}
		def := CodeBlockDef{Block: matched.newBlock, Base: base, Sub: sub}
		st.Stack = append(st.Stack, def)
		blockID = def.ID()
		// A replaced block publishes its own end point unless it is the
		// block currently deferred by the deletion stack
		if len(st.DelStack) == 0 || st.DelStack[len(st.DelStack)-1] != poppedID {
			st.ClosedBlocks = append(st.ClosedBlocks, poppedID)
		}

	case ActionKeep:
		top := st.top()
		base, sub = top.Base, top.Sub
		blockID = top.ID()
	}

	s.Labels.Base = base
	s.Labels.Sub = sub
	s.Labels.BlockID = blockID

	s.Labels.LoopBase = -1
	s.Labels.LoopID = 0
	for i := len(st.Stack) - 1; i >= 0; i-- {
		if loopBlocks&st.Stack[i].Block != 0 {
			s.Labels.LoopBase = int32(st.Stack[i].Base)
			s.Labels.LoopID = st.Stack[i].ID()
			break
		}
	}

	return nil
}

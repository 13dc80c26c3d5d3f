package dgparse

import "strings"

// typeList is the mutable list of known type-name strings the semantic
// layer keeps current via SetTypeIDs. The Token Recognizer (C2) consults
// it to disambiguate a TypeName token from a plain Identifier.
type typeList struct {
	names map[string]bool
}

func newTypeList() *typeList {
	return &typeList{names: make(map[string]bool)}
}

func (t *typeList) contains(name string) bool { return t.names[name] }

// setFromCSV replaces the known type list wholesale from a comma-delimited
// string.
func (t *typeList) setFromCSV(csv string) {
	t.names = make(map[string]bool)
	for _, name := range strings.Split(csv, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			t.names[name] = true
		}
	}
}

func (t *typeList) clone() *typeList {
	c := &typeList{names: make(map[string]bool, len(t.names))}
	for k, v := range t.names {
		c.names[k] = v
	}
	return c
}

// ParserState is the snapshotable core of the State Machine (C6): the
// code-block stack, the monotonically-appended closed-block list, the
// deletion stack that defers a Switch id's publication to its matching
// EndSwitch, the running global label counter, and the known type list.
type ParserState struct {
	GlobalBase   uint16
	Stack        []CodeBlockDef
	ClosedBlocks []CodeBlockID
	DelStack     []CodeBlockID
	Types        *typeList
}

func newParserState() *ParserState {
	return &ParserState{
		Stack: []CodeBlockDef{{Block: BlockInit, Base: 0, Sub: 0}},
		Types: newTypeList(),
	}
}

// snapshot returns a deep value copy suitable for single-step rollback.
func (st *ParserState) snapshot() *ParserState {
	cp := &ParserState{
		GlobalBase:   st.GlobalBase,
		Stack:        append([]CodeBlockDef(nil), st.Stack...),
		ClosedBlocks: append([]CodeBlockID(nil), st.ClosedBlocks...),
		DelStack:     append([]CodeBlockID(nil), st.DelStack...),
		Types:        st.Types.clone(),
	}
	return cp
}

func (st *ParserState) top() CodeBlockDef {
	return st.Stack[len(st.Stack)-1]
}

// ClearClosedBlocks empties the closed-block list; it is otherwise only
// ever appended to, never cleared implicitly.
func (st *ParserState) ClearClosedBlocks() { st.ClosedBlocks = nil }

// SetTypeIDs replaces the known type-name list
func (st *ParserState) SetTypeIDs(csv string) { st.Types.setFromCSV(csv) }

// libraryOptionFound pre-scans buffered source lines for `set
// library=true` appearing before any of the four top-level section
// markers, used by the driver to pick a compilation mode without running
// the full parser. Interior whitespace is collapsed before matching so
// `set  library = true` and `set library=true` are treated alike.
func libraryOptionFound(lines []string) bool {
	for _, line := range lines {
		trimmed := collapseSpaces(strings.ReplaceAll(line, "\t", " "))
		switch {
		case strings.HasPrefix(trimmed, "set library=true"):
			return true
		case strings.HasPrefix(trimmed, ".libs"), strings.HasPrefix(trimmed, ".public"),
			strings.HasPrefix(trimmed, ".private"), strings.HasPrefix(trimmed, ".implem"):
			return false
		}
	}
	return false
}

// collapseSpaces trims the line, folds runs of spaces down to a single
// space and removes the spaces on either side of `=`, mirroring the normalization
// the original source performs before comparing against section markers.
func collapseSpaces(s string) string {
	s = strings.TrimSpace(s)
	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	s = strings.ReplaceAll(s, "= ", "=")
	s = strings.ReplaceAll(s, " =", "=")
	return s
}

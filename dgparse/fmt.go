package dgparse

import (
	"fmt"
	"io"
)

// Format writes a textual representation of the receiver, providing
// improved fmt.Printf display. Produces a verbose "Kind(render)@pos" form
// when formatted with "%+v", a terse "render" form otherwise.
func (t Token) Format(f fmt.State, _ rune) {
	if f.Flag('+') {
		fmt.Fprintf(f, "%v(%s)@%v", t.kind, t.Render(), t.pos)
	} else {
		io.WriteString(f, t.Render())
	}
}

// Format writes a textual representation of the receiver. The verbose
// "%+v" form prints a kind@pos header (with the modifiers when any is
// set) and then every token on its own line prefixed by its index; the
// terse form renders the sentence as source-like text.
func (s *Sentence) Format(f fmt.State, _ rune) {
	if f.Flag('+') {
		fmt.Fprintf(f, "%v@%v", s.Kind, s.Pos)
		if s.Static || s.Let || s.Init {
			fmt.Fprintf(f, " [static=%v let=%v init=%v]", s.Static, s.Let, s.Init)
		}
		for i, t := range s.Tokens {
			fmt.Fprintf(f, "\n  %d: %+v", i, t)
		}
	} else {
		for i, t := range s.Tokens {
			if i > 0 {
				io.WriteString(f, " ")
			}
			io.WriteString(f, t.Render())
		}
	}
}

// Format writes a textual representation of the receiver. The verbose
// "%+v" form includes the assigned base/sub labels, the terse form just
// the block kind and packed id.
func (d CodeBlockDef) Format(f fmt.State, _ rune) {
	if f.Flag('+') {
		fmt.Fprintf(f, "<%v base=%d sub=%d>", d.Block, d.Base, d.Sub)
	} else {
		fmt.Fprintf(f, "%v#%v", d.Block, d.ID())
	}
}

package dgutil

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefixWriterInsertsPrefixPerLine(t *testing.T) {
	var buf bytes.Buffer
	w := PrefixWriter("> ", &buf)
	w.WriteString("a\nb\n")
	w.Flush()
	assert.Equal(t, "> a\n> b\n", buf.String())
}

func TestPosPrefixerTracksCoordinate(t *testing.T) {
	var buf bytes.Buffer
	pp := NewPosPrefixer(&buf)

	pp.SetPos("t.dg", 3, 5)
	pp.WriteString("bad token\n")
	pp.Flush()
	assert.Equal(t, "t.dg:3:5: bad token\n", buf.String())

	pp.SetPos("t.dg", 4, 0)
	pp.WriteString("missing semicolon\n")
	pp.Flush()
	assert.Equal(t, "t.dg:3:5: bad token\nt.dg:4: missing semicolon\n", buf.String())
}

package dgparse

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPositionedLogSinkPrefixesCoordinate(t *testing.T) {
	var buf bytes.Buffer
	sink := NewPositionedLogSink(log.New(&buf, "", 0))

	sink.Report(newDiag(ErrSentenceNotAllowed, Pos{File: "t.dg", Line: 7, Column: 2}, "bad sentence"))
	assert.Equal(t, "t.dg:7:2: bad sentence\n", buf.String())
}

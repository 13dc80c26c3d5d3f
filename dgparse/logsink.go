package dgparse

import (
	"log"

	"github.com/dungeonlang/dgparse/internal/dgutil"
)

// NewLogSink builds a Sink that logs every fatal diagnostic through a
// standard library *log.Logger, one line per diagnostic, prefixed the way
// the rest of the driver's ambient logging is.
func NewLogSink(logger *log.Logger) Sink {
	return SinkFunc(func(d *Diagnostic) {
		logger.Print(d.Error())
	})
}

// NewPrefixedLogSink is NewLogSink but routes every message through a
// dgutil.Prefixer first, useful when a driver wants parser diagnostics
// visually distinguished from its own log lines (e.g. "parse: " prefix).
func NewPrefixedLogSink(logger *log.Logger, prefix string) Sink {
	pw := dgutil.PrefixWriter(prefix, logger.Writer())
	inner := log.New(pw, "", 0)
	return NewLogSink(inner)
}

// NewPositionedLogSink builds a Sink that logs each diagnostic's message
// with its source coordinate in the left margin instead of inline, via a
// dgutil.PosPrefixer set from the diagnostic's Pos before each write.
func NewPositionedLogSink(logger *log.Logger) Sink {
	pp := dgutil.NewPosPrefixer(logger.Writer())
	inner := log.New(pp, "", 0)
	return SinkFunc(func(d *Diagnostic) {
		pp.SetPos(d.Pos.File, d.Pos.Line, d.Pos.Column)
		inner.Print(d.Message)
		pp.Flush()
	})
}

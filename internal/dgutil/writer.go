// Package dgutil holds small ambient helpers (buffered/prefixed writers,
// diagnostic logging) shared across the parser and its driver.
package dgutil

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// WriteBuffer combines a byte buffer with a destination writer and flush
// policy. Example use:
//
//	var buf WriteBuffer
//	buf.To = os.Stdout
//	for thing := range things {
//		fmt.Fprint(&buf, thing)
//		buf.MaybeFlush() // TODO errcheck
//	}
//	buf.Flush() // TODO errcheck
//
// NOTE: the flush methods may typically be deferred when a function scope
// is available.
type WriteBuffer struct {
	FlushPolicy
	To io.Writer
	bytes.Buffer
}

// FlushPolicy determines when a WriteBuffer should flush during its main
// write phase.
type FlushPolicy interface {
	ShouldFlush(b []byte) int
}

// FlushPolicyFunc is a convenience adaptor for FlushPolicy around a
// compatible anonymous function.
type FlushPolicyFunc func(b []byte) int

// ShouldFlush calls the receiver function pointer.
func (f FlushPolicyFunc) ShouldFlush(b []byte) int { return f(b) }

// Flush writes all of the receiver buffer's contents, regardless of the
// FlushPolicy. Should be called after the main write phase.
func (buf *WriteBuffer) Flush() error {
	_, err := buf.WriteTo(buf.To)
	return err
}

// MaybeFlush writes N bytes into To if FlushPolicy returns N > 0. The N
// bytes written are then discarded from the receiver buffer. If
// FlushPolicy is nil, it is set to FlushLineChunks.
func (buf *WriteBuffer) MaybeFlush() error {
	if buf.FlushPolicy == nil {
		buf.FlushPolicy = FlushPolicyFunc(FlushLineChunks)
	}
	b := buf.Bytes()
	if n := buf.ShouldFlush(b); n > 0 {
		m, err := buf.To.Write(b[:n])
		buf.Next(m)
		return err
	}
	return nil
}

// FlushLineChunks is a FlushPolicy(Func) that flushes as large a chunk as
// possible, through the last written newline byte.
func FlushLineChunks(b []byte) int {
	if i := bytes.LastIndexByte(b, '\n'); i >= 0 {
		return i + 1
	}
	return 0
}

// ErrWriter wraps a writer, tracking its last error, and preventing
// future writes after a non-nil one.
type ErrWriter struct {
	io.Writer
	Err error
}

// Write passes through to Writer if Err is nil, retaining any returned
// error.
func (ew *ErrWriter) Write(p []byte) (n int, err error) {
	if ew.Err == nil {
		n, ew.Err = ew.Writer.Write(p)
	}
	return n, ew.Err
}

// PrefixWriter returns a writer that prepends prefix before every line
// written through it. The caller SHOULD close it if it cares to flush any
// partial final line.
func PrefixWriter(prefix string, w io.Writer) *Prefixer {
	var p Prefixer
	p.Buffer.To = w
	p.Prefix = prefix
	return &p
}

// Prefixer supports writing a prefix before every line written to an
// underlying writer. Create with PrefixWriter(). Set Skip true for a
// one-shot "skip adding the next prefix".
type Prefixer struct {
	Prefix string
	Skip   bool
	Buffer WriteBuffer
}

// Close flushes all internally buffered bytes to the underlying writer.
func (p *Prefixer) Close() error { return p.Buffer.Flush() }

// Flush flushes all internally buffered bytes to the underlying writer.
func (p *Prefixer) Flush() error { return p.Buffer.Flush() }

// Write writes bytes to the internal buffer, inserting Prefix before
// every line, and then flushes all complete lines to the underlying
// writer.
func (p *Prefixer) Write(b []byte) (n int, err error) {
	first := true
	for len(b) > 0 {
		if !first {
			p.addPrefix()
		} else if i := p.Buffer.Len() - 1; i < 0 || p.Buffer.Bytes()[i] == '\n' {
			p.addPrefix()
			first = false
		} else {
			first = false
		}

		line := b
		if i := bytes.IndexByte(b, '\n'); i >= 0 {
			i++
			line = b[:i]
			b = b[i:]
		} else {
			b = nil
		}
		m, _ := p.Buffer.Write(line)
		n += m
	}
	return n, p.Buffer.MaybeFlush()
}

// WriteString writes a string to the internal buffer, inserting Prefix
// before every line, and then flushes all complete lines to the
// underlying writer.
func (p *Prefixer) WriteString(s string) (n int, err error) {
	first := true
	for len(s) > 0 {
		if !first {
			p.addPrefix()
		} else if i := p.Buffer.Len() - 1; i < 0 || p.Buffer.Bytes()[i] == '\n' {
			p.addPrefix()
			first = false
		} else {
			first = false
		}

		line := s
		if i := strings.IndexByte(s, '\n'); i >= 0 {
			i++
			line = s[:i]
			s = s[i:]
		} else {
			s = ""
		}
		m, _ := p.Buffer.WriteString(line)
		n += m
	}
	return n, p.Buffer.MaybeFlush()
}

func (p *Prefixer) addPrefix() {
	if p.Skip {
		p.Skip = false
	} else {
		p.Buffer.WriteString(p.Prefix)
	}
}

// NewPosPrefixer returns a writer that prepends a "file:line:col: "
// coordinate before every line written to it. The coordinate is set once
// per diagnostic via SetPos, then holds for every line that one write call
// emits (a multi-line diagnostic message gets the same coordinate on each
// of its lines).
func NewPosPrefixer(w io.Writer) *PosPrefixer {
	pp := &PosPrefixer{}
	pp.inner.Buffer.To = w
	return pp
}

// PosPrefixer is a Prefixer whose prefix text tracks a source coordinate
// rather than a fixed string, so a driver can print a diagnostic's
// message without repeating its position inline.
type PosPrefixer struct {
	inner Prefixer
}

// SetPos sets the coordinate prefixed before the next write. Line is
// 1-based, col is 0-based; col is omitted when 0 (a synthetic position).
func (pp *PosPrefixer) SetPos(file string, line, col int) {
	if col > 0 {
		pp.inner.Prefix = fmt.Sprintf("%s:%d:%d: ", file, line, col)
	} else {
		pp.inner.Prefix = fmt.Sprintf("%s:%d: ", file, line)
	}
}

// Write writes bytes through the underlying Prefixer.
func (pp *PosPrefixer) Write(b []byte) (int, error) { return pp.inner.Write(b) }

// WriteString writes a string through the underlying Prefixer.
func (pp *PosPrefixer) WriteString(s string) (int, error) { return pp.inner.WriteString(s) }

// Flush flushes all internally buffered bytes to the underlying writer.
func (pp *PosPrefixer) Flush() error { return pp.inner.Flush() }

// Close flushes all internally buffered bytes to the underlying writer.
func (pp *PosPrefixer) Close() error { return pp.inner.Close() }

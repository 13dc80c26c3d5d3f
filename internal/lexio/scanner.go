package lexio

import "bufio"

// Scanner abstracts over tokenizing scanners, like bufio.Scanner. Scan
// should return true if another token has been scanned from input, false
// otherwise (at EOF, read error, parse error, etc).
type Scanner interface {
	Scan() bool
	Bytes() []byte
}

// ErrScanner is a Scanner extension implemented by scanners that
// potentially need to return a scan error: typically a read error from
// the underlying io.Reader, or a parse error from the split function.
type ErrScanner interface {
	Scanner
	Err() error
}

// ScanError returns any scan error retained by the given Scanner.
func ScanError(sc Scanner) (err error) {
	if esc, ok := sc.(ErrScanner); ok {
		err = esc.Err()
	}
	return err
}

// FileLineSource adapts a bufio.Scanner line-split source into the
// dgparse.LineSource shape, buffering each scanned line through a
// ByteArena token handle rather than relying on bufio.Scanner's own
// reused internal buffer.
type FileLineSource struct {
	sc    *bufio.Scanner
	arena ByteArena
	cur   ByteArenaToken
}

// NewFileLineSource wraps sc, which the caller has already configured
// with bufio.ScanLines (the default split function).
func NewFileLineSource(sc *bufio.Scanner) *FileLineSource {
	return &FileLineSource{sc: sc}
}

// Scan advances to the next line, returning false at EOF or read error.
func (s *FileLineSource) Scan() bool {
	if !s.sc.Scan() {
		return false
	}
	s.arena.Reset()
	s.arena.Write(s.sc.Bytes())
	s.cur = s.arena.Take()
	return true
}

// Text returns the most recently scanned line.
func (s *FileLineSource) Text() string { return s.cur.Text() }

// Err returns the first non-EOF error encountered by the underlying
// bufio.Scanner.
func (s *FileLineSource) Err() error { return s.sc.Err() }

package dgparse

import "fmt"

// Code identifies a diagnostic's taxonomy entry. It is not
// exhaustive of every possible message text, but every fatal diagnostic the
// parser can raise carries one of these codes.
type Code int

const (
	ErrUnknown Code = iota

	// Lexical
	ErrBadNumericBase
	ErrUnterminatedString
	ErrUnterminatedRawString
	ErrUnknownEscape
	ErrBadHexNibble
	ErrStringTooLong
	ErrIdentifierStartsWithDigit
	ErrIdentifierTooLong
	ErrSysNamespaceForbidden
	ErrUnclassifiedByte
	ErrNumericOverflow

	// Structural
	ErrSentenceNotAllowed
	ErrUnexpectedTokenType
	ErrExpectedToken
	ErrExpectedExpression
	ErrEmptyExpression
	ErrSentenceRunsPastEnd
	ErrUnexpectedKeyword
	ErrUnexpectedModifier

	// Resource
	ErrLabelCounterExhausted
	ErrLabelWidthExceeded
	ErrDanglingLineJoin
	ErrRawStringOpenAtEOF
	ErrSourceIO
)

// Diagnostic is a fatal, per-sentence error. It implements error and
// carries the source coordinates the message refers to, so the caller can
// report file/line/column.
type Diagnostic struct {
	Code    Code
	Pos     Pos
	Message string
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%v: %s", d.Pos, d.Message)
}

func newDiag(code Code, pos Pos, format string, args ...interface{}) *Diagnostic {
	return &Diagnostic{Code: code, Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// Sink is the diagnostic message sink injected by the caller (the parser
// consumes from collaborators, it never owns output). Report is
// called once per fatal diagnostic as it is raised.
type Sink interface {
	Report(d *Diagnostic)
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(d *Diagnostic)

// Report calls the receiver function.
func (f SinkFunc) Report(d *Diagnostic) { f(d) }

// DiscardSink is a Sink that drops every diagnostic; useful in tests that
// only care about the returned error value.
var DiscardSink Sink = SinkFunc(func(*Diagnostic) {})

package uri

import (
	"errors"
	"strconv"

	"github.com/ghettovoice/urispan/internal/util"
)

// Error is a kind of grammar failure.
type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const (
	// ErrUnexpectedChar is reported when the character at the failure position
	// is not in the set expected by the rule, including the end of input.
	ErrUnexpectedChar Error = "unexpected character"
	// ErrIncompleteInput is reported when a multi-byte token (a percent-encoded triple)
	// is cut off by the end of input, so more bytes might complete it.
	ErrIncompleteInput Error = "incomplete input"
	// ErrOutOfRange is reported when a digit run does not fit the range of the rule
	// (0-255 for dec-octet, 0-65535 for port).
	ErrOutOfRange Error = "value out of range"
)

// ParseError describes a soft failure of a production.
// Callers may retry a sibling production against the same input.
type ParseError struct {
	// Rule is the name of the ABNF rule that failed.
	Rule string
	// Pos is the byte offset of the failure in the input passed to the production.
	Pos int
	// Kind is one of [ErrUnexpectedChar], [ErrIncompleteInput], [ErrOutOfRange].
	Kind Error
}

func (e *ParseError) Error() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	sb.WriteString(e.Rule)
	sb.WriteString(" at offset ")
	sb.WriteString(strconv.Itoa(e.Pos))
	sb.WriteString(": ")
	sb.WriteString(string(e.Kind))
	return sb.String()
}

func (e *ParseError) Unwrap() error { return e.Kind }

func (*ParseError) Grammar() bool { return true }

func newParseError(rule string, pos int, kind Error) error {
	return &ParseError{Rule: rule, Pos: pos, Kind: kind} //errtrace:skip
}

// errPos returns the failure position of err or -1 if err is not a [ParseError].
func errPos(err error) int {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Pos
	}
	return -1
}

// shiftErr moves the failure position of err by n bytes,
// translating it from a sub-input offset to the caller's input offset.
func shiftErr(err error, n int) error {
	var pe *ParseError
	if n == 0 || !errors.As(err, &pe) {
		return err //errtrace:skip
	}
	return newParseError(pe.Rule, pe.Pos+n, pe.Kind) //errtrace:skip
}

// renameErr attributes a failure that happened right at the start of the input to rule.
// Deeper failures keep the more specific rule name.
func renameErr(err error, rule string) error {
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Pos != 0 || pe.Rule == rule {
		return err //errtrace:skip
	}
	return newParseError(rule, 0, pe.Kind) //errtrace:skip
}

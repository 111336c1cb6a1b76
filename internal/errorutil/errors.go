// Package errorutil provides sentinel errors and error combinators.
package errorutil

//go:generate go tool errtrace -w .

import (
	"fmt"
	"strings"

	"github.com/ghettovoice/urispan/internal/util"
)

// Error is a string type that implements the error interface.
type Error string

func (s Error) Error() string { return string(s) }

// Wrapf annotates sentinel with a formatted detail.
// The result still matches sentinel with errors.Is.
func Wrapf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...)) //errtrace:skip
}

// JoinPrefix lists errs under the prefix line, one error per line.
// Nil errors are skipped, and nil is returned if none is left.
func JoinPrefix(prefix string, errs ...error) error {
	list := make([]error, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			list = append(list, err)
		}
	}
	if len(list) == 0 {
		return nil
	}
	return &listError{prefix: prefix, errs: list} //errtrace:skip
}

type listError struct {
	prefix string
	errs   []error
}

func (e *listError) Error() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	sb.WriteString(e.prefix)
	for _, err := range e.errs {
		sb.WriteString("\n  - ")
		sb.WriteString(strings.ReplaceAll(err.Error(), "\n", "\n    "))
	}
	return sb.String()
}

func (e *listError) Unwrap() []error { return e.errs }

package uri_test

import (
	"errors"

	"github.com/ghettovoice/urispan/uri"
)

func parseErr(err error) *uri.ParseError {
	var pe *uri.ParseError
	if errors.As(err, &pe) {
		return pe
	}
	return nil
}

func perr(rule string, pos int, kind uri.Error) *uri.ParseError {
	return &uri.ParseError{Rule: rule, Pos: pos, Kind: kind}
}

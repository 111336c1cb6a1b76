package main

import (
	"errors"
	"log/slog"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urispan/internal/errorutil"
	"github.com/ghettovoice/urispan/uri"
)

const errTrailingInput errorutil.Error = "trailing input"

// reference holds the components of a URI or a relative reference.
// All texts borrow from the decomposed input.
type reference struct {
	Scheme       string
	HasScheme    bool
	Authority    uri.Authority[string]
	HasAuthority bool
	Path         uri.Path[string]
	Query        uri.Part[string]
	HasQuery     bool
	Fragment     uri.Part[string]
	HasFragment  bool
	// Rest is the input left after the last component.
	Rest string
}

func (r reference) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 6)
	if r.HasScheme {
		attrs = append(attrs, slog.String("scheme", r.Scheme))
	}
	if r.HasAuthority {
		attrs = append(attrs, slog.Any("authority", r.Authority))
		if r.Authority.Host.IsDomainName() {
			attrs = append(attrs, slog.Bool("dns_name", true))
		}
	}
	attrs = append(attrs, slog.Any("path", r.Path))
	if r.HasQuery {
		attrs = append(attrs, slog.Any("query", r.Query))
	}
	if r.HasFragment {
		attrs = append(attrs, slog.Any("fragment", r.Fragment))
	}
	if r.Rest != "" {
		attrs = append(attrs, slog.String("rest", r.Rest))
	}
	return slog.GroupValue(attrs...)
}

// decompose splits s into reference components:
//
//	URI           = scheme ":" hier-part [ "?" query ] [ "#" fragment ]
//	hier-part     = "//" authority path-abempty
//	              / path-absolute
//	              / path-rootless
//	              / path-empty
//	relative-ref  = relative-part [ "?" query ] [ "#" fragment ]
//	relative-part = "//" authority path-abempty
//	              / path-absolute
//	              / path-noscheme
//	              / path-empty
//
// Unless strict is set, input that no rule accepts is left in [reference.Rest].
// Failure offsets are relative to s.
func decompose(s string, strict bool) (reference, error) {
	var (
		ref  reference
		rest = s
		err  error
	)
	fail := func(err error, sub string) (reference, error) {
		return reference{}, errtrace.Wrap(atOffset(err, len(s)-len(sub)))
	}

	if scheme, r, err := uri.ParseScheme(rest); err == nil && strings.HasPrefix(r, ":") {
		ref.Scheme, ref.HasScheme = scheme, true
		rest = r[1:]
	}

	if strings.HasPrefix(rest, "//") {
		ref.HasAuthority = true
		sub := rest[2:]
		if ref.Authority, rest, err = uri.ParseAuthority(sub); err != nil {
			return fail(err, sub)
		}
		ref.Path, rest, _ = uri.ParsePathAbEmpty(rest)
	} else {
		forms := []func(string) (uri.Path[string], string, error){
			uri.ParsePathAbsolute[string],
			uri.ParsePathNoScheme[string],
			uri.ParsePathEmpty[string],
		}
		if ref.HasScheme {
			forms[1] = uri.ParsePathRootless[string]
		}
		for _, parse := range forms {
			if ref.Path, rest, err = parse(rest); err == nil {
				break
			}
		}
		if err != nil {
			return fail(err, rest)
		}
	}

	if strings.HasPrefix(rest, "?") {
		ref.HasQuery = true
		sub := rest[1:]
		if ref.Query, rest, err = uri.ParseQuery(sub); err != nil {
			return fail(err, sub)
		}
	}
	if strings.HasPrefix(rest, "#") {
		ref.HasFragment = true
		sub := rest[1:]
		if ref.Fragment, rest, err = uri.ParseFragment(sub); err != nil {
			return fail(err, sub)
		}
	}

	if rest != "" && strict {
		return reference{}, errtrace.Wrap(errorutil.Wrapf(errTrailingInput, "%q at offset %d", rest, len(s)-len(rest)))
	}
	ref.Rest = rest
	return ref, nil
}

// atOffset moves a production failure by off bytes,
// from the sub-input the production received to the whole reference.
func atOffset(err error, off int) error {
	var pe *uri.ParseError
	if off == 0 || !errors.As(err, &pe) {
		return err //errtrace:skip
	}
	return &uri.ParseError{Rule: pe.Rule, Pos: pe.Pos + off, Kind: pe.Kind} //errtrace:skip
}

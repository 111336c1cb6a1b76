package uri

import (
	"log/slog"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urispan/internal/constraints"
)

// PartKind tells which trailing URI part a [Part] holds.
type PartKind uint8

const (
	PartQuery PartKind = iota
	PartFragment
)

func (k PartKind) String() string {
	switch k {
	case PartQuery:
		return "query"
	case PartFragment:
		return "fragment"
	default:
		return "PartKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Part is a query or a fragment borrowed from the parsed input.
// Both share one character set and differ only in Kind.
type Part[T constraints.Byteseq] struct {
	Kind PartKind
	Text T
}

func (p Part[T]) String() string { return string(p.Text) }

func (p Part[T]) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("kind", p.Kind.String()),
		slog.String("text", string(p.Text)),
	)
}

// ParseQuery matches query at the head of in:
//
//	query = *( pchar / "/" / "?" )
//
// The leading "?" delimiter is not part of the production. It never fails.
func ParseQuery[T constraints.Byteseq](in T) (Part[T], T, error) {
	q, rest, err := spanOf(in, "query", 0, queryChar[T])
	if err != nil {
		return Part[T]{}, in, errtrace.Wrap(err)
	}
	return Part[T]{Kind: PartQuery, Text: q}, rest, nil
}

func queryChar[T constraints.Byteseq](in T) (byte, T, error) {
	return choice[byte, T](in, ParsePChar[T], literal[T]('/'), literal[T]('?'))
}

// ParseFragment matches fragment at the head of in:
//
//	fragment = *( pchar / "/" / "?" )
//
// It is [ParseQuery] with the result tagged as [PartFragment].
func ParseFragment[T constraints.Byteseq](in T) (Part[T], T, error) {
	p, rest, err := ParseQuery(in)
	if err != nil {
		return Part[T]{}, in, errtrace.Wrap(err)
	}
	p.Kind = PartFragment
	return p, rest, nil
}

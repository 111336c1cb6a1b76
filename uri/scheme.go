package uri

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/urispan/internal/constraints"
)

// ParseScheme matches scheme at the head of in:
//
//	scheme = ALPHA *( ALPHA / DIGIT / "+" / "-" / "." )
//
// The ":" delimiter that follows a scheme is not part of the production.
func ParseScheme[T constraints.Byteseq](in T) (T, T, error) {
	if _, _, err := ParseAlpha(in); err != nil {
		return in[:0], in, errtrace.Wrap(renameErr(err, "scheme"))
	}
	tail, _, err := spanOf(in[1:], "scheme", 0, schemeChar[T])
	if err != nil {
		return in[:0], in, errtrace.Wrap(shiftErr(err, 1))
	}
	n := 1 + len(tail)
	return in[:n], in[n:], nil
}

func schemeChar[T constraints.Byteseq](in T) (byte, T, error) {
	return choice[byte, T](in,
		ParseAlpha[T],
		ParseDigit[T],
		literal[T]('+'),
		literal[T]('-'),
		literal[T]('.'),
	)
}

package uri

import "github.com/ghettovoice/urispan/internal/constraints"

// spanOf measures the run of tokens accepted by tok at the head of in and
// returns it as a sub-slice of in together with the remainder.
// The run must hold at least atLeast tokens.
//
// tok yields one logical unit per match, decoded for percent-encoded triples,
// so the raw width of every accepted token is read from the input itself:
// 3 bytes when a valid triple starts at the current offset, 1 byte otherwise.
// Nothing is sliced until the repetition stops, and a triple is never split.
func spanOf[T constraints.Byteseq](in T, rule string, atLeast int, tok parser[byte, T]) (T, T, error) {
	var off, n int
	for {
		if _, _, err := tok(in[off:]); err != nil {
			if n < atLeast {
				return in[:0], in, shiftErr(renameErr(err, rule), off)
			}
			break
		}
		off += tokenWidth(in[off:])
		n++
	}
	return in[:off], in[off:], nil
}

func tokenWidth[T constraints.Byteseq](in T) int {
	if isPctTriple(in) {
		return 3
	}
	return 1
}

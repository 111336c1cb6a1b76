package uri

import "github.com/ghettovoice/urispan/internal/constraints"

// parser is the shape shared by the productions: it matches a prefix of in
// and returns the production value together with the unconsumed suffix.
// On failure the input is returned untouched.
type parser[V any, T constraints.Byteseq] func(in T) (V, T, error)

// choice tries ps in order against the same input and returns the first success.
// When every alternative fails, the failure that got furthest into the input is returned,
// the first listed one on a tie.
func choice[V any, T constraints.Byteseq](in T, ps ...parser[V, T]) (V, T, error) {
	var (
		zero    V
		best    error
		bestPos = -1
	)
	for _, p := range ps {
		v, rest, err := p(in)
		if err == nil {
			return v, rest, nil
		}
		if pos := errPos(err); pos > bestPos || best == nil {
			best, bestPos = err, pos
		}
	}
	return zero, in, best
}

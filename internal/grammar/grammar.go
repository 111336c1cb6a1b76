// Package grammar provides the RFC 3986 rules as ABNF operators together with match helpers.
package grammar

import (
	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/urispan/internal/constraints"
)

func init() {
	abnf.EnableNodeCache(10 * 1024)
}

// Longest returns the length of the longest prefix of s matched by op, or -1 if op does not match.
func Longest[T constraints.Byteseq](op abnf.Operator, s T) int {
	ns := abnf.NewNodes()
	defer ns.Free()

	if err := op([]byte(s), 0, ns); err != nil {
		return -1
	}
	n := ns.Best()
	if n == nil {
		return -1
	}
	return n.Len()
}

// Match reports whether op matches the whole s.
func Match[T constraints.Byteseq](op abnf.Operator, s T) bool {
	return Longest(op, s) == len(s)
}

package uri

import "github.com/ghettovoice/urispan/internal/constraints"

// ParsePctEncoded matches a percent-encoded triple at the head of in and returns the decoded byte:
//
//	pct-encoded = "%" HEXDIG HEXDIG
//
// The decoded value only confirms that the triple is well-formed,
// spans returned by other productions always keep the encoded bytes.
func ParsePctEncoded[T constraints.Byteseq](in T) (byte, T, error) {
	if len(in) == 0 || in[0] != '%' {
		return 0, in, newParseError("pct-encoded", 0, ErrUnexpectedChar)
	}
	for i := 1; i < 3; i++ {
		if len(in) <= i {
			return 0, in, newParseError("pct-encoded", i, ErrIncompleteInput)
		}
		if !IsHexDig(in[i]) {
			return 0, in, newParseError("pct-encoded", i, ErrUnexpectedChar)
		}
	}
	return unhex(in[1])<<4 | unhex(in[2]), in[3:], nil
}

// isPctTriple reports whether a valid percent-encoded triple starts in.
func isPctTriple[T constraints.Byteseq](in T) bool {
	return len(in) >= 3 && in[0] == '%' && IsHexDig(in[1]) && IsHexDig(in[2])
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

package uri

import "github.com/ghettovoice/urispan/internal/constraints"

// charClass is a set of RFC 3986 character classes.
//
//	ALPHA       = %x41-5A / %x61-7A
//	DIGIT       = %x30-39
//	HEXDIG      = DIGIT / "A" / "B" / "C" / "D" / "E" / "F"
//	unreserved  = ALPHA / DIGIT / "-" / "." / "_" / "~"
//	reserved    = gen-delims / sub-delims
//	gen-delims  = ":" / "/" / "?" / "#" / "[" / "]" / "@"
//	sub-delims  = "!" / "$" / "&" / "'" / "(" / ")"
//	            / "*" / "+" / "," / ";" / "="
type charClass uint8

const (
	classAlpha charClass = 1 << iota
	classDigit
	classHexLetter
	classMark
	classSubDelim
	classGenDelim

	classHexDig     = classDigit | classHexLetter
	classUnreserved = classAlpha | classDigit | classMark
	classReserved   = classGenDelim | classSubDelim
)

const (
	markChars     = "-._~"
	subDelimChars = "!$&'()*+,;="
	genDelimChars = ":/?#[]@"
	hexLetters    = "ABCDEFabcdef"
)

var charClasses = func() (t [256]charClass) {
	for c := 'A'; c <= 'Z'; c++ {
		t[c] |= classAlpha
		t[c+'a'-'A'] |= classAlpha
	}
	for c := '0'; c <= '9'; c++ {
		t[c] |= classDigit
	}
	for i := range len(hexLetters) {
		t[hexLetters[i]] |= classHexLetter
	}
	for i := range len(markChars) {
		t[markChars[i]] |= classMark
	}
	for i := range len(subDelimChars) {
		t[subDelimChars[i]] |= classSubDelim
	}
	for i := range len(genDelimChars) {
		t[genDelimChars[i]] |= classGenDelim
	}
	return t
}()

func (cc charClass) has(c byte) bool { return charClasses[c]&cc != 0 }

// IsAlpha checks ALPHA rule.
func IsAlpha(c byte) bool { return classAlpha.has(c) }

// IsDigit checks DIGIT rule.
func IsDigit(c byte) bool { return classDigit.has(c) }

// IsHexDig checks HEXDIG rule. Both letter cases are accepted.
func IsHexDig(c byte) bool { return classHexDig.has(c) }

// IsUnreserved checks unreserved rule.
func IsUnreserved(c byte) bool { return classUnreserved.has(c) }

// IsSubDelims checks sub-delims rule.
func IsSubDelims(c byte) bool { return classSubDelim.has(c) }

// IsGenDelims checks gen-delims rule.
func IsGenDelims(c byte) bool { return classGenDelim.has(c) }

// IsReserved checks reserved rule.
func IsReserved(c byte) bool { return classReserved.has(c) }

// IsPChar reports whether c is a pchar on its own, i.e. without percent-encoding.
func IsPChar(c byte) bool { return (classUnreserved|classSubDelim).has(c) || c == ':' || c == '@' }

// charOf matches one character of the class set at the head of in.
func charOf[T constraints.Byteseq](in T, rule string, set charClass) (byte, T, error) {
	if len(in) == 0 || !set.has(in[0]) {
		return 0, in, newParseError(rule, 0, ErrUnexpectedChar)
	}
	return in[0], in[1:], nil
}

// literal returns a parser matching exactly the character c.
func literal[T constraints.Byteseq](c byte) parser[byte, T] {
	return func(in T) (byte, T, error) {
		if len(in) == 0 || in[0] != c {
			return 0, in, newParseError(quoteChar(c), 0, ErrUnexpectedChar)
		}
		return c, in[1:], nil
	}
}

func quoteChar(c byte) string { return `"` + string(rune(c)) + `"` }

// ParseAlpha matches ALPHA at the head of in.
func ParseAlpha[T constraints.Byteseq](in T) (byte, T, error) {
	return charOf(in, "ALPHA", classAlpha)
}

// ParseDigit matches DIGIT at the head of in.
func ParseDigit[T constraints.Byteseq](in T) (byte, T, error) {
	return charOf(in, "DIGIT", classDigit)
}

// ParseHexDig matches HEXDIG at the head of in.
func ParseHexDig[T constraints.Byteseq](in T) (byte, T, error) {
	return charOf(in, "HEXDIG", classHexDig)
}

// ParseUnreserved matches unreserved at the head of in.
func ParseUnreserved[T constraints.Byteseq](in T) (byte, T, error) {
	return charOf(in, "unreserved", classUnreserved)
}

// ParseSubDelims matches sub-delims at the head of in.
func ParseSubDelims[T constraints.Byteseq](in T) (byte, T, error) {
	return charOf(in, "sub-delims", classSubDelim)
}

// ParseGenDelims matches gen-delims at the head of in.
func ParseGenDelims[T constraints.Byteseq](in T) (byte, T, error) {
	return charOf(in, "gen-delims", classGenDelim)
}

// ParseReserved matches reserved at the head of in.
func ParseReserved[T constraints.Byteseq](in T) (byte, T, error) {
	c, rest, err := choice[byte, T](in, ParseGenDelims[T], ParseSubDelims[T])
	return c, rest, renameErr(err, "reserved")
}

// ParsePChar matches pchar at the head of in:
//
//	pchar = unreserved / pct-encoded / sub-delims / ":" / "@"
//
// A percent-encoded triple yields its decoded byte.
func ParsePChar[T constraints.Byteseq](in T) (byte, T, error) {
	c, rest, err := choice[byte, T](in,
		ParseUnreserved[T],
		ParsePctEncoded[T],
		ParseSubDelims[T],
		literal[T](':'),
		literal[T]('@'),
	)
	return c, rest, renameErr(err, "pchar")
}

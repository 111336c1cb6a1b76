package uri

import (
	"log/slog"
	"strconv"
	"strings"

	"braces.dev/errtrace"
	"github.com/miekg/dns"

	"github.com/ghettovoice/urispan/internal/constraints"
	"github.com/ghettovoice/urispan/internal/grammar"
)

// HostKind tells which alternative of the host rule matched.
type HostKind uint8

const (
	// HostRegName is a registered name, possibly empty.
	HostRegName HostKind = iota
	// HostIPv4 is a dotted-quad IPv4 address.
	HostIPv4
	// HostIPv6 is an IPv6 address, bracketed when it comes from [ParseIPLiteral] or [ParseHost].
	HostIPv6
	// HostIPvFuture is an IPvFuture literal, bracketed when it comes from [ParseIPLiteral] or [ParseHost].
	HostIPvFuture
)

func (k HostKind) String() string {
	switch k {
	case HostRegName:
		return "reg-name"
	case HostIPv4:
		return "IPv4address"
	case HostIPv6:
		return "IPv6address"
	case HostIPvFuture:
		return "IPvFuture"
	default:
		return "HostKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Host is a host borrowed from the parsed input.
type Host[T constraints.Byteseq] struct {
	Kind HostKind
	Text T
}

func (h Host[T]) String() string { return string(h.Text) }

// Literal returns the address of an IP literal without the enclosing brackets.
// For other hosts it returns the text as is.
func (h Host[T]) Literal() T {
	if n := len(h.Text); n >= 2 && h.Text[0] == '[' && h.Text[n-1] == ']' {
		return h.Text[1 : n-1]
	}
	return h.Text
}

// IsDomainName reports whether h is a registered name that is also a valid DNS domain name.
// Percent-encoded names are never reported as domain names.
func (h Host[T]) IsDomainName() bool {
	if h.Kind != HostRegName || len(h.Text) == 0 {
		return false
	}
	s := string(h.Text)
	if strings.IndexByte(s, '%') >= 0 {
		return false
	}
	_, ok := dns.IsDomainName(s)
	return ok
}

func (h Host[T]) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("kind", h.Kind.String()),
		slog.String("text", string(h.Text)),
	)
}

// ParseHost matches host at the head of in:
//
//	host = IP-literal / IPv4address / reg-name
//
// The alternatives are tried in this order. Since reg-name may be empty, ParseHost never fails.
// An IPv4 address immediately followed by a reg-name character is left to reg-name,
// so "10.0.0.1.example" is a single registered name.
func ParseHost[T constraints.Byteseq](in T) (Host[T], T, error) {
	h, rest, err := choice[Host[T], T](in, ParseIPLiteral[T], hostIPv4[T], ParseRegName[T])
	return h, rest, errtrace.Wrap(err)
}

func hostIPv4[T constraints.Byteseq](in T) (Host[T], T, error) {
	h, rest, err := ParseIPv4Address(in)
	if err != nil {
		return h, rest, err //errtrace:skip
	}
	if len(rest) > 0 && isRegNameChar(rest) {
		return Host[T]{}, in, newParseError("IPv4address", len(in)-len(rest), ErrUnexpectedChar)
	}
	return h, rest, nil
}

// ParseIPLiteral matches IP-literal at the head of in:
//
//	IP-literal = "[" ( IPv6address / IPvFuture  ) "]"
//
// The returned host text includes the brackets.
func ParseIPLiteral[T constraints.Byteseq](in T) (Host[T], T, error) {
	if len(in) == 0 || in[0] != '[' {
		return Host[T]{}, in, newParseError("IP-literal", 0, ErrUnexpectedChar)
	}
	h, _, err := choice[Host[T], T](in[1:], ParseIPvFuture[T], ParseIPv6Address[T])
	if err != nil {
		return Host[T]{}, in, errtrace.Wrap(shiftErr(err, 1))
	}
	end := 1 + len(h.Text)
	if end >= len(in) || in[end] != ']' {
		return Host[T]{}, in, newParseError("IP-literal", end, ErrUnexpectedChar)
	}
	end++
	return Host[T]{Kind: h.Kind, Text: in[:end]}, in[end:], nil
}

// ParseIPv6Address matches the longest IPv6address at the head of in,
// covering every elided-zero form and the embedded IPv4 tail:
//
//	IPv6address =                            6( h16 ":" ) ls32
//	            /                       "::" 5( h16 ":" ) ls32
//	            / [               h16 ] "::" 4( h16 ":" ) ls32
//	            / [ *1( h16 ":" ) h16 ] "::" 3( h16 ":" ) ls32
//	            / [ *2( h16 ":" ) h16 ] "::" 2( h16 ":" ) ls32
//	            / [ *3( h16 ":" ) h16 ] "::"    h16 ":"   ls32
//	            / [ *4( h16 ":" ) h16 ] "::"              ls32
//	            / [ *5( h16 ":" ) h16 ] "::"              h16
//	            / [ *6( h16 ":" ) h16 ] "::"
//	ls32        = ( h16 ":" h16 ) / IPv4address
//	h16         = 1*4HEXDIG
func ParseIPv6Address[T constraints.Byteseq](in T) (Host[T], T, error) {
	n := grammar.Longest(grammar.Operators().IPv6address, in)
	if n <= 0 {
		return Host[T]{}, in, newParseError("IPv6address", 0, ErrUnexpectedChar)
	}
	return Host[T]{Kind: HostIPv6, Text: in[:n]}, in[n:], nil
}

// ParseIPvFuture matches IPvFuture at the head of in:
//
//	IPvFuture = "v" 1*HEXDIG "." 1*( unreserved / sub-delims / ":" )
func ParseIPvFuture[T constraints.Byteseq](in T) (Host[T], T, error) {
	if len(in) == 0 || in[0] != 'v' && in[0] != 'V' {
		return Host[T]{}, in, newParseError("IPvFuture", 0, ErrUnexpectedChar)
	}
	ver, _, err := spanOf(in[1:], "IPvFuture", 1, ParseHexDig[T])
	if err != nil {
		return Host[T]{}, in, errtrace.Wrap(shiftErr(err, 1))
	}
	off := 1 + len(ver)
	if off >= len(in) || in[off] != '.' {
		return Host[T]{}, in, newParseError("IPvFuture", off, ErrUnexpectedChar)
	}
	off++
	addr, _, err := spanOf(in[off:], "IPvFuture", 1, ipvFutureChar[T])
	if err != nil {
		return Host[T]{}, in, errtrace.Wrap(shiftErr(err, off))
	}
	off += len(addr)
	return Host[T]{Kind: HostIPvFuture, Text: in[:off]}, in[off:], nil
}

func ipvFutureChar[T constraints.Byteseq](in T) (byte, T, error) {
	return choice[byte, T](in, ParseUnreserved[T], ParseSubDelims[T], literal[T](':'))
}

// ParseIPv4Address matches IPv4address at the head of in:
//
//	IPv4address = dec-octet "." dec-octet "." dec-octet "." dec-octet
//
// Only the first four octets are consumed, "1.2.3.4.5" leaves ".5" in the remainder.
func ParseIPv4Address[T constraints.Byteseq](in T) (Host[T], T, error) {
	off := 0
	for i := range 4 {
		if i > 0 {
			if off >= len(in) || in[off] != '.' {
				return Host[T]{}, in, newParseError("IPv4address", off, ErrUnexpectedChar)
			}
			off++
		}
		n, err := decOctet(in[off:])
		if err != nil {
			return Host[T]{}, in, errtrace.Wrap(shiftErr(err, off))
		}
		off += n
	}
	return Host[T]{Kind: HostIPv4, Text: in[:off]}, in[off:], nil
}

// decOctet measures a dec-octet at the head of in.
//
//	dec-octet = DIGIT                 ; 0-9
//	          / %x31-39 DIGIT         ; 10-99
//	          / "1" 2DIGIT            ; 100-199
//	          / "2" %x30-34 DIGIT     ; 200-249
//	          / "25" %x30-35          ; 250-255
//
// The digit run is checked for a leading zero and then for its magnitude.
func decOctet[T constraints.Byteseq](in T) (int, error) {
	digits, _, err := spanOf(in, "dec-octet", 1, ParseDigit[T])
	if err != nil {
		return 0, err //errtrace:skip
	}
	if len(digits) > 1 && digits[0] == '0' {
		return 0, newParseError("dec-octet", 1, ErrUnexpectedChar)
	}
	if _, err := strconv.ParseUint(string(digits), 10, 8); err != nil {
		return 0, newParseError("dec-octet", 0, ErrOutOfRange)
	}
	return len(digits), nil
}

// ParseRegName matches reg-name at the head of in:
//
//	reg-name = *( unreserved / pct-encoded / sub-delims )
//
// An empty name is valid, so ParseRegName never fails.
func ParseRegName[T constraints.Byteseq](in T) (Host[T], T, error) {
	name, rest, err := spanOf(in, "reg-name", 0, regNameChar[T])
	if err != nil {
		return Host[T]{}, in, errtrace.Wrap(err)
	}
	return Host[T]{Kind: HostRegName, Text: name}, rest, nil
}

func regNameChar[T constraints.Byteseq](in T) (byte, T, error) {
	return choice[byte, T](in, ParseUnreserved[T], ParsePctEncoded[T], ParseSubDelims[T])
}

func isRegNameChar[T constraints.Byteseq](in T) bool {
	return IsUnreserved(in[0]) || IsSubDelims(in[0]) || isPctTriple(in)
}

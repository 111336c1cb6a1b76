package grammar

import (
	"sync"

	"github.com/ghettovoice/abnf"
)

// Rules holds the RFC 3986 rules (Appendix A) as ABNF operators.
type Rules struct {
	ALPHA  abnf.Operator
	DIGIT  abnf.Operator
	HEXDIG abnf.Operator

	Unreserved abnf.Operator
	SubDelims  abnf.Operator
	GenDelims  abnf.Operator
	PctEncoded abnf.Operator
	Pchar      abnf.Operator

	Scheme    abnf.Operator
	Authority abnf.Operator
	Userinfo  abnf.Operator
	Host      abnf.Operator
	Port      abnf.Operator
	RegName   abnf.Operator

	IPLiteral   abnf.Operator
	IPvFuture   abnf.Operator
	IPv6address abnf.Operator
	H16         abnf.Operator
	Ls32        abnf.Operator
	IPv4address abnf.Operator
	DecOctet    abnf.Operator

	PathAbempty  abnf.Operator
	PathAbsolute abnf.Operator
	PathNoscheme abnf.Operator
	PathRootless abnf.Operator
	Segment      abnf.Operator
	SegmentNz    abnf.Operator
	SegmentNzNc  abnf.Operator

	Query    abnf.Operator
	Fragment abnf.Operator
}

// Operators returns the shared RFC 3986 rule set.
var Operators = sync.OnceValue(newRules)

func lit(s string) abnf.Operator { return abnf.Literal(`"`+s+`"`, []byte(s)) }

func chars(key, set string) abnf.Operator {
	ops := make([]abnf.Operator, len(set))
	for i := range len(set) {
		ops[i] = lit(set[i : i+1])
	}
	return abnf.Alt(key, ops[0], ops[1:]...)
}

func rng(key string, lo, hi byte) abnf.Operator {
	return abnf.Range(key, []byte{lo}, []byte{hi})
}

func newRules() *Rules {
	r := new(Rules)

	r.ALPHA = abnf.Alt("ALPHA", rng("%x41-5A", 0x41, 0x5A), rng("%x61-7A", 0x61, 0x7A))
	r.DIGIT = rng("DIGIT", 0x30, 0x39)
	r.HEXDIG = abnf.Alt("HEXDIG", r.DIGIT, rng("%x41-46", 0x41, 0x46), rng("%x61-66", 0x61, 0x66))

	r.Unreserved = abnf.Alt("unreserved", r.ALPHA, r.DIGIT, chars(`"-" / "." / "_" / "~"`, "-._~"))
	r.SubDelims = chars("sub-delims", "!$&'()*+,;=")
	r.GenDelims = chars("gen-delims", ":/?#[]@")
	r.PctEncoded = abnf.Concat("pct-encoded", lit("%"), r.HEXDIG, r.HEXDIG)
	r.Pchar = abnf.Alt("pchar", r.Unreserved, r.PctEncoded, r.SubDelims, lit(":"), lit("@"))

	r.Scheme = abnf.Concat("scheme",
		r.ALPHA,
		abnf.Repeat0Inf(`*( ALPHA / DIGIT / "+" / "-" / "." )`,
			abnf.Alt(`ALPHA / DIGIT / "+" / "-" / "."`, r.ALPHA, r.DIGIT, lit("+"), lit("-"), lit(".")),
		),
	)

	r.Userinfo = abnf.Repeat0Inf("userinfo",
		abnf.Alt(`unreserved / pct-encoded / sub-delims / ":"`, r.Unreserved, r.PctEncoded, r.SubDelims, lit(":")),
	)
	r.RegName = abnf.Repeat0Inf("reg-name",
		abnf.Alt("unreserved / pct-encoded / sub-delims", r.Unreserved, r.PctEncoded, r.SubDelims),
	)
	r.Port = abnf.Repeat0Inf("port", r.DIGIT)

	r.DecOctet = abnf.Alt("dec-octet",
		abnf.Concat(`"25" %x30-35`, lit("25"), rng("%x30-35", 0x30, 0x35)),
		abnf.Concat(`"2" %x30-34 DIGIT`, lit("2"), rng("%x30-34", 0x30, 0x34), r.DIGIT),
		abnf.Concat(`"1" 2DIGIT`, lit("1"), abnf.Repeat("2DIGIT", 2, 2, r.DIGIT)),
		abnf.Concat("%x31-39 DIGIT", rng("%x31-39", 0x31, 0x39), r.DIGIT),
		r.DIGIT,
	)
	r.IPv4address = abnf.Concat("IPv4address",
		r.DecOctet, lit("."), r.DecOctet, lit("."), r.DecOctet, lit("."), r.DecOctet,
	)

	r.H16 = abnf.Repeat("h16", 1, 4, r.HEXDIG)
	h16c := abnf.Concat(`h16 ":"`, r.H16, lit(":"))
	r.Ls32 = abnf.Alt("ls32", abnf.Concat(`h16 ":" h16`, r.H16, lit(":"), r.H16), r.IPv4address)
	dcolon := lit("::")
	// [ *n( h16 ":" ) h16 ], rep being *n( h16 ":" )
	head := func(rep abnf.Operator) abnf.Operator {
		if rep == nil {
			return abnf.Optional("[ h16 ]", r.H16)
		}
		return abnf.Optional(`[ *n( h16 ":" ) h16 ]`, abnf.Concat(`*n( h16 ":" ) h16`, rep, r.H16))
	}
	r.IPv6address = abnf.Alt("IPv6address",
		abnf.Concat(`6( h16 ":" ) ls32`, abnf.Repeat(`6( h16 ":" )`, 6, 6, h16c), r.Ls32),
		abnf.Concat(`"::" 5( h16 ":" ) ls32`, dcolon, abnf.Repeat(`5( h16 ":" )`, 5, 5, h16c), r.Ls32),
		abnf.Concat(`[ h16 ] "::" 4( h16 ":" ) ls32`, head(nil), dcolon, abnf.Repeat(`4( h16 ":" )`, 4, 4, h16c), r.Ls32),
		abnf.Concat(`[ *1( h16 ":" ) h16 ] "::" 3( h16 ":" ) ls32`, head(abnf.Repeat(`*1( h16 ":" )`, 0, 1, h16c)), dcolon, abnf.Repeat(`3( h16 ":" )`, 3, 3, h16c), r.Ls32),
		abnf.Concat(`[ *2( h16 ":" ) h16 ] "::" 2( h16 ":" ) ls32`, head(abnf.Repeat(`*2( h16 ":" )`, 0, 2, h16c)), dcolon, abnf.Repeat(`2( h16 ":" )`, 2, 2, h16c), r.Ls32),
		abnf.Concat(`[ *3( h16 ":" ) h16 ] "::" h16 ":" ls32`, head(abnf.Repeat(`*3( h16 ":" )`, 0, 3, h16c)), dcolon, h16c, r.Ls32),
		abnf.Concat(`[ *4( h16 ":" ) h16 ] "::" ls32`, head(abnf.Repeat(`*4( h16 ":" )`, 0, 4, h16c)), dcolon, r.Ls32),
		abnf.Concat(`[ *5( h16 ":" ) h16 ] "::" h16`, head(abnf.Repeat(`*5( h16 ":" )`, 0, 5, h16c)), dcolon, r.H16),
		abnf.Concat(`[ *6( h16 ":" ) h16 ] "::"`, head(abnf.Repeat(`*6( h16 ":" )`, 0, 6, h16c)), dcolon),
	)
	r.IPvFuture = abnf.Concat("IPvFuture",
		lit("v"),
		abnf.Repeat1Inf("1*HEXDIG", r.HEXDIG),
		lit("."),
		abnf.Repeat1Inf(`1*( unreserved / sub-delims / ":" )`,
			abnf.Alt(`unreserved / sub-delims / ":"`, r.Unreserved, r.SubDelims, lit(":")),
		),
	)
	r.IPLiteral = abnf.Concat("IP-literal", lit("["), abnf.Alt("IPv6address / IPvFuture", r.IPv6address, r.IPvFuture), lit("]"))

	r.Host = abnf.Alt("host", r.IPLiteral, r.IPv4address, r.RegName)
	r.Authority = abnf.Concat("authority",
		abnf.Optional(`[ userinfo "@" ]`, abnf.Concat(`userinfo "@"`, r.Userinfo, lit("@"))),
		r.Host,
		abnf.Optional(`[ ":" port ]`, abnf.Concat(`":" port`, lit(":"), r.Port)),
	)

	r.Segment = abnf.Repeat0Inf("segment", r.Pchar)
	r.SegmentNz = abnf.Repeat1Inf("segment-nz", r.Pchar)
	r.SegmentNzNc = abnf.Repeat1Inf("segment-nz-nc",
		abnf.Alt(`unreserved / pct-encoded / sub-delims / "@"`, r.Unreserved, r.PctEncoded, r.SubDelims, lit("@")),
	)

	slashSegments := abnf.Repeat0Inf(`*( "/" segment )`, abnf.Concat(`"/" segment`, lit("/"), r.Segment))
	r.PathAbempty = abnf.Concat("path-abempty", slashSegments)
	r.PathAbsolute = abnf.Concat("path-absolute",
		lit("/"),
		abnf.Optional(`[ segment-nz *( "/" segment ) ]`, abnf.Concat(`segment-nz *( "/" segment )`, r.SegmentNz, slashSegments)),
	)
	r.PathNoscheme = abnf.Concat("path-noscheme", r.SegmentNzNc, slashSegments)
	r.PathRootless = abnf.Concat("path-rootless", r.SegmentNz, slashSegments)

	r.Query = abnf.Repeat0Inf("query", abnf.Alt(`pchar / "/" / "?"`, r.Pchar, lit("/"), lit("?")))
	r.Fragment = abnf.Repeat0Inf("fragment", abnf.Alt(`pchar / "/" / "?"`, r.Pchar, lit("/"), lit("?")))

	return r
}

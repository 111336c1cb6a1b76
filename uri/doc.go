// Package uri implements the component grammar of the generic URI syntax (RFC 3986, Appendix A).
//
// # Overview
//
// Every ABNF production is an exported function of the shape
//
//	func ParseXxx[T ~string | ~[]byte](in T) (value V, rest T, err error)
//
// which matches a prefix of in and returns the production value together with the unconsumed
// remainder. Values never copy the input: spans are sub-slices (or substrings) of in,
// so percent-encoded triples are kept verbatim and span + rest always reconstruct in.
// The returned views stay valid as long as the caller keeps the input alive and unmodified.
//
//	scheme, rest, err := uri.ParseScheme("http://example.com")
//	// scheme == "http", rest == "://example.com"
//
//	auth, rest, err := uri.ParseAuthority(rest[3:])
//	// auth.Host.Kind == uri.HostRegName, auth.Host.Text == "example.com"
//
// Assembling a full URI or relative reference from the productions is left to the caller.
// See cmd/urispan for a reference consumer.
//
// # Productions
//
//   - characters: [ParseAlpha], [ParseDigit], [ParseHexDig], [ParseUnreserved],
//     [ParseSubDelims], [ParseGenDelims], [ParseReserved], [ParsePChar], [ParsePctEncoded];
//   - authority: [ParseAuthority], [ParseUserinfo], [ParseHost], [ParsePort];
//   - host: [ParseIPLiteral], [ParseIPv6Address], [ParseIPvFuture], [ParseIPv4Address], [ParseRegName];
//   - path: [ParsePath], [ParsePathAbEmpty], [ParsePathAbsolute], [ParsePathNoScheme],
//     [ParsePathRootless], [ParsePathEmpty], [ParseSegment], [ParseSegmentNZ], [ParseSegmentNZNC];
//   - trailing parts: [ParseQuery], [ParseFragment];
//   - [ParseScheme].
//
// # Errors
//
// Failures are soft: the input is returned untouched and the caller may try another production.
// Every failure is a [ParseError] carrying the failed rule, the byte offset relative to the input
// of the called production and one of the kinds [ErrUnexpectedChar], [ErrIncompleteInput]
// or [ErrOutOfRange]:
//
//	_, _, err := uri.ParsePort("65536")
//	errors.Is(err, uri.ErrOutOfRange) // true
//
// When all alternatives of a rule fail, the failure that got furthest into the input is reported.
//
// # Thread Safety
//
// Productions are pure functions without shared mutable state and may be called concurrently.
package uri

//go:generate go tool errtrace -w .

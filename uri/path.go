package uri

import (
	"iter"
	"log/slog"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urispan/internal/constraints"
)

// PathKind tells which path form matched.
type PathKind uint8

const (
	PathEmpty    PathKind = iota // path-empty
	PathAbEmpty                  // path-abempty
	PathAbsolute                 // path-absolute
	PathNoScheme                 // path-noscheme
	PathRootless                 // path-rootless
)

func (k PathKind) String() string {
	switch k {
	case PathEmpty:
		return "path-empty"
	case PathAbEmpty:
		return "path-abempty"
	case PathAbsolute:
		return "path-absolute"
	case PathNoScheme:
		return "path-noscheme"
	case PathRootless:
		return "path-rootless"
	default:
		return "PathKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Path is a path borrowed from the parsed input.
type Path[T constraints.Byteseq] struct {
	Kind PathKind
	Text T
}

func (p Path[T]) String() string { return string(p.Text) }

// Segments iterates over the "/"-separated segments of the path.
// The leading "/" of an absolute or abempty path does not open an extra segment,
// so "/a//b" yields "a", "", "b" and "/" yields a single empty segment.
func (p Path[T]) Segments() iter.Seq[T] {
	return func(yield func(T) bool) {
		s := p.Text
		if len(s) == 0 {
			return
		}
		if s[0] == '/' {
			s = s[1:]
		}
		for {
			i := indexSlash(s)
			if i < 0 {
				yield(s)
				return
			}
			if !yield(s[:i]) {
				return
			}
			s = s[i+1:]
		}
	}
}

func indexSlash[T constraints.Byteseq](s T) int {
	for i := range len(s) {
		if s[i] == '/' {
			return i
		}
	}
	return -1
}

func (p Path[T]) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("kind", p.Kind.String()),
		slog.String("text", string(p.Text)),
	)
}

// ParsePath matches path at the head of in:
//
//	path = path-abempty    ; begins with "/" or is empty
//	     / path-absolute   ; begins with "/" but not "//"
//	     / path-noscheme   ; begins with a non-colon segment
//	     / path-rootless   ; begins with a segment
//	     / path-empty      ; zero characters
//
// The forms are tried in this order and the first match wins, even if a later form
// would consume more: "a:b" is path-noscheme "a" with ":b" left over.
// A zero-length path-abempty does not count as a match.
func ParsePath[T constraints.Byteseq](in T) (Path[T], T, error) {
	p, rest, err := choice[Path[T], T](in,
		nonEmptyPathAbEmpty[T],
		ParsePathAbsolute[T],
		ParsePathNoScheme[T],
		ParsePathRootless[T],
		ParsePathEmpty[T],
	)
	return p, rest, errtrace.Wrap(err)
}

func nonEmptyPathAbEmpty[T constraints.Byteseq](in T) (Path[T], T, error) {
	p, rest, _ := ParsePathAbEmpty(in)
	if len(p.Text) == 0 {
		return Path[T]{}, in, newParseError("path-abempty", 0, ErrUnexpectedChar)
	}
	return p, rest, nil
}

// ParsePathAbEmpty matches path-abempty at the head of in:
//
//	path-abempty = *( "/" segment )
//
// It never fails.
func ParsePathAbEmpty[T constraints.Byteseq](in T) (Path[T], T, error) {
	off := 0
	for off < len(in) && in[off] == '/' {
		seg, _, _ := ParseSegment(in[off+1:])
		off += 1 + len(seg)
	}
	return Path[T]{Kind: PathAbEmpty, Text: in[:off]}, in[off:], nil
}

// ParsePathAbsolute matches path-absolute at the head of in:
//
//	path-absolute = "/" [ segment-nz *( "/" segment ) ]
//
// Given "//a" it matches only the first "/".
func ParsePathAbsolute[T constraints.Byteseq](in T) (Path[T], T, error) {
	if len(in) == 0 || in[0] != '/' {
		return Path[T]{}, in, newParseError("path-absolute", 0, ErrUnexpectedChar)
	}
	n := 1
	if p, _, err := ParsePathRootless(in[1:]); err == nil {
		n += len(p.Text)
	}
	return Path[T]{Kind: PathAbsolute, Text: in[:n]}, in[n:], nil
}

// ParsePathNoScheme matches path-noscheme at the head of in:
//
//	path-noscheme = segment-nz-nc *( "/" segment )
func ParsePathNoScheme[T constraints.Byteseq](in T) (Path[T], T, error) {
	nz, rest, err := ParseSegmentNZNC(in)
	if err != nil {
		return Path[T]{}, in, errtrace.Wrap(renameErr(err, "path-noscheme"))
	}
	tail, _, _ := ParsePathAbEmpty(rest)
	n := len(nz) + len(tail.Text)
	return Path[T]{Kind: PathNoScheme, Text: in[:n]}, in[n:], nil
}

// ParsePathRootless matches path-rootless at the head of in:
//
//	path-rootless = segment-nz *( "/" segment )
func ParsePathRootless[T constraints.Byteseq](in T) (Path[T], T, error) {
	nz, rest, err := ParseSegmentNZ(in)
	if err != nil {
		return Path[T]{}, in, errtrace.Wrap(renameErr(err, "path-rootless"))
	}
	tail, _, _ := ParsePathAbEmpty(rest)
	n := len(nz) + len(tail.Text)
	return Path[T]{Kind: PathRootless, Text: in[:n]}, in[n:], nil
}

// ParsePathEmpty matches path-empty, which consumes nothing.
// It succeeds only if in does not start with a pchar.
func ParsePathEmpty[T constraints.Byteseq](in T) (Path[T], T, error) {
	if _, _, err := ParsePChar(in); err == nil {
		return Path[T]{}, in, newParseError("path-empty", 0, ErrUnexpectedChar)
	}
	return Path[T]{Kind: PathEmpty, Text: in[:0]}, in, nil
}

// ParseSegment matches segment at the head of in:
//
//	segment = *pchar
//
// It never fails.
func ParseSegment[T constraints.Byteseq](in T) (T, T, error) {
	seg, rest, err := spanOf(in, "segment", 0, ParsePChar[T])
	return seg, rest, errtrace.Wrap(err)
}

// ParseSegmentNZ matches segment-nz at the head of in:
//
//	segment-nz = 1*pchar
func ParseSegmentNZ[T constraints.Byteseq](in T) (T, T, error) {
	seg, rest, err := spanOf(in, "segment-nz", 1, ParsePChar[T])
	return seg, rest, errtrace.Wrap(err)
}

// ParseSegmentNZNC matches segment-nz-nc at the head of in:
//
//	segment-nz-nc = 1*( unreserved / pct-encoded / sub-delims / "@" )
//	              ; non-zero-length segment without any colon ":"
func ParseSegmentNZNC[T constraints.Byteseq](in T) (T, T, error) {
	seg, rest, err := spanOf(in, "segment-nz-nc", 1, segmentNZNCChar[T])
	return seg, rest, errtrace.Wrap(err)
}

func segmentNZNCChar[T constraints.Byteseq](in T) (byte, T, error) {
	return choice[byte, T](in,
		ParseUnreserved[T],
		ParsePctEncoded[T],
		ParseSubDelims[T],
		literal[T]('@'),
	)
}

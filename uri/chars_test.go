package uri_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/urispan/uri"
)

func TestCharClasses(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		fn   func(byte) bool
		in   string
		out  string
	}{
		{"alpha", uri.IsAlpha, "azAZ", "09@[`{-"},
		{"digit", uri.IsDigit, "0123456789", "/:aA"},
		{"hexdig", uri.IsHexDig, "09afAF", "gG:/"},
		{"unreserved", uri.IsUnreserved, "aZ9-._~", "%!:/@ "},
		{"sub-delims", uri.IsSubDelims, "!$&'()*+,;=", ":/?#[]@a%"},
		{"gen-delims", uri.IsGenDelims, ":/?#[]@", "!$&a%"},
		{"reserved", uri.IsReserved, ":/?#[]@!$&'()*+,;=", "a9-._~%"},
		{"pchar", uri.IsPChar, "aZ9-._~!$&'()*+,;=:@", "/?#[]% "},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			for i := range len(c.in) {
				if !c.fn(c.in[i]) {
					t.Errorf("%s(%q) = false, want true", c.name, c.in[i])
				}
			}
			for i := range len(c.out) {
				if c.fn(c.out[i]) {
					t.Errorf("%s(%q) = true, want false", c.name, c.out[i])
				}
			}
		})
	}

	for c := 0x80; c <= 0xFF; c++ {
		if uri.IsPChar(byte(c)) || uri.IsReserved(byte(c)) {
			t.Errorf("non-ASCII byte %#x is accepted", c)
		}
	}
}

func TestParseCharProductions(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		parse    func(string) (byte, string, error)
		in       string
		wantChar byte
		wantRest string
		wantErr  *uri.ParseError
	}{
		{"alpha", uri.ParseAlpha[string], "xy", 'x', "y", nil},
		{"alpha fails", uri.ParseAlpha[string], "1", 0, "1", perr("ALPHA", 0, uri.ErrUnexpectedChar)},
		{"digit", uri.ParseDigit[string], "7a", '7', "a", nil},
		{"digit empty", uri.ParseDigit[string], "", 0, "", perr("DIGIT", 0, uri.ErrUnexpectedChar)},
		{"hexdig lower", uri.ParseHexDig[string], "f0", 'f', "0", nil},
		{"hexdig upper", uri.ParseHexDig[string], "F0", 'F', "0", nil},
		{"unreserved", uri.ParseUnreserved[string], "~a", '~', "a", nil},
		{"unreserved fails", uri.ParseUnreserved[string], "%41", 0, "%41", perr("unreserved", 0, uri.ErrUnexpectedChar)},
		{"sub-delims", uri.ParseSubDelims[string], "=x", '=', "x", nil},
		{"gen-delims", uri.ParseGenDelims[string], "#x", '#', "x", nil},
		{"reserved gen", uri.ParseReserved[string], "@x", '@', "x", nil},
		{"reserved sub", uri.ParseReserved[string], "'x", '\'', "x", nil},
		{"reserved fails", uri.ParseReserved[string], "a", 0, "a", perr("reserved", 0, uri.ErrUnexpectedChar)},
		{"pchar plain", uri.ParsePChar[string], "a/", 'a', "/", nil},
		{"pchar colon", uri.ParsePChar[string], ":x", ':', "x", nil},
		{"pchar at", uri.ParsePChar[string], "@x", '@', "x", nil},
		{"pchar escaped", uri.ParsePChar[string], "%2Fx", '/', "x", nil},
		{"pchar slash", uri.ParsePChar[string], "/", 0, "/", perr("pchar", 0, uri.ErrUnexpectedChar)},
		{"pchar cut triple", uri.ParsePChar[string], "%4", 0, "%4", perr("pct-encoded", 2, uri.ErrIncompleteInput)},
		{"pchar bad triple", uri.ParsePChar[string], "%4z", 0, "%4z", perr("pct-encoded", 2, uri.ErrUnexpectedChar)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			gotChar, gotRest, err := c.parse(c.in)
			if diff := cmp.Diff(parseErr(err), c.wantErr); diff != "" {
				t.Errorf("parse(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.in, err, c.wantErr, diff)
			}
			if gotChar != c.wantChar || gotRest != c.wantRest {
				t.Errorf("parse(%q) = (%q, %q), want (%q, %q)", c.in, gotChar, gotRest, c.wantChar, c.wantRest)
			}
		})
	}
}

func TestParsePctEncoded(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		in       string
		wantChar byte
		wantRest string
		wantErr  *uri.ParseError
	}{
		{"digit", "%30*", '0', "*", nil},
		{"upper", "%41g", 'A', "g", nil},
		{"lower", "%7e", '~', "", nil},
		{"mixed case", "%fF", 0xFF, "", nil},
		{"no percent", "41", 0, "41", perr("pct-encoded", 0, uri.ErrUnexpectedChar)},
		{"empty", "", 0, "", perr("pct-encoded", 0, uri.ErrUnexpectedChar)},
		{"percent only", "%", 0, "%", perr("pct-encoded", 1, uri.ErrIncompleteInput)},
		{"one digit", "%4", 0, "%4", perr("pct-encoded", 2, uri.ErrIncompleteInput)},
		{"bad first", "%g1", 0, "%g1", perr("pct-encoded", 1, uri.ErrUnexpectedChar)},
		{"bad second", "%4g", 0, "%4g", perr("pct-encoded", 2, uri.ErrUnexpectedChar)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			gotChar, gotRest, err := uri.ParsePctEncoded(c.in)
			if diff := cmp.Diff(parseErr(err), c.wantErr); diff != "" {
				t.Errorf("uri.ParsePctEncoded(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.in, err, c.wantErr, diff)
			}
			if gotChar != c.wantChar || gotRest != c.wantRest {
				t.Errorf("uri.ParsePctEncoded(%q) = (%q, %q), want (%q, %q)", c.in, gotChar, gotRest, c.wantChar, c.wantRest)
			}
		})
	}
}

func TestParseError(t *testing.T) {
	t.Parallel()

	_, _, err := uri.ParseIPv4Address("256.1.1.1")
	if err == nil {
		t.Fatal("uri.ParseIPv4Address(\"256.1.1.1\") error = nil, want error")
	}
	if got, want := err.Error(), "dec-octet at offset 0: value out of range"; got != want {
		t.Errorf("err.Error() = %q, want %q", got, want)
	}
	if !uri.ErrOutOfRange.Grammar() || !parseErr(err).Grammar() {
		t.Error("grammar errors must report Grammar() = true")
	}
}

package uri

import (
	"log/slog"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urispan/internal/constraints"
	"github.com/ghettovoice/urispan/internal/util"
)

// Port is an optional port number.
// The zero value is an absent port, which is distinct from a present port 0.
type Port struct {
	Num uint16
	Set bool
}

func (p Port) String() string {
	if !p.Set {
		return ""
	}
	return strconv.FormatUint(uint64(p.Num), 10)
}

// Authority is an authority borrowed from the parsed input.
type Authority[T constraints.Byteseq] struct {
	// Userinfo is the text before "@", valid only if HasUserinfo is true.
	Userinfo    T
	HasUserinfo bool
	Host        Host[T]
	Port        Port
}

// HostPort returns the host followed by ":" and the port when the port is present.
func (a Authority[T]) HostPort() string {
	if !a.Port.Set {
		return string(a.Host.Text)
	}
	return string(a.Host.Text) + ":" + a.Port.String()
}

func (a Authority[T]) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	if a.HasUserinfo {
		sb.WriteString(string(a.Userinfo))
		sb.WriteByte('@')
	}
	sb.WriteString(a.HostPort())
	return sb.String()
}

func (a Authority[T]) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 3)
	if a.HasUserinfo {
		attrs = append(attrs, slog.String("userinfo", string(a.Userinfo)))
	}
	attrs = append(attrs, slog.Any("host", a.Host))
	if a.Port.Set {
		attrs = append(attrs, slog.Int("port", int(a.Port.Num)))
	}
	return slog.GroupValue(attrs...)
}

// ParseAuthority matches authority at the head of in:
//
//	authority = [ userinfo "@" ] host [ ":" port ]
//
// Userinfo is taken only when it is followed by "@", otherwise the same bytes are re-read as host.
// A ":" not followed by digits leaves the port absent.
func ParseAuthority[T constraints.Byteseq](in T) (Authority[T], T, error) {
	var auth Authority[T]

	rest := in
	if ui, r, err := ParseUserinfo(rest); err == nil && len(r) > 0 && r[0] == '@' {
		auth.Userinfo, auth.HasUserinfo = ui, true
		rest = r[1:]
	}

	host, r, err := ParseHost(rest)
	if err != nil {
		return Authority[T]{}, in, errtrace.Wrap(shiftErr(err, len(in)-len(rest)))
	}
	auth.Host, rest = host, r

	if len(rest) > 0 && rest[0] == ':' {
		port, r, err := ParsePort(rest[1:])
		if err != nil {
			return Authority[T]{}, in, errtrace.Wrap(shiftErr(err, len(in)-len(rest)+1))
		}
		auth.Port, rest = port, r
	}
	return auth, rest, nil
}

// ParseUserinfo matches userinfo at the head of in:
//
//	userinfo = *( unreserved / pct-encoded / sub-delims / ":" )
//
// The terminating "@" is not part of the production.
func ParseUserinfo[T constraints.Byteseq](in T) (T, T, error) {
	ui, rest, err := spanOf(in, "userinfo", 0, userinfoChar[T])
	return ui, rest, errtrace.Wrap(err)
}

func userinfoChar[T constraints.Byteseq](in T) (byte, T, error) {
	return choice[byte, T](in,
		ParseUnreserved[T],
		ParsePctEncoded[T],
		ParseSubDelims[T],
		literal[T](':'),
	)
}

// ParsePort matches port at the head of in:
//
//	port = *DIGIT
//
// An empty digit run is an absent port. A run that does not fit 16 bits fails with [ErrOutOfRange].
func ParsePort[T constraints.Byteseq](in T) (Port, T, error) {
	digits, rest, err := spanOf(in, "port", 0, ParseDigit[T])
	if err != nil {
		return Port{}, in, errtrace.Wrap(err)
	}
	if len(digits) == 0 {
		return Port{}, rest, nil
	}
	num, err := strconv.ParseUint(string(digits), 10, 16)
	if err != nil {
		return Port{}, in, newParseError("port", 0, ErrOutOfRange)
	}
	return Port{Num: uint16(num), Set: true}, rest, nil
}

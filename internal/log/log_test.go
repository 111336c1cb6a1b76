package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/ghettovoice/urispan/uri"
)

func TestParseErrorFormatting(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(newHandler(slog.NewJSONHandler(&buf, nil)))
	logger.Info("malformed", "cause", &uri.ParseError{Rule: "port", Pos: 4, Kind: uri.ErrOutOfRange})

	want := `"cause":{"rule":"port","pos":4,"kind":"value out of range"}`
	if got := buf.String(); !strings.Contains(got, want) {
		t.Errorf("log output = %q, want it to contain %q", got, want)
	}
}

func TestNoop(t *testing.T) {
	t.Parallel()

	if Noop.Enabled(context.Background(), slog.LevelError) {
		t.Error("Noop.Enabled(LevelError) = true, want false")
	}
	Noop.With("k", "v").WithGroup("g").Error("dropped")
}

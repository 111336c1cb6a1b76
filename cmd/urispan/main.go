// Command urispan decomposes URI references into their RFC 3986 components
// and logs the borrowed span of every component.
//
// Usage:
//
//	urispan [-dev] [-q] [-strict] reference...
//
// The exit status is 1 if any reference could not be decomposed.
package main

//go:generate go tool errtrace -w .

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urispan/internal/errorutil"
	"github.com/ghettovoice/urispan/internal/log"
	"github.com/ghettovoice/urispan/internal/util"
	"github.com/ghettovoice/urispan/uri"
)

func main() {
	dev := flag.Bool("dev", false, "use the developer log output")
	quiet := flag.Bool("q", false, "do not log, report the result with the exit status only")
	strict := flag.Bool("strict", false, "fail when a reference has input left after the last component")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] reference...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	logger := log.Def
	switch {
	case *quiet:
		logger = log.Noop
	case *dev:
		logger = log.Dev
	}

	if err := run(logger, flag.Args(), *strict); err != nil {
		logger.Error("decomposition failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, refs []string, strict bool) error {
	var errs []error
	for _, s := range refs {
		ref, err := decompose(s, strict)
		if err != nil {
			attrs := []any{"input", util.Ellipsis(s, 128), "error", err}
			if pe := (*uri.ParseError)(nil); errors.As(err, &pe) {
				attrs = append(attrs, "cause", pe)
			}
			if errorutil.IsGrammarErr(err) {
				logger.Warn("malformed reference", attrs...)
			} else {
				logger.Error("rejected reference", attrs...)
			}
			errs = append(errs, fmt.Errorf("%q: %w", s, err))
			continue
		}
		logger.Info("reference", "input", util.Ellipsis(s, 128), "components", ref)
	}
	return errtrace.Wrap(errorutil.JoinPrefix("malformed references:", errs...))
}

package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"task-capture/internal/extraction"
	extractionUC "task-capture/internal/extraction/usecase"
	"task-capture/pkg/datemath"
	pkgLog "task-capture/pkg/log"
	"task-capture/pkg/metrics"
)

// nowLayouts are accepted by --now besides RFC 3339.
var nowLayouts = []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02T15:04", "2006-01-02"}

type options struct {
	now           string
	timezone      string
	json          bool
	minConfidence float64
	verbose       bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "capture",
		Short:         "Turn free text into task candidates",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.now, "now", "", "reference time (RFC 3339 or \"2006-01-02 15:04\"), defaults to the current time")
	root.PersistentFlags().StringVar(&opts.timezone, "timezone", "UTC", "IANA timezone of the reference clock")
	root.PersistentFlags().BoolVar(&opts.json, "json", false, "output as JSON")
	root.PersistentFlags().Float64Var(&opts.minConfidence, "min-confidence", extractionUC.DefaultMinConfidence, "drop candidates scored below this")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log pipeline details to stderr")

	root.AddCommand(extractCmd(opts))
	root.AddCommand(voiceCmd(opts))
	root.AddCommand(resolveCmd(opts))
	root.AddCommand(gcalAuthCmd())

	return root
}

// useCase builds the extraction pipeline on the flag-selected clock.
func (o *options) useCase() (extraction.UseCase, error) {
	parser, err := datemath.NewParser(o.timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid --timezone %q: %w", o.timezone, err)
	}

	l := pkgLog.NewNop()
	if o.verbose {
		l = pkgLog.Init(pkgLog.ZapConfig{Level: "debug", Mode: "debug", Encoding: "console"})
	}

	return extractionUC.New(l, parser, metrics.New(), extractionUC.Config{
		Timeout:       time.Second,
		MinConfidence: o.minConfidence,
	}), nil
}

// reference parses --now in the selected timezone. Zero means the clock.
func (o *options) reference() (time.Time, error) {
	if o.now == "" {
		return time.Time{}, nil
	}
	loc, err := time.LoadLocation(o.timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --timezone %q: %w", o.timezone, err)
	}
	for _, layout := range nowLayouts {
		if t, err := time.ParseInLocation(layout, o.now, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid --now %q", o.now)
}

// inputText joins the positional arguments, or reads stdin when there are
// none or the only one is "-".
func inputText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(b), nil
}

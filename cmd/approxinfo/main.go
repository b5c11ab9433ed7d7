// Command approxinfo reports the accuracy of the float32 approximations
// against reference implementations.
//
// Usage:
//
//	approxinfo [flags] [function ...]
//
// Without arguments it reports every function, pow included, in both tiers.
// The exit status is 1 if any reported function exceeds its tier tolerance.
//
// Examples:
//
//	approxinfo erf erfc
//	approxinfo -tier fast -bench
//	approxinfo -purity sinfull cosfull
//	approxinfo -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog"

	fastapprox "github.com/cwbudde/algo-fastapprox"
	"github.com/cwbudde/algo-fastapprox/measure/throughput"
)

const powName = "pow"

var errNoFunctions = errors.New("no matching functions")

type options struct {
	tiers      []fastapprox.Tier
	list       bool
	bench      bool
	iterations int
	purity     bool
	names      []string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, verbose, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 2
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.RFC3339}).
		Level(level).With().Timestamp().Logger()

	if opts.list {
		if err := printList(stdout); err != nil {
			logger.Error().Err(err).Msg("failed to write list")
			return 1
		}
		return 0
	}

	names := resolveNames(opts.names, logger)
	if len(names) == 0 {
		logger.Error().Err(errNoFunctions).Msg("nothing to report")
		return 1
	}

	rows, err := evaluate(names, opts, logger)
	if err != nil {
		logger.Error().Err(err).Msg("evaluation failed")
		return 1
	}
	if err := printAccuracy(stdout, rows, opts.bench); err != nil {
		logger.Error().Err(err).Msg("failed to write report")
		return 1
	}

	if opts.purity {
		if err := printPurity(stdout, opts.tiers, logger); err != nil {
			logger.Error().Err(err).Msg("purity analysis failed")
			return 1
		}
	}

	failed := 0
	for _, r := range rows {
		if !r.pass {
			failed++
		}
	}
	if failed > 0 {
		logger.Warn().Int("failed", failed).Int("total", len(rows)).Msg("functions exceed tolerance")
		return 1
	}
	logger.Debug().Int("total", len(rows)).Msg("all functions within tolerance")
	return 0
}

func parseFlags(args []string, stderr io.Writer) (options, bool, error) {
	fs := flag.NewFlagSet("approxinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	tier := fs.String("tier", "both", "tier to report: fast, faster or both")
	list := fs.Bool("list", false, "list available function names with their category")
	bench := fs.Bool("bench", false, "add a ns/call column")
	iterations := fs.Int("iterations", throughput.DefaultIterations, "calls per benchmark loop")
	purityFlag := fs.Bool("purity", false, "print spectral purity of the sinfull and cosfull oscillators")
	verbose := fs.Bool("v", false, "verbose diagnostics")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: approxinfo [flags] [function ...]\n\n")
		fmt.Fprintf(stderr, "Reports the accuracy of float32 function approximations.\n")
		fmt.Fprintf(stderr, "Without arguments, reports every function.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  approxinfo erf erfc\n")
		fmt.Fprintf(stderr, "  approxinfo -tier fast -bench\n")
		fmt.Fprintf(stderr, "  approxinfo -purity sinfull cosfull\n")
		fmt.Fprintf(stderr, "  approxinfo -list\n")
	}
	if err := fs.Parse(args); err != nil {
		return options{}, false, err
	}

	opts := options{
		list:       *list,
		bench:      *bench,
		iterations: *iterations,
		purity:     *purityFlag,
		names:      fs.Args(),
	}

	if strings.EqualFold(strings.TrimSpace(*tier), "both") {
		opts.tiers = fastapprox.Tiers()
	} else {
		t, err := fastapprox.ParseTier(*tier)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return options{}, false, err
		}
		opts.tiers = []fastapprox.Tier{t}
	}
	return opts, *verbose, nil
}

func allNames() []string {
	names := append(fastapprox.Names(), powName)
	sort.Strings(names)
	return names
}

func printList(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, n := range allNames() {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", n, fastapprox.Category(n)); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func resolveNames(args []string, logger zerolog.Logger) []string {
	if len(args) == 0 {
		return allNames()
	}

	seen := make(map[string]bool, len(args))
	var names []string
	for _, arg := range args {
		name := strings.ToLower(strings.TrimSpace(arg))
		if fastapprox.Category(name) == "" {
			logger.Warn().Str("function", arg).Msg("unknown function (use -list to see available)")
			continue
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

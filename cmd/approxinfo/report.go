package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rs/zerolog"

	fastapprox "github.com/cwbudde/algo-fastapprox"
	"github.com/cwbudde/algo-fastapprox/measure/accuracy"
	"github.com/cwbudde/algo-fastapprox/measure/purity"
	"github.com/cwbudde/algo-fastapprox/measure/throughput"
)

type row struct {
	name      string
	tier      fastapprox.Tier
	report    accuracy.Report
	tolerance float64
	pass      bool
	nsPerCall float64
}

func evaluate(names []string, opts options, logger zerolog.Logger) ([]row, error) {
	rows := make([]row, 0, len(names)*len(opts.tiers))
	for _, name := range names {
		for _, tier := range opts.tiers {
			rep, err := accuracy.Evaluate(tier, name)
			if err != nil {
				return nil, fmt.Errorf("%s/%s: %w", name, tier, err)
			}
			tol := accuracy.ToleranceFor(tier)
			r := row{
				name:      name,
				tier:      tier,
				report:    rep,
				tolerance: tol,
				pass:      rep.Within(tol),
			}
			if opts.bench {
				r.nsPerCall, err = benchmark(tier, name, opts.iterations)
				if err != nil {
					return nil, fmt.Errorf("%s/%s: %w", name, tier, err)
				}
			}
			logger.Debug().
				Str("function", name).
				Stringer("tier", tier).
				Float64("max", rep.Max).
				Float32("worst", rep.Worst).
				Int("non_finite", rep.NonFinite).
				Msg("evaluated")
			rows = append(rows, r)
		}
	}
	return rows, nil
}

func benchmark(tier fastapprox.Tier, name string, iterations int) (float64, error) {
	if name == powName {
		fn, err := fastapprox.LookupPow(tier)
		if err != nil {
			return 0, err
		}
		return throughput.MeasurePow(fn, iterations).NsPerCall, nil
	}
	fn, err := fastapprox.Lookup(tier, name)
	if err != nil {
		return 0, err
	}
	return throughput.Measure(fn, iterations).NsPerCall, nil
}

func status(pass bool) string {
	if pass {
		return "PASS"
	}
	return "FAIL"
}

func printAccuracy(w io.Writer, rows []row, bench bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header := "Function\tTier\tCategory\tMax Err\tMean Err\tWorst Input\tTolerance\tStatus"
	rule := "--------\t----\t--------\t-------\t--------\t-----------\t---------\t------"
	if bench {
		header += "\tns/call"
		rule += "\t-------"
	}
	if _, err := fmt.Fprintln(tw, header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := fmt.Fprintln(tw, rule); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, r := range rows {
		line := fmt.Sprintf("%s\t%s\t%s\t%.3e\t%.3e\t%g\t%g\t%s",
			r.name,
			r.tier,
			fastapprox.Category(r.name),
			r.report.Max,
			r.report.Mean,
			r.report.Worst,
			r.tolerance,
			status(r.pass),
		)
		if bench {
			line += fmt.Sprintf("\t%.2f", r.nsPerCall)
		}
		if _, err := fmt.Fprintln(tw, line); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	return tw.Flush()
}

func printPurity(w io.Writer, tiers []fastapprox.Tier, logger zerolog.Logger) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(tw, "Oscillator\tTier\tTHD [%]\tTHD [dB]\tSINAD [dB]"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(tw, "----------\t----\t-------\t--------\t----------"); err != nil {
		return err
	}

	for _, name := range []string{"sinfull", "cosfull"} {
		for _, tier := range tiers {
			fn, err := fastapprox.Lookup(tier, name)
			if err != nil {
				return err
			}
			res, err := purity.Analyze(fn, purity.Config{})
			if err != nil {
				return fmt.Errorf("%s/%s: %w", name, tier, err)
			}
			logger.Debug().Str("function", name).Stringer("tier", tier).
				Int("fundamental_bin", res.FundamentalBin).Msg("purity analyzed")
			if _, err := fmt.Fprintf(tw, "%s\t%s\t%.5f\t%.2f\t%.2f\n",
				name, tier, res.THD*100, res.THDdB, res.SINAD); err != nil {
				return err
			}
		}
	}
	return tw.Flush()
}

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/daviddao/timeperiod/pkg/clock"
	"github.com/daviddao/timeperiod/pkg/period"
	"github.com/daviddao/timeperiod/pkg/store"
)

// app holds shared state for all CLI subcommands.
type app struct {
	store     store.StoreInterface
	log       *zap.Logger
	clock     clock.Clock
	loc       *time.Location
	precision period.Precision // default for add
}

// newApp loads settings, builds the logger and opens the database.
// Creates the .timeperiod/ directory if using the default DB path.
func newApp() (*app, error) {
	cfg, err := loadSettings()
	if err != nil {
		return nil, err
	}
	prec, loc, err := cfg.resolved()
	if err != nil {
		return nil, err
	}
	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	if err := ensureDir(cfg.DB); err != nil {
		return nil, err
	}
	clk := clock.System{}
	s, err := store.New(cfg.DB, store.WithLogger(log.Named("store")), store.WithClock(clk))
	if err != nil {
		return nil, fmt.Errorf("cannot open database %q: %w", cfg.DB, err)
	}
	log.Debug("app ready",
		zap.String("db", cfg.DB),
		zap.Stringer("precision", prec),
		zap.String("location", loc.String()))
	return &app{store: s, log: log, clock: clk, loc: loc, precision: prec}, nil
}

// Close releases the database connection and flushes the logger.
func (a *app) Close() {
	a.store.Close()
	_ = a.log.Sync()
}

// parseTime reads a command-line timestamp in the configured location.
func (a *app) parseTime(s string) (time.Time, error) {
	return period.ParseTime(s, a.loc)
}

// parsePeriod builds a period from two command-line timestamps.
func (a *app) parsePeriod(start, end string, prec period.Precision) (period.Period, error) {
	s, err := a.parseTime(start)
	if err != nil {
		return period.Period{}, err
	}
	e, err := a.parseTime(end)
	if err != nil {
		return period.Period{}, err
	}
	return period.New(s, e, prec)
}

// parseArgs parses flags placed anywhere among args and returns the
// positional arguments in order.
func parseArgs(flags *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := flags.Parse(args); err != nil {
			return nil, err
		}
		args = flags.Args()
		if len(args) == 0 {
			return positional, nil
		}
		positional = append(positional, args[0])
		args = args[1:]
	}
}

// resolvePrecision parses a --precision flag, falling back to def when the
// flag is empty.
func resolvePrecision(flagVal string, def period.Precision) (period.Precision, error) {
	if flagVal == "" {
		return def, nil
	}
	return period.ParsePrecision(flagVal)
}

// span renders how much time p covers, counting its last tick.
func span(p period.Period) string {
	return strings.TrimSpace(humanize.RelTime(p.Start(), p.Precision().Increment(p.End()), "", ""))
}

// printPeriods writes one period per line with its span.
func printPeriods(c period.Collection) {
	for _, p := range c {
		fmt.Printf("%s  %s\n", p, span(p))
	}
}

// fail reports err for cmd on stderr and returns the error exit code.
func fail(cmd string, err error) int {
	fmt.Fprintln(os.Stderr, color.RedString("tp: %s: %v", cmd, err))
	return exitError
}

// usage prints a usage line and returns the usage exit code.
func usage(line string) int {
	fmt.Fprintln(os.Stderr, "usage: tp "+line)
	return exitUsage
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

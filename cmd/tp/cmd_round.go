package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/daviddao/timeperiod/pkg/period"
)

func cmdRound(args []string) int {
	flags := flag.NewFlagSet("round", flag.ContinueOnError)
	location := flags.String("location", "", "IANA zone for times without an offset (default: from config)")
	jsonOut := flags.Bool("json", false, "JSON output")
	pos, err := parseArgs(flags, args)
	if err != nil {
		return exitUsage
	}
	if len(pos) < 2 {
		return usage("round <precision> <time> [--location Z] [--json]")
	}

	prec, err := period.ParsePrecision(pos[0])
	if err != nil {
		return fail("round", err)
	}
	loc, err := roundLocation(*location)
	if err != nil {
		return fail("round", err)
	}
	t, err := period.ParseTime(pos[1], loc)
	if err != nil {
		return fail("round", err)
	}

	rounded := prec.Round(t)
	next := prec.Increment(rounded)
	if *jsonOut {
		printJSON(map[string]interface{}{
			"precision": prec,
			"input":     period.FormatTime(t),
			"rounded":   period.FormatTime(rounded),
			"next":      period.FormatTime(next),
		})
		return exitOK
	}
	fmt.Fprintln(os.Stdout, period.FormatTime(rounded))
	return exitOK
}

// roundLocation resolves --location, falling back to the configured zone.
func roundLocation(flagVal string) (*time.Location, error) {
	if flagVal != "" {
		return time.LoadLocation(flagVal)
	}
	cfg, err := loadSettings()
	if err != nil {
		return nil, err
	}
	_, loc, err := cfg.resolved()
	return loc, err
}

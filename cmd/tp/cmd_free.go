package main

import (
	"flag"
	"fmt"

	"github.com/daviddao/timeperiod/pkg/period"
)

func (a *app) cmdFree(args []string) int {
	flags := flag.NewFlagSet("free", flag.ContinueOnError)
	precFlag := flags.String("precision", "", "window precision (default: the calendar's, then config)")
	jsonOut := flags.Bool("json", false, "JSON output")
	pos, err := parseArgs(flags, args)
	if err != nil {
		return exitUsage
	}
	if len(pos) < 3 {
		return usage("free <calendar> <from> <to> [--precision P] [--json]")
	}

	busy, err := a.store.Collection(pos[0])
	if err != nil {
		return fail("free", err)
	}
	def := a.precision
	if p, ok := busy.Precision(); ok {
		def = p
	}
	prec, err := resolvePrecision(*precFlag, def)
	if err != nil {
		return fail("free", err)
	}
	window, err := a.parsePeriod(pos[1], pos[2], prec)
	if err != nil {
		return fail("free", err)
	}
	free, err := window.SubtractAll(busy...)
	if err != nil {
		return fail("free", err)
	}
	if free == nil {
		free = period.Collection{}
	}

	if *jsonOut {
		printJSON(map[string]interface{}{"calendar": pos[0], "window": window, "free": free})
	} else if free.IsEmpty() {
		fmt.Printf("%s has no free time in %s\n", pos[0], window)
	} else {
		printPeriods(free)
	}
	if free.IsEmpty() {
		return exitNoResult
	}
	return exitOK
}

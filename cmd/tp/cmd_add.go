package main

import (
	"flag"
	"fmt"

	"go.uber.org/zap"
)

func (a *app) cmdAdd(args []string) int {
	flags := flag.NewFlagSet("add", flag.ContinueOnError)
	precFlag := flags.String("precision", "", "precision (default: from config)")
	label := flags.String("label", "", "free-form label")
	jsonOut := flags.Bool("json", false, "JSON output")
	pos, err := parseArgs(flags, args)
	if err != nil {
		return exitUsage
	}
	if len(pos) < 3 {
		return usage("add <calendar> <start> <end> [--precision P] [--label L] [--json]")
	}

	prec, err := resolvePrecision(*precFlag, a.precision)
	if err != nil {
		return fail("add", err)
	}
	p, err := a.parsePeriod(pos[1], pos[2], prec)
	if err != nil {
		return fail("add", err)
	}
	e, err := a.store.AddEntry(pos[0], *label, p)
	if err != nil {
		return fail("add", err)
	}
	a.log.Debug("entry added", zap.String("id", e.ID), zap.String("calendar", e.Calendar), zap.Stringer("period", p))

	if *jsonOut {
		printJSON(e)
		return exitOK
	}
	fmt.Printf("added %s to %s: %s  %s\n", e.ID, e.Calendar, e.Period, span(e.Period))
	return exitOK
}

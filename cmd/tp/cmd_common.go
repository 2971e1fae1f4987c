package main

import (
	"flag"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/daviddao/timeperiod/pkg/period"
)

func (a *app) cmdCommon(args []string) int {
	flags := flag.NewFlagSet("common", flag.ContinueOnError)
	jsonOut := flags.Bool("json", false, "JSON output")
	cals, err := parseArgs(flags, args)
	if err != nil {
		return exitUsage
	}
	if len(cals) < 2 {
		return usage("common <calendar> <calendar>... [--json]")
	}

	// Each calendar is loaded and merged independently.
	merged := make([]period.Collection, len(cals))
	var g errgroup.Group
	for i, cal := range cals {
		i, cal := i, cal
		g.Go(func() error {
			c, err := a.store.Collection(cal)
			if err != nil {
				return err
			}
			u, err := c.Union()
			if err != nil {
				return fmt.Errorf("%s: %w", cal, err)
			}
			merged[i] = u
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fail("common", err)
	}
	common, err := merged[0].OverlapAll(merged[1:]...)
	if err != nil {
		return fail("common", err)
	}
	if common == nil {
		common = period.Collection{}
	}

	if *jsonOut {
		printJSON(map[string]interface{}{"calendars": cals, "common": common})
	} else if common.IsEmpty() {
		fmt.Printf("no time common to %s\n", strings.Join(cals, ", "))
	} else {
		printPeriods(common)
	}
	if common.IsEmpty() {
		return exitNoResult
	}
	return exitOK
}

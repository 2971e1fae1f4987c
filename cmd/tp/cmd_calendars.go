package main

import (
	"flag"
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/daviddao/timeperiod/pkg/model"
)

func (a *app) cmdCalendars(args []string) int {
	flags := flag.NewFlagSet("calendars", flag.ContinueOnError)
	jsonOut := flags.Bool("json", false, "JSON output")
	if _, err := parseArgs(flags, args); err != nil {
		return exitUsage
	}

	cals, err := a.store.ListCalendars()
	if err != nil {
		return fail("calendars", err)
	}
	if *jsonOut {
		if cals == nil {
			cals = []model.CalendarSummary{}
		}
		printJSON(cals)
		return exitOK
	}
	if len(cals) == 0 {
		fmt.Println("no calendars")
		return exitOK
	}
	for _, c := range cals {
		bounds := "-"
		if c.Bounds != nil {
			bounds = c.Bounds.String()
		}
		fmt.Printf("%-20s %8s  %s\n", c.Name, humanize.Comma(c.Count), bounds)
	}
	return exitOK
}

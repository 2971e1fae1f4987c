package main

import (
	"flag"
	"fmt"

	"github.com/daviddao/timeperiod/pkg/model"
)

func (a *app) cmdLs(args []string) int {
	flags := flag.NewFlagSet("ls", flag.ContinueOnError)
	jsonOut := flags.Bool("json", false, "JSON output")
	pos, err := parseArgs(flags, args)
	if err != nil {
		return exitUsage
	}
	if len(pos) < 1 {
		return usage("ls <calendar> [--json]")
	}

	entries, err := a.store.ListEntries(pos[0])
	if err != nil {
		return fail("ls", err)
	}
	if *jsonOut {
		if entries == nil {
			entries = []model.Entry{}
		}
		printJSON(entries)
		return exitOK
	}
	if len(entries) == 0 {
		fmt.Printf("%s is empty\n", pos[0])
		return exitOK
	}
	for _, e := range entries {
		printEntry(e)
	}
	return exitOK
}

// printEntry writes one entry per line: id, period, span and label.
func printEntry(e model.Entry) {
	line := fmt.Sprintf("%s  %s  %s  %s", e.ID, e.Period.Precision(), e.Period, span(e.Period))
	if e.Label != "" {
		line += "  " + e.Label
	}
	fmt.Println(line)
}

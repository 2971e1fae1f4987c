package main

import (
	"flag"
	"fmt"

	"github.com/dustin/go-humanize"
)

func (a *app) cmdClear(args []string) int {
	flags := flag.NewFlagSet("clear", flag.ContinueOnError)
	jsonOut := flags.Bool("json", false, "JSON output")
	pos, err := parseArgs(flags, args)
	if err != nil {
		return exitUsage
	}
	if len(pos) < 1 {
		return usage("clear <calendar> [--json]")
	}

	n, err := a.store.ClearCalendar(pos[0])
	if err != nil {
		return fail("clear", err)
	}
	if *jsonOut {
		printJSON(map[string]interface{}{"calendar": pos[0], "removed": n})
		return exitOK
	}
	fmt.Printf("removed %s entries from %s\n", humanize.Comma(n), pos[0])
	return exitOK
}

package main

import (
	"flag"
	"fmt"
)

func (a *app) cmdRenew(args []string) int {
	flags := flag.NewFlagSet("renew", flag.ContinueOnError)
	jsonOut := flags.Bool("json", false, "JSON output")
	pos, err := parseArgs(flags, args)
	if err != nil {
		return exitUsage
	}
	if len(pos) < 1 {
		return usage("renew <id> [--json]")
	}

	prev, err := a.store.GetEntry(pos[0])
	if err != nil {
		return fail("renew", err)
	}
	next, err := a.store.AddEntry(prev.Calendar, prev.Label, prev.Period.Renew())
	if err != nil {
		return fail("renew", err)
	}
	if *jsonOut {
		printJSON(map[string]interface{}{"previous": prev, "renewed": next})
		return exitOK
	}
	fmt.Printf("renewed %s as %s: %s  %s\n", prev.ID, next.ID, next.Period, span(next.Period))
	return exitOK
}

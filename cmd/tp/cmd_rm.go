package main

import (
	"flag"
	"fmt"
)

func (a *app) cmdRm(args []string) int {
	flags := flag.NewFlagSet("rm", flag.ContinueOnError)
	jsonOut := flags.Bool("json", false, "JSON output")
	pos, err := parseArgs(flags, args)
	if err != nil {
		return exitUsage
	}
	if len(pos) < 1 {
		return usage("rm <id> [--json]")
	}

	if err := a.store.RemoveEntry(pos[0]); err != nil {
		return fail("rm", err)
	}
	if *jsonOut {
		printJSON(map[string]interface{}{"removed": pos[0]})
		return exitOK
	}
	fmt.Printf("removed %s\n", pos[0])
	return exitOK
}

package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/daviddao/timeperiod/pkg/model"
	"github.com/daviddao/timeperiod/pkg/period"
)

func (a *app) cmdAt(args []string) int {
	flags := flag.NewFlagSet("at", flag.ContinueOnError)
	jsonOut := flags.Bool("json", false, "JSON output")
	pos, err := parseArgs(flags, args)
	if err != nil {
		return exitUsage
	}
	if len(pos) < 1 {
		return usage("at <calendar> [time] [--json]")
	}

	at := a.clock.Now().In(a.loc)
	if len(pos) > 1 {
		if at, err = a.parseTime(pos[1]); err != nil {
			return fail("at", err)
		}
	}
	entries, err := a.store.ListEntries(pos[0])
	if err != nil {
		return fail("at", err)
	}
	hits := model.Containing(entries, at)

	if *jsonOut {
		if hits == nil {
			hits = []model.Entry{}
		}
		printJSON(map[string]interface{}{
			"calendar": pos[0],
			"time":     at.Format(time.RFC3339),
			"entries":  hits,
		})
	} else if len(hits) == 0 {
		fmt.Printf("nothing in %s at %s\n", pos[0], period.FormatTime(at))
	} else {
		for _, e := range hits {
			printEntry(e)
		}
	}
	if len(hits) == 0 {
		return exitNoResult
	}
	return exitOK
}

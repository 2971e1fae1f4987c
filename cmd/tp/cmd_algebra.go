package main

import (
	"flag"
	"fmt"

	"github.com/daviddao/timeperiod/pkg/period"
)

// calendarArg parses the common "<calendar> [--json]" form and loads the
// calendar's periods.
func (a *app) calendarArg(name string, args []string) (cal string, c period.Collection, jsonOut bool, code int) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	j := flags.Bool("json", false, "JSON output")
	pos, err := parseArgs(flags, args)
	if err != nil {
		return "", nil, false, exitUsage
	}
	if len(pos) < 1 {
		return "", nil, false, usage(name + " <calendar> [--json]")
	}
	c, err = a.store.Collection(pos[0])
	if err != nil {
		return "", nil, false, fail(name, err)
	}
	return pos[0], c, *j, exitOK
}

func (a *app) cmdBounds(args []string) int {
	cal, c, jsonOut, code := a.calendarArg("bounds", args)
	if code != exitOK {
		return code
	}
	b, ok := c.Boundaries()
	if jsonOut {
		out := map[string]interface{}{"calendar": cal, "bounds": nil}
		if ok {
			out["bounds"] = b
		}
		printJSON(out)
	} else if ok {
		fmt.Printf("%s  %s\n", b, span(b))
	} else {
		fmt.Printf("%s is empty\n", cal)
	}
	if !ok {
		return exitNoResult
	}
	return exitOK
}

func (a *app) cmdUnion(args []string) int {
	return a.collectionOp("union", args, period.Collection.Union)
}

func (a *app) cmdGaps(args []string) int {
	return a.collectionOp("gaps", args, period.Collection.Gaps)
}

// collectionOp runs a unary collection operation over a calendar.
func (a *app) collectionOp(name string, args []string, op func(period.Collection) (period.Collection, error)) int {
	cal, c, jsonOut, code := a.calendarArg(name, args)
	if code != exitOK {
		return code
	}
	out, err := op(c)
	if err != nil {
		return fail(name, err)
	}
	if out == nil {
		out = period.Collection{}
	}
	if jsonOut {
		printJSON(map[string]interface{}{"calendar": cal, name: out})
		return exitOK
	}
	if out.IsEmpty() {
		fmt.Printf("no %s in %s\n", name, cal)
		return exitOK
	}
	printPeriods(out)
	return exitOK
}

package main

import (
	"flag"
	"fmt"

	"github.com/daviddao/timeperiod/pkg/period"
)

// relation is everything tp relate reports about two periods.
type relation struct {
	A        period.Period     `json:"a"`
	B        period.Period     `json:"b"`
	Compare  int               `json:"compare"`
	Overlaps bool              `json:"overlaps"`
	Touches  bool              `json:"touches"`
	Gap      *period.Period    `json:"gap"`
	Overlap  *period.Period    `json:"overlap"`
	AMinusB  period.Collection `json:"a_minus_b"`
	Diff     period.Collection `json:"diff"`
}

func relate(p, q period.Period) (relation, error) {
	r := relation{A: p, B: q, Compare: p.Compare(q)}
	var err error
	if r.Overlaps, err = p.OverlapsWith(q); err != nil {
		return r, err
	}
	if r.Touches, err = p.TouchesWith(q); err != nil {
		return r, err
	}
	if g, ok, err := p.Gap(q); err != nil {
		return r, err
	} else if ok {
		r.Gap = &g
	}
	if o, ok, err := p.Overlap(q); err != nil {
		return r, err
	} else if ok {
		r.Overlap = &o
	}
	if r.AMinusB, err = p.Subtract(q); err != nil {
		return r, err
	}
	if r.Diff, err = p.DiffSymmetric(q); err != nil {
		return r, err
	}
	if r.AMinusB == nil {
		r.AMinusB = period.Collection{}
	}
	if r.Diff == nil {
		r.Diff = period.Collection{}
	}
	return r, nil
}

func (a *app) cmdRelate(args []string) int {
	flags := flag.NewFlagSet("relate", flag.ContinueOnError)
	precFlag := flags.String("precision", "", "precision of both periods (default: from config)")
	jsonOut := flags.Bool("json", false, "JSON output")
	pos, err := parseArgs(flags, args)
	if err != nil {
		return exitUsage
	}
	if len(pos) < 4 {
		return usage("relate <start1> <end1> <start2> <end2> [--precision P] [--json]")
	}

	prec, err := resolvePrecision(*precFlag, a.precision)
	if err != nil {
		return fail("relate", err)
	}
	p, err := a.parsePeriod(pos[0], pos[1], prec)
	if err != nil {
		return fail("relate", err)
	}
	q, err := a.parsePeriod(pos[2], pos[3], prec)
	if err != nil {
		return fail("relate", err)
	}
	r, err := relate(p, q)
	if err != nil {
		return fail("relate", err)
	}

	if *jsonOut {
		printJSON(r)
		return exitOK
	}
	fmt.Printf("a         %s\n", r.A)
	fmt.Printf("b         %s\n", r.B)
	fmt.Printf("overlaps  %t\n", r.Overlaps)
	fmt.Printf("touches   %t\n", r.Touches)
	fmt.Printf("gap       %s\n", optional(r.Gap))
	fmt.Printf("overlap   %s\n", optional(r.Overlap))
	fmt.Printf("a - b     %s\n", r.AMinusB)
	fmt.Printf("diff      %s\n", r.Diff)
	return exitOK
}

func optional(p *period.Period) string {
	if p == nil {
		return "-"
	}
	return p.String()
}

// Command tp is the timeperiod CLI: calendars of closed, precision-aligned
// periods and the interval algebra over them.
package main

import (
	"fmt"
	"os"
	_ "time/tzdata"

	"github.com/fatih/color"
)

const version = "1.0.0"

// Exit codes.
const (
	exitOK       = 0
	exitError    = 1
	exitUsage    = 2
	exitNoResult = 3
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(exitUsage)
	}

	switch os.Args[1] {
	case "--help", "-h", "help":
		printUsage()
		return
	case "--version", "-v", "version":
		fmt.Println("tp", version)
		return
	case "round":
		// Pure computation; needs no database.
		os.Exit(cmdRound(os.Args[2:]))
	}

	a, err := newApp()
	if err != nil {
		fatal("%v", err)
	}
	os.Exit(a.execute(os.Args[1], os.Args[2:]))
}

// execute runs one subcommand and releases the store and logger before the
// exit code is returned.
func (a *app) execute(name string, args []string) int {
	defer a.Close()
	return a.run(name, args)
}

// run dispatches a subcommand that needs the store.
func (a *app) run(name string, args []string) int {
	switch name {
	// Entries
	case "add":
		return a.cmdAdd(args)
	case "rm":
		return a.cmdRm(args)
	case "ls":
		return a.cmdLs(args)
	case "renew":
		return a.cmdRenew(args)
	case "at":
		return a.cmdAt(args)
	case "clear":
		return a.cmdClear(args)

	// Calendars
	case "calendars", "cals":
		return a.cmdCalendars(args)
	case "bounds":
		return a.cmdBounds(args)
	case "union":
		return a.cmdUnion(args)
	case "gaps":
		return a.cmdGaps(args)
	case "free":
		return a.cmdFree(args)
	case "common":
		return a.cmdCommon(args)

	// Ad hoc
	case "relate":
		return a.cmdRelate(args)

	default:
		fmt.Fprintln(os.Stderr, color.RedString("tp: unknown command %q", name))
		fmt.Fprintln(os.Stderr, "Run 'tp --help' for usage.")
		return exitUsage
	}
}

func printUsage() {
	fmt.Print(`tp - calendars of time periods

Periods are closed ranges [start, end] aligned to a precision
(YEAR, MONTH, DAY, HOUR, MINUTE, SECOND). Calendars are named sets of
labelled periods kept in a local SQLite database.

Usage:
  tp <command> [flags]

Entries:
  add <cal> <start> <end>   Store a period [--precision P] [--label L]
  rm <id>                   Remove an entry
  ls <cal>                  List a calendar's entries
  renew <id>                Store the period that follows an entry
  at <cal> [time]           Entries containing a time (default: now)
  clear <cal>               Remove every entry of a calendar

Calendars:
  calendars                 List calendars with counts and bounds
  bounds <cal>              Smallest period covering the calendar
  union <cal>               Merge overlapping and touching entries
  gaps <cal>                Uncovered periods inside the bounds
  free <cal> <from> <to>    Window minus the calendar's entries
  common <cal> <cal>...     Time covered by every calendar

Ad hoc:
  round <precision> <time>  Round a time down to a precision
  relate <s1> <e1> <s2> <e2>
                            Overlap, touch, gap and difference of two periods

Times are YYYY-MM-DD, YYYY-MM-DDTHH:MM[:SS] (read in the configured
location) or RFC3339.

Aliases:
  cals = calendars

Environment:
  TIMEPERIOD_CONFIG     TOML settings file (default: .timeperiod/config.toml)
  TIMEPERIOD_DB         SQLite database path (default: .timeperiod/timeperiod.db)
  TIMEPERIOD_PRECISION  Default precision for add (default: DAY)

All commands support --json for machine-readable output.

Exit codes:
  0  success
  1  error
  2  usage error
  3  no result (empty answer)
`)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintln(os.Stderr, color.RedString("tp: "+format, args...))
	os.Exit(exitError)
}

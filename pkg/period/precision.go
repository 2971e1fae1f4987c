package period

import (
	"fmt"
	"strings"
	"time"
)

// Precision is the granularity at which a period's endpoints are
// significant. Units finer than the precision are truncated.
type Precision int

const (
	Year Precision = iota
	Month
	Day
	Hour
	Minute
	Second
)

var precisionNames = [...]string{
	Year:   "YEAR",
	Month:  "MONTH",
	Day:    "DAY",
	Hour:   "HOUR",
	Minute: "MINUTE",
	Second: "SECOND",
}

// Precisions lists every precision from coarsest to finest.
func Precisions() []Precision {
	return []Precision{Year, Month, Day, Hour, Minute, Second}
}

// Valid reports whether p is one of the six declared precisions.
func (p Precision) Valid() bool {
	return p >= Year && p <= Second
}

func (p Precision) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Precision(%d)", int(p))
	}
	return precisionNames[p]
}

// ParsePrecision resolves a precision name, ignoring case.
func ParsePrecision(s string) (Precision, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range precisionNames {
		if n == name {
			return Precision(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidPrecision, s)
}

// MarshalText encodes p by name.
func (p Precision) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPrecision, int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText decodes a precision name.
func (p *Precision) UnmarshalText(b []byte) error {
	v, err := ParsePrecision(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Round truncates t to p: every field finer than p is set to its minimum.
// The location of t is kept.
//
//	Hour.Round(2024-03-15T14:30:45)  // 2024-03-15T14:00
//	Month.Round(2024-03-15T14:30:45) // 2024-03-01T00:00
//
// HOUR and finer subtract the finer fields as elapsed time, so the result
// keeps the offset of t and is never after it, even inside a repeated
// daylight-saving hour.
func (p Precision) Round(t time.Time) time.Time {
	t = t.Round(0) // drop the monotonic reading
	y, mo, d := t.Date()
	_, mi, s := t.Clock()
	loc := t.Location()
	ns := time.Duration(t.Nanosecond())
	switch p {
	case Year:
		return time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
	case Month:
		return time.Date(y, mo, 1, 0, 0, 0, 0, loc)
	case Day:
		return time.Date(y, mo, d, 0, 0, 0, 0, loc)
	case Hour:
		return t.Add(-(time.Duration(mi)*time.Minute + time.Duration(s)*time.Second + ns))
	case Minute:
		return t.Add(-(time.Duration(s)*time.Second + ns))
	default:
		return t.Add(-ns)
	}
}

// Step returns the smallest increment at p.
func (p Precision) Step() Step {
	switch p {
	case Year:
		return Step{Years: 1}
	case Month:
		return Step{Months: 1}
	case Day:
		return Step{Days: 1}
	case Hour:
		return Step{Duration: time.Hour}
	case Minute:
		return Step{Duration: time.Minute}
	default:
		return Step{Duration: time.Second}
	}
}

// Increment returns the tick immediately after t at precision p.
func (p Precision) Increment(t time.Time) time.Time {
	return p.Round(p.Step().AddTo(t))
}

// Decrement returns the tick immediately before t at precision p.
func (p Precision) Decrement(t time.Time) time.Time {
	return p.Round(p.Step().SubFrom(t))
}

// Step is a calendar-aware amount of time. Years, months and days use
// calendar arithmetic; Duration is added as elapsed time.
type Step struct {
	Years, Months, Days int
	Duration            time.Duration
}

// AddTo returns t advanced by s.
func (s Step) AddTo(t time.Time) time.Time {
	return s.apply(t, 1)
}

// SubFrom returns t moved back by s.
func (s Step) SubFrom(t time.Time) time.Time {
	return s.apply(t, -1)
}

func (s Step) apply(t time.Time, sign int) time.Time {
	if months := sign * (s.Years*12 + s.Months); months != 0 {
		t = addMonths(t, months)
	}
	if s.Days != 0 {
		t = t.AddDate(0, 0, sign*s.Days)
	}
	if s.Duration != 0 {
		t = t.Add(time.Duration(sign) * s.Duration)
	}
	return t
}

func (s Step) String() string {
	var parts []string
	if s.Years != 0 {
		parts = append(parts, fmt.Sprintf("%dy", s.Years))
	}
	if s.Months != 0 {
		parts = append(parts, fmt.Sprintf("%dmo", s.Months))
	}
	if s.Days != 0 {
		parts = append(parts, fmt.Sprintf("%dd", s.Days))
	}
	if s.Duration != 0 || len(parts) == 0 {
		parts = append(parts, s.Duration.String())
	}
	return strings.Join(parts, "")
}

// addMonths moves t by n months, clamping the day to the end of the
// target month (Jan 31 + 1 month is the last day of February).
func addMonths(t time.Time, n int) time.Time {
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	first := time.Date(y, mo+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	if last := daysIn(first.Year(), first.Month()); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, h, mi, s, t.Nanosecond(), t.Location())
}

func daysIn(y int, m time.Month) int {
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

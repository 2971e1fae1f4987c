package period

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	layoutMinute = "2006-01-02T15:04"
	layoutSecond = "2006-01-02T15:04:05"
	layoutDate   = "2006-01-02"
)

// FormatTime renders t in ISO local form, the way periods render their
// endpoints. Seconds are shown only when non-zero.
func FormatTime(t time.Time) string {
	switch {
	case t.Nanosecond() != 0:
		return t.Format("2006-01-02T15:04:05.999999999")
	case t.Second() != 0:
		return t.Format(layoutSecond)
	default:
		return t.Format(layoutMinute)
	}
}

// ParseTime parses a date, a local date-time with or without seconds, or
// an RFC3339 timestamp. Inputs without an offset are read in loc; a nil
// loc means UTC.
func ParseTime(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range []string{layoutDate, layoutMinute, layoutSecond} {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time %q: want YYYY-MM-DD[THH:MM[:SS]] or RFC3339", s)
	}
	return t, nil
}

func (p Period) String() string {
	return fmt.Sprintf("[%s, %s]", FormatTime(p.start), FormatTime(p.end))
}

type periodJSON struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Precision Precision `json:"precision"`
}

// MarshalJSON encodes p as {"start", "end", "precision"}.
func (p Period) MarshalJSON() ([]byte, error) {
	return json.Marshal(periodJSON{Start: p.start, End: p.end, Precision: p.precision})
}

// UnmarshalJSON decodes and validates a period produced by MarshalJSON.
func (p *Period) UnmarshalJSON(b []byte) error {
	var v periodJSON
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	np, err := New(v.Start, v.End, v.Precision)
	if err != nil {
		return err
	}
	*p = np
	return nil
}

package period

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dateTime(y int, m time.Month, d, h, mi, s int) time.Time {
	return time.Date(y, m, d, h, mi, s, 0, time.UTC)
}

// days builds a DAY period from "YYYY-MM-DD" strings.
func days(start, end string) Period {
	s, err := ParseTime(start, time.UTC)
	if err != nil {
		panic(err)
	}
	e, err := ParseTime(end, time.UTC)
	if err != nil {
		panic(err)
	}
	return MustNew(s, e, Day)
}

func assertPeriods(t *testing.T, got Collection, want ...Period) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d periods %v, want %d %v", len(got), got, len(want), Collection(want))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Fatalf("period %d: got %v, want %v (all: %v)", i, got[i], want[i], got)
		}
	}
}

func TestNew_RoundsEndpoints(t *testing.T) {
	p, err := New(dateTime(2024, 1, 1, 10, 30, 15), dateTime(2024, 1, 1, 12, 45, 0), Hour)
	if err != nil {
		t.Fatal(err)
	}
	if !p.Start().Equal(dateTime(2024, 1, 1, 10, 0, 0)) {
		t.Fatalf("start: got %v", p.Start())
	}
	if !p.End().Equal(dateTime(2024, 1, 1, 12, 0, 0)) {
		t.Fatalf("end: got %v", p.End())
	}
	if p.Precision() != Hour {
		t.Fatalf("precision: got %v, want HOUR", p.Precision())
	}
}

func TestNew_SameTickIsValid(t *testing.T) {
	p, err := New(dateTime(2024, 1, 1, 10, 10, 0), dateTime(2024, 1, 1, 10, 50, 0), Hour)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if p.Duration() != 0 {
		t.Fatalf("duration: got %v, want 0", p.Duration())
	}
}

func TestNew_EndBeforeStart(t *testing.T) {
	_, err := FromDates(date(2024, 1, 1), date(2023, 5, 5))
	if !errors.Is(err, ErrEndBeforeStart) {
		t.Fatalf("got %v, want ErrEndBeforeStart", err)
	}
	var re *RangeError
	if !errors.As(err, &re) {
		t.Fatalf("got %T, want *RangeError", err)
	}
	if !re.Start.Equal(date(2024, 1, 1)) || !re.End.Equal(date(2023, 5, 5)) {
		t.Fatalf("RangeError operands: got %v / %v", re.Start, re.End)
	}
	want := "period: end time 2023-05-05T00:00 is before start time 2024-01-01T00:00"
	if err.Error() != want {
		t.Fatalf("message: got %q, want %q", err.Error(), want)
	}
}

func TestNew_EndBeforeStartAfterRounding(t *testing.T) {
	// Both fall in the same hour once rounded, so this is valid...
	if _, err := New(dateTime(2024, 1, 1, 10, 50, 0), dateTime(2024, 1, 1, 10, 10, 0), Hour); err != nil {
		t.Fatalf("same rounded hour: %v", err)
	}
	// ...but not at minute precision.
	if _, err := New(dateTime(2024, 1, 1, 10, 50, 0), dateTime(2024, 1, 1, 10, 10, 0), Minute); !errors.Is(err, ErrEndBeforeStart) {
		t.Fatalf("minute precision: got %v, want ErrEndBeforeStart", err)
	}
}

func TestNew_InvalidPrecision(t *testing.T) {
	if _, err := New(date(2024, 1, 1), date(2024, 1, 2), Precision(42)); !errors.Is(err, ErrInvalidPrecision) {
		t.Fatalf("got %v, want ErrInvalidPrecision", err)
	}
}

func TestFromTimes_SecondPrecision(t *testing.T) {
	p, err := FromTimes(time.Date(2024, 1, 1, 0, 0, 0, 900, time.UTC), dateTime(2024, 1, 1, 0, 0, 30))
	if err != nil {
		t.Fatal(err)
	}
	if p.Precision() != Second || p.Start().Nanosecond() != 0 {
		t.Fatalf("got %v (%v), want SECOND with no nanoseconds", p, p.Precision())
	}
}

func TestMustNew_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustNew should panic on an invalid range")
		}
	}()
	MustNew(date(2024, 2, 1), date(2024, 1, 1), Day)
}

func TestDuration(t *testing.T) {
	p := MustNew(dateTime(2024, 9, 11, 13, 10, 0), dateTime(2024, 9, 15, 13, 30, 0), Day)
	if got := p.Duration(); got != 4*24*time.Hour {
		t.Fatalf("got %v, want 96h", got)
	}
}

func TestRenew(t *testing.T) {
	p := MustNew(dateTime(2024, 9, 11, 13, 10, 0), dateTime(2024, 9, 11, 13, 30, 0), Minute)
	got := p.Renew()
	want := MustNew(dateTime(2024, 9, 11, 13, 31, 0), dateTime(2024, 9, 11, 13, 51, 0), Minute)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if got.Duration() != p.Duration() {
		t.Fatalf("duration: got %v, want %v", got.Duration(), p.Duration())
	}
}

func TestRenew_Day(t *testing.T) {
	got := days("2024-01-01", "2024-01-10").Renew()
	if want := days("2024-01-11", "2024-01-20"); !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestString(t *testing.T) {
	if got, want := days("2024-01-10", "2024-01-15").String(), "[2024-01-10T00:00, 2024-01-15T00:00]"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	p := MustNew(dateTime(2024, 1, 10, 8, 0, 5), dateTime(2024, 1, 10, 9, 0, 0), Second)
	if got, want := p.String(), "[2024-01-10T08:00:05, 2024-01-10T09:00]"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEqual(t *testing.T) {
	a := days("2024-01-10", "2024-01-15")
	if !a.Equal(days("2024-01-10", "2024-01-15")) {
		t.Fatal("identical periods should be equal")
	}
	if a.Equal(days("2024-01-10", "2024-01-16")) {
		t.Fatal("different end should not be equal")
	}
	if a.Equal(MustNew(date(2024, 1, 10), date(2024, 1, 15), Hour)) {
		t.Fatal("different precision should not be equal")
	}
	if a.IsZero() || !(Period{}).IsZero() {
		t.Fatal("IsZero")
	}
}

func TestContains_Time(t *testing.T) {
	p := days("2024-09-01", "2024-09-30")
	cases := []struct {
		at   time.Time
		want bool
	}{
		{dateTime(2024, 9, 1, 14, 30, 0), true},
		{date(2024, 9, 15), true},
		{time.Date(2024, 9, 30, 23, 59, 59, 999999999, time.UTC), true},
		{date(2024, 10, 1), false},
		{date(2024, 8, 31), false},
	}
	for _, tc := range cases {
		if got := p.Contains(tc.at); got != tc.want {
			t.Fatalf("Contains(%v): got %v, want %v", tc.at, got, tc.want)
		}
	}
}

func TestContainsPeriod(t *testing.T) {
	p := days("2024-01-01", "2024-01-31")
	cases := []struct {
		other Period
		want  bool
	}{
		{days("2024-01-01", "2024-01-15"), true},
		{p, true},
		{days("2024-01-01", "2024-02-01"), false},
		{days("2023-12-31", "2024-01-15"), false},
		{days("2023-11-01", "2024-02-05"), false},
		// precisions are not compared
		{MustNew(dateTime(2024, 1, 2, 8, 0, 0), dateTime(2024, 1, 2, 9, 0, 0), Hour), true},
	}
	for _, tc := range cases {
		if got := p.ContainsPeriod(tc.other); got != tc.want {
			t.Fatalf("ContainsPeriod(%v): got %v, want %v", tc.other, got, tc.want)
		}
	}
}

func TestCompare(t *testing.T) {
	a := days("2024-01-10", "2024-01-15")
	b := days("2024-02-01", "2024-02-29")
	if got := a.Compare(days("2024-01-10", "2024-01-15")); got != 0 {
		t.Fatalf("equal: got %d, want 0", got)
	}
	if got := b.Compare(a); got != 1 {
		t.Fatalf("later: got %d, want 1", got)
	}
	if got := a.Compare(b); got != -1 {
		t.Fatalf("earlier: got %d, want -1", got)
	}
}

func TestCompare_SameStartIsWeak(t *testing.T) {
	short := days("2024-01-10", "2024-01-12")
	long := days("2024-01-10", "2024-01-20")
	// Both directions report "greater": the legacy order only looks at start.
	if short.Compare(long) != 1 || long.Compare(short) != 1 {
		t.Fatalf("got %d / %d, want 1 / 1", short.Compare(long), long.Compare(short))
	}
	if short.CompareTotal(long) != -1 || long.CompareTotal(short) != 1 {
		t.Fatalf("CompareTotal: got %d / %d, want -1 / 1", short.CompareTotal(long), long.CompareTotal(short))
	}
	hour := MustNew(date(2024, 1, 10), date(2024, 1, 12), Hour)
	if short.CompareTotal(hour) != -1 || short.CompareTotal(short) != 0 {
		t.Fatal("CompareTotal should tie-break on precision")
	}
}

func TestOverlapsWith(t *testing.T) {
	cases := []struct {
		name string
		a, b Period
		want bool
	}{
		{"partial", days("2024-01-01", "2024-01-31"), days("2024-01-15", "2024-02-29"), true},
		{"shared boundary", days("2024-01-01", "2024-01-10"), days("2024-01-10", "2024-01-20"), true},
		{"contained", days("2024-01-01", "2024-01-31"), days("2024-01-10", "2024-01-12"), true},
		{"touching", days("2024-01-01", "2024-01-31"), days("2024-02-01", "2024-02-29"), false},
		{"apart", days("2024-01-01", "2024-01-05"), days("2024-05-15", "2024-05-20"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.a.OverlapsWith(tc.b)
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Fatalf("%v.OverlapsWith(%v): got %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestTouchesWith(t *testing.T) {
	minute := func(a, b time.Time) Period { return MustNew(a, b, Minute) }
	hour := func(a, b time.Time) Period { return MustNew(a, b, Hour) }
	second := func(a, b time.Time) Period { return MustNew(a, b, Second) }
	endOfDay := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 23, 59, 59, 999999999, time.UTC)
	}

	cases := []struct {
		name string
		a, b Period
		want bool
	}{
		{"identical", days("2024-01-01", "2024-01-31"), days("2024-01-01", "2024-01-31"), false},
		{"minute overlap", minute(date(2024, 2, 1), date(2024, 2, 29)), minute(date(2024, 1, 1), date(2024, 2, 15)), false},
		{"minute overlap reversed", minute(date(2024, 1, 1), date(2024, 2, 15)), minute(date(2024, 2, 1), date(2024, 2, 29)), false},
		{"day gap", days("2024-02-10", "2024-02-29"), days("2024-01-01", "2024-01-31"), false},
		{"day gap reversed", days("2024-01-01", "2024-01-31"), days("2024-02-10", "2024-02-29"), false},

		{"day", days("2024-01-01", "2024-01-31"), days("2024-02-01", "2024-02-29"), true},
		{"day reversed", days("2024-02-01", "2024-02-29"), days("2024-01-01", "2024-01-31"), true},
		{"second", second(date(2024, 1, 1), endOfDay(2024, 1, 31)), second(date(2024, 2, 1), endOfDay(2024, 2, 29)), true},
		{"minute", minute(dateTime(2024, 2, 1, 18, 30, 0), date(2024, 2, 29)), minute(date(2024, 1, 1), dateTime(2024, 2, 1, 18, 29, 0)), true},
		{"hour", hour(date(2024, 1, 1), dateTime(2024, 2, 1, 18, 29, 0)), hour(dateTime(2024, 2, 1, 19, 59, 0), date(2024, 2, 29)), true},
		{"month", MustNew(date(2024, 1, 1), date(2024, 3, 1), Month), MustNew(date(2024, 4, 1), date(2024, 6, 1), Month), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.a.TouchesWith(tc.b)
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Fatalf("%v.TouchesWith(%v): got %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestGap(t *testing.T) {
	a := days("2024-01-01", "2024-01-10")
	b := days("2024-01-15", "2024-02-29")
	want := days("2024-01-11", "2024-01-14")

	for _, pair := range [][2]Period{{a, b}, {b, a}} {
		got, ok, err := pair[0].Gap(pair[1])
		if err != nil || !ok {
			t.Fatalf("Gap(%v, %v): ok=%v err=%v", pair[0], pair[1], ok, err)
		}
		if !got.Equal(want) {
			t.Fatalf("Gap(%v, %v): got %v, want %v", pair[0], pair[1], got, want)
		}
	}
}

func TestGap_NoneWhenTouchingOrOverlapping(t *testing.T) {
	a := days("2024-01-01", "2024-01-10")
	for _, b := range []Period{days("2024-01-11", "2024-02-29"), days("2024-01-08", "2024-02-29")} {
		if _, ok, err := a.Gap(b); ok || err != nil {
			t.Fatalf("Gap(%v, %v): ok=%v err=%v, want no gap", a, b, ok, err)
		}
	}
}

func TestGap_SingleTick(t *testing.T) {
	a := MustNew(date(2024, 1, 1), date(2024, 1, 1), Month)
	b := MustNew(date(2024, 3, 1), date(2024, 4, 1), Month)
	got, ok, err := a.Gap(b)
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if want := MustNew(date(2024, 2, 1), date(2024, 2, 1), Month); !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestOverlap(t *testing.T) {
	got, ok, err := days("2024-01-01", "2024-01-31").Overlap(days("2024-01-15", "2024-02-29"))
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if want := days("2024-01-15", "2024-01-31"); !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	if _, ok, _ := days("2024-01-01", "2024-01-05").Overlap(days("2024-05-15", "2024-05-20")); ok {
		t.Fatal("disjoint periods should not overlap")
	}
}

func TestOverlapAll(t *testing.T) {
	cur := days("2024-01-01", "2024-02-29")
	got, ok, err := cur.OverlapAll(days("2024-02-01", "2024-02-05"), days("2024-02-01", "2024-02-29"))
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if want := days("2024-02-01", "2024-02-05"); !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	cur = days("2024-01-01", "2024-01-15")
	if _, ok, _ := cur.OverlapAll(days("2024-02-01", "2024-02-05"), days("2024-02-20", "2024-02-29")); ok {
		t.Fatal("expected no overlap")
	}

	got, ok, err = cur.OverlapAll()
	if err != nil || !ok || !got.Equal(cur) {
		t.Fatalf("no arguments: got %v ok=%v err=%v, want receiver", got, ok, err)
	}
}

func TestOverlapAny(t *testing.T) {
	cur := days("2024-01-15", "2024-02-15")
	b := days("2024-02-05", "2024-02-06")
	got, err := cur.OverlapAny(days("2024-01-01", "2024-01-31"), b, days("2024-02-10", "2024-02-29"), days("2023-01-01", "2023-01-02"))
	if err != nil {
		t.Fatal(err)
	}
	assertPeriods(t, got, days("2024-01-15", "2024-01-31"), b, days("2024-02-10", "2024-02-15"))

	got, err = days("2024-01-01", "2024-01-15").OverlapAny(days("2024-02-01", "2024-02-05"), days("2024-02-20", "2024-02-29"))
	if err != nil {
		t.Fatal(err)
	}
	if !got.IsEmpty() {
		t.Fatalf("got %v, want empty", got)
	}
}

func TestSubtract(t *testing.T) {
	cases := []struct {
		name string
		a, b Period
		want []Period
	}{
		{"disjoint", days("2024-01-01", "2024-01-05"), days("2024-02-01", "2024-02-20"),
			[]Period{days("2024-01-01", "2024-01-05")}},
		{"cut tail", days("2024-01-01", "2024-01-10"), days("2024-01-05", "2024-02-20"),
			[]Period{days("2024-01-01", "2024-01-04")}},
		{"cut head", days("2024-02-01", "2024-02-20"), days("2024-01-05", "2024-02-10"),
			[]Period{days("2024-02-11", "2024-02-20")}},
		{"split", days("2024-01-01", "2024-02-28"), days("2024-02-05", "2024-02-10"),
			[]Period{days("2024-01-01", "2024-02-04"), days("2024-02-11", "2024-02-28")}},
		{"split february", days("2024-02-01", "2024-02-28"), days("2024-02-05", "2024-02-10"),
			[]Period{days("2024-02-01", "2024-02-04"), days("2024-02-11", "2024-02-28")}},
		{"covered", days("2024-01-10", "2024-01-15"), days("2024-01-01", "2024-01-31"), nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.a.Subtract(tc.b)
			if err != nil {
				t.Fatal(err)
			}
			assertPeriods(t, got, tc.want...)
		})
	}
}

func TestSubtract_AcrossRepeatedHour(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Fatal(err)
	}
	utc := func(d, h int) time.Time { return time.Date(2024, 10, d, h, 0, 0, 0, time.UTC).In(berlin) }
	// 00:00 CEST to 04:00 CET, minus the second 02:00 hour (02:00 CET).
	a := MustNew(utc(26, 22), utc(27, 3), Hour)
	b := MustNew(utc(27, 1), utc(27, 1), Hour)

	got, err := a.Subtract(b)
	if err != nil {
		t.Fatal(err)
	}
	assertPeriods(t, got, MustNew(utc(26, 22), utc(27, 0), Hour), MustNew(utc(27, 2), utc(27, 3), Hour))
	for _, r := range got {
		if ov, _ := r.OverlapsWith(b); ov {
			t.Fatalf("remainder %v still overlaps %v", r, b)
		}
	}
}

func TestSubtract_PrecisionMismatch(t *testing.T) {
	a := MustNew(date(2024, 1, 1), date(2024, 1, 5), Hour)
	b := days("2024-02-01", "2024-02-20")
	_, err := a.Subtract(b)
	if !errors.Is(err, ErrPrecisionMismatch) {
		t.Fatalf("got %v, want ErrPrecisionMismatch", err)
	}
	var me *MismatchError
	if !errors.As(err, &me) || me.Left != Hour || me.Right != Day {
		t.Fatalf("got %#v, want MismatchError{HOUR, DAY}", err)
	}
	if !strings.Contains(err.Error(), "HOUR != DAY") {
		t.Fatalf("message: got %q", err.Error())
	}
}

func TestBinaryOperations_RejectMixedPrecision(t *testing.T) {
	a := days("2024-01-01", "2024-01-05")
	b := MustNew(date(2024, 1, 1), date(2024, 1, 5), Minute)
	ops := map[string]func() error{
		"OverlapsWith":  func() error { _, err := a.OverlapsWith(b); return err },
		"TouchesWith":   func() error { _, err := a.TouchesWith(b); return err },
		"Gap":           func() error { _, _, err := a.Gap(b); return err },
		"Overlap":       func() error { _, _, err := a.Overlap(b); return err },
		"OverlapAll":    func() error { _, _, err := a.OverlapAll(b); return err },
		"OverlapAny":    func() error { _, err := a.OverlapAny(b); return err },
		"SubtractAll":   func() error { _, err := a.SubtractAll(a, b); return err },
		"DiffSymmetric": func() error { _, err := a.DiffSymmetric(b); return err },
	}
	for name, op := range ops {
		if err := op(); !errors.Is(err, ErrPrecisionMismatch) {
			t.Fatalf("%s: got %v, want ErrPrecisionMismatch", name, err)
		}
	}
}

func TestSubtractAll(t *testing.T) {
	cases := []struct {
		name   string
		p      Period
		others []Period
		want   []Period
	}{
		{"overlapping arguments", days("2024-01-15", "2024-03-15"),
			[]Period{days("2024-01-01", "2024-01-31"), days("2024-02-10", "2024-02-20"), days("2024-02-11", "2024-03-31")},
			[]Period{days("2024-02-01", "2024-02-09")}},
		{"fully covered", days("2024-01-15", "2024-02-20"),
			[]Period{days("2024-01-31", "2024-02-25"), days("2024-01-01", "2024-01-31")},
			nil},
		{"complex", days("2024-01-15", "2024-03-20"),
			[]Period{days("2024-02-05", "2024-02-10"), days("2024-03-01", "2024-03-31"), days("2022-01-01", "2024-01-20")},
			[]Period{days("2024-01-21", "2024-02-04"), days("2024-02-11", "2024-02-29")}},
		{"unordered arguments", days("2024-01-01", "2024-03-31"),
			[]Period{days("2024-02-05", "2024-02-10"), days("2024-01-10", "2024-01-20")},
			[]Period{days("2024-01-01", "2024-01-09"), days("2024-01-21", "2024-02-04"), days("2024-02-11", "2024-03-31")}},
		{"no arguments", days("2024-01-01", "2024-01-31"), nil,
			[]Period{days("2024-01-01", "2024-01-31")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.p.SubtractAll(tc.others...)
			if err != nil {
				t.Fatal(err)
			}
			assertPeriods(t, got, tc.want...)
		})
	}
}

func TestDiffSymmetric(t *testing.T) {
	cases := []struct {
		name string
		a, b Period
		want []Period
	}{
		{"disjoint", days("2024-01-01", "2024-01-10"), days("2024-01-15", "2024-02-29"),
			[]Period{days("2024-01-01", "2024-01-10"), days("2024-01-15", "2024-02-29")}},
		{"a before b", days("2024-01-01", "2024-01-10"), days("2024-01-08", "2024-02-29"),
			[]Period{days("2024-01-01", "2024-01-07"), days("2024-01-11", "2024-02-29")}},
		{"a after b", days("2024-01-10", "2024-01-31"), days("2024-01-01", "2024-01-15"),
			[]Period{days("2024-01-01", "2024-01-09"), days("2024-01-16", "2024-01-31")}},
		{"b within a", days("2024-01-01", "2024-01-31"), days("2024-01-10", "2024-01-15"),
			[]Period{days("2024-01-01", "2024-01-09"), days("2024-01-16", "2024-01-31")}},
		{"a within b", days("2024-01-10", "2024-01-15"), days("2024-01-01", "2024-01-31"),
			[]Period{days("2024-01-01", "2024-01-09"), days("2024-01-16", "2024-01-31")}},
		{"identical", days("2024-01-10", "2024-01-15"), days("2024-01-10", "2024-01-15"), nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.a.DiffSymmetric(tc.b)
			if err != nil {
				t.Fatal(err)
			}
			assertPeriods(t, got, tc.want...)
		})
	}
}

// grids returns, per precision, every period starting on one of eight
// consecutive ticks with a length of 0..3 ticks. The MONTH grid crosses
// February 2024 and the YEAR grid crosses the 2024 leap year.
func grids() map[Precision][]Period {
	build := func(p Precision, first time.Time) []Period {
		var out []Period
		start := first
		for i := 0; i < 8; i++ {
			end := start
			for n := 0; n <= 3; n++ {
				out = append(out, MustNew(start, end, p))
				end = p.Increment(end)
			}
			start = p.Increment(start)
		}
		return out
	}
	return map[Precision][]Period{
		Day:   build(Day, date(2024, 1, 1)),
		Month: build(Month, date(2023, 12, 1)),
		Year:  build(Year, date(2021, 1, 1)),
	}
}

func TestProperties_OverlapAndTouch(t *testing.T) {
	for prec, grid := range grids() {
		t.Run(prec.String(), func(t *testing.T) {
			for _, a := range grid {
				for _, b := range grid {
					ab, _ := a.OverlapsWith(b)
					ba, _ := b.OverlapsWith(a)
					if ab != ba {
						t.Fatalf("OverlapsWith not symmetric for %v, %v", a, b)
					}
					tab, _ := a.TouchesWith(b)
					tba, _ := b.TouchesWith(a)
					if tab != tba {
						t.Fatalf("TouchesWith not symmetric for %v, %v", a, b)
					}
					if ab && tab {
						t.Fatalf("%v and %v both overlap and touch", a, b)
					}
					_, hasGap, _ := a.Gap(b)
					if hasGap == (ab || tab) {
						t.Fatalf("%v, %v: gap=%v overlaps=%v touches=%v", a, b, hasGap, ab, tab)
					}
				}
			}
		})
	}
}

func TestProperties_SubtractThenUnionCoversReceiver(t *testing.T) {
	for prec, grid := range grids() {
		t.Run(prec.String(), func(t *testing.T) {
			for _, a := range grid {
				for _, b := range grid {
					rest, err := a.Subtract(b)
					if err != nil {
						t.Fatal(err)
					}
					if ov, ok, _ := a.Overlap(b); ok {
						rest.Add(ov)
					}
					u, err := rest.Union()
					if err != nil {
						t.Fatal(err)
					}
					assertPeriods(t, u, a)
				}
			}
		})
	}
}

func TestProperties_DiffSymmetricIsSymmetric(t *testing.T) {
	for prec, grid := range grids() {
		t.Run(prec.String(), func(t *testing.T) {
			for _, a := range grid {
				for _, b := range grid {
					ab, _ := a.DiffSymmetric(b)
					ba, _ := b.DiffSymmetric(a)
					assertPeriods(t, ab.Sorted(), ba.Sorted()...)
				}
			}
		})
	}
}

func TestCoarseAlgebra(t *testing.T) {
	years := func(from, to int) Period { return MustNew(date(from, 3, 9), date(to, 11, 30), Year) }
	months := func(from, to time.Month) Period { return MustNew(date(2024, from, 29), date(2024, to, 15), Month) }

	gap, ok, err := years(2020, 2021).Gap(years(2024, 2025))
	if err != nil || !ok {
		t.Fatalf("Gap: ok=%v err=%v", ok, err)
	}
	assertPeriods(t, Collection{gap}, years(2022, 2023))

	rest, err := years(2020, 2026).Subtract(years(2024, 2024))
	if err != nil {
		t.Fatal(err)
	}
	assertPeriods(t, rest, years(2020, 2023), years(2025, 2026))

	u, err := NewCollection(years(2020, 2021), years(2022, 2022), years(2025, 2025)).Union()
	if err != nil {
		t.Fatal(err)
	}
	assertPeriods(t, u, years(2020, 2022), years(2025, 2025))

	rest, err = months(time.January, time.March).Subtract(months(time.February, time.February))
	if err != nil {
		t.Fatal(err)
	}
	assertPeriods(t, rest, months(time.January, time.January), months(time.March, time.March))
	if got := months(time.February, time.February).End(); !got.Equal(date(2024, 2, 1)) {
		t.Fatalf("MONTH end: got %v, want 2024-02-01", got)
	}

	gap, ok, err = months(time.January, time.January).Gap(months(time.April, time.May))
	if err != nil || !ok {
		t.Fatalf("Gap: ok=%v err=%v", ok, err)
	}
	assertPeriods(t, Collection{gap}, months(time.February, time.March))
}

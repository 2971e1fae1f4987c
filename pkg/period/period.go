// Package period implements an algebra over closed time periods.
//
// A Period is the closed range [start, end] at a declared Precision. Both
// endpoints are truncated to the precision, so periods are discrete: two
// day-precision periods [Jan 1, Jan 31] and [Feb 1, Feb 29] do not overlap
// but touch, because Feb 1 is exactly one step after Jan 31.
//
// Binary operations require both operands to share a precision and return
// an error matching ErrPrecisionMismatch otherwise. Nothing is coerced.
//
// Collection extends the pairwise operations to sequences of periods:
// boundaries, union, gaps, subtraction and intersection.
package period

import (
	"time"
)

// Period is an immutable closed time range at a given precision.
// The zero value is a single-instant YEAR period at the zero time.
type Period struct {
	start     time.Time
	end       time.Time
	precision Precision
}

// New rounds start and end to precision and returns the period between
// them. It fails with a *RangeError when the rounded end is before the
// rounded start.
func New(start, end time.Time, precision Precision) (Period, error) {
	if !precision.Valid() {
		return Period{}, ErrInvalidPrecision
	}
	start, end = precision.Round(start), precision.Round(end)
	if start.After(end) {
		return Period{}, &RangeError{Start: start, End: end}
	}
	return Period{start: start, end: end, precision: precision}, nil
}

// FromDates returns a DAY precision period.
func FromDates(start, end time.Time) (Period, error) {
	return New(start, end, Day)
}

// FromTimes returns a SECOND precision period.
func FromTimes(start, end time.Time) (Period, error) {
	return New(start, end, Second)
}

// MustNew is like New but panics on error.
func MustNew(start, end time.Time, precision Precision) Period {
	p, err := New(start, end, precision)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Period) Start() time.Time { return p.start }
func (p Period) End() time.Time   { return p.end }

func (p Period) Precision() Precision { return p.precision }

// Duration returns the elapsed time between start and end.
func (p Period) Duration() time.Duration { return p.end.Sub(p.start) }

// IsZero reports whether p is the zero Period.
func (p Period) IsZero() bool {
	return p.start.IsZero() && p.end.IsZero() && p.precision == Year
}

// Equal reports whether p and o have the same endpoints and precision.
func (p Period) Equal(o Period) bool {
	return p.precision == o.precision && p.start.Equal(o.start) && p.end.Equal(o.end)
}

// Compare orders periods by start only. Equal periods compare 0; a period
// with an earlier start compares -1; anything else compares +1, including
// two unequal periods that share a start. The order is therefore not
// antisymmetric for such pairs. Use CompareTotal when sorting.
func (p Period) Compare(o Period) int {
	switch {
	case p.Equal(o):
		return 0
	case p.start.Before(o.start):
		return -1
	default:
		return 1
	}
}

// CompareTotal orders periods by start, then end, then precision.
func (p Period) CompareTotal(o Period) int {
	if c := p.start.Compare(o.start); c != 0 {
		return c
	}
	if c := p.end.Compare(o.end); c != 0 {
		return c
	}
	switch {
	case p.precision < o.precision:
		return -1
	case p.precision > o.precision:
		return 1
	}
	return 0
}

// OverlapsWith reports whether the closed ranges intersect. Periods sharing
// a boundary instant overlap.
func (p Period) OverlapsWith(o Period) (bool, error) {
	if err := checkPrecision(p, o); err != nil {
		return false, err
	}
	return p.overlaps(o), nil
}

func (p Period) overlaps(o Period) bool {
	return !(p.start.After(o.end) || o.start.After(p.end))
}

// TouchesWith reports whether the periods are adjacent: they do not
// overlap and the later one starts exactly one step after the earlier one
// ends.
func (p Period) TouchesWith(o Period) (bool, error) {
	if err := checkPrecision(p, o); err != nil {
		return false, err
	}
	return p.touches(o), nil
}

func (p Period) touches(o Period) bool {
	switch {
	case o.start.After(p.end):
		return p.precision.Increment(p.end).Equal(o.start)
	case p.start.After(o.end):
		return o.precision.Increment(o.end).Equal(p.start)
	}
	return false
}

// Gap returns the period strictly between p and o. ok is false when they
// overlap or touch. The result does not depend on operand order.
func (p Period) Gap(o Period) (gap Period, ok bool, err error) {
	if err := checkPrecision(p, o); err != nil {
		return Period{}, false, err
	}
	if p.overlaps(o) || p.touches(o) {
		return Period{}, false, nil
	}
	earlier, later := p, o
	if !p.start.Before(o.end) {
		earlier, later = o, p
	}
	return MustNew(
		p.precision.Increment(earlier.end),
		p.precision.Decrement(later.start),
		p.precision,
	), true, nil
}

// Overlap returns the intersection of p and o. ok is false when they do
// not intersect.
func (p Period) Overlap(o Period) (overlap Period, ok bool, err error) {
	if err := checkPrecision(p, o); err != nil {
		return Period{}, false, err
	}
	overlap, ok = p.overlap(o)
	return overlap, ok, nil
}

func (p Period) overlap(o Period) (Period, bool) {
	start, end := p.start, p.end
	if o.start.After(start) {
		start = o.start
	}
	if o.end.Before(end) {
		end = o.end
	}
	if start.After(end) {
		return Period{}, false
	}
	return Period{start: start, end: end, precision: p.precision}, true
}

// OverlapAll returns the range shared by p and every one of others. With
// no arguments it returns p.
func (p Period) OverlapAll(others ...Period) (Period, bool, error) {
	acc := p
	for _, o := range others {
		next, ok, err := acc.Overlap(o)
		if err != nil || !ok {
			return Period{}, false, err
		}
		acc = next
	}
	return acc, true, nil
}

// OverlapAny returns the non-empty overlaps of p with each of others, in
// argument order.
func (p Period) OverlapAny(others ...Period) (Collection, error) {
	var out Collection
	for _, o := range others {
		ov, ok, err := p.Overlap(o)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, ov)
		}
	}
	return out, nil
}

// Subtract removes o from p. The result holds p itself when they do not
// overlap, otherwise up to two remainders: the part of p before o and the
// part after it.
func (p Period) Subtract(o Period) (Collection, error) {
	if err := checkPrecision(p, o); err != nil {
		return nil, err
	}
	if !p.overlaps(o) {
		return Collection{p}, nil
	}
	out := Collection{}
	if p.start.Before(o.start) {
		out = append(out, MustNew(p.start, p.precision.Decrement(o.start), p.precision))
	}
	if p.end.After(o.end) {
		out = append(out, MustNew(p.precision.Increment(o.end), p.end, p.precision))
	}
	return out, nil
}

// SubtractAll removes every one of others from p. Each argument is
// subtracted from p on its own and the remainder sets are then intersected,
// which stays correct when the arguments overlap each other.
func (p Period) SubtractAll(others ...Period) (Collection, error) {
	if len(others) == 0 {
		return Collection{p}, nil
	}
	remainders := make([]Collection, len(others))
	for i, o := range others {
		r, err := p.Subtract(o)
		if err != nil {
			return nil, err
		}
		remainders[i] = r
	}
	return Collection{p}.OverlapAll(remainders...)
}

// DiffSymmetric returns the parts covered by exactly one of p and o.
// Non-overlapping operands are returned as-is, receiver first.
func (p Period) DiffSymmetric(o Period) (Collection, error) {
	if err := checkPrecision(p, o); err != nil {
		return nil, err
	}
	if !p.overlaps(o) {
		return Collection{p, o}, nil
	}
	bounds, _ := Collection{p, o}.Boundaries()
	ov, _ := p.overlap(o)
	return bounds.Subtract(ov)
}

// Renew returns a period of the same duration starting one step after p
// ends.
func (p Period) Renew() Period {
	start := p.precision.Increment(p.end)
	return MustNew(start, start.Add(p.Duration()), p.precision)
}

// Contains reports whether t, rounded to p's precision, lies within p.
func (p Period) Contains(t time.Time) bool {
	t = p.precision.Round(t)
	return !t.Before(p.start) && !t.After(p.end)
}

// ContainsPeriod reports whether o lies entirely within p. Precisions are
// not compared.
func (p Period) ContainsPeriod(o Period) bool {
	return !p.start.After(o.start) && !p.end.Before(o.end)
}

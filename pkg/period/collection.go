package period

import (
	"slices"
	"strings"
)

// Collection is an ordered sequence of periods. Order is the caller's;
// duplicates and mixed precisions may be stored. Algebra methods return
// new collections and never reorder their input. Collection is not safe
// for concurrent mutation.
type Collection []Period

// NewCollection returns a collection holding a copy of ps.
func NewCollection(ps ...Period) Collection {
	return slices.Clone(Collection(ps))
}

func (c Collection) Len() int      { return len(c) }
func (c Collection) IsEmpty() bool { return len(c) == 0 }

// At returns the i-th period. It panics when i is out of range.
func (c Collection) At(i int) Period { return c[i] }

// Clone returns a shallow copy of c. Periods are values, so the copy is
// independent of c.
func (c Collection) Clone() Collection {
	if c == nil {
		return nil
	}
	return slices.Clone(c)
}

// Contains reports whether some element is Equal to p.
func (c Collection) Contains(p Period) bool {
	return c.index(p) >= 0
}

func (c Collection) index(p Period) int {
	return slices.IndexFunc(c, p.Equal)
}

// Add appends ps to c.
func (c *Collection) Add(ps ...Period) {
	*c = append(*c, ps...)
}

// AddAll appends every element of o to c.
func (c *Collection) AddAll(o Collection) {
	c.Add(o...)
}

// Remove deletes the first element Equal to p and reports whether one was
// found.
func (c *Collection) Remove(p Period) bool {
	i := c.index(p)
	if i < 0 {
		return false
	}
	*c = slices.Delete(*c, i, i+1)
	return true
}

// RemoveAll deletes every element Equal to some element of o.
func (c *Collection) RemoveAll(o Collection) bool {
	n := len(*c)
	*c = slices.DeleteFunc(*c, o.Contains)
	return len(*c) != n
}

// RetainAll keeps only the elements Equal to some element of o.
func (c *Collection) RetainAll(o Collection) bool {
	n := len(*c)
	*c = slices.DeleteFunc(*c, func(p Period) bool { return !o.Contains(p) })
	return len(*c) != n
}

// Clear removes every element. Copies taken before the call keep their
// elements.
func (c *Collection) Clear() {
	*c = nil
}

// Precision returns the precision shared by every element. ok is false
// when c is empty or holds more than one precision.
func (c Collection) Precision() (Precision, bool) {
	if len(c) == 0 {
		return 0, false
	}
	p := c[0].precision
	for _, e := range c[1:] {
		if e.precision != p {
			return 0, false
		}
	}
	return p, true
}

// Sorted returns a copy of c ordered by CompareTotal.
func (c Collection) Sorted() Collection {
	out := c.Clone()
	slices.SortStableFunc(out, Period.CompareTotal)
	return out
}

// Boundaries returns the smallest period spanning every element. The
// result takes the precision of the first element; mixed precisions are
// not checked. ok is false when c is empty.
func (c Collection) Boundaries() (Period, bool) {
	if len(c) == 0 {
		return Period{}, false
	}
	start, end := c[0].start, c[0].end
	for _, p := range c[1:] {
		if p.start.Before(start) {
			start = p.start
		}
		if p.end.After(end) {
			end = p.end
		}
	}
	return MustNew(start, end, c[0].precision), true
}

// Subtract removes periods from every element of c and concatenates the
// remainders in element order. A collection can be subtracted with
// c.Subtract(other...).
func (c Collection) Subtract(periods ...Period) (Collection, error) {
	if len(periods) == 0 {
		return c.Clone(), nil
	}
	out := Collection{}
	for _, p := range c {
		r, err := p.SubtractAll(periods...)
		if err != nil {
			return nil, err
		}
		out = append(out, r...)
	}
	return out, nil
}

// Gaps returns the ranges inside c's boundaries that no element covers.
func (c Collection) Gaps() (Collection, error) {
	bounds, ok := c.Boundaries()
	if !ok {
		return Collection{}, nil
	}
	return bounds.SubtractAll(c...)
}

// Union returns the ranges covered by at least one element, merged into
// non-overlapping periods.
func (c Collection) Union() (Collection, error) {
	bounds, ok := c.Boundaries()
	if !ok {
		return Collection{}, nil
	}
	gaps, err := bounds.SubtractAll(c...)
	if err != nil {
		return nil, err
	}
	return bounds.SubtractAll(gaps...)
}

// Intersect returns the non-empty overlaps of p with each element, in
// element order.
func (c Collection) Intersect(p Period) (Collection, error) {
	out := Collection{}
	for _, e := range c {
		ov, ok, err := p.Overlap(e)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, ov)
		}
	}
	return out, nil
}

// OverlapAll folds others into c: after each step the running result is
// every non-empty overlap between its elements and the next collection's.
func (c Collection) OverlapAll(others ...Collection) (Collection, error) {
	acc := c.Clone()
	for _, o := range others {
		next := Collection{}
		for _, a := range acc {
			for _, b := range o {
				ov, ok, err := a.Overlap(b)
				if err != nil {
					return nil, err
				}
				if ok {
					next = append(next, ov)
				}
			}
		}
		acc = next
	}
	return acc, nil
}

func (c Collection) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, p := range c {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteByte(']')
	return b.String()
}

// Package interval provides arithmetic over half-open integer intervals
// [Start, End), expressed in minutes since midnight. All operations are pure
// and the result of Subtract does not depend on the order of the cuts.
package interval

import "sort"

// Interval is a half-open range [Start, End) in minutes
type Interval struct {
	Start int
	End   int
}

// Length returns the interval length in minutes
func (iv Interval) Length() int {
	return iv.End - iv.Start
}

// IsEmpty returns true if the interval contains no minutes
func (iv Interval) IsEmpty() bool {
	return iv.End <= iv.Start
}

// Overlaps reports whether a and b share at least one minute.
// Touching intervals (a.End == b.Start) do not overlap.
func Overlaps(a, b Interval) bool {
	return a.Start < b.End && b.Start < a.End
}

// Subtract removes every cut from every base interval and drops resulting
// fragments shorter than minLength. For a single base interval and cut:
// no overlap leaves the interval untouched, a covering cut removes it, a
// one-sided cut truncates it, and an interior cut splits it in two.
func Subtract(base []Interval, cuts []Interval, minLength int) []Interval {
	result := make([]Interval, 0, len(base))
	for _, iv := range base {
		if !iv.IsEmpty() {
			result = append(result, iv)
		}
	}

	for _, cut := range cuts {
		if cut.IsEmpty() {
			continue
		}
		next := make([]Interval, 0, len(result))
		for _, iv := range result {
			switch {
			case !Overlaps(iv, cut):
				next = append(next, iv)
			case cut.Start <= iv.Start && cut.End >= iv.End:
				// cut covers the interval, drop it
			case cut.Start <= iv.Start:
				next = append(next, Interval{Start: cut.End, End: iv.End})
			case cut.End >= iv.End:
				next = append(next, Interval{Start: iv.Start, End: cut.Start})
			default:
				// interior cut, split in two
				next = append(next, Interval{Start: iv.Start, End: cut.Start})
				next = append(next, Interval{Start: cut.End, End: iv.End})
			}
		}
		result = next
	}

	filtered := result[:0]
	for _, iv := range result {
		if iv.Length() >= minLength {
			filtered = append(filtered, iv)
		}
	}

	sort.Slice(filtered, func(i, j int) bool {
		if filtered[i].Start != filtered[j].Start {
			return filtered[i].Start < filtered[j].Start
		}
		return filtered[i].End < filtered[j].End
	})

	return filtered
}

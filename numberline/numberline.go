// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package numberline represents subsets of the real number line as unions of
// intervals and implements exact set algebra over them: union, difference,
// complement and membership, with inclusive and exclusive boundaries.
package numberline

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// NumberLine is a subset of the real number line, held as a list of ranges.
// NumberLine is a value type: every operation returns a new NumberLine and
// never mutates the receiver.
type NumberLine struct {
	ranges []Range
}

// Operand is a value a NumberLine can be combined with: another NumberLine,
// a single [Range] or a [Scalar].
type Operand interface {
	// operandRanges returns the ranges making up the operand.
	operandRanges() []Range
}

// Scalar is a single point on the number line. As an [Operand] it behaves
// like the degenerate interval containing only its own value; a NaN scalar
// contains no value at all.
type Scalar float64

func (s Scalar) operandRanges() []Range {
	b := NewBound(float64(s), true)
	return []Range{{
		lower: b,
		upper: b,
	}}
}

func (r Range) operandRanges() []Range {
	return []Range{r}
}

func (n NumberLine) operandRanges() []Range {
	return n.ranges
}

// New returns the number line covering [ranges], simplified into canonical
// form.
func New(ranges ...Range) NumberLine {
	return NumberLine{ranges: simplifyRanges(slices.Clone(ranges))}
}

// Full returns the number line containing every value.
func Full() NumberLine {
	return NumberLine{ranges: []Range{FullRange()}}
}

// Empty returns the number line containing no values.
func Empty() NumberLine {
	return NumberLine{}
}

// Include returns the number line containing exactly the values between
// [start] and [end].
func Include(start, end Bound) (NumberLine, error) {
	if start.GreaterOrEqual(end) {
		return NumberLine{}, fmt.Errorf("%w: start value (%s) cannot be bigger than end value (%s)", ErrInvalidRange, start, end)
	}
	r, err := NewRange(start, end)
	if err != nil {
		return NumberLine{}, err
	}
	return New(r), nil
}

// IncludeFloats is [Include] with the bounds given as values and inclusivity
// flags.
func IncludeFloats(start, end float64, startInclusive, endInclusive bool) (NumberLine, error) {
	return Include(NewBound(start, startInclusive), NewBound(end, endInclusive))
}

// Exclude returns the number line containing every value except the ones
// between [start] and [end]. The bounds' inclusivity reports whether the
// boundary values themselves stay on the line. Excluding everything between
// MinusInfinity and Infinity returns [Empty].
func Exclude(start, end Bound) (NumberLine, error) {
	if start.GreaterOrEqual(end) {
		return NumberLine{}, fmt.Errorf("%w: start value (%s) cannot be bigger than end value (%s)", ErrInvalidRange, start, end)
	}
	if start == MinusInfinity && end == Infinity {
		return Empty(), nil
	}
	return New(
		Range{lower: MinusInfinity, upper: start},
		Range{lower: end, upper: Infinity},
	), nil
}

// ExcludeFloats is [Exclude] with the bounds given as values and inclusivity
// flags.
func ExcludeFloats(start, end float64, startInclusive, endInclusive bool) (NumberLine, error) {
	return Exclude(NewBound(start, startInclusive), NewBound(end, endInclusive))
}

// BiggerThan returns the number line containing all values bigger than
// [value].
func BiggerThan(value Bound) (NumberLine, error) {
	return Include(value, Infinity)
}

// BiggerThanFloat is [BiggerThan] with the bound given as a value and an
// inclusivity flag.
func BiggerThanFloat(value float64, inclusive bool) (NumberLine, error) {
	return BiggerThan(NewBound(value, inclusive))
}

// SmallerThan returns the number line containing all values smaller than
// [value].
func SmallerThan(value Bound) (NumberLine, error) {
	return Include(MinusInfinity, value)
}

// SmallerThanFloat is [SmallerThan] with the bound given as a value and an
// inclusivity flag.
func SmallerThanFloat(value float64, inclusive bool) (NumberLine, error) {
	return SmallerThan(NewBound(value, inclusive))
}

// Positive returns the number line containing all positive values.
func Positive(includeZero bool) NumberLine {
	return New(Range{
		lower: NewBound(0, includeZero),
		upper: Infinity,
	})
}

// Negative returns the number line containing all negative values.
func Negative(includeZero bool) NumberLine {
	return New(Range{
		lower: MinusInfinity,
		upper: NewBound(0, includeZero),
	})
}

// Simplify returns the canonical form of the number line: empty ranges and
// ranges collapsed to a single infinite endpoint are dropped, overlapping or
// touching ranges are merged, and the remaining ranges are sorted ascending.
// Simplify is idempotent.
func (n NumberLine) Simplify() NumberLine {
	return NumberLine{ranges: simplifyRanges(slices.Clone(n.ranges))}
}

// simplifyRanges merges [ranges] in place until no droppable range remains
// and no pair can be merged, then sorts the result ascending by lower bound.
// Every drop and merge shrinks the slice by one, so the fixed point is
// always reached.
func simplifyRanges(ranges []Range) []Range {
	busy := true
	for busy {
		busy = false
		for i := 0; i < len(ranges) && !busy; i++ {
			if ranges[i].IsEmpty() || ranges[i].infinitePoint() {
				ranges = append(ranges[:i], ranges[i+1:]...)
				busy = true
				break
			}
			for j := i + 1; j < len(ranges); j++ {
				if union := ranges[i].Union(ranges[j]); len(union) == 1 {
					ranges[i] = union[0]
					ranges = append(ranges[:j], ranges[j+1:]...)
					busy = true
					break
				}
			}
		}
	}
	slices.SortFunc(ranges, func(a, b Range) bool {
		return a.lower.value < b.lower.value
	})
	return ranges
}

// Check returns true iff [value] is on the number line.
func (n NumberLine) Check(value float64) bool {
	for _, r := range n.ranges {
		if r.Contains(value) {
			return true
		}
	}
	return false
}

// Contains is an alias for [NumberLine.Check].
func (n NumberLine) Contains(value float64) bool {
	return n.Check(value)
}

// Validate returns nil if [value] is on the number line and an error
// describing the allowed values otherwise.
func (n NumberLine) Validate(value float64) error {
	if n.Check(value) {
		return nil
	}
	if len(n.ranges) == 1 {
		r := n.ranges[0]
		switch {
		case r.lower == MinusInfinity:
			return fmt.Errorf("%s should be smaller than %s%s", formatValue(value), orEqualTo(r.upper), r.upper)
		case r.upper == Infinity:
			return fmt.Errorf("%s should be bigger than %s%s", formatValue(value), orEqualTo(r.lower), r.lower)
		default:
			return fmt.Errorf("%s should be in the range %s", formatValue(value), r)
		}
	}
	return fmt.Errorf("%s should be in: %s", formatValue(value), n)
}

func orEqualTo(b Bound) string {
	if b.inclusive {
		return "or equal to "
	}
	return ""
}

// Union returns the number line containing every value of [n] and [other],
// simplified into canonical form.
func (n NumberLine) Union(other Operand) NumberLine {
	otherRanges := other.operandRanges()
	merged := make([]Range, 0, len(n.ranges)+len(otherRanges))
	merged = append(merged, n.ranges...)
	merged = append(merged, otherRanges...)
	return NumberLine{ranges: simplifyRanges(merged)}
}

// Difference returns the number line containing the values of [n] that are
// not on [other]. The result is not simplified: remainders that only meet at
// an excluded boundary value stay separate ranges, which keeps the removed
// values visible when rendering the line.
func (n NumberLine) Difference(other Operand) NumberLine {
	current := slices.Clone(n.ranges)
	for _, sub := range other.operandRanges() {
		next := make([]Range, 0, len(current))
		for _, r := range current {
			next = append(next, r.Difference(sub)...)
		}
		current = next
	}
	return NumberLine{ranges: current}
}

// Complement returns the number line containing exactly the values not on
// [n].
func (n NumberLine) Complement() NumberLine {
	return Full().Difference(n)
}

// IsEmpty returns true iff no values are on the number line.
func (n NumberLine) IsEmpty() bool {
	return len(n.Simplify().ranges) == 0
}

// Equal returns true iff [n] and [other] hold the same ranges in the same
// order. Lines built by different operations may hold the same values in
// different forms; simplify both sides first to compare them as sets.
func (n NumberLine) Equal(other NumberLine) bool {
	return slices.Equal(n.ranges, other.ranges)
}

// Ranges returns a copy of the ranges making up the number line.
func (n NumberLine) Ranges() []Range {
	return slices.Clone(n.ranges)
}

// String renders the number line as a comma separated list of its ranges.
func (n NumberLine) String() string {
	sb := strings.Builder{}
	for i, r := range n.ranges {
		if i > 0 {
			_, _ = sb.WriteString(", ")
		}
		_, _ = sb.WriteString(r.String())
	}
	return sb.String()
}

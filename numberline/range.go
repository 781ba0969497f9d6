// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package numberline

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var ErrInvalidRange = errors.New("invalid range")

// Range is one contiguous interval of the number line: every value between
// its lower and upper bound, where the bounds' inclusivity decides whether
// the boundary values themselves belong to the interval.
//
// The zero value of Range is an empty interval.
type Range struct {
	lower Bound
	upper Bound
}

// NewRange returns the interval between [lower] and [upper]. It returns an
// error if [lower] doesn't compare smaller than or equal to [upper], which
// includes the case of equal values where either bound is exclusive.
func NewRange(lower, upper Bound) (Range, error) {
	if !lower.LessOrEqual(upper) {
		return Range{}, fmt.Errorf("%w: lower bound (%s) cannot be bigger than upper bound (%s)", ErrInvalidRange, lower, upper)
	}
	return Range{
		lower: lower,
		upper: upper,
	}, nil
}

// FullRange returns the interval covering the whole number line.
func FullRange() Range {
	return Range{
		lower: MinusInfinity,
		upper: Infinity,
	}
}

// Lower returns the lower bound of the interval.
func (r Range) Lower() Bound {
	return r.lower
}

// Upper returns the upper bound of the interval.
func (r Range) Upper() Bound {
	return r.upper
}

// IsEmpty returns true iff the interval contains no values.
func (r Range) IsEmpty() bool {
	return !r.lower.LessOrEqual(r.upper)
}

// Contains returns true iff [value] is inside the interval.
func (r Range) Contains(value float64) bool {
	v := NewBound(value, true)
	return r.lower.LessOrEqual(v) && r.upper.GreaterOrEqual(v)
}

// Union returns the union of [r] and [other]: a single merged interval when
// the two overlap or touch with at least one inclusive side, or both
// intervals unchanged when merging them would also cover values that are in
// neither.
func (r Range) Union(other Range) []Range {
	if r.separatedBelow(other) || other.separatedBelow(r) {
		return []Range{r, other}
	}

	lower := r.lower
	switch {
	case other.lower.value < lower.value:
		lower = other.lower
	case other.lower.value == lower.value:
		lower.inclusive = lower.inclusive || other.lower.inclusive
	}

	upper := r.upper
	switch {
	case other.upper.value > upper.value:
		upper = other.upper
	case other.upper.value == upper.value:
		upper.inclusive = upper.inclusive || other.upper.inclusive
	}

	return []Range{{
		lower: lower,
		upper: upper,
	}}
}

// Difference returns the parts of [r] not covered by [other]: the whole of
// [r] when [other] is empty or disjoint from [r], both a left and a right
// remainder when [other] cuts a hole into [r], a single remainder when
// [other] covers one end of [r], and no interval at all when [other] covers
// [r] entirely.
func (r Range) Difference(other Range) []Range {
	// An empty subtrahend removes nothing. Its bounds (NaN in particular)
	// need not order against [r]'s, so the disjointness check cannot
	// classify it.
	if other.IsEmpty() || r.disjoint(other) {
		return []Range{r}
	}

	// Flipping the inclusivity of [other]'s bounds turns its lower bound into
	// the tightest upper bound of the left remainder and its upper bound into
	// the tightest lower bound of the right remainder.
	var (
		leftUpper  = NewBound(other.lower.value, !other.lower.inclusive)
		rightLower = NewBound(other.upper.value, !other.upper.inclusive)
		remainders []Range
	)
	if r.lower.LessOrEqual(leftUpper) {
		remainders = appendRemainder(remainders, Range{
			lower: r.lower,
			upper: leftUpper,
		})
	}
	if r.upper.GreaterOrEqual(rightLower) {
		remainders = appendRemainder(remainders, Range{
			lower: rightLower,
			upper: r.upper,
		})
	}
	return remainders
}

// appendRemainder drops remainders that collapse to a single infinite
// endpoint, as those contain no real number.
func appendRemainder(remainders []Range, r Range) []Range {
	if r.infinitePoint() {
		return remainders
	}
	return append(remainders, r)
}

// infinitePoint returns true iff the interval collapsed to a single infinite
// endpoint. Such an interval contains no real number.
func (r Range) infinitePoint() bool {
	return math.IsInf(r.lower.value, 0) && r.lower.value == r.upper.value
}

// separatedBelow returns true iff [r] ends below the start of [other] with a
// gap no merged interval could cover exactly: either the values between the
// two belong to neither, or the single shared boundary value is excluded by
// both.
func (r Range) separatedBelow(other Range) bool {
	if r.upper.value != other.lower.value {
		return r.upper.value < other.lower.value
	}
	return !r.upper.inclusive && !other.lower.inclusive
}

// disjoint returns true iff [r] and [other] share no value. Two intervals
// meeting at a boundary value that either side excludes share nothing, even
// though their union may still be a single interval.
func (r Range) disjoint(other Range) bool {
	return r.entirelyBelow(other) || other.entirelyBelow(r)
}

func (r Range) entirelyBelow(other Range) bool {
	if r.upper.value != other.lower.value {
		return r.upper.value < other.lower.value
	}
	return !r.upper.inclusive || !other.lower.inclusive
}

// String renders the interval in mathematical notation, with square brackets
// for inclusive bounds and parentheses for exclusive ones. Infinite bounds
// always render with parentheses.
func (r Range) String() string {
	sb := strings.Builder{}
	if r.lower.inclusive && !math.IsInf(r.lower.value, 0) {
		_, _ = sb.WriteString("[")
	} else {
		_, _ = sb.WriteString("(")
	}
	_, _ = sb.WriteString(r.lower.String())
	_, _ = sb.WriteString(", ")
	_, _ = sb.WriteString(r.upper.String())
	if r.upper.inclusive && !math.IsInf(r.upper.value, 0) {
		_, _ = sb.WriteString("]")
	} else {
		_, _ = sb.WriteString(")")
	}
	return sb.String()
}

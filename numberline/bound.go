// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package numberline

import (
	"math"
	"strconv"
)

// Distinguished endpoints of the number line.
var (
	Infinity      = NewBound(math.Inf(1), true)
	MinusInfinity = NewBound(math.Inf(-1), true)
)

// Bound is one endpoint of a [Range]: a position on the number line together
// with a flag reporting whether the position itself belongs to the interval.
//
// Infinite bounds are always stored as inclusive, regardless of the flag
// passed to [NewBound]. This keeps comparisons between infinite bounds total,
// so an unbounded range can be compared against itself.
type Bound struct {
	value     float64
	inclusive bool
}

// NewBound returns the bound at [value]. Infinite values are forced to be
// inclusive.
func NewBound(value float64, inclusive bool) Bound {
	if math.IsInf(value, 0) {
		inclusive = true
	}
	return Bound{
		value:     value,
		inclusive: inclusive,
	}
}

// Value returns the position of the bound on the number line.
func (b Bound) Value() float64 {
	return b.value
}

// Inclusive returns true if the bound's own value is part of the interval.
func (b Bound) Inclusive() bool {
	return b.inclusive
}

// LessOrEqual returns true iff [b] is smaller than or equal to [other].
// Equal values only satisfy the comparison when both bounds are inclusive;
// if either side is exclusive the comparison is strict.
func (b Bound) LessOrEqual(other Bound) bool {
	if b.inclusive && other.inclusive {
		return b.value <= other.value
	}
	return b.value < other.value
}

// GreaterOrEqual returns true iff [b] is bigger than or equal to [other].
// Equal values only satisfy the comparison when both bounds are inclusive;
// if either side is exclusive the comparison is strict.
func (b Bound) GreaterOrEqual(other Bound) bool {
	if b.inclusive && other.inclusive {
		return b.value >= other.value
	}
	return b.value > other.value
}

func (b Bound) String() string {
	return formatValue(b.value)
}

func formatValue(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "∞"
	case math.IsInf(v, -1):
		return "-∞"
	default:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
}

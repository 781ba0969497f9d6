// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package numberline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNumberLineNew(t *testing.T) {
	tests := []struct {
		name     string
		ranges   []Range
		expected []Range
	}{
		{
			name:     "no ranges",
			ranges:   nil,
			expected: nil,
		},
		{
			name:     "overlapping ranges merge",
			ranges:   []Range{rng(5, true, 15, true), rng(0, true, 10, true)},
			expected: []Range{rng(0, true, 15, true)},
		},
		{
			name:     "disjoint ranges sort",
			ranges:   []Range{rng(10, true, 15, true), rng(0, true, 5, true)},
			expected: []Range{rng(0, true, 5, true), rng(10, true, 15, true)},
		},
		{
			name:     "empty ranges are dropped",
			ranges:   []Range{{}, rng(0, true, 5, true), {}},
			expected: []Range{rng(0, true, 5, true)},
		},
		{
			name:     "single infinite points are dropped",
			ranges:   []Range{{lower: MinusInfinity, upper: MinusInfinity}, rng(0, true, 5, true)},
			expected: []Range{rng(0, true, 5, true)},
		},
		{
			name:     "touching ranges with an inclusive side merge",
			ranges:   []Range{rng(0, true, 5, false), rng(5, true, 10, true)},
			expected: []Range{rng(0, true, 10, true)},
		},
		{
			name:     "touching ranges excluded by both sides stay apart",
			ranges:   []Range{rng(0, false, 5, false), rng(5, false, 10, false)},
			expected: []Range{rng(0, false, 5, false), rng(5, false, 10, false)},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, New(test.ranges...).Ranges())
		})
	}
}

func TestNumberLineSimplify(t *testing.T) {
	require := require.New(t)

	raw := NumberLine{ranges: []Range{
		rng(5, true, 15, true),
		{},
		rng(0, true, 10, true),
	}}

	simplified := raw.Simplify()
	require.Equal([]Range{rng(0, true, 15, true)}, simplified.Ranges())

	// Simplify returns a new line and leaves the receiver alone.
	require.Len(raw.Ranges(), 3)

	require.True(simplified.Simplify().Equal(simplified))
}

func TestNumberLineCheck(t *testing.T) {
	positive := Positive(false)
	positiveWithZero := Positive(true)
	negative := Negative(false)
	included, err := IncludeFloats(0, 10, true, false)
	require.NoError(t, err)
	excluded, err := ExcludeFloats(0, 10, true, true)
	require.NoError(t, err)
	excludedOpen, err := ExcludeFloats(0, 10, false, false)
	require.NoError(t, err)

	tests := []struct {
		name     string
		line     NumberLine
		value    float64
		expected bool
	}{
		{name: "full contains zero", line: Full(), value: 0, expected: true},
		{name: "full contains huge", line: Full(), value: 1e300, expected: true},
		{name: "empty contains nothing", line: Empty(), value: 0, expected: false},
		{name: "positive excludes zero", line: positive, value: 0, expected: false},
		{name: "positive includes small values", line: positive, value: 1e-9, expected: true},
		{name: "positive with zero includes zero", line: positiveWithZero, value: 0, expected: true},
		{name: "negative excludes positive values", line: negative, value: 5, expected: false},
		{name: "negative includes negative values", line: negative, value: -5, expected: true},
		{name: "include keeps inclusive boundary", line: included, value: 0, expected: true},
		{name: "include drops exclusive boundary", line: included, value: 10, expected: false},
		{name: "include contains inner value", line: included, value: 5, expected: true},
		{name: "exclude drops inner value", line: excluded, value: 5, expected: false},
		{name: "exclude keeps inclusive boundary", line: excluded, value: 0, expected: true},
		{name: "exclude keeps outer value", line: excluded, value: -3, expected: true},
		{name: "open exclude drops its boundary", line: excludedOpen, value: 0, expected: false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			require.Equal(test.expected, test.line.Check(test.value))
			require.Equal(test.expected, test.line.Contains(test.value))
		})
	}
}

func TestNumberLineFactoryErrors(t *testing.T) {
	require := require.New(t)

	_, err := IncludeFloats(10, 0, true, true)
	require.ErrorIs(err, ErrInvalidRange)

	// A single inclusive point is not a valid interval to include.
	_, err = IncludeFloats(5, 5, true, true)
	require.ErrorIs(err, ErrInvalidRange)

	_, err = ExcludeFloats(10, 0, true, true)
	require.ErrorIs(err, ErrInvalidRange)

	_, err = BiggerThan(Infinity)
	require.ErrorIs(err, ErrInvalidRange)

	_, err = SmallerThan(MinusInfinity)
	require.ErrorIs(err, ErrInvalidRange)
}

func TestNumberLineExclude(t *testing.T) {
	require := require.New(t)

	excluded, err := Exclude(MinusInfinity, Infinity)
	require.NoError(err)
	require.True(excluded.IsEmpty())

	nonZero, err := ExcludeFloats(0, 0, false, false)
	require.NoError(err)
	require.False(nonZero.Check(0))
	require.True(nonZero.Check(-1e-9))
	require.True(nonZero.Check(1e-9))

	// Excluding a span reaching down to -∞ leaves only the half-line above
	// it; the remainder collapsing onto -∞ holds no values and is dropped.
	atLeastFive, err := Exclude(MinusInfinity, NewBound(5, true))
	require.NoError(err)
	bigger, err := BiggerThanFloat(5, true)
	require.NoError(err)
	require.True(atLeastFive.Equal(bigger))
	require.Equal("[5, ∞)", atLeastFive.String())
}

func TestNumberLineUnion(t *testing.T) {
	low, err := IncludeFloats(0, 5, true, true)
	require.NoError(t, err)
	high, err := IncludeFloats(10, 15, true, true)
	require.NoError(t, err)
	halfOpen, err := IncludeFloats(0, 1, true, false)
	require.NoError(t, err)

	tests := []struct {
		name     string
		line     NumberLine
		other    Operand
		expected []Range
	}{
		{
			name:     "disjoint lines",
			line:     low,
			other:    high,
			expected: []Range{rng(0, true, 5, true), rng(10, true, 15, true)},
		},
		{
			name:     "overlapping range",
			line:     low,
			other:    rng(3, true, 8, true),
			expected: []Range{rng(0, true, 8, true)},
		},
		{
			name:     "touching range with one inclusive side",
			line:     low,
			other:    rng(5, false, 10, true),
			expected: []Range{rng(0, true, 10, true)},
		},
		{
			name:     "scalar closes an exclusive boundary",
			line:     halfOpen,
			other:    Scalar(1),
			expected: []Range{rng(0, true, 1, true)},
		},
		{
			name:     "scalar away from the line",
			line:     low,
			other:    Scalar(8),
			expected: []Range{rng(0, true, 5, true), rng(8, true, 8, true)},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, test.line.Union(test.other).Ranges())
		})
	}
}

func TestNumberLineDifference(t *testing.T) {
	require := require.New(t)

	base, err := IncludeFloats(0, 10, true, true)
	require.NoError(err)
	middle, err := IncludeFloats(3, 7, true, true)
	require.NoError(err)

	cut := base.Difference(middle)
	require.Equal([]Range{
		rng(0, true, 3, false),
		rng(7, false, 10, true),
	}, cut.Ranges())
	require.True(cut.Check(0))
	require.True(cut.Check(1))
	require.False(cut.Check(3))
	require.False(cut.Check(5))
	require.False(cut.Check(7))
	require.True(cut.Check(10))
}

func TestNumberLineDifferenceScalar(t *testing.T) {
	require := require.New(t)

	base, err := IncludeFloats(0, 10, true, true)
	require.NoError(err)

	holed := base.Difference(Scalar(4))
	require.Equal([]Range{
		rng(0, true, 4, false),
		rng(4, false, 10, true),
	}, holed.Ranges())

	// The hole is real: simplifying doesn't close it.
	require.Equal(holed.Ranges(), holed.Simplify().Ranges())

	// Adding the point back heals the line.
	require.Equal([]Range{rng(0, true, 10, true)}, holed.Union(Scalar(4)).Ranges())
}

func TestNumberLineDifferenceLine(t *testing.T) {
	require := require.New(t)

	low, err := IncludeFloats(0, 10, true, true)
	require.NoError(err)
	high, err := IncludeFloats(20, 30, true, true)
	require.NoError(err)
	both := low.Union(high)

	middle, err := IncludeFloats(5, 25, true, true)
	require.NoError(err)

	cut := both.Difference(middle)
	require.Equal([]Range{
		rng(0, true, 5, false),
		rng(25, false, 30, true),
	}, cut.Ranges())

	require.True(both.Difference(both).IsEmpty())
}

func TestNumberLineDifferenceEmptyOperand(t *testing.T) {
	require := require.New(t)

	base, err := IncludeFloats(0, 10, true, true)
	require.NoError(err)

	// A NaN scalar holds no value; subtracting it removes nothing.
	require.Equal(base.Ranges(), base.Difference(Scalar(math.NaN())).Ranges())
	require.Equal(base.Ranges(), base.Union(Scalar(math.NaN())).Ranges())

	require.Equal(base.Ranges(), base.Difference(Range{}).Ranges())
	require.Equal(base.Ranges(), base.Difference(Empty()).Ranges())
}

func TestNumberLineComplement(t *testing.T) {
	require := require.New(t)

	atLeastFive, err := BiggerThanFloat(5, true)
	require.NoError(err)
	belowFive, err := SmallerThanFloat(5, false)
	require.NoError(err)

	require.True(atLeastFive.Complement().Equal(belowFive))
	require.True(belowFive.Complement().Equal(atLeastFive))

	require.True(Full().Complement().IsEmpty())
	require.True(Empty().Complement().Equal(Full()))

	base, err := IncludeFloats(0, 1, true, true)
	require.NoError(err)
	complement := base.Complement()
	require.False(complement.Check(0.5))
	require.False(complement.Check(0))
	require.False(complement.Check(1))
	require.True(complement.Check(-0.5))
	require.True(complement.Check(1.5))
}

func TestNumberLineValidate(t *testing.T) {
	atMostTen, err := SmallerThanFloat(10, true)
	require.NoError(t, err)
	belowTen, err := SmallerThanFloat(10, false)
	require.NoError(t, err)
	aboveZero, err := BiggerThanFloat(0, false)
	require.NoError(t, err)
	atLeastZero, err := BiggerThanFloat(0, true)
	require.NoError(t, err)
	zeroToTen, err := IncludeFloats(0, 10, true, true)
	require.NoError(t, err)
	outsideZeroToTen, err := ExcludeFloats(0, 10, true, true)
	require.NoError(t, err)

	tests := []struct {
		name        string
		line        NumberLine
		value       float64
		expectedErr string
	}{
		{
			name:  "valid value",
			line:  atLeastZero,
			value: 0,
		},
		{
			name:        "too big with inclusive bound",
			line:        atMostTen,
			value:       11,
			expectedErr: "11 should be smaller than or equal to 10",
		},
		{
			name:        "too big with exclusive bound",
			line:        belowTen,
			value:       10,
			expectedErr: "10 should be smaller than 10",
		},
		{
			name:        "too small with exclusive bound",
			line:        aboveZero,
			value:       0,
			expectedErr: "0 should be bigger than 0",
		},
		{
			name:        "too small with inclusive bound",
			line:        atLeastZero,
			value:       -1,
			expectedErr: "-1 should be bigger than or equal to 0",
		},
		{
			name:        "outside a bounded range",
			line:        zeroToTen,
			value:       10.5,
			expectedErr: "10.5 should be in the range [0, 10]",
		},
		{
			name:        "outside multiple ranges",
			line:        outsideZeroToTen,
			value:       5,
			expectedErr: "5 should be in: (-∞, 0], [10, ∞)",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			err := test.line.Validate(test.value)
			if test.expectedErr == "" {
				require.NoError(err)
			} else {
				require.EqualError(err, test.expectedErr)
			}
		})
	}
}

func TestNumberLineEqual(t *testing.T) {
	require := require.New(t)

	a, err := IncludeFloats(0, 10, true, true)
	require.NoError(err)
	b := New(rng(0, true, 10, true))
	require.True(a.Equal(b))

	// Equality is structural: a line holding almost the same values in a
	// different form doesn't compare equal until the difference is healed.
	holed := a.Difference(Scalar(4))
	require.False(a.Equal(holed))
	require.True(a.Equal(holed.Union(Scalar(4))))

	c, err := IncludeFloats(0, 10, true, false)
	require.NoError(err)
	require.False(a.Equal(c))
}

func TestNumberLineRangesIsACopy(t *testing.T) {
	require := require.New(t)

	line, err := IncludeFloats(0, 10, true, true)
	require.NoError(err)

	ranges := line.Ranges()
	ranges[0] = Range{}
	require.Equal([]Range{rng(0, true, 10, true)}, line.Ranges())
}

func TestNumberLineString(t *testing.T) {
	require := require.New(t)

	line := New(rng(7, false, 10, true), rng(0, true, 3, false))
	require.Equal("[0, 3), (7, 10]", line.String())
	require.Equal("", Empty().String())
	require.Equal("(-∞, ∞)", Full().String())
}

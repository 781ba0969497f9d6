// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package numberline

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrInvalidNotation = errors.New("invalid notation")

// Parse parses a comma separated list of intervals into a number line in
// canonical form, e.g. "[0, 3), (7, 10]" or "<0, >=10".
func Parse(s string) (NumberLine, error) {
	parts, err := splitIntervals(s)
	if err != nil {
		return NumberLine{}, err
	}
	ranges := make([]Range, len(parts))
	for i, part := range parts {
		ranges[i], err = ParseRange(part)
		if err != nil {
			return NumberLine{}, err
		}
	}
	return New(ranges...), nil
}

// ParseRange parses a single interval in mathematical notation: "[0, 10]",
// "(-∞, 5]", the shorthands ">5", ">=5", "<5" and "<=5", or a bare number,
// which parses as the single point it denotes. Both "∞" and "inf" are
// understood.
func ParseRange(s string) (Range, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Range{}, fmt.Errorf("%w: empty interval", ErrInvalidNotation)
	}

	switch {
	case strings.HasPrefix(s, ">="):
		return halfOpenRange(s[2:], true, false)
	case strings.HasPrefix(s, ">"):
		return halfOpenRange(s[1:], false, false)
	case strings.HasPrefix(s, "<="):
		return halfOpenRange(s[2:], true, true)
	case strings.HasPrefix(s, "<"):
		return halfOpenRange(s[1:], false, true)
	}

	if first := s[0]; first == '[' || first == '(' {
		last := s[len(s)-1]
		if last != ']' && last != ')' {
			return Range{}, fmt.Errorf("%w: %q doesn't end with a closing bracket", ErrInvalidNotation, s)
		}
		left, right, found := strings.Cut(s[1:len(s)-1], ",")
		if !found {
			return Range{}, fmt.Errorf("%w: %q must hold two comma separated bounds", ErrInvalidNotation, s)
		}
		lower, err := parseBoundValue(left)
		if err != nil {
			return Range{}, err
		}
		upper, err := parseBoundValue(right)
		if err != nil {
			return Range{}, err
		}
		return NewRange(
			NewBound(lower, first == '['),
			NewBound(upper, last == ']'),
		)
	}

	value, err := parseBoundValue(s)
	if err != nil {
		return Range{}, err
	}
	point := NewBound(value, true)
	return NewRange(point, point)
}

func halfOpenRange(s string, inclusive, upper bool) (Range, error) {
	value, err := parseBoundValue(s)
	if err != nil {
		return Range{}, err
	}
	if upper {
		return NewRange(MinusInfinity, NewBound(value, inclusive))
	}
	return NewRange(NewBound(value, inclusive), Infinity)
}

func parseBoundValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "∞", "+∞":
		return math.Inf(1), nil
	case "-∞":
		return math.Inf(-1), nil
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(value) {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidNotation, s)
	}
	return value, nil
}

// splitIntervals splits [s] on the commas separating intervals, leaving the
// commas inside brackets alone.
func splitIntervals(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("%w: empty number line", ErrInvalidNotation)
	}
	var (
		parts []string
		depth int
		start int
	)
	for i, c := range s {
		switch c {
		case '[', '(':
			depth++
		case ']', ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("%w: unbalanced brackets in %q", ErrInvalidNotation, s)
	}
	return append(parts, s[start:]), nil
}

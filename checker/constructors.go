// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package checker

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"

	"github.com/ThijsDrost/checkings/numberline"
)

var (
	intType    = reflect.TypeOf(int(0))
	floatType  = reflect.TypeOf(float64(0))
	stringType = reflect.TypeOf("")
	boolType   = reflect.TypeOf(false)

	errNotSorted = errors.New("value must be sorted")
)

// IsInt accepts int values.
func IsInt() Checker {
	return Types(intType)
}

// IsFloat accepts float64 values.
func IsFloat() Checker {
	return Types(floatType)
}

// IsNumber accepts int and float64 values.
func IsNumber() Checker {
	return Types(intType, floatType)
}

// IsString accepts string values.
func IsString() Checker {
	return Types(stringType)
}

// IsBool accepts bool values.
func IsBool() Checker {
	return Types(boolType)
}

// IsSlice accepts values of any slice type.
func IsSlice() Checker {
	return Validators(kindValidator("a slice", reflect.Slice))
}

// IsMap accepts values of any map type.
func IsMap() Checker {
	return Validators(kindValidator("a map", reflect.Map))
}

// Between accepts numbers between start and end, each end included per its
// flag.
func Between(start, end float64, startInclusive, endInclusive bool) (Checker, error) {
	line, err := numberline.IncludeFloats(start, end, startInclusive, endInclusive)
	if err != nil {
		return Checker{}, err
	}
	return mustAnd(IsNumber(), Line(line)), nil
}

// InRange accepts numbers between start and end, both ends included.
func InRange(start, end float64) (Checker, error) {
	return Between(start, end, true, true)
}

// GreaterThan accepts numbers above value, including it per the flag.
func GreaterThan(value float64, inclusive bool) (Checker, error) {
	line, err := numberline.BiggerThanFloat(value, inclusive)
	if err != nil {
		return Checker{}, err
	}
	return mustAnd(IsNumber(), Line(line)), nil
}

// LessThan accepts numbers below value, including it per the flag.
func LessThan(value float64, inclusive bool) (Checker, error) {
	line, err := numberline.SmallerThanFloat(value, inclusive)
	if err != nil {
		return Checker{}, err
	}
	return mustAnd(IsNumber(), Line(line)), nil
}

// Positive accepts numbers above zero; includeZero admits zero itself.
func Positive(includeZero bool) Checker {
	return mustAnd(IsNumber(), Line(numberline.Positive(includeZero)))
}

// Negative accepts numbers below zero; includeZero admits zero itself.
func Negative(includeZero bool) Checker {
	return mustAnd(IsNumber(), Line(numberline.Negative(includeZero)))
}

// NonZero accepts any number except zero.
func NonZero() Checker {
	return Line(mustLine(numberline.ExcludeFloats(0, 0, false, false)))
}

// Even accepts even integers.
func Even() Checker {
	return mustAnd(IsInt(), Validators(checkEven))
}

// Odd accepts odd integers.
func Odd() Checker {
	return mustAnd(IsInt(), Validators(checkOdd))
}

// Length requires the value's length to be exactly length. Strings, slices,
// arrays, and maps have a length.
func Length(length int) Checker {
	return Validators(func(value any) error {
		n, err := valueLen(value)
		if err != nil {
			return err
		}
		if n != length {
			return fmt.Errorf("length must be %d, not %d", length, n)
		}
		return nil
	})
}

// LengthBetween requires the value's length to be between minLength and
// maxLength, both included.
func LengthBetween(minLength, maxLength int) Checker {
	return Validators(func(value any) error {
		n, err := valueLen(value)
		if err != nil {
			return err
		}
		if n < minLength || n > maxLength {
			return fmt.Errorf("length must be between %d and %d, not %d", minLength, maxLength, n)
		}
		return nil
	})
}

// Sorted requires a slice or array to be in non-decreasing order. Numeric
// elements and strings are ordered; anything else is rejected.
func Sorted() Checker {
	return Validators(checkSorted)
}

// ElementsOfType requires every element of a slice or array to be of type t.
func ElementsOfType(t reflect.Type) Checker {
	return Validators(func(value any) error {
		v := reflect.ValueOf(value)
		if kind := v.Kind(); kind != reflect.Slice && kind != reflect.Array {
			return fmt.Errorf("%w: value of type %s is not a sequence", ErrType, typeName(reflect.TypeOf(value)))
		}
		var errs []error
		for i := 0; i < v.Len(); i++ {
			elementType := reflect.TypeOf(v.Index(i).Interface())
			if !typeMatches(elementType, t) {
				errs = append(errs, fmt.Errorf("value at %d is of type %s", i, typeName(elementType)))
			}
		}
		if err := errors.Join(errs...); err != nil {
			return fmt.Errorf("%w: value must contain only values of type %s: %w", ErrType, t, err)
		}
		return nil
	})
}

// ContainsSubstring requires a string value to contain substring.
func ContainsSubstring(substring string) Checker {
	return Validators(func(value any) error {
		s, err := stringValue(value)
		if err != nil {
			return err
		}
		if !strings.Contains(s, substring) {
			return fmt.Errorf("value must contain %q", substring)
		}
		return nil
	})
}

// StartsWith requires a string value to start with prefix.
func StartsWith(prefix string) Checker {
	return Validators(func(value any) error {
		s, err := stringValue(value)
		if err != nil {
			return err
		}
		if !strings.HasPrefix(s, prefix) {
			return fmt.Errorf("value must start with %q", prefix)
		}
		return nil
	})
}

// EndsWith requires a string value to end with suffix.
func EndsWith(suffix string) Checker {
	return Validators(func(value any) error {
		s, err := stringValue(value)
		if err != nil {
			return err
		}
		if !strings.HasSuffix(s, suffix) {
			return fmt.Errorf("value must end with %q", suffix)
		}
		return nil
	})
}

func checkEven(value any) error {
	number, err := toFloat(value)
	if err != nil {
		return err
	}
	if math.Mod(number, 2) != 0 {
		return errors.New("value must be even")
	}
	return nil
}

func checkOdd(value any) error {
	number, err := toFloat(value)
	if err != nil {
		return err
	}
	if math.Abs(math.Mod(number, 2)) != 1 {
		return errors.New("value must be odd")
	}
	return nil
}

func checkSorted(value any) error {
	switch v := value.(type) {
	case []int:
		return sortedSlice(v)
	case []float64:
		return sortedSlice(v)
	case []string:
		return sortedSlice(v)
	}

	v := reflect.ValueOf(value)
	if kind := v.Kind(); kind != reflect.Slice && kind != reflect.Array {
		return fmt.Errorf("%w: value of type %s is not a sequence", ErrType, typeName(reflect.TypeOf(value)))
	}
	for i := 1; i < v.Len(); i++ {
		previous, err := toFloat(v.Index(i - 1).Interface())
		if err != nil {
			return err
		}
		current, err := toFloat(v.Index(i).Interface())
		if err != nil {
			return err
		}
		if previous > current {
			return errNotSorted
		}
	}
	return nil
}

func sortedSlice[T constraints.Ordered](values []T) error {
	if !slices.IsSorted(values) {
		return errNotSorted
	}
	return nil
}

func valueLen(value any) (int, error) {
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return v.Len(), nil
	default:
		return 0, fmt.Errorf("%w: value of type %s has no length", ErrType, typeName(reflect.TypeOf(value)))
	}
}

func stringValue(value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w: value of type %s is not a string", ErrType, typeName(reflect.TypeOf(value)))
	}
	return s, nil
}

func kindValidator(label string, kinds ...reflect.Kind) func(any) error {
	return func(value any) error {
		kind := reflect.ValueOf(value).Kind()
		for _, want := range kinds {
			if kind == want {
				return nil
			}
		}
		return fmt.Errorf("%w: value of type %s is not %s", ErrType, typeName(reflect.TypeOf(value)), label)
	}
}

func mustLine(line numberline.NumberLine, err error) numberline.NumberLine {
	if err != nil {
		panic(err)
	}
	return line
}

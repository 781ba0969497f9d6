// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package checker

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// Validate checks value against every constraint the checker carries and
// reports all failures as one error. name labels the value in messages.
func (c Checker) Validate(value any, name string) error {
	norm, err := c.normalized()
	if err != nil {
		return err
	}

	err = errors.Join(
		norm.checkTypes(value),
		norm.checkLiterals(value),
		norm.checkLine(value),
		norm.checkValidators(value),
	)
	if err != nil {
		return fmt.Errorf("%s has incorrect value (%v): %w", name, value, err)
	}
	return nil
}

// Apply resolves value to its checked form: a Missing value, or nil when
// the checker replaces nils, is substituted with the default, then the
// converter runs, then the outcome is validated.
func (c Checker) Apply(value any, name string) (any, error) {
	if value == Missing || (value == nil && c.replaceNil) {
		var err error
		if value, name, err = c.defaulted(name); err != nil {
			return nil, err
		}
	}
	if c.hasConverter {
		converted, err := c.converter(value)
		if err != nil {
			return nil, fmt.Errorf("converting %s failed: %w", name, err)
		}
		value = converted
	}
	if err := c.Validate(value, name); err != nil {
		return nil, err
	}
	return value, nil
}

func (c Checker) checkTypes(value any) error {
	if len(c.types) == 0 {
		return nil
	}
	if typeOfMatchesAny(reflect.TypeOf(value), c.types) {
		return nil
	}
	return fmt.Errorf("%w: value of type %s must be one of the following types: (%s)",
		ErrType,
		typeName(reflect.TypeOf(value)),
		typeNames(c.types),
	)
}

func (c Checker) checkLiterals(value any) error {
	if len(c.literals) == 0 {
		return nil
	}
	if containsLiteral(c.literals, value) {
		return nil
	}
	return fmt.Errorf("%w: value (%v) must be one of the following: (%s)",
		ErrLiteral,
		value,
		literalList(c.literals),
	)
}

func (c Checker) checkLine(value any) error {
	if !c.hasLine {
		return nil
	}
	number, err := toFloat(value)
	if err != nil {
		return err
	}
	return c.line.Validate(number)
}

func (c Checker) checkValidators(value any) error {
	var errs []error
	for _, validate := range c.validators {
		if err := validate(value); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("value did not pass all validators: %w", err)
	}
	return nil
}

// toFloat widens an integer, unsigned, or float value to float64 so it can
// be checked against a number line.
func toFloat(value any) (float64, error) {
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return v.Float(), nil
	default:
		return 0, fmt.Errorf("%w: cannot check a value of type %s against a number line, only integer and float values are allowed",
			ErrType,
			typeName(reflect.TypeOf(value)),
		)
	}
}

func numericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func typeMatches(valueType, want reflect.Type) bool {
	if valueType == nil {
		return false
	}
	if want.Kind() == reflect.Interface {
		return valueType.Implements(want)
	}
	return valueType == want
}

func containsLiteral(literals []any, value any) bool {
	for _, literal := range literals {
		if literalEqual(literal, value) {
			return true
		}
	}
	return false
}

// literalEqual compares with == when both dynamic types allow it and falls
// back to reflect.DeepEqual for values that would make == panic.
func literalEqual(a, b any) bool {
	if comparableValue(a) && comparableValue(b) {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

func comparableValue(v any) bool {
	t := reflect.TypeOf(v)
	return t == nil || t.Comparable()
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

func typeNames(types []reflect.Type) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = typeName(t)
	}
	return strings.Join(names, ", ")
}

func literalList(literals []any) string {
	parts := make([]string, len(literals))
	for i, literal := range literals {
		parts[i] = fmt.Sprintf("%v", literal)
	}
	return strings.Join(parts, ", ")
}

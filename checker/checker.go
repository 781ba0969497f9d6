// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package checker composes constraints on dynamically typed values and
// reports every violated constraint at once. Checkers are built from small
// single-constraint constructors and merged with And; numeric membership is
// delegated to the numberline package.
package checker

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"

	"github.com/ThijsDrost/checkings/numberline"
)

var nopLogger = zap.NewNop()

// Checker is an immutable bundle of constraints on a single value. The zero
// value accepts everything.
type Checker struct {
	line    numberline.NumberLine
	hasLine bool

	literals   []any
	types      []reflect.Type
	validators []func(any) error

	defaultValue   any
	defaultFactory func() any
	hasDefault     bool

	converter    func(any) (any, error)
	hasConverter bool

	replaceNil bool

	log *zap.Logger
}

// Option configures the parts of a Checker that are not constraints.
type Option func(*Checker)

// WithLogger sets the logger normalization warnings are written to. The
// default logger discards them.
func WithLogger(log *zap.Logger) Option {
	return func(c *Checker) {
		c.log = log
	}
}

// New returns a Checker with no constraints.
func New(opts ...Option) Checker {
	var c Checker
	return c.WithOptions(opts...)
}

// WithOptions returns a copy of the checker with the options applied.
func (c Checker) WithOptions(opts ...Option) Checker {
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (c Checker) logger() *zap.Logger {
	if c.log == nil {
		return nopLogger
	}
	return c.log
}

// Default returns a checker that substitutes value when none is given.
func Default(value any) Checker {
	return Checker{
		defaultValue: value,
		hasDefault:   true,
	}
}

// DefaultFactory returns a checker whose default is built fresh on every
// substitution. Use it for defaults that must not be shared, like maps and
// slices.
func DefaultFactory(factory func() any) Checker {
	return Checker{
		defaultFactory: factory,
		hasDefault:     true,
	}
}

// Literals returns a checker that only accepts the given values.
func Literals(literals ...any) Checker {
	return Checker{literals: literals}
}

// Types returns a checker that only accepts values of the given dynamic
// types. An interface type accepts every implementation of it.
func Types(types ...reflect.Type) Checker {
	return Checker{types: types}
}

// Validators returns a checker that runs the given predicates; every
// non-nil error they return is reported.
func Validators(validators ...func(any) error) Checker {
	return Checker{validators: validators}
}

// Converter returns a checker that rewrites the value before validation.
func Converter(convert func(any) (any, error)) Checker {
	return Checker{
		converter:    convert,
		hasConverter: true,
	}
}

// ReplaceNil returns a checker that treats nil like a missing value, so the
// default is substituted for it.
func ReplaceNil() Checker {
	return Checker{replaceNil: true}
}

// Line returns a checker that requires numeric values to be on the line.
func Line(line numberline.NumberLine) Checker {
	return Checker{
		line:    line,
		hasLine: true,
	}
}

// And merges two checkers into one that enforces both. Number lines are
// unioned and list constraints concatenate; the constraints that can only
// be set once conflict when both sides carry them.
func (c Checker) And(other Checker) (Checker, error) {
	if c.hasDefault && other.hasDefault {
		return Checker{}, fmt.Errorf("%w: cannot combine two default values", ErrConflict)
	}
	if c.hasConverter && other.hasConverter {
		return Checker{}, fmt.Errorf("%w: cannot combine two converters", ErrConflict)
	}

	merged := Checker{
		hasLine:      c.hasLine || other.hasLine,
		literals:     mergeSlices(c.literals, other.literals),
		types:        mergeSlices(c.types, other.types),
		validators:   mergeSlices(c.validators, other.validators),
		hasDefault:   c.hasDefault || other.hasDefault,
		hasConverter: c.hasConverter || other.hasConverter,
		replaceNil:   c.replaceNil || other.replaceNil,
		log:          c.log,
	}
	switch {
	case c.hasLine && other.hasLine:
		merged.line = c.line.Union(other.line)
	case c.hasLine:
		merged.line = c.line
	case other.hasLine:
		merged.line = other.line
	}
	if c.hasDefault {
		merged.defaultValue = c.defaultValue
		merged.defaultFactory = c.defaultFactory
	} else {
		merged.defaultValue = other.defaultValue
		merged.defaultFactory = other.defaultFactory
	}
	if c.hasConverter {
		merged.converter = c.converter
	} else {
		merged.converter = other.converter
	}
	if merged.log == nil {
		merged.log = other.log
	}
	return merged, nil
}

// mergeSlices concatenates into a fresh slice, keeping nil (constraint
// absent) only when both sides are nil.
func mergeSlices[T any](a, b []T) []T {
	if a == nil && b == nil {
		return nil
	}
	merged := make([]T, 0, len(a)+len(b))
	return append(append(merged, a...), b...)
}

func mustAnd(a, b Checker) Checker {
	merged, err := a.And(b)
	if err != nil {
		panic(err)
	}
	return merged
}

// defaulted resolves the default value and the name it is validated under.
func (c Checker) defaulted(name string) (any, string, error) {
	if !c.hasDefault {
		return nil, name, fmt.Errorf("%w: no value given and no default value for %s", ErrMissingValue, name)
	}
	value := c.defaultValue
	if c.defaultFactory != nil {
		value = c.defaultFactory()
	}
	return value, "default of " + name, nil
}

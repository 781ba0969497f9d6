// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package checker

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"
)

// normalized resolves interactions between the constraint slots: duplicate
// literals and types are dropped, literals are narrowed to the accepted
// types and vice versa, and a number line paired with only non-numeric
// types is discarded. Narrowings that leave nothing to accept are errors;
// recoverable ones are logged as warnings.
func (c Checker) normalized() (Checker, error) {
	log := c.logger()

	if c.hasLine && c.line.IsEmpty() {
		return Checker{}, fmt.Errorf("%w: the number line is empty", ErrEmpty)
	}
	if c.literals != nil {
		c.literals = dedupeLiterals(c.literals)
		if len(c.literals) == 0 {
			return Checker{}, fmt.Errorf("%w: no literals given", ErrEmpty)
		}
	}
	if c.types != nil {
		c.types = dedupeTypes(c.types)
		if len(c.types) == 0 {
			return Checker{}, fmt.Errorf("%w: no types given", ErrEmpty)
		}
	}

	if len(c.literals) > 0 && len(c.types) > 0 {
		literals := make([]any, 0, len(c.literals))
		for _, literal := range c.literals {
			if typeOfMatchesAny(reflect.TypeOf(literal), c.types) {
				literals = append(literals, literal)
			}
		}
		if len(literals) == 0 {
			return Checker{}, fmt.Errorf("%w: no literals are of the required types", ErrEmpty)
		}
		if dropped := len(c.literals) - len(literals); dropped > 0 {
			log.Warn("dropping literals that are not of the required types",
				zap.Int("dropped", dropped),
			)
		}
		c.literals = literals

		types := make([]reflect.Type, 0, len(c.types))
		for _, t := range c.types {
			if anyLiteralOfType(literals, t) {
				types = append(types, t)
			}
		}
		if dropped := len(c.types) - len(types); dropped > 0 {
			log.Warn("dropping types that match no literal",
				zap.Int("dropped", dropped),
			)
		}
		c.types = types
	}

	if c.hasLine && len(c.types) > 0 && !anyNumericType(c.types) {
		log.Warn("dropping the number line, no accepted type is numeric")
		c.hasLine = false
	}
	return c, nil
}

func dedupeLiterals(literals []any) []any {
	deduped := make([]any, 0, len(literals))
	for _, literal := range literals {
		if !containsLiteral(deduped, literal) {
			deduped = append(deduped, literal)
		}
	}
	return deduped
}

func dedupeTypes(types []reflect.Type) []reflect.Type {
	seen := make(map[reflect.Type]struct{}, len(types))
	deduped := make([]reflect.Type, 0, len(types))
	for _, t := range types {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		deduped = append(deduped, t)
	}
	return deduped
}

func typeOfMatchesAny(valueType reflect.Type, types []reflect.Type) bool {
	for _, t := range types {
		if typeMatches(valueType, t) {
			return true
		}
	}
	return false
}

func anyLiteralOfType(literals []any, t reflect.Type) bool {
	for _, literal := range literals {
		if typeMatches(reflect.TypeOf(literal), t) {
			return true
		}
	}
	return false
}

func anyNumericType(types []reflect.Type) bool {
	for _, t := range types {
		if numericKind(t.Kind()) {
			return true
		}
	}
	return false
}

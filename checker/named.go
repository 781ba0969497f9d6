// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package checker

import (
	"errors"
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// CheckNamed validates named argument values against the checkers in
// schema. Names without a checker are rejected, defaults are validated as
// well, and the returned map is defaults overlaid with args. function only
// labels error messages.
func CheckNamed(function string, args map[string]any, schema map[string]Checker, defaults map[string]any) (map[string]any, error) {
	if err := checkNamedValues(function, args, schema, false); err != nil {
		return nil, err
	}
	if err := checkNamedValues(function, defaults, schema, true); err != nil {
		return nil, err
	}
	return ApplyDefaults(args, defaults), nil
}

func checkNamedValues(function string, values map[string]any, schema map[string]Checker, isDefault bool) error {
	kind := "argument"
	if isDefault {
		kind = "default argument"
	}

	// Sorted keys keep the aggregated error deterministic.
	keys := maps.Keys(values)
	slices.Sort(keys)

	var errs []error
	for _, key := range keys {
		check, ok := schema[key]
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s got an unexpected %s %q", ErrUnknownName, function, kind, key))
			continue
		}
		if _, err := check.Apply(values[key], key); err != nil {
			errs = append(errs, fmt.Errorf("validation failed for %s %q of %s: %w", kind, key, function, err))
		}
	}
	return errors.Join(errs...)
}

// ApplyDefaults returns defaults overlaid with args; args win on shared
// names. Neither input is modified.
func ApplyDefaults(args, defaults map[string]any) map[string]any {
	merged := make(map[string]any, len(args)+len(defaults))
	maps.Copy(merged, defaults)
	maps.Copy(merged, args)
	return merged
}

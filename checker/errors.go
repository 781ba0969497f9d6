// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package checker

import "errors"

var (
	ErrConflict     = errors.New("conflicting constraints")
	ErrEmpty        = errors.New("constraint allows no values")
	ErrType         = errors.New("invalid type")
	ErrLiteral      = errors.New("invalid value")
	ErrUnknownName  = errors.New("unexpected argument")
	ErrMissingValue = errors.New("missing value")
)

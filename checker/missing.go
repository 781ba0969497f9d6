// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package checker

type missing struct{}

func (missing) String() string {
	return "missing"
}

// Missing marks an argument that was not provided at all, so that nil stays
// usable as a real value. Apply substitutes the checker's default for it.
var Missing any = missing{}

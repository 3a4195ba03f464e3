// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chain - names of the ledgers a node can run
package chain

// names of all chains
const (
	Reviews = "reviews"
	Testing = "testing"
	Local   = "local"
)

// Valid - validate a chain name
func Valid(name string) bool {
	switch name {
	case Reviews, Testing, Local:
		return true
	default:
		return false
	}
}

// IsLive - true for the chain where balances have value
func IsLive(name string) bool {
	return Reviews == name
}

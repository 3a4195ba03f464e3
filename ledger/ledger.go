// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - the view of the host ledger seen by a program
package ledger

import (
	"github.com/bitmark-inc/reviewd/account"
	"github.com/bitmark-inc/reviewd/address"
)

// Slot - one addressed storage cell passed to an instruction
//
// IsSigner is set by the host only after verifying a signature for Key
type Slot struct {
	Key        account.Address
	Owner      account.Address
	Lamports   uint64
	Data       []byte
	IsSigner   bool
	IsWritable bool
}

// IsAllocated - true if the slot holds a balance or data
func (slot *Slot) IsAllocated() bool {
	return 0 != slot.Lamports || 0 != len(slot.Data)
}

// IsOwnedBy - check the owning program
func (slot *Slot) IsOwnedBy(program account.Address) bool {
	return slot.Owner == program
}

// Ledger - allocation capability offered by the host
//
//go:generate mockgen -source=ledger.go -destination=mocks/ledger.go -package=mocks
type Ledger interface {
	// lamports needed to keep a slot of this size alive
	RentExemptMinimum(size int) uint64

	// move lamports from funder into target, give target size zero
	// bytes and assign it to owner; seeds must derive target.Key
	// under owner
	Allocate(funder *Slot, target *Slot, lamports uint64, size int, owner account.Address, seeds *address.Seeds) error
}

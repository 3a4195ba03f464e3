// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package runtime

import (
	"github.com/bitmark-inc/reviewd/account"
	"github.com/bitmark-inc/reviewd/fault"
	"github.com/bitmark-inc/reviewd/layout"
	"github.com/bitmark-inc/reviewd/ledger"
	"github.com/bitmark-inc/reviewd/storage"
)

const slotHeaderSize = layout.Uint64Size + layout.AddressSize

// stored as: lamports ++ owner ++ data
func packSlot(slot *ledger.Slot) []byte {
	buffer := make([]byte, 0, slotHeaderSize+len(slot.Data))
	buffer = layout.AppendUint64(buffer, slot.Lamports)
	buffer = layout.AppendAddress(buffer, slot.Owner)
	return append(buffer, slot.Data...)
}

func unpackSlot(key account.Address, packed []byte) (*ledger.Slot, error) {
	if len(packed) < slotHeaderSize {
		return nil, fault.ErrInvalidRecord
	}
	r := layout.NewReader(packed)
	slot := &ledger.Slot{
		Key:      key,
		Lamports: r.Uint64(),
		Owner:    account.Address(r.Address()),
	}
	slot.Data = r.Bytes(r.Remaining())
	if nil != r.Err() {
		return nil, fault.ErrInvalidRecord
	}
	return slot, nil
}

// read a slot, an absent slot is returned empty and unallocated
type slotReader interface {
	Get(*storage.PoolHandle, []byte) []byte
}

func loadSlot(trx slotReader, key account.Address) (*ledger.Slot, error) {
	packed := trx.Get(storage.Pool.Slots, key[:])
	if nil == packed {
		return &ledger.Slot{Key: key}, nil
	}
	return unpackSlot(key, packed)
}

// write a slot, an unallocated slot is removed
func saveSlot(trx storage.Transaction, slot *ledger.Slot) {
	if !slot.IsAllocated() {
		trx.Delete(storage.Pool.Slots, slot.Key[:])
		return
	}
	trx.Put(storage.Pool.Slots, slot.Key[:], packSlot(slot))
}

// copy of the parts a program may change
type slotSnapshot struct {
	lamports uint64
	owner    account.Address
	data     []byte
}

func snapshot(slot *ledger.Slot) slotSnapshot {
	return slotSnapshot{
		lamports: slot.Lamports,
		owner:    slot.Owner,
		data:     append([]byte(nil), slot.Data...),
	}
}

func (s slotSnapshot) unchanged(slot *ledger.Slot) bool {
	return s.lamports == slot.Lamports &&
		s.owner == slot.Owner &&
		string(s.data) == string(slot.Data)
}

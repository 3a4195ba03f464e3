// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package runtime

import (
	"math"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/reviewd/account"
	"github.com/bitmark-inc/reviewd/address"
	"github.com/bitmark-inc/reviewd/counter"
	"github.com/bitmark-inc/reviewd/fault"
	"github.com/bitmark-inc/reviewd/ledger"
	"github.com/bitmark-inc/reviewd/storage"
	"github.com/bitmark-inc/reviewd/transaction"
)

// Program - an on-ledger program the runtime can dispatch to
type Program interface {
	Program() account.Address
	Process(slots []*ledger.Slot, data []byte) error
}

// Runtime - the host ledger
type Runtime struct {
	sync.Mutex

	log      *logger.L
	programs map[account.Address]Program

	executed counter.Counter
	failed   counter.Counter
}

// Runtime must provide allocation to its programs
var _ ledger.Ledger = (*Runtime)(nil)

// New - create a runtime over the opened storage pools
func New(log *logger.L) *Runtime {
	return &Runtime{
		log:      log,
		programs: make(map[account.Address]Program),
	}
}

// Register - add a program, replaces any with the same id
func (rt *Runtime) Register(program Program) {
	rt.Lock()
	defer rt.Unlock()
	rt.programs[program.Program()] = program
	rt.log.Infof("registered program: %s", program.Program())
}

// Programs - ids of the registered programs
func (rt *Runtime) Programs() []account.Address {
	rt.Lock()
	defer rt.Unlock()
	ids := make([]account.Address, 0, len(rt.programs))
	for id := range rt.programs {
		ids = append(ids, id)
	}
	return ids
}

// RentExemptMinimum - lamports needed to keep a slot of this size alive
func (rt *Runtime) RentExemptMinimum(size int) uint64 {
	return RentExemptMinimum(size)
}

// Allocate - create a slot for a program, funded by a signer
func (rt *Runtime) Allocate(funder *ledger.Slot, target *ledger.Slot, lamports uint64, size int, owner account.Address, seeds *address.Seeds) error {
	if !funder.IsSigner {
		return fault.ErrFunderNotSigner
	}
	if !funder.IsWritable || !target.IsWritable {
		return fault.ErrSlotNotWritable
	}
	if target.IsAllocated() {
		return fault.ErrSlotInUse
	}
	if size < 0 || size > MaximumSlotSize {
		return fault.ErrSlotTooLarge
	}
	if !seeds.Verify(owner, target.Key) {
		return fault.ErrInvalidSeeds
	}
	if funder.Lamports < lamports {
		return fault.ErrInsufficientFunds
	}

	funder.Lamports -= lamports
	target.Lamports = lamports
	target.Data = make([]byte, size)
	target.Owner = owner

	rt.log.Debugf("allocated: %s  size: %d  lamports: %d  owner: %s", target.Key, size, lamports, owner)
	return nil
}

// Execute - verify and run a transaction, committing its effects only on success
func (rt *Runtime) Execute(tx *transaction.Transaction) (transaction.Id, error) {
	rt.Lock()
	defer rt.Unlock()

	id := tx.Id()
	err := rt.execute(id, tx)
	if nil != err {
		rt.failed.Increment()
		rt.log.Warnf("transaction: %s  error: %s", id, err)
		return id, err
	}

	rt.executed.Increment()
	rt.log.Infof("transaction: %s  executed", id)
	return id, nil
}

func (rt *Runtime) execute(id transaction.Id, tx *transaction.Transaction) error {
	program, ok := rt.programs[tx.Program]
	if !ok {
		return fault.ErrUnknownProgram
	}

	if len(tx.Accounts) > transaction.MaximumAccounts {
		return fault.ErrTransactionTooLarge
	}

	// proves IsSigner for every signer account
	err := tx.Verify()
	if nil != err {
		return err
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	ok = false
	defer func() {
		if !ok {
			trx.Abort()
		}
	}()

	if trx.Has(storage.Pool.Transactions, id[:]) {
		return fault.ErrDuplicateTransaction
	}

	// the same key named twice is one slot with combined flags
	slots := make([]*ledger.Slot, len(tx.Accounts))
	byKey := make(map[account.Address]*ledger.Slot)
	for i, meta := range tx.Accounts {
		slot, found := byKey[meta.Key]
		if !found {
			slot, err = loadSlot(trx, meta.Key)
			if nil != err {
				return err
			}
			byKey[meta.Key] = slot
		}
		slot.IsSigner = slot.IsSigner || meta.IsSigner
		slot.IsWritable = slot.IsWritable || meta.IsWritable
		slots[i] = slot
	}

	before := make(map[account.Address]slotSnapshot)
	total := uint64(0)
	for key, slot := range byKey {
		before[key] = snapshot(slot)
		total, err = addLamports(total, slot.Lamports)
		if nil != err {
			return err
		}
	}

	err = program.Process(slots, tx.Data)
	if nil != err {
		return err
	}

	after := uint64(0)
	for key, slot := range byKey {
		if !slot.IsWritable && !before[key].unchanged(slot) {
			rt.log.Errorf("read only slot: %s was modified", key)
			return fault.ErrSlotNotWritable
		}
		after, err = addLamports(after, slot.Lamports)
		if nil != err {
			return err
		}
	}
	if total != after {
		rt.log.Errorf("lamports before: %d  after: %d", total, after)
		return fault.ErrUnbalancedTransaction
	}

	for _, slot := range byKey {
		if slot.IsWritable {
			saveSlot(trx, slot)
		}
	}
	trx.Put(storage.Pool.Transactions, id[:], tx.Pack())

	err = trx.Commit()
	if nil != err {
		return err
	}
	ok = true
	return nil
}

// Fund - credit lamports to an address
func (rt *Runtime) Fund(key account.Address, lamports uint64) (uint64, error) {
	rt.Lock()
	defer rt.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return 0, err
	}

	slot, err := loadSlot(trx, key)
	if nil != err {
		trx.Abort()
		return 0, err
	}
	slot.Lamports, err = addLamports(slot.Lamports, lamports)
	if nil != err {
		trx.Abort()
		return 0, err
	}

	saveSlot(trx, slot)
	err = trx.Commit()
	if nil != err {
		return 0, err
	}

	rt.log.Infof("funded: %s  lamports: %d  balance: %d", key, lamports, slot.Lamports)
	return slot.Lamports, nil
}

// Slot - read the committed state of a slot
//
// an address never written returns an unallocated slot
func (rt *Runtime) Slot(key account.Address) (*ledger.Slot, error) {
	rt.Lock()
	defer rt.Unlock()
	return loadSlot(committed{}, key)
}

// Statistics - counts of executed and failed transactions
func (rt *Runtime) Statistics() (uint64, uint64) {
	return rt.executed.Uint64(), rt.failed.Uint64()
}

// read through the pool handles directly
type committed struct{}

func (committed) Get(pool *storage.PoolHandle, key []byte) []byte {
	return pool.Get(key)
}

func addLamports(a uint64, b uint64) (uint64, error) {
	if a > math.MaxUint64-b {
		return 0, fault.ErrBalanceOverflow
	}
	return a + b, nil
}

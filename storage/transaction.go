// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Transaction - a group of writes applied together or not at all
type Transaction interface {
	Begin() error
	Put(*PoolHandle, []byte, []byte)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	Has(*PoolHandle, []byte) bool
	Commit() error
	Abort()
}

// TransactionImpl - a transaction over a single batch
type TransactionImpl struct {
	access Access
}

func newTransaction(access Access) Transaction {
	return &TransactionImpl{
		access: access,
	}
}

// Begin - claim the batch
func (t *TransactionImpl) Begin() error {
	return t.access.Begin()
}

// Put - store a value
func (t *TransactionImpl) Put(handle *PoolHandle, key []byte, value []byte) {
	handle.put(key, value)
}

// Delete - remove a value
func (t *TransactionImpl) Delete(handle *PoolHandle, key []byte) {
	handle.remove(key)
}

// Get - read a value including pending writes
func (t *TransactionImpl) Get(handle *PoolHandle, key []byte) []byte {
	return handle.Get(key)
}

// Has - check a key including pending writes
func (t *TransactionImpl) Has(handle *PoolHandle, key []byte) bool {
	return handle.Has(key)
}

// Commit - write all pending changes
func (t *TransactionImpl) Commit() error {
	return t.access.Commit()
}

// Abort - discard all pending changes
func (t *TransactionImpl) Abort() {
	t.access.Abort()
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
//  1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
//  2. ++       = concatenation of byte data
//  3. address  = 32 byte slot address
//  4. txId     = transaction digest as 32 byte SHA3-256(message)
//  5. lamports = little endian uint64 (8 bytes)
//
// Slots:
//
//	S ++ address   - ledger slots
//	                 data: lamports ++ owner address ++ slot data
//
// Transactions:
//
//	T ++ txId      - executed transactions
//	                 data: packed transaction
//
// All writes go through a Transaction which holds a LevelDB batch;
// reads made while the transaction is open see the pending writes.
package storage

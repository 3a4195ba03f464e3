// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/reviewd/account"
	"github.com/bitmark-inc/reviewd/fault"
	"github.com/bitmark-inc/reviewd/layout"
)

// Packed - packed transaction bytes
type Packed []byte

// Pack - message followed by the signatures
func (tx *Transaction) Pack() Packed {
	buffer := tx.Message()
	buffer = layout.AppendUint32(buffer, uint32(len(tx.Signatures)))
	for _, signature := range tx.Signatures {
		buffer = append(buffer, signature...)
	}
	return buffer
}

// Unpack - turn packed bytes into a transaction
//
// signatures are not verified
func (record Packed) Unpack() (*Transaction, error) {
	if len(record) > MaximumPackedSize {
		return nil, fault.ErrTransactionTooLarge
	}

	r := layout.NewReader(record)

	tx := &Transaction{
		Program: account.Address(r.Address()),
	}

	accountCount := r.Uint32()
	if accountCount > MaximumAccounts {
		return nil, fault.ErrNotTransactionPack
	}
	tx.Accounts = make([]AccountMeta, accountCount)
	for i := range tx.Accounts {
		tx.Accounts[i].Key = account.Address(r.Address())
		flags := r.Uint8()
		if 0 != flags&^(signerFlag|writableFlag) {
			return nil, fault.ErrNotTransactionPack
		}
		tx.Accounts[i].IsSigner = 0 != flags&signerFlag
		tx.Accounts[i].IsWritable = 0 != flags&writableFlag
	}

	dataLength := r.Uint32()
	if dataLength > MaximumDataLength || int(dataLength) > r.Remaining() {
		return nil, fault.ErrNotTransactionPack
	}
	tx.Data = r.Bytes(int(dataLength))
	tx.Nonce = r.Uint64()

	signatureCount := r.Uint32()
	if signatureCount > MaximumAccounts {
		return nil, fault.ErrNotTransactionPack
	}
	tx.Signatures = make([]account.Signature, signatureCount)
	for i := range tx.Signatures {
		tx.Signatures[i] = r.Bytes(ed25519.SignatureSize)
	}

	if nil != r.Err() || 0 != r.Remaining() {
		return nil, fault.ErrNotTransactionPack
	}
	return tx, nil
}

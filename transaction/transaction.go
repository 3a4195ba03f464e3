// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/bitmark-inc/reviewd/account"
	"github.com/bitmark-inc/reviewd/fault"
	"github.com/bitmark-inc/reviewd/layout"
)

// limits on decoded transactions
const (
	MaximumAccounts   = 32
	MaximumDataLength = 4096
	MaximumPackedSize = 65536
)

// account flag bits
const (
	signerFlag   = 0x01
	writableFlag = 0x02
)

// AccountMeta - a slot named by a transaction
type AccountMeta struct {
	Key        account.Address `json:"key"`
	IsSigner   bool            `json:"isSigner"`
	IsWritable bool            `json:"isWritable"`
}

// Transaction - an instruction for a program with the slots it touches
type Transaction struct {
	Program    account.Address     `json:"program"`
	Accounts   []AccountMeta       `json:"accounts"`
	Data       []byte              `json:"data"`
	Nonce      uint64              `json:"nonce"`
	Signatures []account.Signature `json:"signatures"`
}

// Signers - addresses that must sign, in account order
func (tx *Transaction) Signers() []account.Address {
	signers := make([]account.Address, 0, len(tx.Accounts))
	for _, a := range tx.Accounts {
		if a.IsSigner {
			signers = append(signers, a.Key)
		}
	}
	return signers
}

// Message - the signed part of the transaction
func (tx *Transaction) Message() []byte {
	buffer := make([]byte, 0, layout.AddressSize+len(tx.Accounts)*(layout.AddressSize+1)+len(tx.Data)+20)
	buffer = layout.AppendAddress(buffer, tx.Program)
	buffer = layout.AppendUint32(buffer, uint32(len(tx.Accounts)))
	for _, a := range tx.Accounts {
		buffer = layout.AppendAddress(buffer, a.Key)
		flags := uint8(0)
		if a.IsSigner {
			flags |= signerFlag
		}
		if a.IsWritable {
			flags |= writableFlag
		}
		buffer = layout.AppendUint8(buffer, flags)
	}
	buffer = layout.AppendUint32(buffer, uint32(len(tx.Data)))
	buffer = append(buffer, tx.Data...)
	buffer = layout.AppendUint64(buffer, tx.Nonce)
	return buffer
}

// Id - the transaction id
func (tx *Transaction) Id() Id {
	return NewId(tx.Message())
}

// Sign - add signatures, one key for each signer in account order
func (tx *Transaction) Sign(keys ...*account.PrivateKey) error {
	signers := tx.Signers()
	if len(signers) != len(keys) {
		return fault.ErrSignatureCountMismatch
	}

	message := tx.Message()
	signatures := make([]account.Signature, len(keys))
	for i, key := range keys {
		if key.Address() != signers[i] {
			return fault.ErrSignerMismatch
		}
		signatures[i] = key.Sign(message)
	}
	tx.Signatures = signatures
	return nil
}

// Verify - check there is a valid signature for every signer
func (tx *Transaction) Verify() error {
	signers := tx.Signers()
	if len(signers) != len(tx.Signatures) {
		return fault.ErrSignatureCountMismatch
	}

	message := tx.Message()
	for i, signer := range signers {
		err := signer.CheckSignature(message, tx.Signatures[i])
		if nil != err {
			return err
		}
	}
	return nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"math"
	"time"

	"github.com/bitmark-inc/reviewd/account"
	"github.com/bitmark-inc/reviewd/address"
	"github.com/bitmark-inc/reviewd/fault"
	"github.com/bitmark-inc/reviewd/state"
	"github.com/bitmark-inc/reviewd/transaction"
)

var (
	ErrRequiredAddress     = fault.InvalidError("address is required")
	ErrRequiredComment     = fault.InvalidError("comment is required")
	ErrRequiredDescription = fault.InvalidError("description is required")
	ErrRequiredKey         = fault.InvalidError("private key is required")
	ErrRequiredLamports    = fault.InvalidError("lamports is required")
	ErrRequiredProgram     = fault.InvalidError("program id is required")
	ErrRequiredReview      = fault.InvalidError("review address or owner and title are required")
	ErrRequiredTitle       = fault.InvalidError("title is required")
	ErrRequiredTxId        = fault.InvalidError("transaction id is required")
)

func checkProgram(program string) (account.Address, error) {
	if "" == program {
		return account.Address{}, ErrRequiredProgram
	}
	return account.AddressFromBase58(program)
}

func checkKey(key string) (*account.PrivateKey, error) {
	if "" == key {
		return nil, ErrRequiredKey
	}
	return account.PrivateKeyFromBase58(key)
}

// an explicit address wins, otherwise the key's own address is used
func checkAddressOrKey(s string, key string) (account.Address, error) {
	if "" != s {
		return account.AddressFromBase58(s)
	}
	if "" == key {
		return account.Address{}, ErrRequiredAddress
	}
	privateKey, err := account.PrivateKeyFromBase58(key)
	if nil != err {
		return account.Address{}, err
	}
	return privateKey.Address(), nil
}

func checkTitle(title string) (string, error) {
	if "" == title {
		return "", ErrRequiredTitle
	}
	return title, nil
}

func checkRating(rating uint) (uint8, error) {
	if rating > math.MaxUint8 || !state.ValidRating(uint8(rating)) {
		return 0, fault.ErrInvalidRating
	}
	return uint8(rating), nil
}

func checkDescription(description string) (string, error) {
	if "" == description {
		return "", ErrRequiredDescription
	}
	return description, nil
}

func checkComment(comment string) (string, error) {
	if "" == comment {
		return "", ErrRequiredComment
	}
	return comment, nil
}

func checkLamports(lamports uint64) (uint64, error) {
	if 0 == lamports {
		return 0, ErrRequiredLamports
	}
	return lamports, nil
}

// zero selects a nonce from the clock so that repeated identical
// requests still produce distinct transaction ids
func checkNonce(nonce uint64) uint64 {
	if 0 == nonce {
		return uint64(time.Now().UnixNano())
	}
	return nonce
}

func checkTxId(s string) (transaction.Id, error) {
	var txId transaction.Id
	if "" == s {
		return txId, ErrRequiredTxId
	}
	err := txId.UnmarshalText([]byte(s))
	return txId, err
}

// a review is named either directly or by its owner and title
func checkReview(program account.Address, review string, owner string, title string) (account.Address, error) {
	if "" != review {
		return account.AddressFromBase58(review)
	}
	if "" == owner || "" == title {
		return account.Address{}, ErrRequiredReview
	}
	ownerAddress, err := account.AddressFromBase58(owner)
	if nil != err {
		return account.Address{}, err
	}
	reviewAddress, _, err := address.Review(program, ownerAddress, title)
	return reviewAddress, err
}

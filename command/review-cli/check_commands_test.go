// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/reviewd/address"
	"github.com/bitmark-inc/reviewd/fault"
	"github.com/bitmark-inc/reviewd/fixtures"
)

func TestCheckRating(t *testing.T) {
	for _, r := range []uint{1, 3, 5} {
		rating, err := checkRating(r)
		assert.Nil(t, err, "wrong error")
		assert.Equal(t, uint8(r), rating, "wrong rating")
	}

	for _, r := range []uint{0, 6, 256 + 3} {
		_, err := checkRating(r)
		assert.Equal(t, fault.ErrInvalidRating, err, "wrong error")
	}
}

func TestCheckRequired(t *testing.T) {
	_, err := checkProgram("")
	assert.Equal(t, ErrRequiredProgram, err, "wrong program error")

	_, err = checkKey("")
	assert.Equal(t, ErrRequiredKey, err, "wrong key error")

	_, err = checkTitle("")
	assert.Equal(t, ErrRequiredTitle, err, "wrong title error")

	_, err = checkDescription("")
	assert.Equal(t, ErrRequiredDescription, err, "wrong description error")

	_, err = checkComment("")
	assert.Equal(t, ErrRequiredComment, err, "wrong comment error")

	_, err = checkLamports(0)
	assert.Equal(t, ErrRequiredLamports, err, "wrong lamports error")

	_, err = checkTxId("")
	assert.Equal(t, ErrRequiredTxId, err, "wrong txid error")

	_, err = checkAddressOrKey("", "")
	assert.Equal(t, ErrRequiredAddress, err, "wrong address error")
}

func TestCheckProgramAndKey(t *testing.T) {
	program, err := checkProgram(fixtures.Program.String())
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, fixtures.Program, program, "wrong program")

	key, err := checkKey(fixtures.Owner.String())
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, fixtures.Owner.Address(), key.Address(), "wrong key")

	_, err = checkProgram("not-base58-0OIl")
	assert.NotNil(t, err, "bad program accepted")
}

func TestCheckAddressOrKey(t *testing.T) {
	a, err := checkAddressOrKey("", fixtures.Owner.String())
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, fixtures.Owner.Address(), a, "key address not used")

	a, err = checkAddressOrKey(fixtures.Commenter.Address().String(), fixtures.Owner.String())
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, fixtures.Commenter.Address(), a, "explicit address not used")
}

func TestCheckNonce(t *testing.T) {
	assert.Equal(t, uint64(42), checkNonce(42), "explicit nonce changed")
	assert.NotEqual(t, uint64(0), checkNonce(0), "clock nonce not set")
}

func TestCheckTxId(t *testing.T) {
	s := "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"
	txId, err := checkTxId(s)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, s, txId.String(), "wrong txid")

	_, err = checkTxId("0123")
	assert.Equal(t, fault.ErrNotTransactionId, err, "short txid accepted")
}

func TestCheckReview(t *testing.T) {
	owner := fixtures.Owner.Address()
	expected, _, err := address.Review(fixtures.Program, owner, "a title")
	assert.Nil(t, err, "wrong derive error")

	byName, err := checkReview(fixtures.Program, "", owner.String(), "a title")
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, expected, byName, "wrong derived review")

	direct, err := checkReview(fixtures.Program, expected.String(), "", "")
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, expected, direct, "wrong direct review")

	_, err = checkReview(fixtures.Program, "", owner.String(), "")
	assert.Equal(t, ErrRequiredReview, err, "missing title accepted")

	_, err = checkReview(fixtures.Program, "", "", "a title")
	assert.Equal(t, ErrRequiredReview, err, "missing owner accepted")
}

func TestDerive(t *testing.T) {
	owner := fixtures.Owner.Address()

	result, err := derive(fixtures.Program, owner, "a title", nil)
	assert.Nil(t, err, "wrong error")
	assert.Nil(t, result.Comment, "comment derived without id")

	review, _, _ := address.Review(fixtures.Program, owner, "a title")
	counter, _, _ := address.Counter(fixtures.Program, review)
	assert.Equal(t, review, result.Review, "wrong review")
	assert.Equal(t, counter, result.Counter, "wrong counter")

	id := uint64(0)
	result, err = derive(fixtures.Program, owner, "a title", &id)
	assert.Nil(t, err, "wrong error")

	comment, _, _ := address.Comment(fixtures.Program, review, 0)
	if assert.NotNil(t, result.Comment, "missing comment") {
		assert.Equal(t, comment, *result.Comment, "wrong comment")
	}
}

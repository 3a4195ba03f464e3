// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/bitmark-inc/reviewd/account"
	"github.com/bitmark-inc/reviewd/address"
	"github.com/bitmark-inc/reviewd/instruction"
)

// CreateReview - unsigned transaction adding a review and its counter
func CreateReview(program account.Address, owner account.Address, title string, rating uint8, description string, nonce uint64) (*Transaction, error) {
	review, _, err := address.Review(program, owner, title)
	if nil != err {
		return nil, err
	}
	counter, _, err := address.Counter(program, review)
	if nil != err {
		return nil, err
	}

	op := instruction.CreateReview{
		Title:       title,
		Rating:      rating,
		Description: description,
	}

	return &Transaction{
		Program: program,
		Accounts: []AccountMeta{
			{Key: owner, IsSigner: true, IsWritable: true},
			{Key: review, IsWritable: true},
			{Key: counter, IsWritable: true},
			{Key: account.SystemProgram},
		},
		Data:  op.Pack(),
		Nonce: nonce,
	}, nil
}

// UpdateReview - unsigned transaction changing a review
func UpdateReview(program account.Address, owner account.Address, title string, rating uint8, description string, nonce uint64) (*Transaction, error) {
	review, _, err := address.Review(program, owner, title)
	if nil != err {
		return nil, err
	}

	op := instruction.UpdateReview{
		Title:       title,
		Rating:      rating,
		Description: description,
	}

	return &Transaction{
		Program: program,
		Accounts: []AccountMeta{
			{Key: owner, IsSigner: true},
			{Key: review, IsWritable: true},
		},
		Data:  op.Pack(),
		Nonce: nonce,
	}, nil
}

// AddComment - unsigned transaction adding comment number id to a review
//
// id must be the current value of the review's comment counter
func AddComment(program account.Address, commenter account.Address, review account.Address, id uint64, comment string, nonce uint64) (*Transaction, error) {
	counter, _, err := address.Counter(program, review)
	if nil != err {
		return nil, err
	}
	commentAddress, _, err := address.Comment(program, review, id)
	if nil != err {
		return nil, err
	}

	op := instruction.AddComment{
		Comment: comment,
	}

	return &Transaction{
		Program: program,
		Accounts: []AccountMeta{
			{Key: commenter, IsSigner: true, IsWritable: true},
			{Key: review},
			{Key: counter, IsWritable: true},
			{Key: commentAddress, IsWritable: true},
			{Key: account.SystemProgram},
		},
		Data:  op.Pack(),
		Nonce: nonce,
	}, nil
}

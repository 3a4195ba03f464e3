// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"encoding/binary"

	"github.com/bitmark-inc/reviewd/account"
)

// CounterLabel - fixed seed for the comment counter of a review
const CounterLabel = "comment"

// Review - address of the review an owner wrote under a title
func Review(program account.Address, owner account.Address, title string) (account.Address, *Seeds, error) {
	return Find(program, owner[:], []byte(title))
}

// Counter - address of the comment counter for a review
func Counter(program account.Address, review account.Address) (account.Address, *Seeds, error) {
	return Find(program, counterParts(review)...)
}

// VerifyCounter - check a candidate is the comment counter for a review
func VerifyCounter(program account.Address, candidate account.Address, review account.Address) bool {
	return Verify(program, candidate, counterParts(review)...)
}

func counterParts(review account.Address) [][]byte {
	return [][]byte{review[:], []byte(CounterLabel)}
}

// Comment - address of a numbered comment on a review
func Comment(program account.Address, review account.Address, id uint64) (account.Address, *Seeds, error) {
	n := make([]byte, 8)
	binary.BigEndian.PutUint64(n, id)
	return Find(program, review[:], n)
}

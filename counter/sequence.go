// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

import (
	"math"

	"github.com/bitmark-inc/reviewd/fault"
	"github.com/bitmark-inc/reviewd/state"
)

// Initialise - write a fresh comment counter into a slot buffer
//
// fails if the slot already holds an initialised record, a record of
// another type is reported as a wrong address
func Initialise(data []byte) error {
	current, err := state.UnpackCounter(data)
	if nil != err {
		return err
	}
	if current.IsInitialised {
		if !current.IsCounter() {
			return fault.ErrInvalidAddress
		}
		return fault.ErrAlreadyInitialized
	}

	fresh := &state.CommentCounter{
		Discriminator: state.CounterDiscriminator,
		IsInitialised: true,
		Counter:       0,
	}
	return fresh.Pack(data)
}

// Claim - take the next comment id from a counter slot buffer
//
// the incremented counter is written back to data before returning
// so the id cannot be claimed twice
func Claim(data []byte) (uint64, error) {
	current, err := state.UnpackCounter(data)
	if nil != err {
		return 0, err
	}
	if !current.IsInitialised {
		return 0, fault.ErrNotFound
	}
	if !current.IsCounter() {
		return 0, fault.ErrInvalidAddress
	}
	if math.MaxUint64 == current.Counter {
		return 0, fault.ErrInvalidCount
	}

	id := current.Counter
	current.Counter += 1
	if err := current.Pack(data); nil != err {
		return 0, err
	}
	return id, nil
}

// Peek - the id the next Claim would return
func Peek(data []byte) (uint64, error) {
	current, err := state.UnpackCounter(data)
	if nil != err {
		return 0, err
	}
	if !current.IsInitialised {
		return 0, fault.ErrNotFound
	}
	if !current.IsCounter() {
		return 0, fault.ErrInvalidAddress
	}
	return current.Counter, nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package slot

import (
	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/reviewd/account"
	"github.com/bitmark-inc/reviewd/fault"
	"github.com/bitmark-inc/reviewd/ledger"
	"github.com/bitmark-inc/reviewd/rpc/ratelimit"
	"github.com/bitmark-inc/reviewd/state"
)

const (
	rateLimitSlot = 200
	rateBurstSlot = 100
)

// Reader - committed slot access
type Reader interface {
	Slot(account.Address) (*ledger.Slot, error)
}

// Slot - an RPC entry for reading slots
type Slot struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Reader  Reader
}

// New - create the slot RPC service
func New(log *logger.L, reader Reader) *Slot {
	return &Slot{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitSlot, rateBurstSlot),
		Reader:  reader,
	}
}

// GetArguments - the slot to read
type GetArguments struct {
	Address account.Address `json:"address"`
}

// GetReply - raw slot and its decoded record
//
// Kind is empty for an unallocated slot, "none" for one without an
// initialised record and "invalid" when the data cannot be decoded
type GetReply struct {
	Address  account.Address `json:"address"`
	Owner    account.Address `json:"owner"`
	Lamports uint64          `json:"lamports,string"`
	Data     []byte          `json:"data"`
	Kind     string          `json:"kind"`
	Record   state.Record    `json:"record,omitempty"`
}

// record kinds not produced by state.Record
const (
	KindNone    = "none"
	KindInvalid = "invalid"
)

// Get - read one slot
func (s *Slot) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	if nil == s.Reader {
		return fault.ErrNotInitialised
	}

	slot, err := s.Reader.Slot(arguments.Address)
	if nil != err {
		return err
	}

	reply.Address = slot.Key
	reply.Owner = slot.Owner
	reply.Lamports = slot.Lamports
	reply.Data = slot.Data

	if !slot.IsAllocated() {
		return nil
	}

	record, err := state.Decode(slot.Data)
	switch {
	case nil == err:
		reply.Kind = record.Kind()
		reply.Record = record
	case fault.ErrNotFound == err:
		reply.Kind = KindNone
	default:
		s.Log.Debugf("slot: %s  decode error: %s", slot.Key, err)
		reply.Kind = KindInvalid
	}
	return nil
}

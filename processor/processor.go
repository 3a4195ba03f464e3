// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package processor - apply review instructions to ledger slots
//
// slot lifecycle: unallocated -> allocated (zero data) -> initialised
//
// every check is made before any slot data is written, except for
// the comment counter which is advanced before the comment address is
// checked; the host discards all slot changes when an error is returned
package processor

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/reviewd/account"
	"github.com/bitmark-inc/reviewd/address"
	"github.com/bitmark-inc/reviewd/fault"
	"github.com/bitmark-inc/reviewd/instruction"
	"github.com/bitmark-inc/reviewd/ledger"
)

// Processor - the review program
type Processor struct {
	log     *logger.L
	program account.Address
	ledger  ledger.Ledger
}

// New - create a processor for the program id
func New(log *logger.L, program account.Address, l ledger.Ledger) *Processor {
	return &Processor{
		log:     log,
		program: program,
		ledger:  l,
	}
}

// Program - the id this processor answers to
func (p *Processor) Program() account.Address {
	return p.program
}

// Process - decode an instruction and run it against the slots
func (p *Processor) Process(slots []*ledger.Slot, data []byte) error {
	op, err := instruction.Packed(data).Unpack()
	if nil != err {
		p.log.Warnf("unpack instruction error: %s", err)
		return err
	}

	p.log.Debugf("instruction: %s", op.Tag())

	switch tx := op.(type) {
	case *instruction.CreateReview:
		return p.CreateReview(slots, tx.Title, tx.Rating, tx.Description)

	case *instruction.UpdateReview:
		return p.UpdateReview(slots, tx.Title, tx.Rating, tx.Description)

	case *instruction.AddComment:
		return p.AddComment(slots, tx.Comment)

	default:
		return fault.ErrMalformedInstruction
	}
}

// allocate a slot for the program unless a previous attempt already did
func (p *Processor) allocate(funder *ledger.Slot, target *ledger.Slot, size int, seeds *address.Seeds) error {
	if target.IsAllocated() && target.IsOwnedBy(p.program) {
		p.log.Infof("slot: %s already allocated", target.Key)
		return nil
	}

	lamports := p.ledger.RentExemptMinimum(size)
	p.log.Debugf("allocate slot: %s  size: %d  lamports: %d", target.Key, size, lamports)

	err := p.ledger.Allocate(funder, target, lamports, size, p.program, seeds)
	if nil != err {
		p.log.Errorf("allocate slot: %s  error: %s", target.Key, err)
	}
	return err
}

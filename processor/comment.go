// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"github.com/bitmark-inc/reviewd/address"
	"github.com/bitmark-inc/reviewd/counter"
	"github.com/bitmark-inc/reviewd/fault"
	"github.com/bitmark-inc/reviewd/ledger"
	"github.com/bitmark-inc/reviewd/state"
)

// slot positions
const (
	commentCommenter = 0
	commentReview    = 1
	commentCounter   = 2
	commentComment   = 3
	commentSystem    = 4
)

// AddComment - append a numbered comment to a review
//
// slots: commenter (signer, writable), review, counter (writable),
// comment (writable), system program
func (p *Processor) AddComment(slots []*ledger.Slot, comment string) error {
	if len(slots) <= commentSystem {
		return fault.ErrNotEnoughAccounts
	}
	commenter := slots[commentCommenter]
	reviewSlot := slots[commentReview]
	counterSlot := slots[commentCounter]
	commentSlot := slots[commentComment]

	p.log.Infof("add comment to review: %s", reviewSlot.Key)

	if !commenter.IsSigner {
		p.log.Warn("missing required signature")
		return fault.ErrUnauthorized
	}

	for _, slot := range []*ledger.Slot{reviewSlot, counterSlot} {
		if slot.IsAllocated() && !slot.IsOwnedBy(p.program) {
			p.log.Warnf("slot: %s  owner: %s", slot.Key, slot.Owner)
			return fault.ErrNotOwned
		}
	}

	if !address.VerifyCounter(p.program, counterSlot.Key, reviewSlot.Key) {
		p.log.Warnf("counter address: %s  not derived from review: %s", counterSlot.Key, reviewSlot.Key)
		return fault.ErrInvalidAddress
	}

	review, err := state.UnpackReview(reviewSlot.Data)
	if nil != err {
		return err
	}
	if !review.IsInitialised {
		return fault.ErrNotFound
	}
	if !review.IsReview() {
		return fault.ErrInvalidAddress
	}

	id, err := counter.Claim(counterSlot.Data)
	if nil != err {
		p.log.Warnf("comment counter: %s", err)
		return err
	}
	p.log.Debugf("comment id: %d", id)

	_, commentSeeds, err := address.Comment(p.program, reviewSlot.Key, id)
	if nil != err {
		return err
	}
	if !commentSeeds.Verify(p.program, commentSlot.Key) {
		p.log.Warnf("comment address: %s  not derived for id: %d", commentSlot.Key, id)
		return fault.ErrInvalidAddress
	}

	size := state.CommentSize(comment)
	err = p.allocate(commenter, commentSlot, size, commentSeeds)
	if nil != err {
		return err
	}

	existing, err := state.UnpackComment(commentSlot.Data)
	if nil != err {
		return err
	}
	if existing.IsInitialised {
		p.log.Warn("comment already initialized")
		return fault.ErrAlreadyInitialized
	}

	record := &state.Comment{
		Discriminator: state.CommentDiscriminator,
		IsInitialised: true,
		Id:            id,
		Review:        reviewSlot.Key,
		Commenter:     commenter.Key,
		Comment:       comment,
	}
	if err := record.Pack(commentSlot.Data); nil != err {
		return err
	}

	p.log.Infof("added comment: %d  at: %s", id, commentSlot.Key)
	return nil
}

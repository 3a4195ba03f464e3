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
	createInitializer = 0
	createReview      = 1
	createCounter     = 2
	createSystem      = 3

	updateInitializer = 0
	updateReview      = 1
)

// CreateReview - add a review and its comment counter
//
// slots: initializer (signer, writable), review, counter, system program
func (p *Processor) CreateReview(slots []*ledger.Slot, title string, rating uint8, description string) error {
	if len(slots) <= createSystem {
		return fault.ErrNotEnoughAccounts
	}
	initializer := slots[createInitializer]
	reviewSlot := slots[createReview]
	counterSlot := slots[createCounter]

	p.log.Infof("create review: %q  rating: %d", title, rating)

	if !initializer.IsSigner {
		p.log.Warn("missing required signature")
		return fault.ErrUnauthorized
	}

	_, reviewSeeds, err := address.Review(p.program, initializer.Key, title)
	if nil != err {
		return err
	}
	if !reviewSeeds.Verify(p.program, reviewSlot.Key) {
		p.log.Warnf("review address: %s  not derived from owner and title", reviewSlot.Key)
		return fault.ErrInvalidAddress
	}

	_, counterSeeds, err := address.Counter(p.program, reviewSlot.Key)
	if nil != err {
		return err
	}
	if !counterSeeds.Verify(p.program, counterSlot.Key) {
		p.log.Warnf("counter address: %s  not derived from review", counterSlot.Key)
		return fault.ErrInvalidAddress
	}

	if err := checkContent(title, rating, description); nil != err {
		return err
	}

	err = p.allocate(initializer, reviewSlot, state.ReviewSlotSize, reviewSeeds)
	if nil != err {
		return err
	}

	review, err := state.UnpackReview(reviewSlot.Data)
	if nil != err {
		return err
	}

	if review.IsInitialised {
		if !review.IsReview() {
			return fault.ErrInvalidAddress
		}
		if !review.Matches(title, rating, description) {
			p.log.Warn("review already initialized")
			return fault.ErrAlreadyInitialized
		}
		p.log.Info("review already written, checking counter")
	} else {
		review = &state.Review{
			Discriminator: state.ReviewDiscriminator,
			IsInitialised: true,
			Title:         title,
			Rating:        rating,
			Description:   description,
		}
		if err := review.Pack(reviewSlot.Data); nil != err {
			return err
		}
		p.log.Debugf("review length: %d", review.Size())
	}

	err = p.allocate(initializer, counterSlot, state.CounterSize, counterSeeds)
	if nil != err {
		return err
	}

	err = counter.Initialise(counterSlot.Data)
	if nil != err {
		p.log.Warnf("comment counter: %s", err)
		return err
	}

	p.log.Infof("created review: %s  counter: %s", reviewSlot.Key, counterSlot.Key)
	return nil
}

// UpdateReview - replace the rating and description of a review
//
// slots: initializer (signer), review (writable)
func (p *Processor) UpdateReview(slots []*ledger.Slot, title string, rating uint8, description string) error {
	if len(slots) <= updateReview {
		return fault.ErrNotEnoughAccounts
	}
	initializer := slots[updateInitializer]
	reviewSlot := slots[updateReview]

	p.log.Infof("update review: %q  rating: %d", title, rating)

	if reviewSlot.IsAllocated() && !reviewSlot.IsOwnedBy(p.program) {
		p.log.Warnf("review slot owner: %s", reviewSlot.Owner)
		return fault.ErrNotOwned
	}

	if !initializer.IsSigner {
		p.log.Warn("missing required signature")
		return fault.ErrUnauthorized
	}

	_, reviewSeeds, err := address.Review(p.program, initializer.Key, title)
	if nil != err {
		return err
	}
	if !reviewSeeds.Verify(p.program, reviewSlot.Key) {
		p.log.Warnf("review address: %s  not derived from owner and title", reviewSlot.Key)
		return fault.ErrInvalidAddress
	}

	if err := checkContent(title, rating, description); nil != err {
		return err
	}

	review, err := state.UnpackReview(reviewSlot.Data)
	if nil != err {
		return err
	}
	if !review.IsInitialised {
		p.log.Warn("review is not initialized")
		return fault.ErrNotFound
	}
	if !review.IsReview() {
		return fault.ErrInvalidAddress
	}

	p.log.Debugf("review before update: rating: %d  description: %q", review.Rating, review.Description)

	review.Rating = rating
	review.Description = description
	if err := review.Pack(reviewSlot.Data); nil != err {
		return err
	}

	p.log.Infof("updated review: %s", reviewSlot.Key)
	return nil
}

// rating range and encoded size ceiling
func checkContent(title string, rating uint8, description string) error {
	if !state.ValidRating(rating) {
		return fault.ErrInvalidRating
	}
	if state.ReviewSize(title, description) > state.ReviewSlotSize {
		return fault.ErrPayloadTooLarge
	}
	return nil
}

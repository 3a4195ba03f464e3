// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor_test

import (
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/reviewd/account"
	"github.com/bitmark-inc/reviewd/address"
	"github.com/bitmark-inc/reviewd/counter"
	"github.com/bitmark-inc/reviewd/fixtures"
	"github.com/bitmark-inc/reviewd/ledger"
	"github.com/bitmark-inc/reviewd/ledger/mocks"
	"github.com/bitmark-inc/reviewd/processor"
	"github.com/bitmark-inc/reviewd/state"
)

const (
	rent    = uint64(1000)
	balance = uint64(1000000)
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func setup(t *testing.T) (*gomock.Controller, *mocks.MockLedger, *processor.Processor) {
	ctl := gomock.NewController(t)
	l := mocks.NewMockLedger(ctl)
	p := processor.New(logger.New(fixtures.LogCategory), fixtures.Program, l)
	return ctl, l, p
}

// behave like the host runtime allocation
func allocator(t *testing.T) func(funder *ledger.Slot, target *ledger.Slot, lamports uint64, size int, owner account.Address, seeds *address.Seeds) error {
	return func(funder *ledger.Slot, target *ledger.Slot, lamports uint64, size int, owner account.Address, seeds *address.Seeds) error {
		assert.True(t, funder.IsSigner, "funder signed")
		assert.False(t, target.IsAllocated(), "target unallocated")
		assert.True(t, seeds.Verify(owner, target.Key), "seeds derive target")

		funder.Lamports -= lamports
		target.Lamports += lamports
		target.Data = make([]byte, size)
		target.Owner = owner
		return nil
	}
}

func expectAllocation(t *testing.T, l *mocks.MockLedger, funder *ledger.Slot, target *ledger.Slot, size int) {
	l.EXPECT().RentExemptMinimum(size).Return(rent).Times(1)
	l.EXPECT().Allocate(funder, target, rent, size, fixtures.Program, gomock.Any()).DoAndReturn(allocator(t)).Times(1)
}

func signer(key *account.PrivateKey) *ledger.Slot {
	return &ledger.Slot{
		Key:        key.Address(),
		Lamports:   balance,
		IsSigner:   true,
		IsWritable: true,
	}
}

func system() *ledger.Slot {
	return &ledger.Slot{
		Key: account.SystemProgram,
	}
}

// slots for a create review instruction with nothing allocated
func createSlots(key *account.PrivateKey, title string) []*ledger.Slot {
	reviewAddress, _, _ := address.Review(fixtures.Program, key.Address(), title)
	counterAddress, _, _ := address.Counter(fixtures.Program, reviewAddress)

	return []*ledger.Slot{
		signer(key),
		{Key: reviewAddress, IsWritable: true},
		{Key: counterAddress, IsWritable: true},
		system(),
	}
}

// review and counter slots as left by a completed create
func existingReview(t *testing.T, key *account.PrivateKey, title string, rating uint8, description string) (*ledger.Slot, *ledger.Slot) {
	slots := createSlots(key, title)
	reviewSlot := slots[1]
	counterSlot := slots[2]

	reviewSlot.Owner = fixtures.Program
	reviewSlot.Lamports = rent
	reviewSlot.Data = make([]byte, state.ReviewSlotSize)
	review := &state.Review{
		Discriminator: state.ReviewDiscriminator,
		IsInitialised: true,
		Title:         title,
		Rating:        rating,
		Description:   description,
	}
	assert.Nil(t, review.Pack(reviewSlot.Data), "pack review")

	counterSlot.Owner = fixtures.Program
	counterSlot.Lamports = rent
	counterSlot.Data = make([]byte, state.CounterSize)
	assert.Nil(t, counter.Initialise(counterSlot.Data), "initialise counter")

	return reviewSlot, counterSlot
}

// slots for an add comment instruction claiming id
func commentSlots(commenter *account.PrivateKey, reviewSlot *ledger.Slot, counterSlot *ledger.Slot, id uint64) []*ledger.Slot {
	commentAddress, _, _ := address.Comment(fixtures.Program, reviewSlot.Key, id)
	return []*ledger.Slot{
		signer(commenter),
		reviewSlot,
		counterSlot,
		{Key: commentAddress, IsWritable: true},
		system(),
	}
}

func copyData(slot *ledger.Slot) []byte {
	if nil == slot.Data {
		return nil
	}
	return append([]byte{}, slot.Data...)
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package slot_test

import (
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/reviewd/account"
	"github.com/bitmark-inc/reviewd/fault"
	"github.com/bitmark-inc/reviewd/fixtures"
	"github.com/bitmark-inc/reviewd/ledger"
	"github.com/bitmark-inc/reviewd/rpc/mocks"
	"github.com/bitmark-inc/reviewd/rpc/slot"
	"github.com/bitmark-inc/reviewd/state"
)

var key = account.Address{0x0a, 0x0b}

func TestSlotGetReview(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	review := &state.Review{
		Discriminator: state.ReviewDiscriminator,
		IsInitialised: true,
		Title:         "Dune",
		Rating:        5,
		Description:   "great",
	}
	data := make([]byte, state.ReviewSlotSize)
	_ = review.Pack(data)

	rt := mocks.NewMockRuntime(ctl)
	rt.EXPECT().Slot(key).Return(&ledger.Slot{
		Key:      key,
		Owner:    fixtures.Program,
		Lamports: 7850880,
		Data:     data,
	}, nil).Times(1)

	s := slot.New(logger.New(fixtures.LogCategory), rt)

	var reply slot.GetReply
	err := s.Get(&slot.GetArguments{Address: key}, &reply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, key, reply.Address, "wrong address")
	assert.Equal(t, fixtures.Program, reply.Owner, "wrong owner")
	assert.Equal(t, uint64(7850880), reply.Lamports, "wrong lamports")
	assert.Equal(t, state.ReviewDiscriminator, reply.Kind, "wrong kind")
	assert.Equal(t, review, reply.Record, "wrong record")
}

func TestSlotGetUnallocated(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	rt := mocks.NewMockRuntime(ctl)
	rt.EXPECT().Slot(key).Return(&ledger.Slot{Key: key}, nil).Times(1)

	s := slot.New(logger.New(fixtures.LogCategory), rt)

	var reply slot.GetReply
	err := s.Get(&slot.GetArguments{Address: key}, &reply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, "", reply.Kind, "wrong kind")
	assert.Nil(t, reply.Record, "unexpected record")
}

func TestSlotGetUninitialisedAndCorrupt(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	corrupt := []byte{3, 0, 0, 0, 'x', 'y', 'z', 1}

	rt := mocks.NewMockRuntime(ctl)
	gomock.InOrder(
		rt.EXPECT().Slot(key).Return(&ledger.Slot{Key: key, Lamports: 1, Data: make([]byte, 20)}, nil),
		rt.EXPECT().Slot(key).Return(&ledger.Slot{Key: key, Lamports: 1, Data: corrupt}, nil),
	)

	s := slot.New(logger.New(fixtures.LogCategory), rt)

	var reply slot.GetReply
	err := s.Get(&slot.GetArguments{Address: key}, &reply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, slot.KindNone, reply.Kind, "wrong kind")

	reply = slot.GetReply{}
	err = s.Get(&slot.GetArguments{Address: key}, &reply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, slot.KindInvalid, reply.Kind, "wrong kind")
}

func TestSlotGetError(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	rt := mocks.NewMockRuntime(ctl)
	rt.EXPECT().Slot(key).Return(nil, fault.ErrInvalidRecord).Times(1)

	s := slot.New(logger.New(fixtures.LogCategory), rt)

	var reply slot.GetReply
	err := s.Get(&slot.GetArguments{Address: key}, &reply)
	assert.Equal(t, fault.ErrInvalidRecord, err, "wrong error")
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/reviewd/fault"
	"github.com/bitmark-inc/reviewd/instruction"
)

func TestCreateReview(t *testing.T) {
	create := instruction.CreateReview{
		Title:       "Dune",
		Rating:      5,
		Description: "great",
	}
	expected := instruction.Packed{
		0x00,
		4, 0, 0, 0, 'D', 'u', 'n', 'e',
		5,
		5, 0, 0, 0, 'g', 'r', 'e', 'a', 't',
	}
	packed := create.Pack()
	assert.Equal(t, expected, packed, "pack")

	op, err := packed.Unpack()
	assert.Nil(t, err, "unpack")
	assert.Equal(t, &create, op, "round trip")
	assert.Equal(t, instruction.CreateReviewTag, op.Tag(), "tag")
}

func TestUpdateReview(t *testing.T) {
	update := instruction.UpdateReview{
		Title:       "Dune",
		Rating:      4,
		Description: "ok",
	}
	packed := update.Pack()
	assert.Equal(t, byte(0x01), packed[0], "tag byte")

	op, err := packed.Unpack()
	assert.Nil(t, err, "unpack")
	assert.Equal(t, &update, op, "round trip")
}

func TestAddComment(t *testing.T) {
	add := instruction.AddComment{
		Comment: "hi",
	}
	packed := add.Pack()
	assert.Equal(t, instruction.Packed{0x02, 2, 0, 0, 0, 'h', 'i'}, packed, "pack")

	op, err := packed.Unpack()
	assert.Nil(t, err, "unpack")
	assert.Equal(t, &add, op, "round trip")
	assert.Equal(t, "AddComment", op.Tag().String(), "name")
}

func TestMalformed(t *testing.T) {
	tests := []struct {
		name   string
		packed instruction.Packed
	}{
		{"empty", instruction.Packed{}},
		{"unknown tag", instruction.Packed{0x03, 0, 0, 0, 0}},
		{"high tag", instruction.Packed{0xff}},
		{"missing fields", instruction.Packed{0x00}},
		{"truncated title", instruction.Packed{0x00, 4, 0, 0, 0, 'D', 'u'}},
		{"missing description", instruction.Packed{0x01, 1, 0, 0, 0, 'D', 3}},
		{"invalid utf-8", instruction.Packed{0x02, 2, 0, 0, 0, 0xc3, 0x28}},
		{"trailing bytes", instruction.Packed{0x02, 0, 0, 0, 0, 0x00}},
	}

	for _, test := range tests {
		op, err := test.packed.Unpack()
		assert.Nil(t, op, test.name)
		assert.Equal(t, fault.ErrMalformedInstruction, err, test.name)
	}
}

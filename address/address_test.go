// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/reviewd/account"
	"github.com/bitmark-inc/reviewd/address"
	"github.com/bitmark-inc/reviewd/fault"
)

var (
	program = account.Address{0x11, 0x22, 0x33, 0x44}
	owner   = account.Address{0x01, 0x02, 0x03}
	other   = account.Address{0x09, 0x08, 0x07}
)

func TestFindIsDeterministic(t *testing.T) {
	for _, title := range []string{"Dune", "Solaris", "", "a title of exactly thirty-two by"} {
		a1, s1, err := address.Review(program, owner, title)
		assert.Nil(t, err, "first derivation of %q", title)
		a2, s2, err := address.Review(program, owner, title)
		assert.Nil(t, err, "second derivation of %q", title)

		assert.Equal(t, a1, a2, "address differs for %q", title)
		assert.Equal(t, s1.Bump, s2.Bump, "bump differs for %q", title)
		assert.True(t, s1.Verify(program, a1), "seeds do not verify for %q", title)
		assert.True(t, address.Verify(program, a1, owner[:], []byte(title)), "verify failed for %q", title)
	}
}

func TestFindSeparatesNamespaces(t *testing.T) {
	a1, _, err := address.Review(program, owner, "Dune")
	assert.Nil(t, err, "owner derivation")
	a2, _, err := address.Review(program, other, "Dune")
	assert.Nil(t, err, "other derivation")
	a3, _, err := address.Review(program, owner, "Dune Messiah")
	assert.Nil(t, err, "title derivation")
	a4, _, err := address.Review(other, owner, "Dune")
	assert.Nil(t, err, "program derivation")

	assert.NotEqual(t, a1, a2, "owner must change the address")
	assert.NotEqual(t, a1, a3, "title must change the address")
	assert.NotEqual(t, a1, a4, "program must change the address")

	assert.False(t, address.Verify(program, a2, owner[:], []byte("Dune")), "foreign address verified")
}

func TestSeedsAreTheDerivationCapability(t *testing.T) {
	review, _, err := address.Review(program, owner, "Dune")
	assert.Nil(t, err, "review derivation")

	counter, seeds, err := address.Counter(program, review)
	assert.Nil(t, err, "counter derivation")
	assert.Equal(t, 2, len(seeds.Parts), "counter seed parts")
	assert.Equal(t, review[:], seeds.Parts[0], "counter first seed")
	assert.Equal(t, []byte(address.CounterLabel), seeds.Parts[1], "counter label seed")

	a, err := seeds.Address(program)
	assert.Nil(t, err, "seeds address")
	assert.Equal(t, counter, a, "seeds recompute the counter address")

	assert.False(t, seeds.Verify(program, review), "counter seeds verified the review")

	tampered := &address.Seeds{Parts: seeds.Parts, Bump: seeds.Bump - 1}
	assert.False(t, tampered.Verify(program, counter), "tampered bump verified")

	var none *address.Seeds
	assert.False(t, none.Verify(program, counter), "nil seeds verified")
}

func TestVerifyCounter(t *testing.T) {
	review, _, err := address.Review(program, owner, "Dune")
	assert.Nil(t, err, "review derivation")
	counter, _, err := address.Counter(program, review)
	assert.Nil(t, err, "counter derivation")

	assert.True(t, address.VerifyCounter(program, counter, review), "counter did not verify")
	assert.False(t, address.VerifyCounter(program, review, review), "review verified as its own counter")
	assert.False(t, address.VerifyCounter(other, counter, review), "counter verified under another program")

	second, _, err := address.Review(program, owner, "Solaris")
	assert.Nil(t, err, "second review derivation")
	assert.False(t, address.VerifyCounter(program, counter, second), "counter verified for another review")
}

func TestCommentAddressesAreDistinct(t *testing.T) {
	review, _, err := address.Review(program, owner, "Dune")
	assert.Nil(t, err, "review derivation")

	seen := make(map[account.Address]uint64)
	for id := uint64(0); id < 20; id += 1 {
		a, seeds, err := address.Comment(program, review, id)
		assert.Nil(t, err, "comment %d derivation", id)
		assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, byte(id)}, seeds.Parts[1], "comment %d id seed must be big endian", id)
		if previous, ok := seen[a]; ok {
			t.Fatalf("comment %d collides with comment %d", id, previous)
		}
		seen[a] = id
	}
}

func TestSeedLimits(t *testing.T) {
	longTitle := string(bytes.Repeat([]byte{'x'}, address.MaximumSeedLength+1))
	_, _, err := address.Review(program, owner, longTitle)
	assert.Equal(t, fault.ErrSeedTooLong, err, "long seed accepted")

	assert.False(t, address.Verify(program, owner, owner[:], []byte(longTitle)), "long seed verified")

	parts := make([][]byte, address.MaximumSeeds)
	for i := range parts {
		parts[i] = []byte{byte(i)}
	}
	_, _, err = address.Find(program, parts...)
	assert.Equal(t, fault.ErrTooManySeeds, err, "no room for the bump seed")

	_, err = address.Create(program, append(parts, []byte{1})...)
	assert.Equal(t, fault.ErrTooManySeeds, err, "too many seeds accepted")
}

func TestCreateRejectsOnCurveResults(t *testing.T) {
	_, seeds, err := address.Review(program, owner, "Dune")
	assert.Nil(t, err, "review derivation")

	// every bump above the one found produced an on-curve point
	for bump := 255; bump > int(seeds.Bump); bump -= 1 {
		_, err := address.Create(program, owner[:], []byte("Dune"), []byte{byte(bump)})
		assert.Equal(t, fault.ErrInvalidSeeds, err, "bump %d should be on the curve", bump)
	}
}

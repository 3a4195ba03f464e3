// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"crypto/sha256"

	"filippo.io/edwards25519"

	"github.com/bitmark-inc/reviewd/account"
	"github.com/bitmark-inc/reviewd/fault"
)

// limits on the seeds, the bump counts as one seed
const (
	MaximumSeedLength = 32
	MaximumSeeds      = 16
)

// appended to every hash so a derived address cannot collide with
// any other use of SHA-256 over the same bytes
var derivedMarker = []byte("ProgramDerivedAddress")

// Seeds - the capability to authorise writes at a derived address
//
// returned by Find and handed to the ledger when allocating, the ledger
// recomputes the address from these values rather than trusting the
// caller
type Seeds struct {
	Parts [][]byte
	Bump  uint8
}

// Create - compute the address for a complete seed list
//
// fails if any seed is too long or the result lies on the curve
func Create(program account.Address, seeds ...[]byte) (account.Address, error) {
	if len(seeds) > MaximumSeeds {
		return account.Address{}, fault.ErrTooManySeeds
	}

	h := sha256.New()
	for _, seed := range seeds {
		if len(seed) > MaximumSeedLength {
			return account.Address{}, fault.ErrSeedTooLong
		}
		h.Write(seed)
	}
	h.Write(program[:])
	h.Write(derivedMarker)

	var result account.Address
	copy(result[:], h.Sum(nil))

	if isOnCurve(result) {
		return account.Address{}, fault.ErrInvalidSeeds
	}
	return result, nil
}

// Find - search the bump values for the first off-curve address
func Find(program account.Address, parts ...[]byte) (account.Address, *Seeds, error) {
	if len(parts) >= MaximumSeeds {
		return account.Address{}, nil, fault.ErrTooManySeeds
	}
	for _, part := range parts {
		if len(part) > MaximumSeedLength {
			return account.Address{}, nil, fault.ErrSeedTooLong
		}
	}

	withBump := make([][]byte, len(parts)+1)
	copy(withBump, parts)

	for bump := 255; bump > 0; bump -= 1 {
		withBump[len(parts)] = []byte{byte(bump)}
		result, err := Create(program, withBump...)
		if nil == err {
			seeds := &Seeds{
				Parts: copyParts(parts),
				Bump:  uint8(bump),
			}
			return result, seeds, nil
		}
		if fault.ErrInvalidSeeds != err {
			return account.Address{}, nil, err
		}
	}
	return account.Address{}, nil, fault.ErrNoViableBump
}

// Verify - recompute the address for a namespace and compare
func Verify(program account.Address, candidate account.Address, parts ...[]byte) bool {
	expected, _, err := Find(program, parts...)
	if nil != err {
		return false
	}
	return expected == candidate
}

// Address - the address these seeds authorise
func (seeds *Seeds) Address(program account.Address) (account.Address, error) {
	all := make([][]byte, len(seeds.Parts)+1)
	copy(all, seeds.Parts)
	all[len(seeds.Parts)] = []byte{seeds.Bump}
	return Create(program, all...)
}

// Verify - check that these seeds authorise the candidate address
func (seeds *Seeds) Verify(program account.Address, candidate account.Address) bool {
	if nil == seeds {
		return false
	}
	a, err := seeds.Address(program)
	if nil != err {
		return false
	}
	return a == candidate
}

// detach the seeds from caller owned slices
func copyParts(parts [][]byte) [][]byte {
	result := make([][]byte, len(parts))
	for i, p := range parts {
		result[i] = append([]byte{}, p...)
	}
	return result
}

// true if the bytes decode to a point on the ed25519 curve
func isOnCurve(a account.Address) bool {
	_, err := new(edwards25519.Point).SetBytes(a[:])
	return nil == err
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"github.com/mr-tron/base58"

	"github.com/bitmark-inc/reviewd/fault"
)

// AddressLength - number of bytes in an address
const AddressLength = 32

// Address - a ledger address
//
// either an ed25519 public key belonging to a principal or a derived
// address that no private key can sign for
type Address [AddressLength]byte

// SystemProgram - the owner of every unallocated slot
var SystemProgram = Address{}

// AddressFromBytes - validate and convert a byte slice to an address
func AddressFromBytes(buffer []byte) (Address, error) {
	var address Address
	if AddressLength != len(buffer) {
		return address, fault.ErrInvalidAddressLength
	}
	copy(address[:], buffer)
	return address, nil
}

// AddressFromBase58 - decode the text form of an address
func AddressFromBase58(s string) (Address, error) {
	buffer, err := base58.Decode(s)
	if nil != err {
		return Address{}, err
	}
	return AddressFromBytes(buffer)
}

// Bytes - the raw bytes of the address
func (address Address) Bytes() []byte {
	return address[:]
}

// IsZero - true for the system program address
func (address Address) IsZero() bool {
	return address == SystemProgram
}

// Equal - compare to another address
func (address Address) Equal(other Address) bool {
	return bytes.Equal(address[:], other[:])
}

// String - base58 text for use by the fmt package (for %s)
func (address Address) String() string {
	return base58.Encode(address[:])
}

// GoString - for use by the fmt package (for %#v)
func (address Address) GoString() string {
	return "<address:" + base58.Encode(address[:]) + ">"
}

// MarshalText - convert to base58 text for JSON
func (address Address) MarshalText() ([]byte, error) {
	return []byte(base58.Encode(address[:])), nil
}

// UnmarshalText - convert base58 text to an address
func (address *Address) UnmarshalText(s []byte) error {
	a, err := AddressFromBase58(string(s))
	if nil != err {
		return err
	}
	*address = a
	return nil
}

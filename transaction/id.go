// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/reviewd/fault"
)

// IdLength - number of bytes in a transaction id
const IdLength = 32

// Id - SHA3-256 digest of a packed message
type Id [IdLength]byte

// NewId - digest a packed message
func NewId(message []byte) Id {
	return sha3.Sum256(message)
}

// String - hex form for the fmt package (for %s)
func (id Id) String() string {
	return hex.EncodeToString(id[:])
}

// GoString - hex form for the fmt package (for %#v)
func (id Id) GoString() string {
	return "<SHA3-256:" + hex.EncodeToString(id[:]) + ">"
}

// MarshalText - convert id to hex text
func (id Id) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(IdLength))
	hex.Encode(buffer, id[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into an id
func (id *Id) UnmarshalText(s []byte) error {
	if IdLength != hex.DecodedLen(len(s)) {
		return fault.ErrNotTransactionId
	}
	buffer := make([]byte, IdLength)
	_, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	copy(id[:], buffer)
	return nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"crypto/rand"
	"io"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/reviewd/fault"
)

// PrivateKey - an ed25519 signing key
type PrivateKey struct {
	key ed25519.PrivateKey
}

// NewPrivateKey - generate a key from secure random data
func NewPrivateKey() (*PrivateKey, error) {
	return NewPrivateKeyFrom(rand.Reader)
}

// NewPrivateKeyFrom - generate a key from a specific random source
func NewPrivateKeyFrom(random io.Reader) (*PrivateKey, error) {
	_, key, err := ed25519.GenerateKey(random)
	if nil != err {
		return nil, err
	}
	return &PrivateKey{key: key}, nil
}

// PrivateKeyFromSeed - create a key from a 32 byte seed
func PrivateKeyFromSeed(seed []byte) (*PrivateKey, error) {
	if ed25519.SeedSize != len(seed) {
		return nil, fault.ErrInvalidPrivateKey
	}
	return &PrivateKey{key: ed25519.NewKeyFromSeed(seed)}, nil
}

// PrivateKeyFromBase58 - decode the text form of a private key
func PrivateKeyFromBase58(s string) (*PrivateKey, error) {
	buffer, err := base58.Decode(s)
	if nil != err {
		return nil, err
	}
	if ed25519.PrivateKeySize != len(buffer) {
		return nil, fault.ErrInvalidPrivateKey
	}
	key := ed25519.NewKeyFromSeed(buffer[:ed25519.SeedSize])
	if string(key) != string(buffer) {
		return nil, fault.ErrInvalidPrivateKey
	}
	return &PrivateKey{key: key}, nil
}

// Address - the public address of this key
func (privateKey *PrivateKey) Address() Address {
	var address Address
	copy(address[:], privateKey.key.Public().(ed25519.PublicKey))
	return address
}

// Sign - sign a message
func (privateKey *PrivateKey) Sign(message []byte) Signature {
	return Signature(ed25519.Sign(privateKey.key, message))
}

// String - base58 text of the full private key
func (privateKey *PrivateKey) String() string {
	return base58.Encode(privateKey.key)
}

// MarshalText - convert to base58 text
func (privateKey *PrivateKey) MarshalText() ([]byte, error) {
	return []byte(privateKey.String()), nil
}

// UnmarshalText - convert base58 text to a private key
func (privateKey *PrivateKey) UnmarshalText(s []byte) error {
	p, err := PrivateKeyFromBase58(string(s))
	if nil != err {
		return err
	}
	privateKey.key = p.key
	return nil
}

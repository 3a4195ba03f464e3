// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/reviewd/account"
	"github.com/bitmark-inc/reviewd/fault"
)

var testSeed = bytes.Repeat([]byte{0x5a}, 32)

func TestAddressText(t *testing.T) {
	key, err := account.PrivateKeyFromSeed(testSeed)
	assert.Nil(t, err, "private key from seed")

	address := key.Address()
	text := address.String()

	decoded, err := account.AddressFromBase58(text)
	assert.Nil(t, err, "decode base58")
	assert.Equal(t, address, decoded, "base58 round trip")

	buffer, err := json.Marshal(struct {
		Owner account.Address `json:"owner"`
	}{address})
	assert.Nil(t, err, "json marshal")
	assert.Equal(t, `{"owner":"`+text+`"}`, string(buffer), "json text")

	var back struct {
		Owner account.Address `json:"owner"`
	}
	err = json.Unmarshal(buffer, &back)
	assert.Nil(t, err, "json unmarshal")
	assert.Equal(t, address, back.Owner, "json round trip")
}

func TestAddressFromBytes(t *testing.T) {
	_, err := account.AddressFromBytes([]byte{1, 2, 3})
	assert.Equal(t, fault.ErrInvalidAddressLength, err, "short address accepted")

	a, err := account.AddressFromBytes(bytes.Repeat([]byte{7}, account.AddressLength))
	assert.Nil(t, err, "valid address")
	assert.False(t, a.IsZero(), "address should not be zero")
	assert.True(t, account.SystemProgram.IsZero(), "system program should be zero")
}

func TestSignature(t *testing.T) {
	key, err := account.PrivateKeyFromSeed(testSeed)
	assert.Nil(t, err, "private key from seed")

	message := []byte("the quick brown fox")
	signature := key.Sign(message)

	assert.Nil(t, key.Address().CheckSignature(message, signature), "valid signature rejected")
	assert.Equal(t, fault.ErrInvalidSignature, key.Address().CheckSignature([]byte("other"), signature), "wrong message accepted")
	assert.Equal(t, fault.ErrInvalidSignature, key.Address().CheckSignature(message, signature[:10]), "short signature accepted")

	other, err := account.NewPrivateKey()
	assert.Nil(t, err, "new private key")
	assert.Equal(t, fault.ErrInvalidSignature, other.Address().CheckSignature(message, signature), "wrong key accepted")
}

func TestPrivateKeyText(t *testing.T) {
	key, err := account.NewPrivateKey()
	assert.Nil(t, err, "new private key")

	text, err := key.MarshalText()
	assert.Nil(t, err, "marshal text")

	var back account.PrivateKey
	err = back.UnmarshalText(text)
	assert.Nil(t, err, "unmarshal text")
	assert.Equal(t, key.Address(), back.Address(), "private key round trip")

	_, err = account.PrivateKeyFromBase58("3mJr7AoUXx2Wqd")
	assert.Equal(t, fault.ErrInvalidPrivateKey, err, "short private key accepted")
}

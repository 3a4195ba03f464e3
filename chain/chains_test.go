// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/reviewd/chain"
)

func TestValid(t *testing.T) {
	for _, name := range []string{chain.Reviews, chain.Testing, chain.Local} {
		assert.True(t, chain.Valid(name), name)
	}
	for _, name := range []string{"", "Reviews", "bitmark"} {
		assert.False(t, chain.Valid(name), name)
	}
}

func TestIsLive(t *testing.T) {
	assert.True(t, chain.IsLive(chain.Reviews), "reviews")
	assert.False(t, chain.IsLive(chain.Testing), "testing")
	assert.False(t, chain.IsLive(chain.Local), "local")
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mode_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/reviewd/chain"
	"github.com/bitmark-inc/reviewd/fault"
	"github.com/bitmark-inc/reviewd/fixtures"
	"github.com/bitmark-inc/reviewd/mode"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func TestLifecycle(t *testing.T) {
	assert.Equal(t, fault.ErrInvalidChain, mode.Initialise("bitmark"), "invalid chain")

	err := mode.Initialise(chain.Local)
	assert.Nil(t, err, "initialise")
	assert.Equal(t, fault.ErrModuleAlreadyInitialised, mode.Initialise(chain.Local), "twice")

	assert.True(t, mode.Is(mode.Starting), "starting")
	assert.True(t, mode.IsTesting(), "local is testing")
	assert.Equal(t, chain.Local, mode.ChainName(), "chain")
	assert.Equal(t, "Starting", mode.String(), "string")

	mode.Set(mode.Normal)
	assert.True(t, mode.Is(mode.Normal), "normal")

	mode.Set(mode.Mode(99))
	assert.True(t, mode.Is(mode.Normal), "invalid mode was set")

	mode.Set(mode.Stopped)
	assert.True(t, mode.Is(mode.Stopped), "stopped")

	assert.Nil(t, mode.Finalise(), "finalise")
	assert.Equal(t, fault.ErrNotInitialised, mode.Finalise(), "finalise twice")

	err = mode.Initialise(chain.Reviews)
	assert.Nil(t, err, "live chain")
	assert.False(t, mode.IsTesting(), "live is not testing")
	assert.Nil(t, mode.Finalise(), "finalise live")
}

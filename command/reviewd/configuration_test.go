// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/reviewd/chain"
	"github.com/bitmark-inc/reviewd/fixtures"
)

const configurationTemplate = `
local M = {}

M.data_directory = "."
M.chain = %q
M.program_id = %q

M.client_rpc = {
    maximum_connections = 5,
    listen = {
        "127.0.0.1:2130",
    },
}

M.logging = {
    size = 4096,
    levels = {
        DEFAULT = "info",
    },
}

return M
`

func writeConfiguration(t *testing.T, chainName string, programId string) (string, string) {
	dir := t.TempDir()
	name := filepath.Join(dir, "reviewd.conf")
	content := fmt.Sprintf(configurationTemplate, chainName, programId)
	if err := ioutil.WriteFile(name, []byte(content), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	return dir, name
}

func TestGetConfiguration(t *testing.T) {
	dir, name := writeConfiguration(t, "Local", fixtures.Program.String())

	options, err := getConfiguration(name)
	assert.Nil(t, err, "wrong getConfiguration")

	assert.Equal(t, chain.Local, options.Chain, "chain is lower cased")
	assert.Equal(t, fixtures.Program, options.Program(), "wrong program")
	assert.Equal(t, filepath.Clean(dir), options.DataDirectory, "wrong data directory")
	assert.Equal(t, filepath.Join(dir, defaultLevelDBDirectory), options.Database.Directory, "wrong database directory")
	assert.Equal(t, filepath.Join(dir, defaultLevelDBDirectory, defaultLocalDatabase), options.Database.Name, "wrong database")
	assert.Equal(t, filepath.Join(dir, defaultCertificateFile), options.ClientRPC.Certificate, "wrong certificate")
	assert.Equal(t, filepath.Join(dir, defaultKeyFile), options.ClientRPC.PrivateKey, "wrong key")
	assert.Equal(t, uint64(5), options.ClientRPC.MaximumConnections, "wrong connections")
	assert.Equal(t, []string{"127.0.0.1:2130"}, options.ClientRPC.Listen, "wrong listen")

	assert.Equal(t, filepath.Join(dir, defaultLogDirectory), options.Logging.Directory, "wrong log directory")
	assert.Equal(t, defaultLogFile, options.Logging.File, "wrong log file")
	assert.EqualValues(t, 4096, options.Logging.Size, "wrong log size")
	assert.EqualValues(t, defaultLogCount, options.Logging.Count, "log count keeps default")
	assert.Equal(t, "info", options.Logging.Levels["DEFAULT"], "wrong level")
}

func TestGetConfigurationInvalidChain(t *testing.T) {
	_, name := writeConfiguration(t, "bitmark", fixtures.Program.String())

	_, err := getConfiguration(name)
	assert.NotNil(t, err, "invalid chain accepted")
}

func TestGetConfigurationInvalidProgram(t *testing.T) {
	_, name := writeConfiguration(t, chain.Testing, "not-base58-0OIl")

	_, err := getConfiguration(name)
	assert.NotNil(t, err, "invalid program accepted")

	_, name = writeConfiguration(t, chain.Testing, "")
	_, err = getConfiguration(name)
	assert.NotNil(t, err, "empty program accepted")
}

func TestConfigurationUnchangedOnReread(t *testing.T) {
	_, name := writeConfiguration(t, chain.Testing, fixtures.Program.String())

	first, err := getConfiguration(name)
	assert.Nil(t, err, "first read")
	second, err := getConfiguration(name)
	assert.Nil(t, err, "second read")
	assert.Equal(t, first, second, "configuration differs")
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/reviewd/configuration"
	"github.com/bitmark-inc/reviewd/fault"
)

type rpcSection struct {
	Listen             []string `gluamapper:"listen"`
	MaximumConnections int      `gluamapper:"maximum_connections"`
}

type testConfiguration struct {
	DataDirectory string     `gluamapper:"data_directory"`
	Chain         string     `gluamapper:"chain"`
	ProgramId     string     `gluamapper:"program_id"`
	RPC           rpcSection `gluamapper:"client_rpc"`
}

const sample = `
local M = {}

M.data_directory = "."
M.chain = "local"
M.program_id = os.getenv("REVIEWD_TEST_PROGRAM") or "unset"

M.client_rpc = {
    maximum_connections = 5,
    listen = {
        "127.0.0.1:2130",
        "[::1]:2130",
    },
}

return M
`

func writeFile(t *testing.T, content string) (string, func()) {
	dir, err := ioutil.TempDir("", "configuration")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	name := filepath.Join(dir, "test.conf")
	err = ioutil.WriteFile(name, []byte(content), 0600)
	if nil != err {
		t.Fatalf("write error: %s", err)
	}
	return name, func() { os.RemoveAll(dir) }
}

func TestParseConfigurationFile(t *testing.T) {
	name, cleanup := writeFile(t, sample)
	defer cleanup()

	os.Setenv("REVIEWD_TEST_PROGRAM", "from-environment")
	defer os.Unsetenv("REVIEWD_TEST_PROGRAM")

	options := &testConfiguration{
		DataDirectory: "default",
		RPC: rpcSection{
			MaximumConnections: 100,
		},
	}

	err := configuration.ParseConfigurationFile(name, options)
	assert.Nil(t, err, "parse")

	assert.Equal(t, ".", options.DataDirectory, "data directory")
	assert.Equal(t, "local", options.Chain, "chain")
	assert.Equal(t, "from-environment", options.ProgramId, "environment")
	assert.Equal(t, 5, options.RPC.MaximumConnections, "connections")
	assert.Equal(t, []string{"127.0.0.1:2130", "[::1]:2130"}, options.RPC.Listen, "listen")
}

func TestDefaultsAreKept(t *testing.T) {
	name, cleanup := writeFile(t, "return { chain = \"testing\" }")
	defer cleanup()

	options := &testConfiguration{
		DataDirectory: "default",
	}

	err := configuration.ParseConfigurationFile(name, options)
	assert.Nil(t, err, "parse")
	assert.Equal(t, "default", options.DataDirectory, "default kept")
	assert.Equal(t, "testing", options.Chain, "chain")
}

func TestNotATable(t *testing.T) {
	name, cleanup := writeFile(t, "return 42")
	defer cleanup()

	err := configuration.ParseConfigurationFile(name, &testConfiguration{})
	assert.Equal(t, fault.ErrConfigurationNotTable, err, "not a table")
}

func TestSyntaxError(t *testing.T) {
	name, cleanup := writeFile(t, "return {")
	defer cleanup()

	err := configuration.ParseConfigurationFile(name, &testConfiguration{})
	assert.NotNil(t, err, "syntax error")
}

func TestArgumentTable(t *testing.T) {
	name, cleanup := writeFile(t, "return { chain = arg[0], data_directory = arg[1] .. \"/data\" }")
	defer cleanup()

	options := &testConfiguration{}
	err := configuration.ParseConfigurationFile(name, options)
	assert.Nil(t, err, "parse")
	assert.Equal(t, name, options.Chain, "arg[0]")
	assert.Equal(t, filepath.Join(filepath.Dir(name), "data"), options.DataDirectory, "arg[1]")
}

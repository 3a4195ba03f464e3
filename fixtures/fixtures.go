// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared test keys and logger setup
package fixtures

import (
	"bytes"
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/reviewd/account"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// deterministic keys
var (
	Owner     = mustKey(0x11)
	Commenter = mustKey(0x22)
	Stranger  = mustKey(0x33)

	Program      = mustKey(0x44).Address()
	OtherProgram = mustKey(0x55).Address()
)

func mustKey(fill byte) *account.PrivateKey {
	key, err := account.PrivateKeyFromSeed(bytes.Repeat([]byte{fill}, 32))
	if nil != err {
		panic(err)
	}
	return key
}

// SetupTestLogger - log to a scratch directory, critical messages only
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the scratch directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

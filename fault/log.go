// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

// channel for the last message before an unrecoverable failure
var log *logger.L

// Initialise - open the PANIC log channel
func Initialise() error {
	if nil != log {
		return ErrModuleAlreadyInitialised
	}
	log = logger.New("PANIC")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data
func Finalise() {
	if nil != log {
		log.Flush()
	}
}

// PanicIfError - log the caller location and error then panic
//
// only for failures of the underlying database, where continuing
// would leave stored slots inconsistent
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	s := fmt.Sprintf("%s failed with error: %v", message, err)
	if _, file, line, ok := runtime.Caller(1); ok {
		critical(fmt.Sprintf("(%q:%d) %s", file, line, s))
	} else {
		critical(s)
	}
	time.Sleep(100 * time.Millisecond) // to allow logging output
	panic(s)
}

// falls back to stdout before Initialise
func critical(message string) {
	if nil == log {
		fmt.Printf("*** %s\n", message)
		return
	}
	log.Critical(message)
	log.Flush()
}

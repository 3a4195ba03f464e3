// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package util - file system path helpers for configuration loading
package util

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/reviewd/fault"
)

// EnsureAbsolute - ensure the path is absolute
// if not, prepend the directory to make absolute path
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// EnsureFileExists - check if file exists
func EnsureFileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}

// EnsurePlainName - join a plain file name to its directory
//
// names containing a path separator are rejected
func EnsurePlainName(directory string, name string) (string, error) {
	switch filepath.Dir(name) {
	case "", ".":
		if "" == directory {
			return name, nil
		}
		return EnsureAbsolute(directory, name), nil
	default:
		return "", fault.ErrNotPlainName
	}
}

// MakeDirectories - make each directory absolute below base and
// create any that do not already exist
func MakeDirectories(base string, directories ...*string) error {
	for _, d := range directories {
		*d = EnsureAbsolute(base, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return err
		}
	}
	return nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// the reviewd configuration is a Lua chunk returning one table whose
// keys are the gluamapper tags of the options structure.  The base
// libraries are open, so os.getenv can supply secrets and arg[1] (the
// configuration file's directory) can anchor relative paths.
//
//	local M = {}
//	M.data_directory = arg[1] .. "/data"
//	M.chain = "local"
//	return M
package configuration

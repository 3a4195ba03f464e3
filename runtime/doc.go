// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package runtime - a single node ledger that executes program transactions
//
// each transaction runs under one lock inside one storage transaction:
// the slots it names are loaded, the program instruction is run and
// then every writable slot together with the transaction record is
// committed, or nothing is if any step fails
package runtime

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Review ledger daemon
//
// This program hosts the review program on a leveldb backed ledger
// and accepts signed transactions from clients over TLS JSON RPC.
package main

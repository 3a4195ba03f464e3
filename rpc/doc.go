// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - this is to setup and handle all of the incoming JSON RPC requests
// from clients requiring reviewd services
//
// standard golang RPC services can be used on the client side to
// access these services:
//
//	Node.Info            chain, mode, programs and counters
//	Transaction.Submit   execute a packed signed transaction
//	Transaction.Status   whether a transaction id was executed
//	Slot.Get             raw slot with its decoded record
//	Review.Comments      a review and a page of its comments
//	Account.Fund         credit lamports (testing chains only)
package rpc

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transaction - signed requests to run a program instruction
//
// packed message:
//
//	program ++ count(u32) ++ [ key ++ flags ] ++ data(u32 count ++ bytes) ++ nonce(u64)
//
// flags: bit 0 = signer, bit 1 = writable
//
// packed transaction:
//
//	message ++ count(u32) ++ [ 64 byte signature ]
//
// signatures are in the order the signer accounts appear and each
// signs the packed message; the transaction id is SHA3-256(message)
package transaction

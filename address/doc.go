// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package address - derive slot addresses from namespace seeds
//
// A derived address is:
//
//	SHA-256(seed[0] ++ … ++ seed[n-1] ++ bump ++ program ++ "ProgramDerivedAddress")
//
// where bump is the first value from 255 downwards that makes the
// result fall off the ed25519 curve.  An off-curve address has no
// private key, so only the program holding the seeds can authorise
// writes to it.
//
// Namespaces used by the review program:
//
//	review  = owner ++ title
//	counter = review ++ "comment"
//	comment = review ++ big endian uint64 comment id
package address

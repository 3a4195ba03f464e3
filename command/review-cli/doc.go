// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// review-cli builds, signs and submits review program transactions
// to a reviewd node and queries its slots
//
// the program id and signing key can be set by the REVIEW_PROGRAM
// and REVIEW_KEY environment variables instead of flags
package main

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - counting
//
// Claim and Initialise maintain the per-review comment counter record
// held in a slot buffer, the next comment id is the stored value.
//
// Counter is an in-memory atomic count used for runtime statistics
// and connection limits.
package counter

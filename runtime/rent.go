// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package runtime

// rent parameters
const (
	SlotStorageOverhead = 128
	LamportsPerByteYear = 3480
	ExemptionYears      = 2

	MaximumSlotSize = 10 * 1024 * 1024
)

// RentExemptMinimum - lamports needed to keep a slot of this size alive
func RentExemptMinimum(size int) uint64 {
	if size < 0 {
		size = 0
	}
	return uint64(SlotStorageOverhead+size) * LamportsPerByteYear * ExemptionYears
}

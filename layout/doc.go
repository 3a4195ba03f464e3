// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package layout - fixed binary encoding shared by instructions and
// stored records
//
// Notes:
// 1. u8             = single byte
// 2. bool           = single byte 0x00 or 0x01
// 3. u32, u64       = little endian, fixed width
// 4. string         = u32 byte count ++ UTF-8 bytes
// 5. address        = 32 raw bytes
// 6. fields are concatenated in declaration order, no padding
package layout

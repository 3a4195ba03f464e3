// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package state - binary layouts of the records kept in program slots
//
// Every record starts with a string discriminator and an initialised
// flag, the remaining fields follow in the order shown (see package
// layout for the field encodings):
//
// Review:
//
//	"review" ++ initialised ++ title ++ rating(u8) ++ description
//
// Comment counter (one per review):
//
//	"counter" ++ initialised ++ counter(u64)
//
// Comment:
//
//	"comment" ++ initialised ++ id(u64) ++ review ++ commenter ++ comment
//
// A freshly allocated slot is all zero bytes, which decodes as an empty
// discriminator with initialised false.  A buffer too short for the
// fixed part of a record decodes the same way.
package state

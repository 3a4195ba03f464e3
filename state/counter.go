// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package state

import (
	"github.com/bitmark-inc/reviewd/layout"
)

// CounterSize - the fixed encoded size of a comment counter
var CounterSize = layout.StringSize(CounterDiscriminator) + layout.BoolSize + layout.Uint64Size

// CommentCounter - next comment id for one review
type CommentCounter struct {
	Discriminator string `json:"discriminator"`
	IsInitialised bool   `json:"isInitialised"`
	Counter       uint64 `json:"counter"`
}

// UnpackCounter - decode a comment counter from the start of a slot buffer
func UnpackCounter(buffer []byte) (*CommentCounter, error) {
	r := layout.NewReader(buffer)
	h, ok, err := readHeader(r, CounterDiscriminator)
	if !ok {
		if nil != err {
			return nil, err
		}
		return &CommentCounter{Discriminator: h.discriminator, IsInitialised: h.initialised}, nil
	}
	counter := &CommentCounter{
		Discriminator: h.discriminator,
		IsInitialised: h.initialised,
		Counter:       r.Uint64(),
	}
	if ok, err := body(h, r.Err()); !ok {
		if nil != err {
			return nil, err
		}
		return &CommentCounter{}, nil
	}
	return counter, nil
}

// Kind - the record discriminator
func (counter *CommentCounter) Kind() string {
	return counter.Discriminator
}

// Initialised - true once the record has been written
func (counter *CommentCounter) Initialised() bool {
	return counter.IsInitialised
}

// IsCounter - true if the layout is a comment counter
func (counter *CommentCounter) IsCounter() bool {
	return CounterDiscriminator == counter.Discriminator
}

// Size - encoded size of this record
func (counter *CommentCounter) Size() int {
	return layout.StringSize(counter.Discriminator) + layout.BoolSize + layout.Uint64Size
}

// Pack - encode into the start of a slot buffer
func (counter *CommentCounter) Pack(buffer []byte) error {
	packed := make([]byte, 0, counter.Size())
	packed = layout.AppendString(packed, counter.Discriminator)
	packed = layout.AppendBool(packed, counter.IsInitialised)
	packed = layout.AppendUint64(packed, counter.Counter)
	return put(buffer, packed)
}

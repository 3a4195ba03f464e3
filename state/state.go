// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package state

import (
	"github.com/bitmark-inc/reviewd/fault"
	"github.com/bitmark-inc/reviewd/layout"
)

// discriminators identifying the layout of each record
const (
	ReviewDiscriminator  = "review"
	CounterDiscriminator = "counter"
	CommentDiscriminator = "comment"
)

// Record - common interface of the stored records
type Record interface {
	Kind() string
	Initialised() bool
	Size() int
	Pack(buffer []byte) error
}

// Decode - select the layout from the discriminator and unpack
//
// a slot that has not been initialised returns fault.ErrNotFound
func Decode(buffer []byte) (Record, error) {
	r := layout.NewReader(buffer)
	discriminator := r.String()
	initialised := r.Bool()
	if nil != r.Err() || !initialised {
		return nil, fault.ErrNotFound
	}

	var (
		record Record
		err    error
	)
	switch discriminator {
	case ReviewDiscriminator:
		record, err = UnpackReview(buffer)
	case CounterDiscriminator:
		record, err = UnpackCounter(buffer)
	case CommentDiscriminator:
		record, err = UnpackComment(buffer)
	default:
		return nil, fault.ErrInvalidRecord
	}
	if nil != err {
		return nil, err
	}
	if !record.Initialised() {
		return nil, fault.ErrInvalidRecord
	}
	return record, nil
}

// write an encoded record over the start of a slot buffer
func put(buffer []byte, packed []byte) error {
	if len(packed) > len(buffer) {
		return fault.ErrPayloadTooLarge
	}
	copy(buffer, packed)
	return nil
}

// header - the leading discriminator and initialised flag of a record
type header struct {
	discriminator string
	initialised   bool
}

// readHeader - decode the record header ahead of any other field
//
// the body should only be read when the result is true: a buffer too
// short for a header is an uninitialised slot, and an initialised
// header of another layout is returned as is so callers can reject it
// without trusting fields that belong to a different record type
func readHeader(r *layout.Reader, discriminator string) (header, bool, error) {
	h := header{
		discriminator: r.String(),
		initialised:   r.Bool(),
	}
	if err := r.Err(); nil != err {
		if undecodable(err) {
			return header{}, false, fault.ErrInvalidRecord
		}
		return header{}, false, nil
	}
	if h.initialised && discriminator != h.discriminator {
		return h, false, nil
	}
	return h, true, nil
}

// body - classify the error after reading the fields following a header
//
// an initialised record of the right type must decode in full, an
// uninitialised one that runs out of data was never written
func body(h header, err error) (bool, error) {
	if nil == err {
		return true, nil
	}
	if h.initialised || undecodable(err) {
		return false, fault.ErrInvalidRecord
	}
	return false, nil
}

// classify the error from a layout.Reader
//
// truncation means the slot was never written, anything else is corrupt
func undecodable(err error) bool {
	return layout.ErrTruncated != err
}

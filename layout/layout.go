// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package layout

import (
	"encoding/binary"
	"unicode/utf8"

	"github.com/bitmark-inc/reviewd/fault"
)

// byte sizes of the fixed width items
const (
	BoolSize    = 1
	Uint8Size   = 1
	Uint32Size  = 4
	Uint64Size  = 8
	AddressSize = 32
)

// decoding errors
var (
	ErrInvalidBool = fault.RecordError("invalid boolean value")
	ErrInvalidUTF8 = fault.RecordError("string is not valid UTF-8")
	ErrTruncated   = fault.RecordError("truncated data")
)

// StringSize - number of bytes used by an encoded string
func StringSize(s string) int {
	return Uint32Size + len(s)
}

// AppendUint8 - append a single byte
func AppendUint8(buffer []byte, value uint8) []byte {
	return append(buffer, value)
}

// AppendBool - append a boolean as 0x00/0x01
func AppendBool(buffer []byte, value bool) []byte {
	if value {
		return append(buffer, 0x01)
	}
	return append(buffer, 0x00)
}

// AppendUint32 - append a little endian uint32
func AppendUint32(buffer []byte, value uint32) []byte {
	b := make([]byte, Uint32Size)
	binary.LittleEndian.PutUint32(b, value)
	return append(buffer, b...)
}

// AppendUint64 - append a little endian uint64
func AppendUint64(buffer []byte, value uint64) []byte {
	b := make([]byte, Uint64Size)
	binary.LittleEndian.PutUint64(b, value)
	return append(buffer, b...)
}

// AppendString - append a count prefixed string
func AppendString(buffer []byte, s string) []byte {
	buffer = AppendUint32(buffer, uint32(len(s)))
	return append(buffer, s...)
}

// AppendAddress - append the raw 32 bytes of an address
func AppendAddress(buffer []byte, address [AddressSize]byte) []byte {
	return append(buffer, address[:]...)
}

// Reader - sequential decoder over a byte slice
//
// the first error encountered is sticky, all later reads return zero
// values so a sequence of reads needs only one error check at the end
type Reader struct {
	buffer []byte
	n      int
	err    error
}

// NewReader - start decoding at the beginning of buffer
func NewReader(buffer []byte) *Reader {
	return &Reader{
		buffer: buffer,
	}
}

// Err - the first error encountered
func (r *Reader) Err() error {
	return r.err
}

// Offset - count of bytes consumed
func (r *Reader) Offset() int {
	return r.n
}

// Remaining - count of bytes not yet consumed
func (r *Reader) Remaining() int {
	return len(r.buffer) - r.n
}

// take the next count bytes
func (r *Reader) next(count int) []byte {
	if nil != r.err {
		return nil
	}
	if count < 0 || count > r.Remaining() {
		r.err = ErrTruncated
		return nil
	}
	b := r.buffer[r.n : r.n+count]
	r.n += count
	return b
}

// Uint8 - read a single byte
func (r *Reader) Uint8() uint8 {
	b := r.next(Uint8Size)
	if nil == b {
		return 0
	}
	return b[0]
}

// Bool - read a boolean, only 0x00 and 0x01 are accepted
func (r *Reader) Bool() bool {
	b := r.next(BoolSize)
	if nil == b {
		return false
	}
	switch b[0] {
	case 0x00:
		return false
	case 0x01:
		return true
	default:
		r.err = ErrInvalidBool
		return false
	}
}

// Uint32 - read a little endian uint32
func (r *Reader) Uint32() uint32 {
	b := r.next(Uint32Size)
	if nil == b {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// Uint64 - read a little endian uint64
func (r *Reader) Uint64() uint64 {
	b := r.next(Uint64Size)
	if nil == b {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

// String - read a count prefixed UTF-8 string
func (r *Reader) String() string {
	count := r.Uint32()
	if nil != r.err {
		return ""
	}
	if uint64(count) > uint64(r.Remaining()) {
		r.err = ErrTruncated
		return ""
	}
	b := r.next(int(count))
	if nil == b {
		return ""
	}
	if !utf8.Valid(b) {
		r.err = ErrInvalidUTF8
		return ""
	}
	return string(b)
}

// Address - read 32 raw bytes
func (r *Reader) Address() [AddressSize]byte {
	var address [AddressSize]byte
	b := r.next(AddressSize)
	if nil != b {
		copy(address[:], b)
	}
	return address
}

// Bytes - read count raw bytes, the result is a copy
func (r *Reader) Bytes(count int) []byte {
	b := r.next(count)
	if nil == b {
		return nil
	}
	return append(make([]byte, 0, count), b...)
}

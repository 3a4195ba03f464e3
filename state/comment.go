// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package state

import (
	"github.com/bitmark-inc/reviewd/account"
	"github.com/bitmark-inc/reviewd/layout"
)

// Comment - a numbered comment on a review
type Comment struct {
	Discriminator string          `json:"discriminator"`
	IsInitialised bool            `json:"isInitialised"`
	Id            uint64          `json:"id"`
	Review        account.Address `json:"review"`
	Commenter     account.Address `json:"commenter"`
	Comment       string          `json:"comment"`
}

// CommentSize - encoded size of a comment with this text
func CommentSize(comment string) int {
	return layout.StringSize(CommentDiscriminator) +
		layout.BoolSize +
		layout.Uint64Size +
		layout.AddressSize +
		layout.AddressSize +
		layout.StringSize(comment)
}

// UnpackComment - decode a comment from the start of a slot buffer
func UnpackComment(buffer []byte) (*Comment, error) {
	r := layout.NewReader(buffer)
	h, ok, err := readHeader(r, CommentDiscriminator)
	if !ok {
		if nil != err {
			return nil, err
		}
		return &Comment{Discriminator: h.discriminator, IsInitialised: h.initialised}, nil
	}
	comment := &Comment{
		Discriminator: h.discriminator,
		IsInitialised: h.initialised,
		Id:            r.Uint64(),
		Review:        account.Address(r.Address()),
		Commenter:     account.Address(r.Address()),
		Comment:       r.String(),
	}
	if ok, err := body(h, r.Err()); !ok {
		if nil != err {
			return nil, err
		}
		return &Comment{}, nil
	}
	return comment, nil
}

// Kind - the record discriminator
func (comment *Comment) Kind() string {
	return comment.Discriminator
}

// Initialised - true once the record has been written
func (comment *Comment) Initialised() bool {
	return comment.IsInitialised
}

// IsComment - true if the layout is a comment
func (comment *Comment) IsComment() bool {
	return CommentDiscriminator == comment.Discriminator
}

// Size - encoded size of this record
func (comment *Comment) Size() int {
	return layout.StringSize(comment.Discriminator) +
		layout.BoolSize +
		layout.Uint64Size +
		layout.AddressSize +
		layout.AddressSize +
		layout.StringSize(comment.Comment)
}

// Pack - encode into the start of a slot buffer
func (comment *Comment) Pack(buffer []byte) error {
	packed := make([]byte, 0, comment.Size())
	packed = layout.AppendString(packed, comment.Discriminator)
	packed = layout.AppendBool(packed, comment.IsInitialised)
	packed = layout.AppendUint64(packed, comment.Id)
	packed = layout.AppendAddress(packed, comment.Review)
	packed = layout.AppendAddress(packed, comment.Commenter)
	packed = layout.AppendString(packed, comment.Comment)
	return put(buffer, packed)
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package instruction - the command buffer passed to the review program
//
// the first byte selects the operation, the remaining bytes are the
// operation fields in layout encoding
package instruction

import (
	"github.com/bitmark-inc/reviewd/fault"
	"github.com/bitmark-inc/reviewd/layout"
)

// TagType - type code for instructions
type TagType uint8

// enumerate the possible instructions
// this is stored as the first byte of a packed instruction
const (
	CreateReviewTag TagType = iota
	UpdateReviewTag TagType = iota
	AddCommentTag   TagType = iota

	// this item must be last
	InvalidTag TagType = iota
)

// Packed - packed instruction bytes
type Packed []byte

// Instruction - generic instruction interface
type Instruction interface {
	Tag() TagType
	Pack() Packed
}

// CreateReview - add a new review under the signer's title
type CreateReview struct {
	Title       string `json:"title"`
	Rating      uint8  `json:"rating"`
	Description string `json:"description"`
}

// UpdateReview - replace rating and description of an existing review
type UpdateReview struct {
	Title       string `json:"title"`
	Rating      uint8  `json:"rating"`
	Description string `json:"description"`
}

// AddComment - append a comment to a review
type AddComment struct {
	Comment string `json:"comment"`
}

// Tag - instruction code
func (CreateReview) Tag() TagType { return CreateReviewTag }
func (UpdateReview) Tag() TagType { return UpdateReviewTag }
func (AddComment) Tag() TagType   { return AddCommentTag }

// String - name of the instruction
func (t TagType) String() string {
	switch t {
	case CreateReviewTag:
		return "CreateReview"
	case UpdateReviewTag:
		return "UpdateReview"
	case AddCommentTag:
		return "AddComment"
	default:
		return "Invalid"
	}
}

// Pack - encode a create review instruction
func (create CreateReview) Pack() Packed {
	buffer := []byte{byte(CreateReviewTag)}
	buffer = layout.AppendString(buffer, create.Title)
	buffer = layout.AppendUint8(buffer, create.Rating)
	buffer = layout.AppendString(buffer, create.Description)
	return buffer
}

// Pack - encode an update review instruction
func (update UpdateReview) Pack() Packed {
	buffer := []byte{byte(UpdateReviewTag)}
	buffer = layout.AppendString(buffer, update.Title)
	buffer = layout.AppendUint8(buffer, update.Rating)
	buffer = layout.AppendString(buffer, update.Description)
	return buffer
}

// Pack - encode an add comment instruction
func (add AddComment) Pack() Packed {
	buffer := []byte{byte(AddCommentTag)}
	buffer = layout.AppendString(buffer, add.Comment)
	return buffer
}

// Unpack - turn a byte slice into an instruction
//
// must cast result to correct type
//
// e.g.
//
//	switch op := result.(type) {
//	case *instruction.CreateReview:
func (record Packed) Unpack() (Instruction, error) {
	if 0 == len(record) {
		return nil, fault.ErrMalformedInstruction
	}

	r := layout.NewReader(record[1:])

	var op Instruction
	switch TagType(record[0]) {

	case CreateReviewTag:
		op = &CreateReview{
			Title:       r.String(),
			Rating:      r.Uint8(),
			Description: r.String(),
		}

	case UpdateReviewTag:
		op = &UpdateReview{
			Title:       r.String(),
			Rating:      r.Uint8(),
			Description: r.String(),
		}

	case AddCommentTag:
		op = &AddComment{
			Comment: r.String(),
		}

	default:
		return nil, fault.ErrMalformedInstruction
	}

	if nil != r.Err() || 0 != r.Remaining() {
		return nil, fault.ErrMalformedInstruction
	}
	return op, nil
}

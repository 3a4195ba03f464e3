// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package state

import (
	"github.com/bitmark-inc/reviewd/layout"
)

// review limits
const (
	MinimumRating = 1
	MaximumRating = 5

	// every review slot is allocated at this capacity so that an
	// update can grow the description without reallocating
	ReviewSlotSize = 1000
)

// Review - a rating and description written by an owner under a title
type Review struct {
	Discriminator string `json:"discriminator"`
	IsInitialised bool   `json:"isInitialised"`
	Title         string `json:"title"`
	Rating        uint8  `json:"rating"`
	Description   string `json:"description"`
}

// ReviewSize - encoded size of a review with these variable fields
func ReviewSize(title string, description string) int {
	return layout.StringSize(ReviewDiscriminator) +
		layout.BoolSize +
		layout.StringSize(title) +
		layout.Uint8Size +
		layout.StringSize(description)
}

// ValidRating - check the rating range
func ValidRating(rating uint8) bool {
	return rating >= MinimumRating && rating <= MaximumRating
}

// UnpackReview - decode a review from the start of a slot buffer
//
// an initialised record of another type decodes to its header only
func UnpackReview(buffer []byte) (*Review, error) {
	r := layout.NewReader(buffer)
	h, ok, err := readHeader(r, ReviewDiscriminator)
	if !ok {
		if nil != err {
			return nil, err
		}
		return &Review{Discriminator: h.discriminator, IsInitialised: h.initialised}, nil
	}
	review := &Review{
		Discriminator: h.discriminator,
		IsInitialised: h.initialised,
		Title:         r.String(),
		Rating:        r.Uint8(),
		Description:   r.String(),
	}
	if ok, err := body(h, r.Err()); !ok {
		if nil != err {
			return nil, err
		}
		return &Review{}, nil
	}
	return review, nil
}

// Kind - the record discriminator
func (review *Review) Kind() string {
	return review.Discriminator
}

// Initialised - true once the record has been written
func (review *Review) Initialised() bool {
	return review.IsInitialised
}

// IsReview - true if the layout is a review
func (review *Review) IsReview() bool {
	return ReviewDiscriminator == review.Discriminator
}

// Matches - compare the mutable content against a request
func (review *Review) Matches(title string, rating uint8, description string) bool {
	return review.Title == title && review.Rating == rating && review.Description == description
}

// Size - encoded size of this record
func (review *Review) Size() int {
	return layout.StringSize(review.Discriminator) +
		layout.BoolSize +
		layout.StringSize(review.Title) +
		layout.Uint8Size +
		layout.StringSize(review.Description)
}

// Pack - encode into the start of a slot buffer
func (review *Review) Pack(buffer []byte) error {
	packed := make([]byte, 0, review.Size())
	packed = layout.AppendString(packed, review.Discriminator)
	packed = layout.AppendBool(packed, review.IsInitialised)
	packed = layout.AppendString(packed, review.Title)
	packed = layout.AppendUint8(packed, review.Rating)
	packed = layout.AppendString(packed, review.Description)
	return put(buffer, packed)
}

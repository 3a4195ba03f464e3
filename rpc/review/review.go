// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package review

import (
	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/reviewd/account"
	"github.com/bitmark-inc/reviewd/address"
	"github.com/bitmark-inc/reviewd/counter"
	"github.com/bitmark-inc/reviewd/fault"
	"github.com/bitmark-inc/reviewd/ledger"
	"github.com/bitmark-inc/reviewd/rpc/ratelimit"
	"github.com/bitmark-inc/reviewd/state"
)

const (
	rateLimitReview = 200
	rateBurstReview = 100

	maximumComments = 100
)

// Reader - committed slot access
type Reader interface {
	Slot(account.Address) (*ledger.Slot, error)
}

// Review - an RPC entry for reading reviews and their comments
type Review struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Reader  Reader
}

// New - create the review RPC service
func New(log *logger.L, reader Reader) *Review {
	return &Review{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitReview, rateBurstReview),
		Reader:  reader,
	}
}

// CommentsArguments - a page of comments on a review
type CommentsArguments struct {
	Review account.Address `json:"review"`
	Start  uint64          `json:"start,string"`
	Count  int             `json:"count"`
}

// CommentsReply - the comments found and where the next page starts
type CommentsReply struct {
	Review    *state.Review    `json:"review"`
	Total     uint64           `json:"total,string"`
	Comments  []*state.Comment `json:"comments"`
	NextStart uint64           `json:"nextStart,string"`
}

// Comments - read a review and a page of its comments in id order
//
// the program is taken from the owner of the review slot
func (r *Review) Comments(arguments *CommentsArguments, reply *CommentsReply) error {

	if err := ratelimit.LimitN(r.Limiter, arguments.Count, maximumComments); nil != err {
		return err
	}

	if nil == r.Reader {
		return fault.ErrNotInitialised
	}

	reviewSlot, err := r.Reader.Slot(arguments.Review)
	if nil != err {
		return err
	}
	if !reviewSlot.IsAllocated() {
		return fault.ErrNotFound
	}
	review, err := state.UnpackReview(reviewSlot.Data)
	if nil != err {
		return err
	}
	if !review.IsInitialised || !review.IsReview() {
		return fault.ErrNotFound
	}

	program := reviewSlot.Owner
	counterAddress, _, err := address.Counter(program, arguments.Review)
	if nil != err {
		return err
	}
	counterSlot, err := r.Reader.Slot(counterAddress)
	if nil != err {
		return err
	}

	// a review whose counter was never created has no comments
	total, err := counter.Peek(counterSlot.Data)
	if fault.ErrNotFound == err {
		total = 0
	} else if nil != err {
		return err
	}

	reply.Review = review
	reply.Total = total
	reply.Comments = make([]*state.Comment, 0, arguments.Count)

	id := arguments.Start
	for ; id < total && len(reply.Comments) < arguments.Count; id += 1 {
		commentAddress, _, err := address.Comment(program, arguments.Review, id)
		if nil != err {
			return err
		}
		slot, err := r.Reader.Slot(commentAddress)
		if nil != err {
			return err
		}
		comment, err := state.UnpackComment(slot.Data)
		if nil != err {
			return err
		}

		// skip ids with no stored comment
		if !comment.IsInitialised || !comment.IsComment() {
			r.Log.Debugf("review: %s  comment: %d  missing", arguments.Review, id)
			continue
		}
		reply.Comments = append(reply.Comments, comment)
	}
	reply.NextStart = id

	return nil
}

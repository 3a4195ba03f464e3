// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/reviewd/account"
	"github.com/bitmark-inc/reviewd/rpc/review"
)

// GetComments - read a review with a page of its comments
func (client *Client) GetComments(address account.Address, start uint64, count int) (*review.CommentsReply, error) {

	commentsArgs := review.CommentsArguments{
		Review: address,
		Start:  start,
		Count:  count,
	}

	client.printJson("Comments Request", commentsArgs)

	var reply review.CommentsReply
	err := client.client.Call("Review.Comments", commentsArgs, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Comments Reply", reply)

	return &reply, nil
}

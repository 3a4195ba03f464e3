// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/reviewd/address"
	"github.com/bitmark-inc/reviewd/command/review-cli/rpccalls"
	"github.com/bitmark-inc/reviewd/counter"
	"github.com/bitmark-inc/reviewd/fault"
	"github.com/bitmark-inc/reviewd/transaction"
)

func runComment(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	program, err := checkProgram(m.program)
	if nil != err {
		return err
	}

	key, err := checkKey(m.key)
	if nil != err {
		return err
	}

	review, err := checkReview(program, c.String("review"), c.String("owner"), c.String("title"))
	if nil != err {
		return err
	}

	comment, err := checkComment(c.String("comment"))
	if nil != err {
		return err
	}

	nonce := checkNonce(c.Uint64("nonce"))

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	// the next comment id is held in the review's counter slot
	counterAddress, _, err := address.Counter(program, review)
	if nil != err {
		return err
	}
	counterSlot, err := client.GetSlot(counterAddress)
	if nil != err {
		return err
	}
	if "" == counterSlot.Kind {
		return fault.ErrNotFound
	}
	id, err := counter.Peek(counterSlot.Data)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "review: %s  comment id: %d  nonce: %d\n", review, id, nonce)
	}

	tx, err := transaction.AddComment(program, key.Address(), review, id, comment, nonce)
	if nil != err {
		return err
	}

	response, err := client.Submit(tx, key)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

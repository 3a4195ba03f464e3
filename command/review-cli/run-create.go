// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/reviewd/account"
	"github.com/bitmark-inc/reviewd/command/review-cli/rpccalls"
	"github.com/bitmark-inc/reviewd/transaction"
)

type reviewBuilder func(program account.Address, owner account.Address, title string, rating uint8, description string, nonce uint64) (*transaction.Transaction, error)

func runCreate(c *cli.Context) error {
	return submitReview(c, transaction.CreateReview)
}

func runUpdate(c *cli.Context) error {
	return submitReview(c, transaction.UpdateReview)
}

// create and update take the same arguments and differ only in the
// instruction built
func submitReview(c *cli.Context, build reviewBuilder) error {

	m := c.App.Metadata["config"].(*metadata)

	program, err := checkProgram(m.program)
	if nil != err {
		return err
	}

	key, err := checkKey(m.key)
	if nil != err {
		return err
	}

	title, err := checkTitle(c.String("title"))
	if nil != err {
		return err
	}

	rating, err := checkRating(c.Uint("rating"))
	if nil != err {
		return err
	}

	description, err := checkDescription(c.String("description"))
	if nil != err {
		return err
	}

	nonce := checkNonce(c.Uint64("nonce"))

	if m.verbose {
		fmt.Fprintf(m.e, "title: %q  rating: %d  nonce: %d\n", title, rating, nonce)
	}

	tx, err := build(program, key.Address(), title, rating, description, nonce)
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Submit(tx, key)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

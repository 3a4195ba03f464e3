// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/reviewd/account"
	"github.com/bitmark-inc/reviewd/address"
)

type derived struct {
	Program account.Address  `json:"program"`
	Owner   account.Address  `json:"owner"`
	Title   string           `json:"title"`
	Review  account.Address  `json:"review"`
	Counter account.Address  `json:"counter"`
	Comment *account.Address `json:"comment,omitempty"`
	Id      *uint64          `json:"id,omitempty"`
}

func runDerive(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	program, err := checkProgram(m.program)
	if nil != err {
		return err
	}

	owner, err := checkAddressOrKey(c.String("owner"), m.key)
	if nil != err {
		return err
	}

	title, err := checkTitle(c.String("title"))
	if nil != err {
		return err
	}

	var id *uint64
	if c.IsSet("id") {
		n := c.Uint64("id")
		id = &n
	}

	result, err := derive(program, owner, title, id)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s  title: %q\n", owner, title)
	}

	return printJson(m.w, result)
}

// a nil id leaves the comment address out
func derive(program account.Address, owner account.Address, title string, id *uint64) (*derived, error) {

	review, _, err := address.Review(program, owner, title)
	if nil != err {
		return nil, err
	}

	counter, _, err := address.Counter(program, review)
	if nil != err {
		return nil, err
	}

	result := &derived{
		Program: program,
		Owner:   owner,
		Title:   title,
		Review:  review,
		Counter: counter,
	}

	if nil != id {
		comment, _, err := address.Comment(program, review, *id)
		if nil != err {
			return nil, err
		}
		result.Comment = &comment
		result.Id = id
	}

	return result, nil
}

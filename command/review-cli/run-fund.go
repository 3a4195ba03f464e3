// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/reviewd/command/review-cli/rpccalls"
)

func runFund(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	target, err := checkAddressOrKey(c.String("address"), m.key)
	if nil != err {
		return err
	}

	lamports, err := checkLamports(c.Uint64("lamports"))
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Fund(target, lamports)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

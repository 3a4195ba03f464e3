// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/reviewd/account"
	"github.com/bitmark-inc/reviewd/command/review-cli/rpccalls"
)

func runSlot(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	s := c.String("address")
	if "" == s {
		return ErrRequiredAddress
	}
	target, err := account.AddressFromBase58(s)
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetSlot(target)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

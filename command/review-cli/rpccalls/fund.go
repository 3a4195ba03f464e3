// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/reviewd/account"
	rpcaccount "github.com/bitmark-inc/reviewd/rpc/account"
)

// Fund - credit lamports to an address on a testing chain
func (client *Client) Fund(address account.Address, lamports uint64) (*rpcaccount.FundReply, error) {

	fundArgs := rpcaccount.FundArguments{
		Address:  address,
		Lamports: lamports,
	}

	client.printJson("Fund Request", fundArgs)

	var reply rpcaccount.FundReply
	err := client.client.Call("Account.Fund", fundArgs, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Fund Reply", reply)

	return &reply, nil
}

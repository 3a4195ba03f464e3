// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"encoding/hex"

	"github.com/bitmark-inc/reviewd/account"
	rpctransaction "github.com/bitmark-inc/reviewd/rpc/transaction"
	"github.com/bitmark-inc/reviewd/transaction"
)

// Submit - sign a transaction and send it for execution
func (client *Client) Submit(tx *transaction.Transaction, keys ...*account.PrivateKey) (*rpctransaction.SubmitReply, error) {

	err := tx.Sign(keys...)
	if nil != err {
		return nil, err
	}

	client.printJson("Transaction", tx)

	submitArgs := rpctransaction.SubmitArguments{
		Packed: hex.EncodeToString(tx.Pack()),
	}

	client.printJson("Submit Request", submitArgs)

	var reply rpctransaction.SubmitReply
	err = client.client.Call("Transaction.Submit", submitArgs, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Submit Reply", reply)

	return &reply, nil
}

// GetTransactionStatus - perform a status request
func (client *Client) GetTransactionStatus(txId transaction.Id) (*rpctransaction.StatusReply, error) {

	statusArgs := rpctransaction.StatusArguments{
		TxId: txId,
	}

	client.printJson("Status Request", statusArgs)

	var reply rpctransaction.StatusReply
	err := client.client.Call("Transaction.Status", statusArgs, &reply)
	if err != nil {
		return nil, err
	}

	client.printJson("Status Reply", reply)

	return &reply, nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"encoding/json"

	"github.com/bitmark-inc/reviewd/account"
	"github.com/bitmark-inc/reviewd/rpc/slot"
)

// SlotReply - a slot as returned by Slot.Get, the record is left
// undecoded since its type depends on Kind
type SlotReply struct {
	Address  account.Address `json:"address"`
	Owner    account.Address `json:"owner"`
	Lamports uint64          `json:"lamports,string"`
	Data     []byte          `json:"data"`
	Kind     string          `json:"kind"`
	Record   json.RawMessage `json:"record,omitempty"`
}

// GetSlot - read one slot
func (client *Client) GetSlot(address account.Address) (*SlotReply, error) {

	slotArgs := slot.GetArguments{
		Address: address,
	}

	client.printJson("Slot Request", slotArgs)

	var reply SlotReply
	err := client.client.Call("Slot.Get", slotArgs, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Slot Reply", reply)

	return &reply, nil
}

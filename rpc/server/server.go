// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/reviewd/account"
	"github.com/bitmark-inc/reviewd/counter"
	"github.com/bitmark-inc/reviewd/ledger"
	"github.com/bitmark-inc/reviewd/mode"
	rpcaccount "github.com/bitmark-inc/reviewd/rpc/account"
	"github.com/bitmark-inc/reviewd/rpc/node"
	"github.com/bitmark-inc/reviewd/rpc/review"
	"github.com/bitmark-inc/reviewd/rpc/slot"
	rpctransaction "github.com/bitmark-inc/reviewd/rpc/transaction"
	"github.com/bitmark-inc/reviewd/storage"
	"github.com/bitmark-inc/reviewd/transaction"
)

// Runtime - the host runtime operations served over RPC
type Runtime interface {
	Programs() []account.Address
	Statistics() (uint64, uint64)
	Execute(*transaction.Transaction) (transaction.Id, error)
	Slot(account.Address) (*ledger.Slot, error)
	Fund(account.Address, uint64) (uint64, error)
}

// Create - register every RPC service over the runtime and storage pools
func Create(log *logger.L, version string, rt Runtime, rpcCount *counter.Counter) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(node.New(log, rt, storage.Pool.Slots, storage.Pool.Transactions, start, version, rpcCount))
	_ = server.Register(rpctransaction.New(log, rt, storage.Pool.Transactions))
	_ = server.Register(slot.New(log, rt))
	_ = server.Register(review.New(log, rt))
	_ = server.Register(rpcaccount.New(log, rt, mode.IsTesting))

	return server
}

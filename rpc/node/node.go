// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/reviewd/account"
	"github.com/bitmark-inc/reviewd/counter"
	"github.com/bitmark-inc/reviewd/fault"
	"github.com/bitmark-inc/reviewd/mode"
	"github.com/bitmark-inc/reviewd/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Runtime - the parts of the host runtime reported by Info
type Runtime interface {
	Programs() []account.Address
	Statistics() (uint64, uint64)
}

// Pool - a countable storage pool
type Pool interface {
	Count() int
}

// Node - type for RPC calls
type Node struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	Start        time.Time
	Version      string
	Runtime      Runtime
	Slots        Pool
	Transactions Pool
	counter      *counter.Counter
}

// New - create the node RPC service
func New(log *logger.L, rt Runtime, slots Pool, transactions Pool, start time.Time, version string, counter *counter.Counter) *Node {
	return &Node{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:        start,
		Version:      version,
		Runtime:      rt,
		Slots:        slots,
		Transactions: transactions,
		counter:      counter,
	}
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain               string            `json:"chain"`
	Mode                string            `json:"mode"`
	Programs            []account.Address `json:"programs"`
	RPCs                uint64            `json:"rpcs"`
	TransactionCounters Counters          `json:"transactionCounters"`
	Stored              Stored            `json:"stored"`
	Version             string            `json:"version"`
	Uptime              string            `json:"uptime"`
}

// Counters - transactions processed since start
type Counters struct {
	Executed uint64 `json:"executed"`
	Failed   uint64 `json:"failed"`
}

// Stored - items held in the database
type Stored struct {
	Slots        int `json:"slots"`
	Transactions int `json:"transactions"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	if nil == node.Runtime || nil == node.Slots || nil == node.Transactions {
		return fault.ErrNotInitialised
	}

	reply.Chain = mode.ChainName()
	reply.Mode = mode.String()
	reply.Programs = node.Runtime.Programs()
	reply.RPCs = node.counter.Uint64()
	reply.TransactionCounters.Executed, reply.TransactionCounters.Failed = node.Runtime.Statistics()
	reply.Stored.Slots = node.Slots.Count()
	reply.Stored.Transactions = node.Transactions.Count()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	return nil
}

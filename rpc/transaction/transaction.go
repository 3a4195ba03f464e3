// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"encoding/hex"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/reviewd/fault"
	"github.com/bitmark-inc/reviewd/rpc/ratelimit"
	txn "github.com/bitmark-inc/reviewd/transaction"
)

const (
	rateLimitTransaction = 200
	rateBurstTransaction = 100
)

// transaction states
const (
	StateExecuted = "executed"
	StateUnknown  = "unknown"
)

// Executor - runs signed transactions
type Executor interface {
	Execute(*txn.Transaction) (txn.Id, error)
}

// Pool - the store of executed transactions
type Pool interface {
	Has([]byte) bool
}

// Transaction - an RPC entry for transaction related functions
type Transaction struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Executor Executor
	Pool     Pool
}

// New - create the transaction RPC service
func New(log *logger.L, executor Executor, pool Pool) *Transaction {
	return &Transaction{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitTransaction, rateBurstTransaction),
		Executor: executor,
		Pool:     pool,
	}
}

// ---

// SubmitArguments - a signed transaction as hex of its packed bytes
type SubmitArguments struct {
	Packed string `json:"packed"`
}

// SubmitReply - result of submitting a transaction
type SubmitReply struct {
	TxId txn.Id `json:"txId"`
}

// Submit - decode and execute a transaction
func (t *Transaction) Submit(arguments *SubmitArguments, reply *SubmitReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	if nil == arguments || "" == arguments.Packed {
		return fault.ErrMissingParameters
	}
	if len(arguments.Packed) > 2*txn.MaximumPackedSize {
		return fault.ErrTransactionTooLarge
	}

	packed, err := hex.DecodeString(arguments.Packed)
	if nil != err {
		return fault.ErrNotTransactionPack
	}

	tx, err := txn.Packed(packed).Unpack()
	if nil != err {
		return err
	}

	t.Log.Debugf("submit: %s", tx.Id())

	id, err := t.Executor.Execute(tx)
	if nil != err {
		t.Log.Infof("submit: %s  error: %s", id, err)
		return err
	}

	reply.TxId = id
	return nil
}

// ---

// StatusArguments - arguments for status RPC request
type StatusArguments struct {
	TxId txn.Id `json:"txId"`
}

// StatusReply - results from status RPC
type StatusReply struct {
	Status string `json:"status"`
}

// Status - query transaction status
func (t *Transaction) Status(arguments *StatusArguments, reply *StatusReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	if nil == t.Pool {
		return fault.ErrNotInitialised
	}

	if t.Pool.Has(arguments.TxId[:]) {
		reply.Status = StateExecuted
	} else {
		reply.Status = StateUnknown
	}
	return nil
}

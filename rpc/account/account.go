// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/reviewd/account"
	"github.com/bitmark-inc/reviewd/fault"
	"github.com/bitmark-inc/reviewd/rpc/ratelimit"
)

const (
	rateLimitAccount = 10
	rateBurstAccount = 10

	// MaximumFund - the most lamports one request can credit
	MaximumFund = 1000000000000
)

// Funder - credits lamports to an address
type Funder interface {
	Fund(account.Address, uint64) (uint64, error)
}

// Account - an RPC entry for account funding
type Account struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Funder    Funder
	IsTesting func() bool
}

// New - create the account RPC service
func New(log *logger.L, funder Funder, isTestingFunc func() bool) *Account {
	return &Account{
		Log:       log,
		Limiter:   rate.NewLimiter(rateLimitAccount, rateBurstAccount),
		Funder:    funder,
		IsTesting: isTestingFunc,
	}
}

// FundArguments - the address to credit
type FundArguments struct {
	Address  account.Address `json:"address"`
	Lamports uint64          `json:"lamports,string"`
}

// FundReply - the balance after funding
type FundReply struct {
	Balance uint64 `json:"balance,string"`
}

// Fund - credit lamports, only on a testing chain
func (a *Account) Fund(arguments *FundArguments, reply *FundReply) error {

	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}

	if !a.IsTesting() {
		return fault.ErrNotAvailableOnLiveChain
	}

	if 0 == arguments.Lamports || arguments.Lamports > MaximumFund {
		return fault.ErrInvalidCount
	}

	balance, err := a.Funder.Fund(arguments.Address, arguments.Lamports)
	if nil != err {
		return err
	}

	a.Log.Infof("fund: %s  lamports: %d", arguments.Address, arguments.Lamports)
	reply.Balance = balance
	return nil
}

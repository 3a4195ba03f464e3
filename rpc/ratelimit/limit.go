// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/reviewd/fault"
)

// Limit - hold an RPC call until its handler's limiter has a token
func Limit(limiter *rate.Limiter) error {
	return wait(limiter.Reserve())
}

// LimitN - hold a paged call (e.g. a comment listing) until the
// limiter covers every item asked for
//
// a count outside 1..maximumCount still costs one token and is then
// rejected with ErrInvalidCount
func LimitN(limiter *rate.Limiter, count int, maximumCount int) error {
	if count <= 0 || count > maximumCount {
		if err := wait(limiter.Reserve()); nil != err {
			return err
		}
		return fault.ErrInvalidCount
	}
	return wait(limiter.ReserveN(time.Now(), count))
}

// a reservation the limiter can never satisfy (count above burst)
// fails at once rather than sleeping
func wait(r *rate.Reservation) error {
	if !r.OK() {
		return fault.ErrRateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}

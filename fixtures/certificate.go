// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"time"

	"github.com/bitmark-inc/certgen"
)

// Certificate - a fresh self-signed PEM certificate and key for localhost
func Certificate() (string, string) {
	cert, key, err := certgen.NewTLSCertPair("reviewd testing", time.Now().Add(time.Hour), false, []string{"127.0.0.1"})
	if nil != err {
		panic(err)
	}
	return string(cert), string(key)
}

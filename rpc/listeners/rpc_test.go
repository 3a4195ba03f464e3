// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"fmt"
	"math/rand"
	"net/rpc"
	"net/rpc/jsonrpc"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/reviewd/counter"
	"github.com/bitmark-inc/reviewd/fault"
	"github.com/bitmark-inc/reviewd/fixtures"
	"github.com/bitmark-inc/reviewd/rpc/certificate"
	"github.com/bitmark-inc/reviewd/rpc/listeners"
)

type Add struct{}
type AddArg struct {
	A, B int
}

func (a Add) Add(arg *AddArg, reply *int) error {
	*reply = arg.A + arg.B
	return nil
}

func serverTLS(t *testing.T) *tls.Config {
	cer, key := fixtures.Certificate()
	tlsConfig, _, err := certificate.Get(logger.New(fixtures.LogCategory), "test", cer, key)
	if nil != err {
		t.Fatalf("get certificate with error: %s", err)
	}
	return tlsConfig
}

func startListener(t *testing.T, maximum uint64, count *counter.Counter) (listeners.Listener, string) {
	port := rand.Intn(30000) + 30000
	listen := fmt.Sprintf("127.0.0.1:%d", port)
	con := listeners.RPCConfiguration{
		MaximumConnections: maximum,
		Listen:             []string{listen},
	}

	s := rpc.NewServer()
	err := s.Register(Add{})
	if err != nil {
		t.Fatalf("register with error: %s", err)
	}

	l, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), count, s, serverTLS(t))
	assert.Nil(t, err, "wrong NewRPC")

	err = l.Serve()
	assert.Nil(t, err, "wrong Serve")
	return l, listen
}

func TestRpcListenerServe(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	count := counter.Counter(0)
	l, listen := startListener(t, 5, &count)
	defer l.Close()

	c, err := tls.Dial("tcp", listen, &tls.Config{InsecureSkipVerify: true})
	if err != nil {
		t.Fatalf("dial with error: %s", err)
	}

	arg := AddArg{
		A: 2,
		B: 5,
	}
	var reply int

	client := jsonrpc.NewClient(c)
	defer client.Close()

	err = client.Call("Add.Add", &arg, &reply)
	assert.Nil(t, err, "wrong client Call")
	assert.Equal(t, arg.A+arg.B, reply, "wrong result")
	assert.Equal(t, uint64(1), count.Uint64(), "wrong connection count")
}

func TestRpcListenerConnectionLimit(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	count := counter.Counter(0)
	l, listen := startListener(t, 1, &count)
	defer l.Close()

	first, err := tls.Dial("tcp", listen, &tls.Config{InsecureSkipVerify: true})
	if err != nil {
		t.Fatalf("dial with error: %s", err)
	}
	defer first.Close()

	second, err := tls.Dial("tcp", listen, &tls.Config{InsecureSkipVerify: true})
	if nil == err {
		var reply int
		client := jsonrpc.NewClient(second)
		err = client.Call("Add.Add", &AddArg{A: 1, B: 1}, &reply)
		_ = client.Close()
	}
	assert.NotNil(t, err, "connection over limit was served")
	assert.Equal(t, uint64(1), count.Uint64(), "wrong connection count")
}

func TestRpcListenerWhenMaxConnectionCountTooSmall(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	con := listeners.RPCConfiguration{
		MaximumConnections: 0,
		Listen:             []string{"127.0.0.1:2130"},
	}

	count := counter.Counter(0)
	_, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), &count, rpc.NewServer(), &tls.Config{})
	assert.Equal(t, fault.ErrMissingParameters, err, "wrong error")
}

func TestRpcListenerWhenEmptyListen(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	con := listeners.RPCConfiguration{
		MaximumConnections: 1,
		Listen:             []string{},
	}

	count := counter.Counter(0)
	_, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), &count, rpc.NewServer(), &tls.Config{})
	assert.Equal(t, fault.ErrMissingParameters, err, "wrong error")
}

func TestRpcListenerWhenInvalidListen(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	count := counter.Counter(0)
	for _, listen := range []string{"localhost:2130", "1.2.3:2130", "2130", ""} {
		con := listeners.RPCConfiguration{
			MaximumConnections: 1,
			Listen:             []string{listen},
		}
		_, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), &count, rpc.NewServer(), &tls.Config{})
		assert.Equal(t, fault.ErrInvalidIPAddress, err, "listen: %q", listen)
	}
}

func TestRpcListenerAcceptsWildcardAndIPv6(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	count := counter.Counter(0)
	con := listeners.RPCConfiguration{
		MaximumConnections: 1,
		Listen:             []string{"*:2130", "[::1]:2130"},
	}
	_, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), &count, rpc.NewServer(), &tls.Config{})
	assert.Nil(t, err, "wrong NewRPC")
}

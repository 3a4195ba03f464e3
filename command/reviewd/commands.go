// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/bitmark-inc/reviewd/account"
	"github.com/bitmark-inc/reviewd/rpc/certificate"
)

const (
	rpcCertificateFilename = "rpc.crt"
	rpcKeyFilename         = "rpc.key"
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
//
// returns false when the daemon should start
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateFilename)
		keyFilename := getFilenameWithDirectory(arguments, rpcKeyFilename)

		var extraHosts []string
		if len(arguments) > 1 {
			extraHosts = arguments[1:]
		}

		err := certificate.MakeSelfSigned("reviewd RPC", certificateFilename, keyFilename, false, extraHosts)
		if nil != err {
			fmt.Printf("cannot generate RPC key: %q and certificate: %q\n", keyFilename, certificateFilename)
			fmt.Printf("error generating RPC key/certificate: %s\n", err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", keyFilename, certificateFilename)

	case "gen-program-id", "program":
		key, err := account.NewPrivateKey()
		if nil != err {
			fmt.Printf("error generating program id: %s\n", err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("program_id: %s\n", key.Address())

	case "start", "run":
		return false // continue processing

	case "version", "v":
		fmt.Printf("%s\n", version)

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %v\n", command)
		}

		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)       - display this message\n\n")
		fmt.Printf("  version                    (v)       - display version sting\n\n")

		fmt.Printf("  gen-rpc-cert [DIR [IPs...]] (rpc)    - create private key in: %q\n", "DIR/"+rpcKeyFilename)
		fmt.Printf("                                         and certificate in: %q\n", "DIR/"+rpcCertificateFilename)
		fmt.Printf("                                         extra IPs are added to the certificate\n")
		fmt.Printf("\n")

		fmt.Printf("  gen-program-id             (program) - print a fresh random program id\n")
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)     - just run the program, same as no arguments\n")
		fmt.Printf("                                         for convienience when passing script arguments\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}
	return true
}

// first argument is a directory, or the current directory if absent
func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) > 0 && "" != arguments[0] {
		dir = arguments[0]
	}
	if fileInfo, err := os.Stat(dir); nil != err || !fileInfo.IsDir() {
		exitwithstatus.Message("error: %q is not a directory", dir)
	}
	return filepath.Join(dir, name)
}

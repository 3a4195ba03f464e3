// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect string
	program string
	key     string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "review-cli"
	app.Usage = "create, update and comment on reviews held by a reviewd node"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  "127.0.0.1:2130",
			Usage:  " reviewd host/IP and port, `HOST:PORT`",
			EnvVar: "REVIEW_CONNECT",
		},
		cli.StringFlag{
			Name:   "program, P",
			Value:  "",
			Usage:  " review program id `BASE58`",
			EnvVar: "REVIEW_PROGRAM",
		},
		cli.StringFlag{
			Name:   "key, k",
			Value:  "",
			Usage:  " signing private key `BASE58`",
			EnvVar: "REVIEW_KEY",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a new key pair",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runGenerate,
		},
		{
			Name:      "derive",
			Usage:     "show the review, counter and comment addresses for an owner and title",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " review owner `ADDRESS` [default from key]",
				},
				cli.StringFlag{
					Name:  "title, t",
					Value: "",
					Usage: "*review title `STRING`",
				},
				cli.Uint64Flag{
					Name:  "id, i",
					Value: 0,
					Usage: " comment `ID`",
				},
			},
			Action: runDerive,
		},
		{
			Name:      "fund",
			Usage:     "credit lamports to an address (testing chains only)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: " `ADDRESS` to fund [default from key]",
				},
				cli.Uint64Flag{
					Name:  "lamports, l",
					Value: 0,
					Usage: "*number of `LAMPORTS`",
				},
			},
			Action: runFund,
		},
		{
			Name:      "create",
			Usage:     "create a new review",
			ArgsUsage: "\n   (* = required)",
			Flags:     reviewFlags(),
			Action:    runCreate,
		},
		{
			Name:      "update",
			Usage:     "change the rating and description of an existing review",
			ArgsUsage: "\n   (* = required)",
			Flags:     reviewFlags(),
			Action:    runUpdate,
		},
		{
			Name:      "comment",
			Usage:     "add a comment to a review",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "review, r",
					Value: "",
					Usage: "+review `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "+review owner `ADDRESS` (with title)",
				},
				cli.StringFlag{
					Name:  "title, t",
					Value: "",
					Usage: "+review title `STRING` (with owner)",
				},
				cli.StringFlag{
					Name:  "comment, m",
					Value: "",
					Usage: "*comment text `STRING`",
				},
				cli.Uint64Flag{
					Name:  "nonce, n",
					Value: 0,
					Usage: " transaction `NONCE` [default from clock]",
				},
			},
			Action: runComment,
		},
		{
			Name:      "show",
			Usage:     "show a review and a page of its comments",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "review, r",
					Value: "",
					Usage: "+review `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "+review owner `ADDRESS` (with title)",
				},
				cli.StringFlag{
					Name:  "title, t",
					Value: "",
					Usage: "+review title `STRING` (with owner)",
				},
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " first comment `ID`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum `COUNT` of comments",
				},
			},
			Action: runShow,
		},
		{
			Name:      "slot",
			Usage:     "show the raw contents of a slot",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "*slot `ADDRESS`",
				},
			},
			Action: runSlot,
		},
		{
			Name:      "status",
			Usage:     "display the status of a transaction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "txid, t",
					Value: "",
					Usage: "*transaction id to check status `TXID`",
				},
			},
			Action: runStatus,
		},
		{
			Name:   "info",
			Usage:  "display reviewd status",
			Action: runInfo,
		},
		{
			Name:   "version",
			Usage:  "display review-cli version",
			Action: runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {

		m := &metadata{
			connect: c.GlobalString("connect"),
			program: c.GlobalString("program"),
			key:     c.GlobalString("key"),
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}

		if m.verbose {
			fmt.Fprintf(m.e, "connect: %s\n", m.connect)
		}

		c.App.Metadata["config"] = m
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func reviewFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "title, t",
			Value: "",
			Usage: "*review title `STRING`",
		},
		cli.UintFlag{
			Name:  "rating, r",
			Value: 0,
			Usage: "*rating `1..5`",
		},
		cli.StringFlag{
			Name:  "description, d",
			Value: "",
			Usage: "*review description `STRING`",
		},
		cli.Uint64Flag{
			Name:  "nonce, n",
			Value: 0,
			Usage: " transaction `NONCE` [default from clock]",
		},
	}
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}

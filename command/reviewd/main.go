// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"reflect"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/reviewd/fault"
	"github.com/bitmark-inc/reviewd/mode"
	"github.com/bitmark-inc/reviewd/processor"
	"github.com/bitmark-inc/reviewd/rpc"
	"github.com/bitmark-inc/reviewd/runtime"
	"github.com/bitmark-inc/reviewd/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]", program)
	}

	// these commands don't require the configuration and
	// process data needed for initial setup
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	masterConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != masterConfiguration.PidFile {
		lockFile, err := os.OpenFile(masterConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, masterConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(masterConfiguration.PidFile)
	}

	// panic logging channel
	err = fault.Initialise()
	if nil != err {
		exitwithstatus.Message("%s: fault initialise error: %s", program, err)
	}
	defer fault.Finalise()

	// set the initial system mode - before any background tasks are started
	err = mode.Initialise(masterConfiguration.Chain)
	if nil != err {
		log.Criticalf("mode initialise error: %s", err)
		exitwithstatus.Message("%s: mode initialise error: %s", program, err)
	}
	defer mode.Finalise()

	log.Infof("chain: %s  test mode: %v", mode.ChainName(), mode.IsTesting())

	// start the data storage
	log.Info("initialise storage")
	err = storage.Initialise(masterConfiguration.Database.Name, storage.ReadWrite)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("%s: storage initialise error: %s", program, err)
	}
	defer storage.Finalise()

	// host runtime with the review program
	rt := runtime.New(logger.New("runtime"))
	rt.Register(processor.New(logger.New("processor"), masterConfiguration.Program(), rt))
	log.Infof("program id: %s", masterConfiguration.Program())

	// start the RPC server
	log.Info("initialise rpc")
	err = rpc.Initialise(&masterConfiguration.ClientRPC, version, rt)
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("%s: rpc initialise error: %s", program, err)
	}
	defer rpc.Finalise()

	// watch the configuration file
	channels := watcherChannel{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
	watcher, err := newFileWatcher(configurationFile, logger.New(watcherLoggerPrefix), channels)
	if nil != err {
		log.Criticalf("file watcher error: %s", err)
		exitwithstatus.Message("%s: file watcher setup failed with error: %s", program, err)
	}
	defer watcher.Close()
	if err := watcher.Start(); nil != err {
		exitwithstatus.Message("%s: file watcher start failed with error: %s", program, err)
	}

	mode.Set(mode.Normal)

	// wait for CTRL-C or configuration removal before shutting down
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

wait_loop:
	for {
		select {
		case sig := <-ch:
			log.Infof("received signal: %v", sig)
			if len(options["quiet"]) == 0 {
				fmt.Printf("\nreceived signal: %v\n", sig)
			}
			break wait_loop

		case <-channels.remove:
			log.Criticalf("configuration file: %q removed", configurationFile)
			break wait_loop

		case <-channels.change:
			checkConfiguration(log, configurationFile, masterConfiguration)
		}
	}

	mode.Set(mode.Stopped)

	if len(options["quiet"]) == 0 {
		fmt.Printf("\nshutting down...\n")
	}
}

// re-read a changed configuration and report settings that need a restart
func checkConfiguration(log *logger.L, configurationFile string, current *Configuration) {
	updated, err := getConfiguration(configurationFile)
	if nil != err {
		log.Errorf("changed configuration is invalid: %s", err)
		return
	}
	if !reflect.DeepEqual(current, updated) {
		log.Warn("configuration changed, restart to apply")
		return
	}
	log.Info("configuration unchanged")
}

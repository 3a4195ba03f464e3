// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/reviewd/fault"
	"github.com/bitmark-inc/reviewd/util"
)

const (
	watcherLoggerPrefix = "file-watcher"
)

// configuration file events
type watcherChannel struct {
	change chan struct{}
	remove chan struct{}
}

type fileWatcher struct {
	log      *logger.L
	channels watcherChannel
	watcher  *fsnotify.Watcher
	filePath string
}

// watch the configuration file for changes and removal
func newFileWatcher(targetFile string, log *logger.L, channels watcherChannel) (*fileWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		log.Errorf("parse file %s error: %s", targetFile, err)
		return nil, err
	}

	if !util.EnsureFileExists(filePath) {
		return nil, fault.ErrConfigurationFileMissing
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	return &fileWatcher{
		log:      log,
		channels: channels,
		watcher:  watcher,
		filePath: filePath,
	}, nil
}

// Start - begin delivering events, stops after a removal or Close
func (w *fileWatcher) Start() error {
	err := w.watcher.Add(w.filePath)
	if nil != err {
		w.log.Errorf("watcher add error: %s, abort", err)
		return err
	}

	go func() {
		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				w.log.Debugf("file event: %v", event)

				if isRemove(event) {
					w.log.Errorf("file %s removed, stop", w.filePath)
					w.sendEvent(w.channels.remove, "remove")
					return
				}

				if filepath.Base(event.Name) != filepath.Base(w.filePath) {
					w.log.Debugf("event for: %s does not match: %s, discard", event.Name, w.filePath)
					continue
				}

				if isChange(event) {
					w.sendEvent(w.channels.change, "change")
				}

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				w.log.Warnf("watcher error: %s", err)
			}
		}
	}()

	return nil
}

// Close - stop watching
func (w *fileWatcher) Close() {
	_ = w.watcher.Close()
}

func (w *fileWatcher) sendEvent(ch chan<- struct{}, name string) {
	select {
	case ch <- struct{}{}:
	default:
		w.log.Infof("event channel %s full, discard event", name)
	}
}

func isRemove(event fsnotify.Event) bool {
	return event.Name == "" || event.Op&fsnotify.Remove == fsnotify.Remove
}

func isChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Chmod == fsnotify.Chmod
}

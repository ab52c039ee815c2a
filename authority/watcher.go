// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package authority

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// StartWatcher - begin watching the key file
//
// the directory is watched so that editors replacing the file by
// rename are also seen
func (a *Authority) StartWatcher() error {
	if "" == a.filePath {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		a.log.Errorf("new watcher with error: %s", err)
		return err
	}
	err = watcher.Add(filepath.Dir(a.filePath))
	if nil != err {
		a.log.Errorf("watcher add error: %s", err)
		watcher.Close()
		return err
	}
	a.watcher = watcher
	return nil
}

// Run - background process reloading the key on change
func (a *Authority) Run(args interface{}, shutdown <-chan struct{}) {
	log := a.log

	log.Info("starting…")

	if nil == a.watcher {
		<-shutdown
		log.Info("finished")
		return
	}

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case event, ok := <-a.watcher.Events:
			if !ok {
				break loop
			}
			if filepath.Base(event.Name) != filepath.Base(a.filePath) {
				continue
			}
			log.Debugf("file event: %v", event)

			if watcherEventFileRemove(event) {
				log.Warnf("key file: %q removed, keeping current key", a.filePath)
				continue
			}
			if watcherEventFileChange(event) {
				err := a.Reload()
				if nil != err {
					log.Errorf("reload: %q  error: %s", a.filePath, err)
				}
			}

		case err, ok := <-a.watcher.Errors:
			if !ok {
				break loop
			}
			log.Errorf("watcher error: %s", err)
		}
	}

	a.watcher.Close()
	log.Info("finished")
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create
}

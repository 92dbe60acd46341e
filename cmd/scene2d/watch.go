// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"cogentcore.org/scene2d/base/errors"
	"cogentcore.org/scene2d/config"
	"github.com/fsnotify/fsnotify"
	"github.com/muesli/termenv"
)

// Watch prints the laid out tree of the scene document at path, and
// again every time the document changes, until the context is done.
func Watch(ctx context.Context, cfg *config.Config, path string, out io.Writer) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	// Editors often replace the file, so watch its directory.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}
	o := termenv.NewOutput(out)
	show := func() {
		w, err := load(cfg, path)
		if errors.Log(err) != nil {
			return
		}
		defer w.Close()
		fmt.Fprintf(o, "%s %s\n", o.String(path).Underline(), time.Now().Format(time.TimeOnly))
		writeTree(o, w)
	}
	show()
	return watchLoop(ctx, watcher.Events, watcher.Errors, path, time.Duration(cfg.Debounce), show)
}

// watchLoop calls changed once writes to path have been quiet for
// the debounce delay.
func watchLoop(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error, path string, delay time.Duration, changed func()) error {
	path = filepath.Clean(path)
	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			slog.Debug("scene document changed", "path", ev.Name, "op", ev.Op)
			if timer == nil {
				timer = time.NewTimer(delay)
			} else {
				timer.Reset(delay)
			}
			fire = timer.C
		case err, ok := <-errs:
			if !ok {
				return nil
			}
			errors.Log(err)
		case <-fire:
			fire = nil
			changed()
		}
	}
}

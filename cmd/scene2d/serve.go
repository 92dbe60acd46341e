// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"time"

	"cogentcore.org/scene2d/base/errors"
	"cogentcore.org/scene2d/config"
	"cogentcore.org/scene2d/inspect"
	"golang.org/x/sync/errgroup"
)

// framePeriod is the time between frames of a served scene.
const framePeriod = time.Second / 10

// Serve runs frames of the scene document at path and serves their
// snapshots on the configured inspector address until the context
// is done.
func Serve(ctx context.Context, cfg *config.Config, path string) error {
	w, err := load(cfg, path)
	if err != nil {
		return err
	}
	defer w.Close()
	srv := inspect.NewServer(w)
	if err := srv.Publish(); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.ListenAndServe(ctx, cfg.Inspector)
	})
	g.Go(func() error {
		tick := time.NewTicker(framePeriod)
		defer tick.Stop()
		last := time.Now()
		for {
			select {
			case <-ctx.Done():
				return nil
			case now := <-tick.C:
				errors.Log(w.Frame(ctx, float32(now.Sub(last).Seconds())))
				last = now
				errors.Log(srv.Publish())
			}
		}
	})
	return g.Wait()
}

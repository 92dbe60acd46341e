// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"cogentcore.org/scene2d/config"
	"cogentcore.org/scene2d/math32"
)

// Hit prints the entities of the scene document at path under the
// point (x, y), topmost first.
func Hit(cfg *config.Config, path string, x, y float32, out io.Writer) error {
	w, err := load(cfg, path)
	if err != nil {
		return err
	}
	defer w.Close()
	hits := w.HitTestAll(math32.Vec2(x, y))
	if len(hits) == 0 {
		fmt.Fprintln(out, "no hit")
		return nil
	}
	for _, e := range hits {
		fmt.Fprintln(out, w.Name(e))
	}
	return nil
}

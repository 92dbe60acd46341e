// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"cogentcore.org/scene2d/config"
	"cogentcore.org/scene2d/scene"
	"github.com/muesli/termenv"
)

// Layout prints the laid out tree of the scene document at path.
func Layout(cfg *config.Config, path string, out io.Writer) error {
	w, err := load(cfg, path)
	if err != nil {
		return err
	}
	defer w.Close()
	writeTree(termenv.NewOutput(out), w)
	return nil
}

// writeTree prints one line per entity, indented by depth, with its
// size and local and world positions. Hidden entities are faint.
func writeTree(o *termenv.Output, w *scene.World) {
	for _, ni := range w.Snapshot() {
		name := o.String(w.Name(ni.Entity)).Bold().Foreground(o.Color("12"))
		if ni.Hidden {
			name = name.Faint()
		}
		kind := ni.Kind
		if kind == "" {
			kind = "-"
		}
		line := fmt.Sprintf("%s%s %s %s at (%g, %g) world (%g, %g)",
			strings.Repeat("  ", ni.Depth), name, o.String(kind).Foreground(o.Color("3")),
			o.String(fmt.Sprintf("%gx%g", ni.Width, ni.Height)).Foreground(o.Color("2")),
			ni.X, ni.Y, ni.WorldX, ni.WorldY)
		if ni.Text != "" {
			line += fmt.Sprintf(" %q", ni.Text)
		}
		fmt.Fprintln(o, line)
	}
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"cogentcore.org/scene2d/config"
	"cogentcore.org/scene2d/scene"
	"cogentcore.org/scene2d/sceneio"
	"cogentcore.org/scene2d/text"
)

// newMeasurer returns the label measurer selected by the config.
func newMeasurer(cfg *config.Config) (text.Measurer, error) {
	switch cfg.Font {
	case "", "basic":
		return text.NewBasic(), nil
	case "latin-modern":
		return text.NewLatinModern(cfg.FontSize)
	}
	return nil, fmt.Errorf("unknown font %q", cfg.Font)
}

// newWorld returns an empty world set up from the config.
func newWorld(cfg *config.Config) (*scene.World, error) {
	m, err := newMeasurer(cfg)
	if err != nil {
		return nil, err
	}
	origin, err := cfg.RootOrigin()
	if err != nil {
		return nil, err
	}
	return scene.New(scene.Options{
		Measurer: m,
		Origin:   origin,
		Width:    cfg.Viewport.Width,
		Height:   cfg.Viewport.Height,
	}), nil
}

// load builds the scene document at path into a new world and runs
// one frame so that it is laid out.
func load(cfg *config.Config, path string) (*scene.World, error) {
	doc, err := sceneio.Load(path)
	if err != nil {
		return nil, err
	}
	w, err := newWorld(cfg)
	if err != nil {
		return nil, err
	}
	if _, err := sceneio.Build(w, doc); err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Frame(context.Background(), 0); err != nil {
		w.Close()
		return nil, err
	}
	return w, nil
}

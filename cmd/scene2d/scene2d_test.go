// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cogentcore.org/scene2d/config"
	"cogentcore.org/scene2d/ecs"
	"cogentcore.org/scene2d/layout"
	"cogentcore.org/scene2d/math32"
	"cogentcore.org/scene2d/scene"
	"github.com/fsnotify/fsnotify"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sceneFile = filepath.Join("..", "..", "sceneio", "testdata", "scene.toml")

func TestLayout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Layout(config.Default(), sceneFile, &buf))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "root Stack 200x73"), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "  title View 35x13"), lines[1])
	assert.Contains(t, lines[1], `"Title"`)
	assert.True(t, strings.HasPrefix(lines[3], "    a View"), lines[3])
}

func TestHit(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Hit(config.Default(), sceneFile, 10, -10, &buf))
	assert.Equal(t, "title\nroot\n", buf.String())

	buf.Reset()
	require.NoError(t, Hit(config.Default(), sceneFile, 500, 500, &buf))
	assert.Equal(t, "no hit\n", buf.String())
}

func TestRootCmd(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "none.toml"), "-q", "hit", sceneFile, "10", "-10"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "title\nroot\n", out.String())

	cmd = newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "none.toml"), "hit", sceneFile, "ten", "0"})
	assert.ErrorContains(t, cmd.Execute(), "hit: x")
}

func TestWatchLoop(t *testing.T) {
	events := make(chan fsnotify.Event)
	errs := make(chan error)
	calls := make(chan struct{}, 4)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() {
		done <- watchLoop(ctx, events, errs, "dir/scene.toml", 20*time.Millisecond, func() { calls <- struct{}{} })
	}()

	events <- fsnotify.Event{Name: "dir/other.toml", Op: fsnotify.Write}
	for range 3 {
		events <- fsnotify.Event{Name: "dir/scene.toml", Op: fsnotify.Write}
	}
	events <- fsnotify.Event{Name: "dir/scene.toml", Op: fsnotify.Chmod}
	select {
	case <-calls:
	case <-time.After(time.Second):
		t.Fatal("no reload")
	}
	select {
	case <-calls:
		t.Fatal("writes were not debounced")
	case <-time.After(60 * time.Millisecond):
	}

	cancel()
	assert.NoError(t, <-done)
}

type testCanvas struct {
	w, h  int
	cells map[[2]int]rune
}

func (c *testCanvas) Size() (int, int) { return c.w, c.h }

func (c *testCanvas) SetContent(x, y int, r rune, combining []rune, style tcell.Style) {
	c.cells[[2]int{x, y}] = r
}

func (c *testCanvas) row(y int) string {
	var sb strings.Builder
	for x := range c.w {
		r, ok := c.cells[[2]int{x, y}]
		if !ok {
			r = ' '
		}
		sb.WriteRune(r)
	}
	return strings.TrimRight(sb.String(), " ")
}

func TestDraw(t *testing.T) {
	w := scene.New(scene.Options{Width: 20, Height: 5})
	defer w.Close()
	_, err := w.Spawn(ecs.Nil, scene.Named("box"), scene.Element(layout.NewView(10, 4)))
	require.NoError(t, err)
	require.NoError(t, w.Frame(context.Background(), 0))

	c := &testCanvas{w: 20, h: 6, cells: map[[2]int]rune{}}
	draw(c, w, "ready")
	assert.Equal(t, "┌box─────┐", c.row(0))
	assert.Equal(t, "│        │", c.row(1))
	assert.Equal(t, "└────────┘", c.row(3))
	assert.Equal(t, "", c.row(4))
	assert.Equal(t, "ready", c.row(5))

	w.SetHidden(w.Tree.Roots()[0], true)
	require.NoError(t, w.Frame(context.Background(), 0))
	c = &testCanvas{w: 20, h: 6, cells: map[[2]int]rune{}}
	draw(c, w, "")
	assert.Equal(t, "", c.row(0))
}

func TestCells(t *testing.T) {
	w := scene.New(scene.Options{Width: 20, Height: 10, Origin: layout.OriginCenter})
	defer w.Close()
	assert.Equal(t, math32.Vec2(-9.5, 4.5), toScene(w, 0, 0))
	for _, cell := range [][2]int{{0, 0}, {7, 3}, {19, 9}} {
		x, y := toCell(w, toScene(w, cell[0], cell[1]))
		assert.Equal(t, cell, [2]int{x, y})
	}
}

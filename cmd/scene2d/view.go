// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"cogentcore.org/scene2d/config"
	"cogentcore.org/scene2d/ecs"
	"cogentcore.org/scene2d/layout"
	"cogentcore.org/scene2d/math32"
	"cogentcore.org/scene2d/scene"
	"github.com/gdamore/tcell/v2"
)

// canvas is the part of [tcell.Screen] the renderer draws on.
type canvas interface {
	Size() (width, height int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

var palette = []tcell.Color{
	tcell.ColorSteelBlue, tcell.ColorSeaGreen, tcell.ColorGoldenrod,
	tcell.ColorIndianRed, tcell.ColorMediumPurple, tcell.ColorTeal,
}

// View draws the scene document at path in the terminal, one cell per
// scene unit. The viewport follows the terminal size. Clicking an
// entity shows its name; q or Escape quits.
func View(cfg *config.Config, path string) error {
	w, err := load(cfg, path)
	if err != nil {
		return err
	}
	defer w.Close()
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	status := path
	for {
		screen.Clear()
		draw(screen, w, status)
		screen.Show()
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			cols, rows := ev.Size()
			w.SetViewport(float32(cols), float32(rows-1))
			if err := w.Frame(context.Background(), 0); err != nil {
				status = err.Error()
			}
			screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				return nil
			}
		case *tcell.EventMouse:
			if ev.Buttons()&tcell.Button1 == 0 {
				continue
			}
			x, y := ev.Position()
			pt := toScene(w, x, y)
			if e, ok := w.HitTest(pt); ok {
				status = fmt.Sprintf("%s at (%g, %g)", w.Name(e), pt.X, pt.Y)
			} else {
				status = fmt.Sprintf("nothing at (%g, %g)", pt.X, pt.Y)
			}
		case nil:
			return nil
		}
	}
}

// topLeft returns the scene point drawn at the top-left cell.
func topLeft(w *scene.World) math32.Vector2 {
	en := w.Engine()
	if en.RootOrigin() == layout.OriginCenter {
		vp := en.Viewport()
		return math32.Vec2(-vp.X/2, vp.Y/2)
	}
	return math32.Vector2{}
}

// toScene returns the scene point at the center of a cell.
func toScene(w *scene.World, x, y int) math32.Vector2 {
	tl := topLeft(w)
	return math32.Vec2(tl.X+float32(x)+0.5, tl.Y-float32(y)-0.5)
}

// toCell returns the cell containing a scene point.
func toCell(w *scene.World, p math32.Vector2) (int, int) {
	tl := topLeft(w)
	return int(math32.Floor(p.X - tl.X)), int(math32.Floor(tl.Y - p.Y))
}

// draw outlines every visible rectangle in drawing order with its name
// in the top edge, and writes the status on the last row.
func draw(c canvas, w *scene.World, status string) {
	cols, rows := c.Size()
	set := func(x, y int, r rune, st tcell.Style) {
		if x >= 0 && y >= 0 && x < cols && y < rows-1 {
			c.SetContent(x, y, r, nil, st)
		}
	}
	for i, e := range w.DrawOrder() {
		if w.IsHidden(e) {
			continue
		}
		b, ok := w.WorldBounds(e)
		if !ok || b.Max.X-b.Min.X < 1 || b.Max.Y-b.Min.Y < 1 {
			continue
		}
		st := tcell.StyleDefault.Foreground(palette[i%len(palette)])
		x0, y0 := toCell(w, math32.Vec2(b.Min.X, b.Max.Y))
		x1, y1 := toCell(w, math32.Vec2(b.Max.X, b.Min.Y))
		x1, y1 = x1-1, y1-1
		for x := x0; x <= x1; x++ {
			set(x, y0, '─', st)
			set(x, y1, '─', st)
		}
		for y := y0; y <= y1; y++ {
			set(x0, y, '│', st)
			set(x1, y, '│', st)
		}
		set(x0, y0, '┌', st)
		set(x1, y0, '┐', st)
		set(x0, y1, '└', st)
		set(x1, y1, '┘', st)
		label(set, x0+1, y0, x1-1, name(w, e), st.Bold(true))
	}
	label(func(x, y int, r rune, st tcell.Style) {
		if x < cols {
			c.SetContent(x, y, r, nil, st)
		}
	}, 0, rows-1, cols-1, status, tcell.StyleDefault.Reverse(true))
}

// name returns the label text of an entity, or its name.
func name(w *scene.World, e ecs.Entity) string {
	if l, ok := w.Labels.Get(e); ok && l.Text != "" {
		return l.Text
	}
	return w.Name(e)
}

// label writes s from x0 to at most x1 on row y.
func label(set func(x, y int, r rune, st tcell.Style), x0, y, x1 int, s string, st tcell.Style) {
	x := x0
	for _, r := range s {
		if x > x1 {
			return
		}
		set(x, y, r, st)
		x++
	}
}

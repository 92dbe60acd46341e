// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package text

import (
	"cogentcore.org/scene2d/base/eventlog"
	"cogentcore.org/scene2d/ecs"
	"cogentcore.org/scene2d/geom"
	"cogentcore.org/scene2d/layout"
)

// AutoSize writes the measured size of changed labels into their
// rectangles, and touches their layout elements so the layout tree
// containing them runs again.
type AutoSize struct {
	labels   *ecs.Store[Label]
	rects    *ecs.Store[geom.Rect2D]
	elements *ecs.Store[layout.Element]
	measurer Measurer

	reader eventlog.ReaderID
}

// NewAutoSize returns an auto-size system over the given stores,
// seeing label changes made from now on.
func NewAutoSize(labels *ecs.Store[Label], rects *ecs.Store[geom.Rect2D], elements *ecs.Store[layout.Element], m Measurer) *AutoSize {
	return &AutoSize{
		labels:   labels,
		rects:    rects,
		elements: elements,
		measurer: m,
		reader:   labels.Events().Register(),
	}
}

// Close unregisters the system from the label events.
func (a *AutoSize) Close() {
	a.labels.Events().Unregister(a.reader)
}

// Measurer returns the measurer in use.
func (a *AutoSize) Measurer() Measurer {
	return a.measurer
}

// Run measures the labels changed since the last run. It returns the
// number of rectangles resized.
func (a *AutoSize) Run() int {
	n := 0
	seen := map[ecs.Entity]struct{}{}
	for _, ev := range a.labels.Events().Read(a.reader) {
		if ev.Kind == ecs.Removed {
			continue
		}
		if _, ok := seen[ev.Entity]; ok {
			continue
		}
		seen[ev.Entity] = struct{}{}
		if a.resize(ev.Entity) {
			n++
		}
	}
	return n
}

func (a *AutoSize) resize(e ecs.Entity) bool {
	l, ok := a.labels.Get(e)
	if !ok {
		return false
	}
	size := Measure(a.measurer, l)
	r, ok := a.rects.Get(e)
	if !ok || (r.Width == size.X && r.Height == size.Y) {
		return false
	}
	a.rects.Update(e, func(r *geom.Rect2D) {
		r.Width, r.Height = size.X, size.Y
		r.Dirty = true
	})
	a.elements.Touch(e)
	return true
}

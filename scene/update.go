// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"slices"

	"cogentcore.org/scene2d/ecs"
)

// Updater calls a function periodically, counted in frames or in seconds.
type Updater struct {

	// Frames is the number of frames between calls, if positive.
	Frames int

	// Seconds is the time between calls, used when Frames is zero.
	Seconds float32

	// Func is called with the world and the entity owning the updater.
	Func func(w *World, e ecs.Entity)

	count   int
	elapsed float32
}

// Updates are the updaters of one entity.
type Updates []*Updater

// due advances the updater by one frame of dt seconds and returns
// whether it fires.
func (u *Updater) due(dt float32) bool {
	if u.Frames > 0 {
		u.count++
		if u.count >= u.Frames {
			u.count = 0
			return true
		}
		return false
	}
	if u.Seconds <= 0 {
		return true
	}
	u.elapsed += dt
	if u.elapsed >= u.Seconds {
		u.elapsed -= u.Seconds
		return true
	}
	return false
}

// EveryFrames calls fn every n frames for e.
func (w *World) EveryFrames(e ecs.Entity, n int, fn func(w *World, e ecs.Entity)) {
	w.addUpdater(e, &Updater{Frames: max(n, 1), Func: fn})
}

// EverySeconds calls fn every period seconds of frame time for e.
func (w *World) EverySeconds(e ecs.Entity, period float32, fn func(w *World, e ecs.Entity)) {
	w.addUpdater(e, &Updater{Seconds: period, Func: fn})
}

func (w *World) addUpdater(e ecs.Entity, u *Updater) {
	if !w.Updates.Update(e, func(us *Updates) { *us = append(*us, u) }) {
		w.Updates.Set(e, Updates{u})
	}
}

// runUpdates fires the due updaters in entity order.
func (w *World) runUpdates(dt float32) {
	es := w.Updates.Entities()
	slices.SortFunc(es, ecs.Compare)
	for _, e := range es {
		us, ok := w.Updates.Get(e)
		if !ok {
			continue
		}
		for _, u := range us {
			if u.due(dt) && u.Func != nil {
				u.Func(w, e)
			}
		}
	}
}

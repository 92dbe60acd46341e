// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import (
	"slices"

	"cogentcore.org/scene2d/base/eventlog"
	"cogentcore.org/scene2d/ecs"
	"cogentcore.org/scene2d/tree"
)

// Hidden marks an entity as hidden by the application.
type Hidden struct{}

// HiddenPropagate marks an entity as hidden because one of its
// ancestors is. It is maintained by the [HidePropagator] only.
type HiddenPropagate struct{}

// HidePropagator cascades [Hidden] markers down the graph as
// [HiddenPropagate] markers. It only revisits subtrees whose root
// had its marker added or removed, or was moved in the graph.
type HidePropagator struct {
	tree       *tree.Tree
	hidden     *ecs.Store[Hidden]
	propagated *ecs.Store[HiddenPropagate]

	hiddenReader eventlog.ReaderID
	treeReader   eventlog.ReaderID

	marked map[ecs.Entity]struct{}
}

// NewHidePropagator returns a hide propagator over the given stores.
func NewHidePropagator(t *tree.Tree, hidden *ecs.Store[Hidden], propagated *ecs.Store[HiddenPropagate]) *HidePropagator {
	return &HidePropagator{
		tree:         t,
		hidden:       hidden,
		propagated:   propagated,
		hiddenReader: hidden.Events().Register(),
		treeReader:   t.Events().Register(),
		marked:       map[ecs.Entity]struct{}{},
	}
}

// Close unregisters the propagator from the event logs.
func (h *HidePropagator) Close() {
	h.hidden.Events().Unregister(h.hiddenReader)
	h.tree.Events().Unregister(h.treeReader)
}

// IsHidden returns whether e is hidden, by itself or by an ancestor,
// as of the last run.
func (h *HidePropagator) IsHidden(e ecs.Entity) bool {
	return h.hidden.Has(e) || h.propagated.Has(e)
}

// Run drains the pending events and updates [HiddenPropagate] markers.
// It returns the number of markers added or removed.
func (h *HidePropagator) Run() int {
	clear(h.marked)
	for _, ev := range h.hidden.Events().Read(h.hiddenReader) {
		if ev.Kind != ecs.Modified {
			h.marked[ev.Entity] = struct{}{}
		}
	}
	for _, ev := range h.tree.Events().Read(h.treeReader) {
		h.marked[ev.Entity] = struct{}{}
	}
	if len(h.marked) == 0 {
		return 0
	}
	order := make([]ecs.Entity, 0, len(h.marked))
	for e := range h.marked {
		order = append(order, e)
	}
	slices.SortFunc(order, ecs.Compare)

	n := 0
	for _, e := range order {
		if !h.tree.Contains(e) || h.ancestorMarked(e) {
			continue
		}
		n += h.cascade(e)
	}
	return n
}

func (h *HidePropagator) ancestorMarked(e ecs.Entity) bool {
	parent, _ := h.tree.Parent(e)
	if parent.IsNil() {
		return false
	}
	return !h.tree.WalkUp(parent, func(cur ecs.Entity) bool {
		_, ok := h.marked[cur]
		return !ok
	})
}

// cascade recomputes the inherited state of e and all its descendants,
// parents first.
func (h *HidePropagator) cascade(e ecs.Entity) int {
	n := 0
	h.tree.WalkDownBreadth(e, func(cur ecs.Entity, depth int) bool {
		parent, _ := h.tree.Parent(cur)
		inherited := !parent.IsNil() && h.IsHidden(parent)
		has := h.propagated.Has(cur)
		switch {
		case inherited && !has:
			h.propagated.Set(cur, HiddenPropagate{})
			n++
		case !inherited && has:
			h.propagated.Remove(cur)
			n++
		}
		return tree.Continue
	})
	return n
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import (
	"log/slog"
	"slices"

	"cogentcore.org/scene2d/base/eventlog"
	"cogentcore.org/scene2d/ecs"
	"cogentcore.org/scene2d/tree"
)

// Propagator recomputes the world matrices of entities whose local
// transform or position in the graph changed since its last run.
// Each affected entity is computed exactly once per run, after its
// parent, and the whole subtree below it follows.
type Propagator struct {
	tree       *tree.Tree
	transforms *ecs.Store[Transform]

	localsReader eventlog.ReaderID
	treeReader   eventlog.ReaderID

	modified map[ecs.Entity]struct{}
}

// NewPropagator returns a propagator reading changes from the given
// transform store and graph. Only changes made after this call are seen.
func NewPropagator(t *tree.Tree, transforms *ecs.Store[Transform]) *Propagator {
	return &Propagator{
		tree:         t,
		transforms:   transforms,
		localsReader: transforms.Events().Register(),
		treeReader:   t.Events().Register(),
		modified:     map[ecs.Entity]struct{}{},
	}
}

// Close unregisters the propagator from the event logs.
func (p *Propagator) Close() {
	p.transforms.Events().Unregister(p.localsReader)
	p.tree.Events().Unregister(p.treeReader)
}

// Run drains the pending change events and updates world matrices.
// It returns the number of world matrices written.
func (p *Propagator) Run() int {
	clear(p.modified)
	for _, ev := range p.transforms.Events().Read(p.localsReader) {
		if ev.Kind != ecs.Removed {
			p.modified[ev.Entity] = struct{}{}
		}
	}
	for _, ev := range p.tree.Events().Read(p.treeReader) {
		switch ev.Kind {
		case tree.Add, tree.Update:
			if p.transforms.Has(ev.Entity) {
				p.modified[ev.Entity] = struct{}{}
			}
		case tree.Remove:
			delete(p.modified, ev.Entity)
		}
	}
	if len(p.modified) == 0 {
		return 0
	}

	order := make([]ecs.Entity, 0, len(p.modified))
	for e := range p.modified {
		order = append(order, e)
	}
	slices.SortFunc(order, ecs.Compare)

	n := 0
	for _, e := range order {
		if p.ancestorModified(e) {
			continue // computed within the ancestor's subtree
		}
		if p.update(e) {
			n++
		} else {
			slog.Debug("transform: entity without transform contributes identity", "entity", e)
		}
		for _, c := range p.tree.AllSortChildren(e) {
			if p.update(c) {
				n++
			}
		}
	}
	return n
}

// ancestorModified returns whether any ancestor of e is pending.
func (p *Propagator) ancestorModified(e ecs.Entity) bool {
	found := false
	p.tree.WalkUp(e, func(cur ecs.Entity) bool {
		if cur == e {
			return tree.Continue
		}
		if _, ok := p.modified[cur]; ok {
			found = true
			return tree.Break
		}
		return tree.Continue
	})
	return found
}

// update writes the world matrix of e from its parent's, which must
// already be current. A parent without a transform contributes the
// identity. It returns false if e has no transform.
func (p *Propagator) update(e ecs.Entity) bool {
	t := p.transforms.Ref(e)
	if t == nil {
		return false
	}
	local := t.LocalMatrix()
	parent, _ := p.tree.Parent(e)
	if !parent.IsNil() {
		if pt := p.transforms.Ref(parent); pt != nil {
			t.GlobalMatrix = pt.GlobalMatrix.Mul(&local)
			return true
		}
	}
	t.GlobalMatrix = local
	return true
}

// UpdateAll recomputes every world matrix from the roots down,
// regardless of pending changes, which it discards.
func (p *Propagator) UpdateAll() int {
	p.transforms.Events().Read(p.localsReader)
	p.tree.Events().Read(p.treeReader)
	n := 0
	for _, r := range p.tree.Roots() {
		if p.update(r) {
			n++
		}
		for _, c := range p.tree.AllSortChildren(r) {
			if p.update(c) {
				n++
			}
		}
	}
	return n
}

// Check verifies that every world matrix in the graph equals its
// parent's world matrix times its local matrix within tol, and returns
// the entities that do not.
func Check(t *tree.Tree, transforms *ecs.Store[Transform], tol float32) []ecs.Entity {
	var bad []ecs.Entity
	for _, r := range t.Roots() {
		t.WalkDown(r, func(e ecs.Entity) bool {
			tr, ok := transforms.Get(e)
			if !ok {
				return tree.Continue
			}
			want := tr.LocalMatrix()
			if parent, _ := t.Parent(e); !parent.IsNil() {
				if pt, ok := transforms.Get(parent); ok {
					want = pt.GlobalMatrix.Mul(&want)
				}
			}
			if !tr.GlobalMatrix.EqualTol(&want, tol) {
				bad = append(bad, e)
			}
			return tree.Continue
		})
	}
	return bad
}

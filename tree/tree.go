// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"errors"
	"log/slog"

	"cogentcore.org/scene2d/base/eventlog"
	"cogentcore.org/scene2d/ecs"
)

var (
	// ErrAlreadyInGraph is returned by [Tree.Add] for an entity that
	// already has a [Node].
	ErrAlreadyInGraph = errors.New("tree: entity is already in the graph")

	// ErrStaleReference is returned when an operation references an
	// entity that is dead or has no [Node].
	ErrStaleReference = errors.New("tree: stale entity reference")

	// ErrCycle is returned by [Tree.Update] when the new parent is the
	// entity itself or one of its descendants.
	ErrCycle = errors.New("tree: reparenting would create a cycle")
)

// Tree is the scene graph. It is the only mutator of the [Node]
// components it owns, so the topology is always a forest.
// Structural operations never panic on stale entities.
//
// Tree is not safe for concurrent mutation: topology writers must run
// with exclusive access, as the frame scheduler guarantees.
type Tree struct {
	world  *ecs.World
	nodes  *ecs.Store[Node]
	roots  []ecs.Entity
	events *eventlog.Log[Event]
}

// New returns a new empty tree whose nodes live in the given world.
func New(w *ecs.World) *Tree {
	return &Tree{
		world:  w,
		nodes:  ecs.NewStore[Node](w, "TreeNode"),
		events: eventlog.New[Event](),
	}
}

// World returns the world the tree allocates nodes in.
func (t *Tree) World() *ecs.World {
	return t.world
}

// Nodes returns the [Node] component store.
func (t *Tree) Nodes() *ecs.Store[Node] {
	return t.nodes
}

// Events returns the structural change log.
func (t *Tree) Events() *eventlog.Log[Event] {
	return t.events
}

// Roots returns a copy of the root entities in order.
func (t *Tree) Roots() []ecs.Entity {
	return append([]ecs.Entity(nil), t.roots...)
}

// Contains returns whether the entity has a [Node].
func (t *Tree) Contains(e ecs.Entity) bool {
	return t.nodes.Has(e)
}

// Add attaches a new [Node] to e, appending it to the parent's children,
// or to the roots if parent is [ecs.Nil].
func (t *Tree) Add(e, parent ecs.Entity) (ecs.Entity, error) {
	if t.nodes.Has(e) {
		return e, ErrAlreadyInGraph
	}
	if !t.world.Alive(e) {
		return e, ErrStaleReference
	}
	var pn *Node
	if !parent.IsNil() {
		if pn = t.nodes.Ref(parent); pn == nil {
			return e, ErrStaleReference
		}
	}
	t.nodes.Set(e, Node{Parent: parent})
	if pn != nil {
		pn.Children = append(pn.Children, e)
	} else {
		t.roots = append(t.roots, e)
	}
	t.events.Write(Event{Kind: Add, Parent: parent, Entity: e})
	return e, nil
}

// Update moves e to the end of the new parent's children, or to the
// roots if parent is [ecs.Nil], keeping e's own children untouched.
// It silently does nothing if e or parent has no [Node].
func (t *Tree) Update(e, parent ecs.Entity) (ecs.Entity, error) {
	n := t.nodes.Ref(e)
	if n == nil {
		return e, nil
	}
	var pn *Node
	if !parent.IsNil() {
		if pn = t.nodes.Ref(parent); pn == nil {
			return e, nil
		}
		if t.isAncestorOrSelf(e, parent) {
			return e, ErrCycle
		}
	}
	old := n.Parent
	t.detach(e, n)
	n.Parent = parent
	if pn != nil {
		pn.Children = append(pn.Children, e)
	} else {
		t.roots = append(t.roots, e)
	}
	t.events.Write(Event{Kind: Update, OldParent: old, Parent: parent, Entity: e})
	return e, nil
}

// Remove detaches e from its parent or the roots and records a single
// [Remove] event. Removing an orphan records nothing. With destroy, the whole subtree of e is collected
// breadth first and destroyed in one batch, and Remove returns
// [ecs.Nil]. Otherwise e stays alive as an orphan that is not
// re-attached to the roots, with its subtree intact, and is returned.
// An entity without a [Node] is returned unchanged.
func (t *Tree) Remove(e ecs.Entity, destroy bool) ecs.Entity {
	n := t.nodes.Ref(e)
	if n == nil {
		return e
	}
	parent := n.Parent
	if t.detach(e, n) {
		n.Parent = ecs.Nil
		t.events.Write(Event{Kind: Remove, Parent: parent, Entity: e})
	}
	if !destroy {
		return e
	}
	rm := append([]ecs.Entity{e}, t.AllSortChildren(e)...)
	if got := t.world.DestroyBatch(rm); got != len(rm) {
		slog.Warn("tree: destroyed subtree had stale entities", "entity", e, "collected", len(rm), "destroyed", got)
	}
	return ecs.Nil
}

// detach removes e from its parent's children or from the roots. It
// returns false if e was an orphan.
func (t *Tree) detach(e ecs.Entity, n *Node) bool {
	if !n.Parent.IsNil() {
		if pn := t.nodes.Ref(n.Parent); pn != nil {
			pn.removeChild(e)
		}
		return true
	}
	for i, r := range t.roots {
		if r == e {
			t.roots = append(t.roots[:i], t.roots[i+1:]...)
			return true
		}
	}
	return false
}

// isAncestorOrSelf returns whether anc is desc or one of its ancestors.
func (t *Tree) isAncestorOrSelf(anc, desc ecs.Entity) bool {
	found := false
	t.WalkUp(desc, func(cur ecs.Entity) bool {
		if cur == anc {
			found = true
			return Break
		}
		return Continue
	})
	return found
}

// Parent returns the parent of e and whether e is in the graph.
// The parent is [ecs.Nil] for roots and orphans.
func (t *Tree) Parent(e ecs.Entity) (ecs.Entity, bool) {
	n := t.nodes.Ref(e)
	if n == nil {
		return ecs.Nil, false
	}
	return n.Parent, true
}

// Children returns a copy of the children of e, or nil.
func (t *Tree) Children(e ecs.Entity) []ecs.Entity {
	n := t.nodes.Ref(e)
	if n == nil || len(n.Children) == 0 {
		return nil
	}
	return append([]ecs.Entity(nil), n.Children...)
}

// NumChildren returns the number of children of e.
func (t *Tree) NumChildren(e ecs.Entity) int {
	n := t.nodes.Ref(e)
	if n == nil {
		return 0
	}
	return len(n.Children)
}

// Child returns the i-th child of e, or [ecs.Nil] if out of range.
func (t *Tree) Child(e ecs.Entity, i int) ecs.Entity {
	n := t.nodes.Ref(e)
	if n == nil || i < 0 || i >= len(n.Children) {
		return ecs.Nil
	}
	return n.Children[i]
}

// IndexInParent returns the index of e within its parent's children,
// or within the roots, or -1 for orphans and stale entities.
func (t *Tree) IndexInParent(e ecs.Entity) int {
	n := t.nodes.Ref(e)
	if n == nil {
		return -1
	}
	if n.Parent.IsNil() {
		for i, r := range t.roots {
			if r == e {
				return i
			}
		}
		return -1
	}
	pn := t.nodes.Ref(n.Parent)
	if pn == nil {
		return -1
	}
	return pn.indexOf(e)
}

// Root returns the outermost ancestor of e (e itself for roots),
// or [ecs.Nil] if e is not in the graph.
func (t *Tree) Root(e ecs.Entity) ecs.Entity {
	if !t.nodes.Has(e) {
		return ecs.Nil
	}
	root := e
	t.WalkUp(e, func(cur ecs.Entity) bool {
		root = cur
		return Continue
	})
	return root
}

// Depth returns the number of ancestors of e, or -1 if e is not in the graph.
func (t *Tree) Depth(e ecs.Entity) int {
	if !t.nodes.Has(e) {
		return -1
	}
	d := -1
	t.WalkUp(e, func(ecs.Entity) bool {
		d++
		return Continue
	})
	return d
}

// AllChildren returns the set of all descendants of e, not including e.
func (t *Tree) AllChildren(e ecs.Entity) map[ecs.Entity]struct{} {
	set := map[ecs.Entity]struct{}{}
	t.addChildrenToSet(e, set)
	return set
}

func (t *Tree) addChildrenToSet(e ecs.Entity, set map[ecs.Entity]struct{}) {
	n := t.nodes.Ref(e)
	if n == nil {
		return
	}
	for _, c := range n.Children {
		set[c] = struct{}{}
		t.addChildrenToSet(c, set)
	}
}

// AllSortChildren returns all descendants of e, not including e,
// in breadth-first order, so every parent precedes its children.
func (t *Tree) AllSortChildren(e ecs.Entity) []ecs.Entity {
	var out []ecs.Entity
	t.WalkDownBreadth(e, func(cur ecs.Entity, depth int) bool {
		if depth > 0 {
			out = append(out, cur)
		}
		return Continue
	})
	return out
}

// Copyright (c) 2020, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
This file provides basic tree walking functions for iterative traversal
of the tree in up / down directions, and for more dynamic, piecemeal
processing with Next / Previous.
*/

package tree

import "cogentcore.org/scene2d/ecs"

const (
	// Continue = true can be returned from tree iteration functions to continue
	// processing down the tree, as compared to Break = false which stops this branch.
	Continue = true

	// Break = false can be returned from tree iteration functions to stop processing
	// this branch of the tree.
	Break = false
)

// WalkUp calls the given function on e and all of its parents.
// It stops walking if the function returns [Break] and keeps walking
// if it returns [Continue]. It returns whether walking was finished
// (false if it was aborted with [Break]).
func (t *Tree) WalkUp(e ecs.Entity, fun func(e ecs.Entity) bool) bool {
	cur := e
	for {
		if !fun(cur) { // false return means stop
			return false
		}
		n := t.nodes.Ref(cur)
		if n == nil || n.Parent.IsNil() || n.Parent == cur { // prevent loops
			return true
		}
		cur = n.Parent
	}
}

// WalkDown calls the given function on e and all of its descendants
// in depth-first pre-order. It stops walking the current branch of the
// tree if the function returns [Break] and keeps walking if it returns
// [Continue]. Children lists are read when a node is reached, so the
// function may modify nodes it has already visited.
func (t *Tree) WalkDown(e ecs.Entity, fun func(e ecs.Entity) bool) {
	if !t.nodes.Has(e) {
		return
	}
	stack := []ecs.Entity{e}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fun(cur) {
			continue
		}
		n := t.nodes.Ref(cur)
		if n == nil {
			continue
		}
		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, n.Children[i])
		}
	}
}

// WalkDownBreadth calls the given function on e and all of its
// descendants in breadth-first order, passing the depth relative to e.
// It stops walking the current branch of the tree if the function
// returns [Break] and keeps walking if it returns [Continue].
func (t *Tree) WalkDownBreadth(e ecs.Entity, fun func(e ecs.Entity, depth int) bool) {
	if !t.nodes.Has(e) {
		return
	}
	type item struct {
		e     ecs.Entity
		depth int
	}
	queue := []item{{e, 0}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if !fun(cur.e, cur.depth) { // false return means don't proceed
			continue
		}
		n := t.nodes.Ref(cur.e)
		if n == nil {
			continue
		}
		for _, c := range n.Children {
			queue = append(queue, item{c, cur.depth + 1})
		}
	}
}

// Last returns the last entity in depth-first order of the subtree at e.
func (t *Tree) Last(e ecs.Entity) ecs.Entity {
	for {
		nc := t.NumChildren(e)
		if nc == 0 {
			return e
		}
		e = t.Child(e, nc-1)
	}
}

// Previous returns the previous entity in depth-first order,
// or [ecs.Nil] if e is a root.
func (t *Tree) Previous(e ecs.Entity) ecs.Entity {
	parent, ok := t.Parent(e)
	if !ok || parent.IsNil() {
		return ecs.Nil
	}
	myidx := t.IndexInParent(e)
	if myidx > 0 {
		return t.Last(t.Child(parent, myidx-1))
	}
	return parent
}

// Next returns the next entity in depth-first order,
// or [ecs.Nil] if e is the last one of its root's subtree.
func (t *Tree) Next(e ecs.Entity) ecs.Entity {
	if t.NumChildren(e) == 0 {
		return t.NextSibling(e)
	}
	return t.Child(e, 0)
}

// NextSibling returns the next sibling of e, or of its closest ancestor
// that has one, or [ecs.Nil].
func (t *Tree) NextSibling(e ecs.Entity) ecs.Entity {
	parent, ok := t.Parent(e)
	if !ok || parent.IsNil() {
		return ecs.Nil
	}
	myidx := t.IndexInParent(e)
	if myidx >= 0 && myidx < t.NumChildren(parent)-1 {
		return t.Child(parent, myidx+1)
	}
	return t.NextSibling(parent)
}

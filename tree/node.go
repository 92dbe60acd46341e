// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tree provides the scene graph: parent/child topology between
// entities, kept in [Node] components and mutated only through the
// [Tree] API, which records every structural change in an event log.
package tree

import (
	"fmt"

	"cogentcore.org/scene2d/ecs"
)

// Node is the component attached to every entity in the graph.
// A node is either a root (Parent is [ecs.Nil] and it is listed in
// [Tree.Roots]), a child listed in exactly one parent's Children,
// or an orphan detached by [Tree.Remove] without destroying it.
type Node struct {

	// Parent is the parent entity, or [ecs.Nil].
	Parent ecs.Entity

	// Children are the child entities in traversal (z) order.
	Children []ecs.Entity
}

// indexOf returns the index of e in the children, or -1.
func (n *Node) indexOf(e ecs.Entity) int {
	for i, c := range n.Children {
		if c == e {
			return i
		}
	}
	return -1
}

// removeChild deletes e from the children, preserving order.
func (n *Node) removeChild(e ecs.Entity) {
	if i := n.indexOf(e); i >= 0 {
		n.Children = append(n.Children[:i], n.Children[i+1:]...)
	}
}

// EventKinds are the kinds of structural change recorded by the [Tree].
type EventKinds int32

const (
	// Add is recorded when an entity joins the graph.
	Add EventKinds = iota

	// Remove is recorded when an entity is detached (and possibly destroyed).
	// Descendants destroyed along with it produce no events of their own.
	Remove

	// Update is recorded when an entity moves to a new parent.
	Update
)

func (k EventKinds) String() string {
	switch k {
	case Add:
		return "Add"
	case Remove:
		return "Remove"
	case Update:
		return "Update"
	}
	return "EventKinds(?)"
}

// Event is one structural change of the graph.
type Event struct {
	Kind EventKinds

	// OldParent is the previous parent for [Update] events.
	OldParent ecs.Entity

	// Parent is the parent added to for [Add], the parent detached from
	// for [Remove] and the new parent for [Update]. [ecs.Nil] means the roots.
	Parent ecs.Entity

	Entity ecs.Entity
}

func (ev Event) String() string {
	switch ev.Kind {
	case Update:
		return fmt.Sprintf("Update(%v -> %v, %v)", ev.OldParent, ev.Parent, ev.Entity)
	default:
		return fmt.Sprintf("%v(%v, %v)", ev.Kind, ev.Parent, ev.Entity)
	}
}

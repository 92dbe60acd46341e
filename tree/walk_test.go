// Copyright (c) 2020, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree_test

import (
	"testing"

	"cogentcore.org/scene2d/ecs"
	. "cogentcore.org/scene2d/tree"
	"github.com/stretchr/testify/assert"
)

// testTree builds:
//
//	root
//	├── child0
//	├── child1
//	│   └── subchild1
//	│       └── subsubchild1
//	├── child2
//	└── child3
func testTree(t *testing.T) (*Tree, map[ecs.Entity]string, map[string]ecs.Entity) {
	t.Helper()
	w := ecs.NewWorld()
	tr := New(w)
	names := map[ecs.Entity]string{}
	byName := map[string]ecs.Entity{}
	add := func(name string, parent string) {
		e := w.NewEntity()
		_, err := tr.Add(e, byName[parent])
		assert.NoError(t, err)
		names[e] = name
		byName[name] = e
	}
	add("root", "")
	add("child0", "root")
	add("child1", "root")
	add("subchild1", "child1")
	add("subsubchild1", "subchild1")
	add("child2", "root")
	add("child3", "root")
	return tr, names, byName
}

func TestDown(t *testing.T) {
	tr, names, byName := testTree(t)
	cur := byName["root"]
	res := []string{}
	for !cur.IsNil() {
		res = append(res, names[cur])
		cur = tr.Next(cur)
	}
	assert.Equal(t, []string{"root", "child0", "child1", "subchild1", "subsubchild1", "child2", "child3"}, res)
}

func TestUp(t *testing.T) {
	tr, names, byName := testTree(t)
	cur := tr.Last(byName["root"])
	res := []string{}
	for !cur.IsNil() {
		res = append(res, names[cur])
		cur = tr.Previous(cur)
	}
	assert.Equal(t, []string{"child3", "child2", "subsubchild1", "subchild1", "child1", "child0", "root"}, res)
}

func TestWalkDown(t *testing.T) {
	tr, names, byName := testTree(t)
	res := []string{}
	tr.WalkDown(byName["root"], func(e ecs.Entity) bool {
		res = append(res, names[e])
		if names[e] == "subchild1" {
			return Break
		}
		return Continue
	})
	assert.Equal(t, []string{"root", "child0", "child1", "subchild1", "child2", "child3"}, res)
}

func TestWalkDownBreadth(t *testing.T) {
	tr, names, byName := testTree(t)
	res := []string{}
	depths := []int{}
	tr.WalkDownBreadth(byName["root"], func(e ecs.Entity, depth int) bool {
		res = append(res, names[e])
		depths = append(depths, depth)
		return Continue
	})
	assert.Equal(t, []string{"root", "child0", "child1", "child2", "child3", "subchild1", "subsubchild1"}, res)
	assert.Equal(t, []int{0, 1, 1, 1, 1, 2, 3}, depths)
}

func TestWalkUp(t *testing.T) {
	tr, names, byName := testTree(t)
	res := []string{}
	done := tr.WalkUp(byName["subsubchild1"], func(e ecs.Entity) bool {
		res = append(res, names[e])
		return Continue
	})
	assert.True(t, done)
	assert.Equal(t, []string{"subsubchild1", "subchild1", "child1", "root"}, res)

	done = tr.WalkUp(byName["subsubchild1"], func(e ecs.Entity) bool {
		return names[e] != "child1"
	})
	assert.False(t, done)
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inspect captures JSON snapshots of a laid out scene and
// serves them over HTTP and a WebSocket stream.
package inspect

import (
	"encoding/json"

	"cogentcore.org/scene2d/math32"
	"cogentcore.org/scene2d/scene"
)

// Node is one entity of a [Snapshot].
type Node struct {
	scene.NodeInfo

	// Matrix is the world matrix in column-major order.
	Matrix math32.Matrix4 `json:"matrix"`
}

// Snapshot is the state of a scene after a frame.
type Snapshot struct {
	Frame    uint64     `json:"frame"`
	Viewport [2]float32 `json:"viewport"`
	Nodes    []Node     `json:"nodes"`
}

// Take captures the current state of the world. It must not run
// concurrently with [scene.World.Frame].
func Take(w *scene.World) *Snapshot {
	vp := w.Engine().Viewport()
	s := &Snapshot{Frame: w.Frames(), Viewport: [2]float32{vp.X, vp.Y}}
	for _, ni := range w.Snapshot() {
		n := Node{NodeInfo: ni, Matrix: math32.Identity4()}
		if t, ok := w.Transforms.Get(ni.Entity); ok {
			n.Matrix = t.GlobalMatrix
		}
		s.Nodes = append(s.Nodes, n)
	}
	return s
}

// Find returns the node with the given name.
func (s *Snapshot) Find(name string) (Node, bool) {
	for _, n := range s.Nodes {
		if n.Name == name {
			return n, true
		}
	}
	return Node{}, false
}

// JSON returns the indented JSON encoding of the snapshot.
func (s *Snapshot) JSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "\t")
}

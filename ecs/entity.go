// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ecs provides generational entity handles, a world that
// allocates and destroys them, and change-tracked component stores.
package ecs

import (
	"cmp"
	"fmt"
	"sync"
)

// Entity is an opaque, stable handle to an entity: a slot index plus the
// generation of that slot. Slots are recycled after destruction with a
// bumped generation, so a stale handle never aliases a new entity.
// The zero value is [Nil].
type Entity struct {
	Index uint32
	Gen   uint32
}

// Nil is the entity that refers to nothing.
var Nil Entity

// IsNil returns whether this is the [Nil] entity.
func (e Entity) IsNil() bool {
	return e.Gen == 0
}

func (e Entity) String() string {
	if e.IsNil() {
		return "nil"
	}
	return fmt.Sprintf("%dv%d", e.Index, e.Gen)
}

// Compare orders entities by index and then generation,
// for use with slices.SortFunc.
func Compare(a, b Entity) int {
	if c := cmp.Compare(a.Index, b.Index); c != 0 {
		return c
	}
	return cmp.Compare(a.Gen, b.Gen)
}

// AnyStore is the type-erased lifecycle interface every component
// store implements, so the [World] can drop an entity's components
// on destruction without knowing their types.
type AnyStore interface {
	// Name returns the component name, used in logs and errors.
	Name() string
	Has(e Entity) bool
	Remove(e Entity) bool
	RemoveBatch(es []Entity)
}

// World allocates entities and owns the registry of component stores.
// It is safe for concurrent use.
type World struct {
	mu sync.Mutex

	// gens holds the current generation of each slot.
	gens []uint32

	// alive marks slots holding a live entity.
	alive []bool

	// free is the list of recyclable slot indexes.
	free []uint32

	count int

	storesMu sync.RWMutex
	stores   []AnyStore
}

// NewWorld returns a new empty world.
func NewWorld() *World {
	return &World{}
}

// NewEntity allocates a new live entity, recycling a free slot if one exists.
func (w *World) NewEntity() Entity {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.count++
	if n := len(w.free); n > 0 {
		idx := w.free[n-1]
		w.free = w.free[:n-1]
		w.gens[idx]++
		w.alive[idx] = true
		return Entity{Index: idx, Gen: w.gens[idx]}
	}
	idx := uint32(len(w.gens))
	w.gens = append(w.gens, 1)
	w.alive = append(w.alive, true)
	return Entity{Index: idx, Gen: 1}
}

// Alive returns whether e refers to a live entity.
func (w *World) Alive(e Entity) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.aliveLocked(e)
}

func (w *World) aliveLocked(e Entity) bool {
	if e.IsNil() || int(e.Index) >= len(w.gens) {
		return false
	}
	return w.alive[e.Index] && w.gens[e.Index] == e.Gen
}

// Len returns the number of live entities.
func (w *World) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.count
}

// Entities returns all live entities in slot order.
func (w *World) Entities() []Entity {
	w.mu.Lock()
	defer w.mu.Unlock()
	es := make([]Entity, 0, w.count)
	for i, a := range w.alive {
		if a {
			es = append(es, Entity{Index: uint32(i), Gen: w.gens[i]})
		}
	}
	return es
}

// Register adds a component store to the registry, so that destroying
// an entity also removes its component from the store.
func (w *World) Register(s AnyStore) {
	w.storesMu.Lock()
	defer w.storesMu.Unlock()
	w.stores = append(w.stores, s)
}

// Stores returns the registered component stores.
func (w *World) Stores() []AnyStore {
	w.storesMu.RLock()
	defer w.storesMu.RUnlock()
	return append([]AnyStore(nil), w.stores...)
}

// Destroy removes all components of e and frees its slot.
// It returns false for a stale or nil entity.
func (w *World) Destroy(e Entity) bool {
	return w.DestroyBatch([]Entity{e}) == 1
}

// DestroyBatch destroys all the given live entities as one batch,
// removing their components from every registered store in a single
// pass per store. Stale entities are ignored. It returns the number of
// entities destroyed.
func (w *World) DestroyBatch(es []Entity) int {
	w.mu.Lock()
	live := make([]Entity, 0, len(es))
	for _, e := range es {
		if !w.aliveLocked(e) {
			continue
		}
		w.alive[e.Index] = false
		w.free = append(w.free, e.Index)
		w.count--
		live = append(live, e)
	}
	w.mu.Unlock()
	if len(live) == 0 {
		return 0
	}
	for _, s := range w.Stores() {
		s.RemoveBatch(live)
	}
	return len(live)
}

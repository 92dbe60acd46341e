// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ecs

import (
	"sync"

	"cogentcore.org/scene2d/base/eventlog"
)

// EventKinds are the kinds of component change events.
type EventKinds int32

const (
	// Inserted is emitted when an entity gains the component.
	Inserted EventKinds = iota

	// Modified is emitted when an existing component is written.
	Modified

	// Removed is emitted when an entity loses the component.
	Removed
)

func (k EventKinds) String() string {
	switch k {
	case Inserted:
		return "Inserted"
	case Modified:
		return "Modified"
	case Removed:
		return "Removed"
	}
	return "EventKinds(?)"
}

// ComponentEvent records one change to a component store.
type ComponentEvent struct {
	Kind   EventKinds
	Entity Entity
}

// Store is a generic container for a specific component type T.
// Every write through Set, Update, Touch, Remove and RemoveBatch is
// recorded in the store's event log, which any number of systems
// read through their own cursors. Ref hands out direct access without
// recording anything, for systems writing derived state that must not
// re-trigger themselves.
type Store[T any] struct {
	name string

	mu         sync.RWMutex
	components map[Entity]*T
	entities   []Entity // entities that have this component, in insertion order

	events *eventlog.Log[ComponentEvent]
}

// NewStore creates a new component store for type T and registers it
// with the world, if non-nil.
func NewStore[T any](w *World, name string) *Store[T] {
	s := &Store[T]{
		name:       name,
		components: make(map[Entity]*T),
		entities:   make([]Entity, 0, 64),
		events:     eventlog.New[ComponentEvent](),
	}
	if w != nil {
		w.Register(s)
	}
	return s
}

// Name returns the component name.
func (s *Store[T]) Name() string {
	return s.name
}

// Events returns the change log of this store.
func (s *Store[T]) Events() *eventlog.Log[ComponentEvent] {
	return s.events
}

// Set inserts or replaces the component for an entity.
func (s *Store[T]) Set(e Entity, val T) {
	s.mu.Lock()
	kind := Modified
	if p, exists := s.components[e]; exists {
		*p = val
	} else {
		kind = Inserted
		v := val
		s.components[e] = &v
		s.entities = append(s.entities, e)
	}
	s.mu.Unlock()
	s.events.Write(ComponentEvent{Kind: kind, Entity: e})
}

// Get returns a copy of the component for an entity.
func (s *Store[T]) Get(e Entity) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.components[e]
	if !ok {
		var zv T
		return zv, false
	}
	return *p, true
}

// Has returns whether the entity has this component.
func (s *Store[T]) Has(e Entity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.components[e]
	return ok
}

// Update calls fn with the entity's component and records a
// modification. It returns false if the entity lacks the component.
func (s *Store[T]) Update(e Entity, fn func(v *T)) bool {
	s.mu.Lock()
	p, ok := s.components[e]
	if ok {
		fn(p)
	}
	s.mu.Unlock()
	if ok {
		s.events.Write(ComponentEvent{Kind: Modified, Entity: e})
	}
	return ok
}

// Ref returns a pointer to the entity's component, or nil.
// Writes through it are not recorded; the caller must hold the
// store's write access for the current pass.
func (s *Store[T]) Ref(e Entity) *T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.components[e]
}

// Touch records a modification of the entity's component
// without changing it.
func (s *Store[T]) Touch(e Entity) bool {
	if !s.Has(e) {
		return false
	}
	s.events.Write(ComponentEvent{Kind: Modified, Entity: e})
	return true
}

// Remove deletes the component from an entity.
func (s *Store[T]) Remove(e Entity) bool {
	s.mu.Lock()
	_, exists := s.components[e]
	if exists {
		delete(s.components, e)
		for i, entity := range s.entities {
			if entity == e {
				s.entities = append(s.entities[:i], s.entities[i+1:]...)
				break
			}
		}
	}
	s.mu.Unlock()
	if exists {
		s.events.Write(ComponentEvent{Kind: Removed, Entity: e})
	}
	return exists
}

// RemoveBatch deletes the component from multiple entities in a single pass.
func (s *Store[T]) RemoveBatch(es []Entity) {
	if len(es) == 0 {
		return
	}
	s.mu.Lock()
	toRemove := make(map[Entity]struct{}, len(es))
	var evs []ComponentEvent
	for _, e := range es {
		if _, exists := s.components[e]; exists {
			toRemove[e] = struct{}{}
			delete(s.components, e)
			evs = append(evs, ComponentEvent{Kind: Removed, Entity: e})
		}
	}
	if len(toRemove) > 0 {
		writeIdx := 0
		for _, e := range s.entities {
			if _, remove := toRemove[e]; !remove {
				s.entities[writeIdx] = e
				writeIdx++
			}
		}
		s.entities = s.entities[:writeIdx]
	}
	s.mu.Unlock()
	if len(evs) > 0 {
		s.events.Write(evs...)
	}
}

// Entities returns all entities with this component, in insertion order.
func (s *Store[T]) Entities() []Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// Len returns the number of entities with this component.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entities)
}

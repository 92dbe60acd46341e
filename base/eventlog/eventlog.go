// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package eventlog provides an append-only broadcast log of events
// that any number of independent readers consume through their own
// cursors. Every reader sees every event written after it registered,
// in emission order; no reader blocks or starves another. Entries are
// compacted away once every registered reader has passed them.
package eventlog

import (
	"sync"
)

// ReaderID identifies one registered reader of a [Log].
type ReaderID int

// Log is a single-producer, multi-consumer broadcast log.
// It is safe for concurrent use.
type Log[T any] struct {
	mu sync.Mutex

	// entries holds the events that at least one reader has not yet read.
	entries []T

	// base is the absolute offset of entries[0].
	base uint64

	// cursors holds the absolute read offset of each reader.
	cursors map[ReaderID]uint64

	nextID ReaderID
}

// New returns a new empty log.
func New[T any]() *Log[T] {
	return &Log[T]{cursors: map[ReaderID]uint64{}}
}

// Register adds a new reader positioned at the current end of the log,
// so it only sees events written from now on.
func (l *Log[T]) Register() ReaderID {
	l.mu.Lock()
	defer l.mu.Unlock()
	id := l.nextID
	l.nextID++
	l.cursors[id] = l.base + uint64(len(l.entries))
	return id
}

// Unregister removes the reader, allowing entries that only it was
// still waiting on to be compacted.
func (l *Log[T]) Unregister(id ReaderID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.cursors, id)
	l.compact()
}

// Write appends events to the log. Without readers there is nobody to
// deliver to, and the events are dropped.
func (l *Log[T]) Write(evs ...T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.cursors) == 0 {
		l.base += uint64(len(evs))
		return
	}
	l.entries = append(l.entries, evs...)
}

// Read returns all events the reader has not seen yet, in emission
// order, and advances its cursor past them. It returns nil for an
// unknown reader. The returned slice is owned by the caller.
func (l *Log[T]) Read(id ReaderID) []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	cur, ok := l.cursors[id]
	if !ok {
		return nil
	}
	end := l.base + uint64(len(l.entries))
	if cur >= end {
		return nil
	}
	out := make([]T, end-cur)
	copy(out, l.entries[cur-l.base:])
	l.cursors[id] = end
	l.compact()
	return out
}

// Pending returns the number of events the reader has not read yet.
func (l *Log[T]) Pending(id ReaderID) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	cur, ok := l.cursors[id]
	if !ok {
		return 0
	}
	return int(l.base + uint64(len(l.entries)) - cur)
}

// Len returns the number of retained (not yet fully consumed) entries.
func (l *Log[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// compact drops the prefix every reader has passed. Must hold mu.
func (l *Log[T]) compact() {
	end := l.base + uint64(len(l.entries))
	low := end
	for _, c := range l.cursors {
		low = min(low, c)
	}
	n := int(low - l.base)
	if n <= 0 {
		return
	}
	var zero T
	for i := range n {
		l.entries[i] = zero
	}
	l.entries = l.entries[n:]
	l.base = low
	if len(l.entries) == 0 {
		l.entries = nil
	}
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package frame schedules the systems run once per frame. Systems
// declare the component stores they read and write, plus explicit
// ordering edges; the [Scheduler] groups them into batches whose
// members never write a store another member touches, and runs each
// batch concurrently on a fixed pool of workers.
package frame

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"
)

// ErrCycle is returned when ordering edges form a cycle.
var ErrCycle = errors.New("frame: ordering cycle")

// System is one pass run per frame.
type System struct {

	// Name identifies the system in ordering edges and logs.
	Name string

	// Reads and Writes are the names of the stores the system reads
	// and writes.
	Reads, Writes []string

	// After lists the systems that must complete before this one.
	After []string

	// Run performs the pass.
	Run func(ctx context.Context) error
}

// conflicts returns whether the two systems may not run concurrently:
// one writes a store the other reads or writes.
func (s *System) conflicts(o *System) bool {
	for _, w := range s.Writes {
		if slices.Contains(o.Writes, w) || slices.Contains(o.Reads, w) {
			return true
		}
	}
	for _, w := range o.Writes {
		if slices.Contains(s.Reads, w) {
			return true
		}
	}
	return false
}

// Scheduler runs registered systems in dependency-ordered batches.
// Conflicting systems keep their registration order.
type Scheduler struct {
	systems []*System
	batches [][]*System

	// Workers is the maximum number of systems run at once.
	// Zero means GOMAXPROCS.
	Workers int
}

// NewScheduler returns an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Add registers a system. Names must be unique.
func (s *Scheduler) Add(sys System) error {
	if sys.Name == "" || sys.Run == nil {
		return fmt.Errorf("frame: system %q needs a name and a run function", sys.Name)
	}
	if s.find(sys.Name) >= 0 {
		return fmt.Errorf("frame: system %q already registered", sys.Name)
	}
	s.systems = append(s.systems, &sys)
	s.batches = nil
	return nil
}

func (s *Scheduler) find(name string) int {
	return slices.IndexFunc(s.systems, func(sys *System) bool { return sys.Name == name })
}

// order returns the systems in a topological order of their edges,
// breaking ties by registration order.
func (s *Scheduler) order() ([]*System, error) {
	n := len(s.systems)
	indeg := make([]int, n)
	next := make([][]int, n)
	for i, sys := range s.systems {
		for _, dep := range sys.After {
			j := s.find(dep)
			if j < 0 {
				return nil, fmt.Errorf("frame: system %q runs after unknown system %q", sys.Name, dep)
			}
			next[j] = append(next[j], i)
			indeg[i]++
		}
	}
	var ready, out []int
	for i := range n {
		if indeg[i] == 0 {
			ready = append(ready, i)
		}
	}
	for len(ready) > 0 {
		slices.Sort(ready)
		i := ready[0]
		ready = ready[1:]
		out = append(out, i)
		for _, j := range next[i] {
			indeg[j]--
			if indeg[j] == 0 {
				ready = append(ready, j)
			}
		}
	}
	if len(out) < n {
		var names []string
		for i := range n {
			if indeg[i] > 0 {
				names = append(names, s.systems[i].Name)
			}
		}
		return nil, fmt.Errorf("%w between %s", ErrCycle, strings.Join(names, ", "))
	}
	sorted := make([]*System, n)
	for k, i := range out {
		sorted[k] = s.systems[i]
	}
	return sorted, nil
}

// Build computes the batches. It is called by [Scheduler.Run] when
// systems were added since the last build.
func (s *Scheduler) Build() error {
	sorted, err := s.order()
	if err != nil {
		return err
	}
	at := map[string]int{}
	var batches [][]*System
	for k, sys := range sorted {
		lo := 0
		for _, dep := range sys.After {
			lo = max(lo, at[dep]+1)
		}
		for _, prev := range sorted[:k] {
			if sys.conflicts(prev) {
				lo = max(lo, at[prev.Name]+1)
			}
		}
		for len(batches) <= lo {
			batches = append(batches, nil)
		}
		batches[lo] = append(batches[lo], sys)
		at[sys.Name] = lo
	}
	s.batches = batches
	slog.Debug("frame: schedule built", "batches", s.String())
	return nil
}

// Batches returns the names of the systems in each batch.
func (s *Scheduler) Batches() ([][]string, error) {
	if s.batches == nil {
		if err := s.Build(); err != nil {
			return nil, err
		}
	}
	out := make([][]string, len(s.batches))
	for i, b := range s.batches {
		for _, sys := range b {
			out[i] = append(out[i], sys.Name)
		}
	}
	return out, nil
}

func (s *Scheduler) String() string {
	var sb strings.Builder
	for i, b := range s.batches {
		if i > 0 {
			sb.WriteString(" | ")
		}
		for j, sys := range b {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(sys.Name)
		}
	}
	return sb.String()
}

// Run runs every batch in order, the systems of a batch concurrently.
// The first failure abandons the rest of the frame and is returned.
func (s *Scheduler) Run(ctx context.Context) error {
	if s.batches == nil && len(s.systems) > 0 {
		if err := s.Build(); err != nil {
			return err
		}
	}
	workers := s.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	for _, b := range s.batches {
		if len(b) == 1 {
			if err := b[0].Run(ctx); err != nil {
				return fmt.Errorf("frame: system %s: %w", b[0].Name, err)
			}
			continue
		}
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(workers)
		for _, sys := range b {
			g.Go(func() error {
				if err := sys.Run(gctx); err != nil {
					return fmt.Errorf("frame: system %s: %w", sys.Name, err)
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
	}
	return nil
}

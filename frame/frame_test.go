// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu  sync.Mutex
	ran []string
}

func (r *recorder) system(name string, reads, writes, after []string) System {
	return System{
		Name:   name,
		Reads:  reads,
		Writes: writes,
		After:  after,
		Run: func(ctx context.Context) error {
			r.mu.Lock()
			r.ran = append(r.ran, name)
			r.mu.Unlock()
			return nil
		},
	}
}

func TestBatches(t *testing.T) {
	r := &recorder{}
	s := NewScheduler()
	require.NoError(t, s.Add(r.system("autosize", []string{"Label"}, []string{"Rect2D"}, nil)))
	require.NoError(t, s.Add(r.system("layout", []string{"LayoutElement"}, []string{"Rect2D", "Transform"}, nil)))
	require.NoError(t, s.Add(r.system("transform", nil, []string{"Transform"}, []string{"layout"})))
	require.NoError(t, s.Add(r.system("hide", []string{"Hidden"}, []string{"HiddenPropagate"}, nil)))

	batches, err := s.Batches()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"autosize", "hide"},
		{"layout"},
		{"transform"},
	}, batches)
	assert.Equal(t, "autosize, hide | layout | transform", s.String())

	require.NoError(t, s.Run(context.Background()))
	assert.Len(t, r.ran, 4)
	assert.Equal(t, []string{"layout", "transform"}, r.ran[2:])
}

func TestOrderingEdges(t *testing.T) {
	r := &recorder{}
	s := NewScheduler()
	require.NoError(t, s.Add(r.system("b", nil, nil, []string{"a"})))
	require.NoError(t, s.Add(r.system("a", nil, nil, nil)))
	batches, err := s.Batches()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a"}, {"b"}}, batches)

	assert.Error(t, s.Add(r.system("a", nil, nil, nil)))
	assert.Error(t, s.Add(System{Name: "empty"}))

	require.NoError(t, s.Add(r.system("c", nil, nil, []string{"missing"})))
	_, err = s.Batches()
	assert.Error(t, err)
}

func TestCycle(t *testing.T) {
	r := &recorder{}
	s := NewScheduler()
	require.NoError(t, s.Add(r.system("a", nil, nil, []string{"b"})))
	require.NoError(t, s.Add(r.system("b", nil, nil, []string{"a"})))
	err := s.Run(context.Background())
	assert.ErrorIs(t, err, ErrCycle)
	assert.Empty(t, r.ran)
}

func TestFailureAbandonsFrame(t *testing.T) {
	r := &recorder{}
	s := NewScheduler()
	boom := errors.New("boom")
	require.NoError(t, s.Add(System{
		Name:   "fail",
		Writes: []string{"Rect2D"},
		Run:    func(ctx context.Context) error { return boom },
	}))
	require.NoError(t, s.Add(r.system("after", []string{"Rect2D"}, nil, nil)))
	err := s.Run(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, r.ran)
}

func TestConcurrentBatch(t *testing.T) {
	s := NewScheduler()
	s.Workers = 2
	var wg sync.WaitGroup
	wg.Add(2)
	// each system waits for the other, which only completes when both
	// run at the same time
	meet := func(ctx context.Context) error {
		wg.Done()
		wg.Wait()
		return nil
	}
	require.NoError(t, s.Add(System{Name: "x", Writes: []string{"X"}, Run: meet}))
	require.NoError(t, s.Add(System{Name: "y", Writes: []string{"Y"}, Run: meet}))
	require.NoError(t, s.Run(context.Background()))
}

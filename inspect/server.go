// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inspect

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"cogentcore.org/scene2d/base/websocket"
	"cogentcore.org/scene2d/scene"
)

// Server serves the last published [Snapshot] at /snapshot and streams
// every new one to WebSocket clients connected at /ws.
type Server struct {
	world *scene.World
	hub   *websocket.Hub

	mu   sync.Mutex
	last []byte
}

// NewServer returns a server publishing snapshots of the given world.
func NewServer(w *scene.World) *Server {
	s := &Server{world: w, hub: websocket.NewHub()}
	s.hub.OnConnect = func() (websocket.MessageTypes, []byte) {
		return websocket.TextMessage, s.Last()
	}
	return s
}

// Hub returns the WebSocket hub.
func (s *Server) Hub() *websocket.Hub {
	return s.hub
}

// Last returns the JSON of the last published snapshot, or null
// if nothing has been published.
func (s *Server) Last() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return []byte("null")
	}
	return s.last
}

// Publish captures a snapshot of the world and sends it to every client.
// It must be called from the goroutine that runs frames.
func (s *Server) Publish() error {
	b, err := Take(s.world).JSON()
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.last = b
	s.mu.Unlock()
	s.hub.Broadcast(websocket.TextMessage, b)
	return nil
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /snapshot", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write(s.Last())
	})
	mux.Handle("/ws", s.hub)
	return mux
}

// ListenAndServe serves on addr until the context is canceled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.Handler(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		s.hub.Close()
		sctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		srv.Shutdown(sctx)
	}()
	slog.Info("inspector listening", "addr", addr)
	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package websocket

import (
	"log/slog"
	"net/http"
	"sync"

	"cogentcore.org/scene2d/base/errors"
	"github.com/gorilla/websocket"
)

// Hub is an [http.Handler] that upgrades requests to WebSocket
// connections and broadcasts messages to all of them.
type Hub struct {
	upgrader websocket.Upgrader

	mu    sync.Mutex
	conns map[*websocket.Conn]*sync.Mutex

	// OnConnect, if set, returns the messages sent to a new connection
	// before any broadcast.
	OnConnect func() (MessageTypes, []byte)

	// OnMessage, if set, is called with messages received from clients.
	OnMessage func(typ MessageTypes, msg []byte)
}

// NewHub returns a hub accepting connections from any origin.
func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
		conns:    map[*websocket.Conn]*sync.Mutex{},
	}
}

// Len returns the number of open connections.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if errors.Log(err) != nil {
		return
	}
	wmu := &sync.Mutex{}
	if h.OnConnect != nil {
		typ, msg := h.OnConnect()
		if errors.Log(conn.WriteMessage(int(typ), msg)) != nil {
			conn.Close()
			return
		}
	}
	h.mu.Lock()
	h.conns[conn] = wmu
	h.mu.Unlock()
	slog.Info("websocket: client connected", "remote", r.RemoteAddr)

	defer func() {
		h.mu.Lock()
		delete(h.conns, conn)
		h.mu.Unlock()
		conn.Close()
		slog.Info("websocket: client disconnected", "remote", r.RemoteAddr)
	}()
	for {
		typ, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if h.OnMessage != nil {
			h.OnMessage(MessageTypes(typ), msg)
		}
	}
}

// Broadcast sends the message to every open connection. Connections
// that fail are closed and dropped.
func (h *Hub) Broadcast(typ MessageTypes, msg []byte) {
	h.mu.Lock()
	conns := make(map[*websocket.Conn]*sync.Mutex, len(h.conns))
	for c, m := range h.conns {
		conns[c] = m
	}
	h.mu.Unlock()
	for c, m := range conns {
		m.Lock()
		err := c.WriteMessage(int(typ), msg)
		m.Unlock()
		if err != nil {
			slog.Debug("websocket: dropping client", "err", err)
			h.mu.Lock()
			delete(h.conns, c)
			h.mu.Unlock()
			c.Close()
		}
	}
}

// Close closes every open connection.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c, m := range h.conns {
		m.Lock()
		c.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
		m.Unlock()
		c.Close()
		delete(h.conns, c)
	}
}

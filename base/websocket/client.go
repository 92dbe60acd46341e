// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package websocket provides a WebSocket client and a broadcasting
// server hub over gorilla/websocket.
package websocket

import (
	"context"
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"
)

// MessageTypes are the WebSocket message types.
type MessageTypes int32

const (
	// TextMessage is a UTF-8 text message, such as JSON.
	TextMessage MessageTypes = websocket.TextMessage

	// BinaryMessage is a binary data message.
	BinaryMessage MessageTypes = websocket.BinaryMessage
)

func (t MessageTypes) String() string {
	if t == BinaryMessage {
		return "binary"
	}
	return "text"
}

// Client is a connection to a [Hub] or any other WebSocket server.
type Client struct {
	conn *websocket.Conn

	// wmu serializes writes.
	wmu  sync.Mutex
	done chan struct{}
}

// Connect dials the server at url, such as "ws://localhost:8642/ws".
func Connect(ctx context.Context, url string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn, done: make(chan struct{})}, nil
}

// OnMessage starts delivering received messages to f on a new goroutine
// until reading fails, after which [Client.Done] is closed. It must be
// called exactly once.
func (c *Client) OnMessage(f func(typ MessageTypes, msg []byte)) {
	go func() {
		defer close(c.done)
		for {
			typ, msg, err := c.conn.ReadMessage()
			if err != nil {
				if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					slog.Debug("websocket: read failed", "err", err)
				}
				return
			}
			f(MessageTypes(typ), msg)
		}
	}()
}

// Done returns a channel that is closed once the connection stops
// delivering messages.
func (c *Client) Done() <-chan struct{} {
	return c.done
}

// Send writes one message.
func (c *Client) Send(typ MessageTypes, msg []byte) error {
	c.wmu.Lock()
	defer c.wmu.Unlock()
	return c.conn.WriteMessage(int(typ), msg)
}

// Close asks the server to close the connection. The read loop ends
// when the server answers.
func (c *Client) Close() error {
	return c.Send(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package websocket

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub(t *testing.T) {
	h := NewHub()
	h.OnConnect = func() (MessageTypes, []byte) { return TextMessage, []byte("hello") }
	received := make(chan string, 4)
	h.OnMessage = func(typ MessageTypes, msg []byte) { received <- string(msg) }
	srv := httptest.NewServer(h)
	defer srv.Close()

	c, err := Connect(context.Background(), "ws"+strings.TrimPrefix(srv.URL, "http"))
	require.NoError(t, err)
	msgs := make(chan string, 4)
	c.OnMessage(func(typ MessageTypes, msg []byte) {
		assert.Equal(t, TextMessage, typ)
		msgs <- string(msg)
	})

	assert.Equal(t, "hello", <-msgs)
	assert.Eventually(t, func() bool { return h.Len() == 1 }, time.Second, 5*time.Millisecond)
	h.Broadcast(TextMessage, []byte("frame"))
	assert.Equal(t, "frame", <-msgs)

	require.NoError(t, c.Send(TextMessage, []byte("ping")))
	assert.Equal(t, "ping", <-received)

	h.Close()
	select {
	case <-c.Done():
	case <-time.After(time.Second):
		t.Fatal("client not closed")
	}
	assert.Equal(t, 0, h.Len())
}

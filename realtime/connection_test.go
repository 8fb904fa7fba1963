package realtime

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

// newTestConnection upgrades a real websocket pair and wraps the server side
// in a Connection, the way the handler does after an upgrade.
func newTestConnection(t *testing.T, bufferSize int) *Connection {
	t.Helper()

	connCh := make(chan *Connection, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		conn := NewConnection(ws, bufferSize)
		conn.Start()
		connCh <- conn
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	conn := <-connCh
	t.Cleanup(func() { conn.Close(websocket.CloseNormalClosure, "") })
	return conn
}

func TestConnection_SendAfterClose(t *testing.T) {
	req := require.New(t)

	// Given an open connection
	conn := newTestConnection(t, 4)

	// When it is closed and a broadcast still reaches it
	conn.Close(websocket.CloseGoingAway, "bye")
	err := conn.Send([]byte(`{"type":"status"}`))

	// Then the send is refused instead of delivered
	req.ErrorIs(err, errConnectionClosed)
}

func TestConnection_ConcurrentSendAndClose(t *testing.T) {
	req := require.New(t)

	// Room fan-out runs on the sending session's goroutine, so a disconnect
	// can race any number of in-flight Sends. None of them may panic.
	for i := 0; i < 20; i++ {
		conn := newTestConnection(t, 2)

		panics := make(chan any, 51)
		var wg sync.WaitGroup
		for g := 0; g < 50; g++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				defer func() {
					if r := recover(); r != nil {
						panics <- r
					}
				}()
				_ = conn.Send([]byte(fmt.Sprintf(`{"seq":%d}`, n)))
			}(g)
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					panics <- r
				}
			}()
			conn.Close(websocket.CloseGoingAway, "client gone")
		}()

		wg.Wait()
		close(panics)
		for r := range panics {
			req.Failf("connection raced", "panic during send/close: %v", r)
		}
	}
}

func TestConnection_BufferFullClosesConnection(t *testing.T) {
	req := require.New(t)

	// Given a connection whose write loop never drains the buffer
	connCh := make(chan *Connection, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		connCh <- NewConnection(ws, 1)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	req.NoError(err)
	t.Cleanup(func() { _ = client.Close() })
	conn := <-connCh

	// When sends overflow the buffer
	req.NoError(conn.Send([]byte(`{"seq":1}`)))
	err = conn.Send([]byte(`{"seq":2}`))

	// Then the overflowing send closes the connection and later sends are
	// refused without a panic
	req.ErrorIs(err, errBufferFull)
	req.ErrorIs(conn.Send([]byte(`{"seq":3}`)), errConnectionClosed)
}

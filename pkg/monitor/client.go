package monitor

import (
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

const (
	sendQueue    = 64
	writeTimeout = 5 * time.Second
	maxReadSize  = 512
)

var errNoRTT = errors.New("monitor: round trip time unavailable")

type client struct {
	server *Server
	conn   *websocket.Conn
	send   chan []byte

	id          uint32
	remoteAddr  string
	userAgent   string
	connectedAt time.Time

	// avgLatency is a moving average of the TCP RTT in microseconds
	avgLatency atomic.Uint32
}

// newClient creates a new client for an upgraded connection.
func (s *Server) newClient(conn *websocket.Conn, r *http.Request) *client {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentID++
	return &client{
		server:      s,
		conn:        conn,
		send:        make(chan []byte, sendQueue),
		id:          s.currentID,
		remoteAddr:  r.RemoteAddr,
		userAgent:   r.Header.Get("User-Agent"),
		connectedAt: time.Now(),
	}
}

func (c *client) info() ClientInfo {
	return ClientInfo{
		ID:            c.id,
		RemoteAddr:    c.remoteAddr,
		UserAgent:     c.userAgent,
		LatencyMicros: c.avgLatency.Load(),
	}
}

// readPump discards whatever the client sends; its only job is noticing
// when the connection goes away.
func (c *client) readPump() {
	// deferred function to handle unregistering client
	// and closing connection
	defer func() {
		select {
		case c.server.unregister <- c:
		case <-c.server.done:
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxReadSize)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return // connection closed
		}
	}
}

// writePump writes queued messages until the queue is closed.
func (c *client) writePump() {
	defer c.conn.Close()

	for message := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			select {
			case c.server.unregister <- c:
			case <-c.server.done:
			}
			// keep draining so the server never blocks on this client
			for range c.send {
			}
			return
		}
		c.updateLatency()
	}

	// server closed the queue
	c.conn.WriteControl(websocket.CloseMessage, []byte{}, time.Now().Add(writeTimeout))
}

func (c *client) updateLatency() {
	rtt, err := connRTT(c.conn.UnderlyingConn())
	if err != nil {
		return
	}
	sample := uint32(rtt / time.Microsecond)
	avg := c.avgLatency.Load()
	c.avgLatency.Store((avg*9 + sample) / 10)
}

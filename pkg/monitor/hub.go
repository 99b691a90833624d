// Package monitor serves live CPU register snapshots to websocket clients.
//
// Every message is a JSON encoded Message. Clients receive the latest
// snapshot on connecting, every snapshot published after that, and a list
// of the connected clients once per InfoInterval. A client that cannot keep
// up is disconnected rather than allowed to slow down the emulator.
package monitor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/thelolagemann/lr35902/pkg/log"
)

// DefaultInfoInterval is how often the client list is broadcast.
const DefaultInfoInterval = time.Second

// Server is an http.Handler upgrading requests to websocket connections.
// Run must be running for clients to be served.
type Server struct {
	// InfoInterval is how often the client list is broadcast. It must be
	// set before Run is called.
	InfoInterval time.Duration

	clients map[*client]bool
	mu      sync.Mutex

	broadcast            chan []byte
	register, unregister chan *client
	done                 chan struct{}

	last      []byte
	currentID uint32

	log log.Logger
}

// NewServer returns a Server reporting connection problems to l.
func NewServer(l log.Logger) *Server {
	if l == nil {
		l = log.NewNullLogger()
	}
	return &Server{
		InfoInterval: DefaultInfoInterval,
		clients:      make(map[*client]bool),
		broadcast:    make(chan []byte, 16),
		register:     make(chan *client),
		unregister:   make(chan *client),
		done:         make(chan struct{}),
		log:          l,
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024 * 4,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ServeHTTP upgrades the connection and registers the new client.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	// upgrade the connection to a websocket connection
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Errorf("monitor: upgrading %s: %v", r.RemoteAddr, err)
		return
	}

	c := s.newClient(conn, r)
	select {
	case s.register <- c:
	case <-s.done:
		conn.Close()
		return
	}

	// spawn read/write pumps
	go c.readPump()
	go c.writePump()
}

// Publish queues snap for every client. It never blocks; when the queue
// is full the snapshot is dropped.
func (s *Server) Publish(snap Snapshot) {
	b, err := json.Marshal(Message{Type: TypeSnapshot, Snapshot: &snap})
	if err != nil {
		s.log.Errorf("monitor: encoding snapshot: %v", err)
		return
	}
	select {
	case s.broadcast <- b:
	default:
	}
}

// Clients returns the currently connected clients.
func (s *Server) Clients() []ClientInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	infos := make([]ClientInfo, 0, len(s.clients))
	for c := range s.clients {
		infos = append(infos, c.info())
	}
	return infos
}

// Run handles registration and broadcasting until ctx is done, at which
// point every client is disconnected.
func (s *Server) Run(ctx context.Context) {
	defer close(s.done)

	t := time.NewTicker(s.InfoInterval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			s.mu.Lock()
			for c := range s.clients {
				delete(s.clients, c)
				close(c.send)
			}
			s.mu.Unlock()
			return
		case c := <-s.register:
			s.mu.Lock()
			s.clients[c] = true
			s.mu.Unlock()
			s.log.Debugf("monitor: client %d connected from %s", c.id, c.remoteAddr)

			// bring the new client up to date
			if s.last != nil {
				c.send <- s.last
			}
		case c := <-s.unregister:
			s.drop(c)
		case msg := <-s.broadcast:
			s.last = msg
			s.fanout(msg)
		case <-t.C:
			msg, err := json.Marshal(Message{Type: TypeClients, Clients: s.Clients()})
			if err != nil {
				continue
			}
			s.fanout(msg)
		}
	}
}

// fanout sends msg to every client, dropping the ones whose queue is full.
func (s *Server) fanout(msg []byte) {
	s.mu.Lock()
	var slow []*client
	for c := range s.clients {
		select {
		case c.send <- msg:
		default:
			slow = append(slow, c)
		}
	}
	s.mu.Unlock()

	for _, c := range slow {
		s.log.Infof("monitor: dropping slow client %d", c.id)
		s.drop(c)
	}
}

// drop unregisters c and closes its queue, which ends its write pump.
func (s *Server) drop(c *client) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// is this client still registered
	if _, ok := s.clients[c]; ok {
		delete(s.clients, c)
		close(c.send)
	}
}

// ListenAndServe serves s on addr until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/", s)
	srv := &http.Server{Addr: addr, Handler: mux}

	go s.Run(ctx)
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		srv.Shutdown(shutdown)
	}()

	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

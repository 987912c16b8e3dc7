// Package web serves the pipeline status API and a live stream of
// accepted sentences.
package web

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // status page may be served from anywhere on the LAN
	},
}

// SentenceEvent is one accepted sentence pushed to websocket clients.
type SentenceEvent struct {
	Receiver string `json:"receiver"`
	Sentence string `json:"sentence"`
	TimeUTC  string `json:"time_utc"`
}

// Server serves GET /api/status and streams accepted sentences to
// websocket clients on /ws.
type Server struct {
	addr   string
	status *Status
	logger *logrus.Logger

	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

// NewServer creates a new status server.
func NewServer(addr string, status *Status, logger *logrus.Logger) *Server {
	return &Server{
		addr:    addr,
		status:  status,
		logger:  logger,
		clients: make(map[*websocket.Conn]bool),
	}
}

// Handler returns the HTTP routes of the status server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/status", s.handleStatus)
	mux.HandleFunc("/ws", s.handleWS)
	return mux
}

// Serve runs the HTTP server until ctx is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		s.closeClients()
		return nil
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	snap := s.status.Snapshot(time.Now().UTC())
	b, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		http.Error(w, "marshal failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(b)
	_, _ = w.Write([]byte("\n"))
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.WithError(err).Warn("WebSocket upgrade failed")
		return
	}

	s.mu.Lock()
	s.clients[conn] = true
	s.mu.Unlock()
	defer s.dropClient(conn)

	// Clients never send data; the read loop pumps control frames and
	// ends when the peer goes away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.WithError(err).Debug("WebSocket closed")
			}
			return
		}
	}
}

// Broadcast pushes one accepted sentence to every connected client.
// Clients that fail to take the write are dropped.
func (s *Server) Broadcast(receiver string, sentence []byte) {
	event := SentenceEvent{
		Receiver: receiver,
		Sentence: string(sentence),
		TimeUTC:  time.Now().UTC().Format(time.RFC3339Nano),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.clients {
		_ = conn.SetWriteDeadline(time.Now().Add(time.Second))
		if err := conn.WriteJSON(event); err != nil {
			conn.Close()
			delete(s.clients, conn)
		}
	}
}

// ClientCount returns the number of connected websocket clients.
func (s *Server) ClientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

func (s *Server) dropClient(conn *websocket.Conn) {
	s.mu.Lock()
	if s.clients[conn] {
		delete(s.clients, conn)
		conn.Close()
	}
	s.mu.Unlock()
}

func (s *Server) closeClients() {
	s.mu.Lock()
	for conn := range s.clients {
		conn.Close()
		delete(s.clients, conn)
	}
	s.mu.Unlock()
}

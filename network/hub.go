package network

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"
)

var (
	// ErrBackpressure marks a peer dropped because its send queue was full
	ErrBackpressure = errors.New("spectator send queue full")

	// ErrHubFull rejects connections beyond MaxPeers
	ErrHubFull = errors.New("spectator limit reached")
)

// Hub accepts spectator websockets and fans out snapshots
type Hub struct {
	cfg     *Config
	matchID string

	mu    sync.RWMutex
	peers map[uuid.UUID]*Peer

	addrMu sync.RWMutex
	addr   net.Addr
}

// NewHub creates a hub; cfg nil uses DefaultConfig
func NewHub(cfg *Config, matchID string) *Hub {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Hub{
		cfg:     cfg,
		matchID: matchID,
		peers:   make(map[uuid.UUID]*Peer),
	}
}

// Handler returns the HTTP routes: /ws for spectators, /healthz for probes
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/ws", h)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"spectators":%d}`, h.ClientCount())
	})
	return mux
}

// ServeHTTP upgrades the request and streams snapshots until the client leaves
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // local spectators, no origin check
	})
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to accept spectator", "err", err)
		return
	}

	peer := newPeer(r.RemoteAddr, conn, h.cfg.SendQueueSize)
	if !h.add(peer) {
		slog.WarnContext(r.Context(), "spectator rejected", "addr", r.RemoteAddr, "err", ErrHubFull)
		peer.Close(websocket.StatusTryAgainLater, ErrHubFull.Error())
		return
	}
	defer h.remove(peer)

	// Spectators never send; CloseRead detects their disconnect
	ctx := conn.CloseRead(r.Context())

	hctx, cancel := context.WithTimeout(ctx, h.cfg.WriteTimeout)
	err = wsjson.Write(hctx, conn, Hello{Type: TypeHello, ClientID: peer.ID.String(), MatchID: h.matchID})
	cancel()
	if err != nil {
		slog.WarnContext(ctx, "spectator hello failed", "client", peer.ID, "err", err)
		peer.Close(websocket.StatusInternalError, "hello failed")
		return
	}
	slog.DebugContext(ctx, "spectator connected", "client", peer.ID, "addr", peer.Addr)

	if err := peer.writeLoop(ctx, h.cfg.WriteTimeout); err != nil && !errors.Is(err, context.Canceled) {
		slog.DebugContext(ctx, "spectator write loop ended", "client", peer.ID, "err", err)
	}
	peer.Close(websocket.StatusNormalClosure, "")
}

func (h *Hub) add(p *Peer) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cfg.MaxPeers > 0 && len(h.peers) >= h.cfg.MaxPeers {
		return false
	}
	h.peers[p.ID] = p
	return true
}

func (h *Hub) remove(p *Peer) {
	h.mu.Lock()
	delete(h.peers, p.ID)
	h.mu.Unlock()
	slog.Debug("spectator disconnected", "client", p.ID)
}

// Broadcast queues data for every peer and returns the number of peers reached
// Peers whose queue is full are disconnected
func (h *Hub) Broadcast(data []byte) int {
	h.mu.RLock()
	peers := make([]*Peer, 0, len(h.peers))
	for _, p := range h.peers {
		peers = append(peers, p)
	}
	h.mu.RUnlock()

	sent := 0
	for _, p := range peers {
		if p.Send(data) {
			sent++
			continue
		}
		slog.Warn("dropping spectator", "client", p.ID, "err", ErrBackpressure)
		p.Close(websocket.StatusPolicyViolation, ErrBackpressure.Error())
	}
	return sent
}

// ClientCount returns the number of registered peers
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.peers)
}

// Addr returns the bound listener address once Run is serving
func (h *Hub) Addr() net.Addr {
	h.addrMu.RLock()
	defer h.addrMu.RUnlock()
	return h.addr
}

// Run serves spectators on cfg.Address until ctx is cancelled, then shuts down gracefully
func (h *Hub) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", h.cfg.Address)
	if err != nil {
		return fmt.Errorf("spectator listen %s: %w", h.cfg.Address, err)
	}
	h.addrMu.Lock()
	h.addr = ln.Addr()
	h.addrMu.Unlock()

	srv := &http.Server{
		Handler:           h.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()
	slog.Info("spectator server listening", "addr", ln.Addr().String())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("spectator serve: %w", err)
	case <-ctx.Done():
	}

	h.closeAll()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), h.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("spectator shutdown: %w", err)
	}
	slog.Info("spectator server stopped")
	return nil
}

func (h *Hub) closeAll() {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, p := range h.peers {
		p.Close(websocket.StatusGoingAway, "server shutting down")
	}
}

package network

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// ConnState represents connection lifecycle state
type ConnState uint8

const (
	StateDisconnected ConnState = iota
	StateConnected
	StateDisconnecting
)

// Peer is one connected spectator
type Peer struct {
	ID    uuid.UUID
	Addr  string
	State atomic.Uint32 // ConnState

	conn *websocket.Conn

	// Send queue
	sendCh chan []byte

	// Lifecycle
	closeCh   chan struct{}
	closeOnce sync.Once
}

// newPeer creates a peer from an accepted connection
func newPeer(addr string, conn *websocket.Conn, sendQueueSize int) *Peer {
	p := &Peer{
		ID:      uuid.New(),
		Addr:    addr,
		conn:    conn,
		sendCh:  make(chan []byte, sendQueueSize),
		closeCh: make(chan struct{}),
	}
	p.State.Store(uint32(StateConnected))
	return p
}

// Send queues a frame for transmission
// Returns false if the peer is disconnected or its queue is full
func (p *Peer) Send(data []byte) bool {
	if ConnState(p.State.Load()) != StateConnected {
		return false
	}

	select {
	case p.sendCh <- data:
		return true
	default:
		return false
	}
}

// Close initiates shutdown with the given status, idempotent
func (p *Peer) Close(code websocket.StatusCode, reason string) {
	p.closeOnce.Do(func() {
		p.State.Store(uint32(StateDisconnecting))
		close(p.closeCh)
		if p.conn != nil {
			_ = p.conn.Close(code, reason)
		}
		p.State.Store(uint32(StateDisconnected))
	})
}

// writeLoop sends queued frames until ctx ends, the peer closes, or a write fails
func (p *Peer) writeLoop(ctx context.Context, timeout time.Duration) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-p.closeCh:
			return nil
		case data := <-p.sendCh:
			wctx, cancel := context.WithTimeout(ctx, timeout)
			err := p.conn.Write(wctx, websocket.MessageText, data)
			cancel()
			if err != nil {
				return err
			}
		}
	}
}

package session

import (
	"sync"

	"github.com/google/uuid"
)

// Hub tracks live server-held connections (streams, sockets) per
// session so that revocation can sever them. Registration hands back a
// done channel that closes when the session is interrupted.
type Hub struct {
	mu      sync.Mutex
	nextID  uint64
	streams map[uuid.UUID]map[uint64]chan struct{}
}

func NewHub() *Hub {
	return &Hub{streams: make(map[uuid.UUID]map[uint64]chan struct{})}
}

func (h *Hub) Register(tokenID uuid.UUID) (<-chan struct{}, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := h.nextID
	done := make(chan struct{})

	if h.streams[tokenID] == nil {
		h.streams[tokenID] = make(map[uint64]chan struct{})
	}
	h.streams[tokenID][id] = done

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if chans, ok := h.streams[tokenID]; ok {
			delete(chans, id)
			if len(chans) == 0 {
				delete(h.streams, tokenID)
			}
		}
	}
	return done, cancel
}

// Interrupt closes every live connection bound to the session. Safe to
// call for sessions with no registered connections.
func (h *Hub) Interrupt(tokenID uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, done := range h.streams[tokenID] {
		close(done)
	}
	delete(h.streams, tokenID)
}

// ActiveConnections reports the number of live connections for a session.
func (h *Hub) ActiveConnections(tokenID uuid.UUID) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.streams[tokenID])
}

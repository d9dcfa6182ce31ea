package ws

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/Vovarama1992/leadsheet/internal/models"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// RoomAll receives every saved lead regardless of sales rep.
const RoomAll = "all"

const defaultWriteWait = 5 * time.Second

type Hub struct {
	log       *zap.SugaredLogger
	writeWait time.Duration
	mu        sync.RWMutex
	rooms     map[string]map[*websocket.Conn]bool
}

func NewHub(log *zap.SugaredLogger) *Hub {
	log.Infof("[hub] init")
	return &Hub{
		log:       log,
		writeWait: defaultWriteWait,
		rooms:     make(map[string]map[*websocket.Conn]bool),
	}
}

func (h *Hub) Register(roomID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.rooms[roomID]; !ok {
		h.rooms[roomID] = make(map[*websocket.Conn]bool)
		h.log.Infof("[hub] create room=%s", roomID)
	}

	h.rooms[roomID][conn] = true
	h.log.Infof("[hub] register room=%s conns=%d", roomID, len(h.rooms[roomID]))
}

func (h *Hub) Unregister(roomID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns, ok := h.rooms[roomID]
	if !ok {
		return
	}

	if _, ok := conns[conn]; ok {
		delete(conns, conn)
		conn.Close()
		h.log.Infof("[hub] unregister room=%s conns=%d", roomID, len(conns))
	}

	if len(conns) == 0 {
		delete(h.rooms, roomID)
		h.log.Infof("[hub] delete room=%s", roomID)
	}
}

func (h *Hub) Count(roomID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[roomID])
}

// SendToRoom writes msg to every connection in roomID. Each write is bounded
// by writeWait; a connection that fails or times out is unregistered.
// Writes are not synchronized per connection, so only one goroutine may send.
func (h *Hub) SendToRoom(roomID string, msg []byte) {
	h.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(h.rooms[roomID]))
	for conn := range h.rooms[roomID] {
		conns = append(conns, conn)
	}
	h.mu.RUnlock()

	if len(conns) == 0 {
		return
	}

	var dead []*websocket.Conn
	for _, conn := range conns {
		_ = conn.SetWriteDeadline(time.Now().Add(h.writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			h.log.Infof("[hub][SEND-ERR] room=%s err=%v", roomID, err)
			dead = append(dead, conn)
		}
	}

	for _, conn := range dead {
		h.Unregister(roomID, conn)
	}

	h.log.Infof("[hub][SEND] room=%s conns=%d dead=%d bytes=%d", roomID, len(conns), len(dead), len(msg))
}

// Broadcast delivers a saved lead to RoomAll and to the sales rep's room.
func (h *Hub) Broadcast(ev models.LeadEvent) {
	payload, err := json.Marshal(ev)
	if err != nil {
		h.log.Infof("[hub][ERR] marshal lead=%s err=%v", ev.LeadID, err)
		return
	}

	h.SendToRoom(RoomAll, payload)
	if ev.SalesRep != "" && ev.SalesRep != RoomAll {
		h.SendToRoom(ev.SalesRep, payload)
	}
}

var Upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

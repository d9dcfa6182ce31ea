package ws

import (
	"net/http"
)

// Handler upgrades the request and keeps the connection in its room until the
// client goes away. Clients only listen; inbound messages are discarded.
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		conn, err := Upgrader.Upgrade(w, r, nil)
		if err != nil {
			hub.log.Infof("[WS] upgrade failed: %v", err)
			return
		}

		roomID := r.URL.Query().Get("room")
		if roomID == "" {
			roomID = RoomAll
		}

		hub.Register(roomID, conn)
		defer hub.Unregister(roomID, conn)

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				hub.log.Infof("[WS] disconnect room=%s", roomID)
				return
			}
		}
	}
}

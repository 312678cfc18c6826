package server

import (
	"log/slog"
	"net/http"
)

// WSHandler handles WebSocket connections for the single-session game.
func WSHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("ws upgrade", "error", err)
		return
	}
	defer conn.Close()

	session := GetSession()
	session.HandleConnection(conn)
}

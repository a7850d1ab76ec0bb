package ws

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Channel connections are unauthenticated; the browser client connects
	// cross-origin during development.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Serve upgrades the request and attaches the connection to the hub.
func Serve(hub *Hub, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			logger.Error("websocket upgrade failed", "error", err)
			return
		}

		client := NewClient(conn, hub)
		hub.register <- client

		go client.WritePump()
		go client.ReadPump()
	}
}

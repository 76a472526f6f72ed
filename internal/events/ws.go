package events

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // read-only feed, any page may listen
	},
}

// WSHandler registers the caller for events until it disconnects. Incoming
// messages are ignored.
func WSHandler(hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}

		_ = ws.WriteMessage(websocket.TextMessage, []byte(`{"type":"welcome"}`))
		hub.Add(ws)
		hub.log.Debug("ws client connected", "remote", c.ClientIP())

		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				break
			}
		}

		hub.Remove(ws)
		hub.log.Debug("ws client disconnected", "remote", c.ClientIP())
	}
}

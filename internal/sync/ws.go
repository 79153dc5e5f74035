package sync

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"recohub/pkg/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // browser clients connect from any origin, same as the HTTP API
	},
}

// TokenParser maps a bearer token to a user id. The ws endpoint takes the
// token as a query parameter because browser WebSocket clients cannot set
// an Authorization header.
type TokenParser func(token string) (userID string, err error)

func WSHandler(hub *Hub, parse TokenParser, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := ""
		if token := c.Query("token"); token != "" && parse != nil {
			id, err := parse(token)
			if err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
				return
			}
			userID = id
		}

		ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}

		hub.AddWS(ws, userID)
		log.Info("ws client connected", "authenticated", userID != "")

		_ = ws.WriteMessage(
			websocket.TextMessage,
			[]byte(`{"type":"welcome","transport":"websocket"}`+"\n"),
		)

		// Keep connection alive (ignore incoming messages)
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				break
			}
		}

		hub.RemoveWS(ws)
		log.Info("ws client disconnected")
	}
}

package handlers

import (
	"net/http"
	"os"

	"gtd_assistant/internal/logger"
	"gtd_assistant/internal/service"
	"gtd_assistant/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// WS upgrades the connection and attaches the client to the task event
// feed. Browsers cannot set headers on websocket dials, so the JWT
// comes in as a query parameter.
func (h *Handler) WS() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "token required"})
			return
		}

		userID, err := service.ParseJWT(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		allowedOrigin := os.Getenv("ALLOWED_ORIGIN")
		upgrader := websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				if allowedOrigin == "" {
					return true
				}
				return r.Header.Get("Origin") == allowedOrigin
			},
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			logger.Warn("ws upgrade error", "error", err)
			return
		}

		client := ws.NewClient(userID, conn, h.Hub)
		go client.Run()
	}
}

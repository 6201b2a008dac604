package feed

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"bwbackbone/internal/pkg/response"

	jwtsvc "bwbackbone/internal/pkg/jwt"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,

	// Browsers cannot set Authorization headers on websocket dials, so the
	// dashboard passes the token as a query parameter and origin checking is
	// left to the CORS layer.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Handler struct {
	hub *Hub
	jwt *jwtsvc.Service
}

func NewHandler(hub *Hub, jwt *jwtsvc.Service) *Handler {
	return &Handler{hub: hub, jwt: jwt}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/feed", h.Subscribe)
}

// Subscribe upgrades the connection and streams floor events until the client
// goes away.
func (h *Handler) Subscribe(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing token")
		return
	}
	if _, err := h.jwt.ValidateToken(token); err != nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("feed upgrade failed: %v", err)
		return
	}

	connID := uuid.NewString()
	h.hub.Register(connID, conn)

	// Reads are drained only to detect disconnect; the feed is one-way.
	go func() {
		defer h.hub.Unregister(connID)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

package ws

import (
	"errors"
	"net/http"
	"strings"

	"mentorlink/internal/pkg/jwt"
	"mentorlink/internal/pkg/logger"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gorilla/websocket"
)

type Handler struct {
	hub *Hub
	jwt jwt.Service
	log logger.Logger
}

func NewHandler(hub *Hub, jwtSvc jwt.Service, log logger.Logger) *Handler {
	return &Handler{hub: hub, jwt: jwtSvc, log: log}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleEventsWS authenticates via the token query parameter (browsers
// cannot set headers on websocket dials) and upgrades the connection.
func (h *Handler) HandleEventsWS(c fiber.Ctx) error {
	if h == nil || h.hub == nil {
		return fiber.ErrServiceUnavailable
	}

	claims, err := h.authenticate(c.Query("token"))
	if err != nil {
		return fiber.ErrUnauthorized
	}

	fiberHandler := adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			if h.log != nil {
				h.log.Warn("ws upgrade failed", "error", err.Error())
			}
			return
		}

		client := NewClient(h.hub, conn, claims.UserID)
		h.hub.Register(client)
		go client.WritePump()
		go client.ReadPump()
	})

	return fiberHandler(c)
}

func (h *Handler) authenticate(token string) (jwt.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return jwt.Claims{}, errors.New("missing token")
	}

	claims, err := h.jwt.ValidateToken(token)
	if err != nil {
		return jwt.Claims{}, err
	}
	if claims.TokenType != jwt.TokenTypeAccess {
		return jwt.Claims{}, errors.New("not an access token")
	}
	return claims, nil
}

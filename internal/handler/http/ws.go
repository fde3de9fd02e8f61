package http

import (
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/my-movies/internal/app"
	"github.com/MKhiriev/my-movies/internal/events"
	"github.com/MKhiriev/my-movies/internal/logger"
	"github.com/MKhiriev/my-movies/internal/utils"
	"github.com/MKhiriev/my-movies/models"
)

const (
	wsWriteWait      = 10 * time.Second
	wsPongWait       = 60 * time.Second
	wsPingPeriod     = (wsPongWait * 9) / 10
	wsMaxMessageSize = 4 * 1024
)

// subscribe upgrades GET /ws?token=... to a websocket that streams event
// bus messages. Tokens travel in the query because browsers cannot set
// headers on websocket requests.
func (h *Handler) subscribe(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	token := r.URL.Query().Get("token")
	if token == "" {
		utils.WriteError(w, app.MsgMissingWSToken, http.StatusUnauthorized)
		return
	}

	claims, err := h.services.AuthService.VerifyToken(r.Context(), token)
	if err != nil {
		log.Debug().Err(err).Msg("websocket token rejected")
		utils.WriteError(w, err.Error(), http.StatusUnauthorized)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader has already answered the request
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	client := &wsClient{
		conn:   conn,
		sub:    h.events.Subscribe(),
		claims: claims,
		logger: log.With().Str("user_id", claims.UserID()).Logger(),
	}
	log.Info().Str("user_id", claims.UserID()).Msg("websocket subscriber connected")

	go client.writePump(client.readPump())
}

// checkOrigin follows the CORS configuration: an empty list allows every
// origin, otherwise only listed origins and same-origin requests pass.
func (h *Handler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || len(h.server.CORSAllowedOrigins) == 0 {
		return true
	}
	if slices.Contains(h.server.CORSAllowedOrigins, "*") || slices.Contains(h.server.CORSAllowedOrigins, origin) {
		return true
	}
	u, err := url.Parse(origin)
	return err == nil && strings.EqualFold(u.Host, r.Host)
}

// visibleTo reports whether claims may see msg. Everybody receives the
// events of their own account; admins also receive account events of other
// users.
func visibleTo(msg events.Message, claims models.Claims) bool {
	if msg.UserID == claims.UserID() {
		return true
	}
	return claims.IsAdmin() && (msg.Type == events.UserCreated || msg.Type == events.UserUpdated)
}

type wsClient struct {
	conn   *websocket.Conn
	sub    *events.Subscription
	claims models.Claims
	logger zerolog.Logger
}

// readPump discards inbound frames and keeps the read deadline alive on
// pongs. The returned channel is closed once the peer goes away.
func (c *wsClient) readPump() <-chan struct{} {
	done := make(chan struct{})

	c.conn.SetReadLimit(wsMaxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(wsPongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})

	go func() {
		defer close(done)
		for {
			if _, _, err := c.conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					c.logger.Warn().Err(err).Msg("unexpected websocket close")
				}
				return
			}
		}
	}()

	return done
}

// writePump forwards visible bus messages and pings the peer until either
// side goes away.
func (c *wsClient) writePump(done <-chan struct{}) {
	ticker := time.NewTicker(wsPingPeriod)
	defer func() {
		ticker.Stop()
		c.sub.Close()
		_ = c.conn.Close()
		c.logger.Info().Msg("websocket subscriber disconnected")
	}()

	for {
		select {
		case <-done:
			return

		case msg, ok := <-c.sub.C():
			_ = c.conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
				return
			}
			if !visibleTo(msg, c.claims) {
				continue
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg.Data); err != nil {
				c.logger.Debug().Err(err).Msg("websocket write failed")
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

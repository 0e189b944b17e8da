package http

import (
	"net/http"

	"github.com/coder/websocket"

	"github.com/stefpopov/go-wine-cellar/internal/logger"
)

// serveWS upgrades the request and parks the connection in the push hub.
// The read loop only detects disconnects; clients never send frames.
func (h *Handler) serveWS(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		log.Err(err).Str("func", "Handler.serveWS").Msg("websocket upgrade failed")
		return
	}

	h.hub.Add(conn)
	defer h.hub.Remove(conn)

	// the handler blocks for the connection's lifetime so the request
	// context stays alive for reads
	for {
		if _, _, err = conn.Read(r.Context()); err != nil {
			return
		}
	}
}

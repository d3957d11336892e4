package server

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/innovation-engine/innovation/protocol"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// hub tracks websocket observers per game and fans state updates out to
// them. Observers are read-only; game mutations arrive over HTTP.
type hub struct {
	mu    sync.Mutex
	conns map[string][]*websocket.Conn
	log   zerolog.Logger
}

func newHub(log zerolog.Logger) *hub {
	return &hub{
		conns: map[string][]*websocket.Conn{},
		log:   log,
	}
}

func (h *hub) add(gameID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[gameID] = append(h.conns[gameID], conn)
}

func (h *hub) remove(gameID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	observers := h.conns[gameID]
	for i, c := range observers {
		if c == conn {
			h.conns[gameID] = append(observers[:i], observers[i+1:]...)
			break
		}
	}
	if len(h.conns[gameID]) == 0 {
		delete(h.conns, gameID)
	}
	conn.Close()
}

// broadcast pushes a response to every observer of a game, dropping
// connections that fail to write.
func (h *hub) broadcast(gameID string, resp protocol.GameResponse) {
	h.mu.Lock()
	observers := append([]*websocket.Conn{}, h.conns[gameID]...)
	h.mu.Unlock()

	for _, conn := range observers {
		if err := conn.WriteJSON(resp); err != nil {
			h.log.Warn().Err(err).Str("game_id", gameID).Msg("dropping observer")
			h.remove(gameID, conn)
		}
	}
}

// handleWS upgrades an observer connection for /ws?game_id=<id> and sends
// the current summary immediately so late joiners catch up.
func (s *GameServer) handleWS(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game_id")
	sess, ok := s.store.FindGame(gameID)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("unknown game ID"))
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	summary := sess.Summary()
	if err := conn.WriteJSON(protocol.GameResponse{
		Command: protocol.SummaryCmd(summary),
		GameID:  gameID,
		Summary: summary,
	}); err != nil {
		conn.Close()
		return
	}

	s.hub.add(gameID, conn)
	s.log.Info().Str("game_id", gameID).Msg("observer attached")

	go func() {
		defer s.hub.remove(gameID, conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

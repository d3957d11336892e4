package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/handlers"
	"github.com/joeshaw/envdecode"
	"github.com/rs/zerolog"

	innovation "github.com/innovation-engine/innovation"
	"github.com/innovation-engine/innovation/protocol"
)

// Config is the server's environment-derived configuration.
type Config struct {
	Addr          string `env:"INNOVATION_ADDR,default=:8000"`
	AllowedOrigin string `env:"INNOVATION_ALLOWED_ORIGIN,default=*"`

	// CardsPath points at an external card table; empty means the
	// built-in base set.
	CardsPath string `env:"INNOVATION_CARDS,default="`
}

// ConfigFromEnv decodes Config from the process environment.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("server config: %w", err)
	}
	return cfg, nil
}

// GameServer exposes the rules engine over HTTP and pushes state changes
// to websocket observers. One session per game serializes access, so
// handlers never touch a GameData concurrently.
type GameServer struct {
	engine *innovation.Engine
	store  innovation.GameStore
	hub    *hub
	log    zerolog.Logger

	http.Server
}

// NewServer wires the routes and middleware around a store.
func NewServer(engine *innovation.Engine, store innovation.GameStore, cfg Config, log zerolog.Logger) *GameServer {
	s := &GameServer{
		engine: engine,
		store:  store,
		hub:    newHub(log),
		log:    log,
	}

	router := http.NewServeMux()
	router.Handle("/new", http.HandlerFunc(s.handleNewGame))
	router.Handle("/load", http.HandlerFunc(s.handleLoadGame))
	router.Handle("/game/", http.HandlerFunc(s.handleGame))
	router.Handle("/ws", http.HandlerFunc(s.handleWS))

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{cfg.AllowedOrigin}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)
	s.Addr = cfg.Addr
	s.Handler = handlers.RecoveryHandler()(cors(router))

	return s
}

func (s *GameServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Handler.ServeHTTP(w, r)
}

// handleNewGame creates a game from a seed and registers its session.
func (s *GameServer) handleNewGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req protocol.NewGameRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	opts := []innovation.GameOption{}
	if req.GameID != "" {
		opts = append(opts, innovation.WithGameID(req.GameID))
	}
	game, err := s.engine.NewGame(req.Seed, opts...)
	if err != nil {
		s.log.Error().Err(err).Msg("could not create game")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	sess := innovation.NewSession(s.engine, game)
	if err := s.store.AddGame(sess); err != nil {
		s.log.Error().Err(err).Str("game_id", game.GameID).Msg("could not register game")
		w.WriteHeader(http.StatusConflict)
		return
	}

	s.log.Info().Str("game_id", game.GameID).Uint32("seed", req.Seed).Msg("game created")
	s.writeJSON(w, http.StatusCreated, protocol.GameResponse{
		Command: protocol.GameCreated,
		GameID:  game.GameID,
		Summary: sess.Summary(),
	})
}

// handleLoadGame restores a session from a save envelope.
func (s *GameServer) handleLoadGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req protocol.LoadGameRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	game, err := s.engine.DeserializeGame(req.Save)
	if err != nil {
		s.log.Warn().Err(err).Msg("rejected save data")
		s.writeJSON(w, errStatus(err), protocol.GameResponse{Command: protocol.Error, Error: err.Error()})
		return
	}

	sess := innovation.NewSession(s.engine, game)
	if err := s.store.AddGame(sess); err != nil {
		w.WriteHeader(http.StatusConflict)
		return
	}

	s.log.Info().Str("game_id", game.GameID).Msg("game loaded")
	s.writeJSON(w, http.StatusOK, protocol.GameResponse{
		Command: protocol.GameLoaded,
		GameID:  game.GameID,
		Summary: sess.Summary(),
	})
}

// handleGame routes /game/{id} and its subresources.
func (s *GameServer) handleGame(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/game/")
	parts := strings.SplitN(rest, "/", 2)
	gameID := parts[0]
	sub := ""
	if len(parts) == 2 {
		sub = parts[1]
	}
	if gameID == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("missing game ID"))
		return
	}

	sess, ok := s.store.FindGame(gameID)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(fmt.Sprintf("unknown game ID '%s'", gameID)))
		return
	}

	switch {
	case sub == "" && r.Method == http.MethodGet:
		s.writeJSON(w, http.StatusOK, protocol.GameResponse{
			Command: protocol.StateUpdate,
			GameID:  gameID,
			Summary: sess.Summary(),
		})
	case sub == "action" && r.Method == http.MethodPost:
		s.handleAction(w, r, sess)
	case sub == "choice" && r.Method == http.MethodPost:
		s.handleChoice(w, r, sess)
	case sub == "legal" && r.Method == http.MethodGet:
		s.handleLegal(w, r, sess)
	case sub == "save" && r.Method == http.MethodGet:
		s.handleSave(w, sess)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (s *GameServer) handleAction(w http.ResponseWriter, r *http.Request, sess *innovation.Session) {
	var act innovation.Action
	if !s.decodeBody(w, r, &act) {
		return
	}

	summary, err := sess.Act(act)
	if err != nil {
		s.writeJSON(w, errStatus(err), protocol.GameResponse{
			Command: protocol.Error,
			GameID:  sess.ID(),
			Error:   err.Error(),
		})
		return
	}

	s.log.Info().
		Str("game_id", sess.ID()).
		Str("action", string(act.Type)).
		Int("player", int(act.Player)).
		Msg("action processed")
	s.push(sess.ID(), summary)
	s.writeJSON(w, http.StatusOK, protocol.GameResponse{
		Command: protocol.SummaryCmd(summary),
		GameID:  sess.ID(),
		Summary: summary,
	})
}

func (s *GameServer) handleChoice(w http.ResponseWriter, r *http.Request, sess *innovation.Session) {
	var ans innovation.ChoiceAnswer
	if !s.decodeBody(w, r, &ans) {
		return
	}

	summary, err := sess.Answer(ans)
	if err != nil {
		s.writeJSON(w, errStatus(err), protocol.GameResponse{
			Command: protocol.Error,
			GameID:  sess.ID(),
			Error:   err.Error(),
		})
		return
	}

	s.log.Info().Str("game_id", sess.ID()).Int("player", int(ans.Player)).Msg("choice resolved")
	s.push(sess.ID(), summary)
	s.writeJSON(w, http.StatusOK, protocol.GameResponse{
		Command: protocol.SummaryCmd(summary),
		GameID:  sess.ID(),
		Summary: summary,
	})
}

func (s *GameServer) handleLegal(w http.ResponseWriter, r *http.Request, sess *innovation.Session) {
	p, err := strconv.Atoi(r.URL.Query().Get("player"))
	if err != nil || !innovation.PlayerID(p).Valid() {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("missing or invalid player"))
		return
	}
	player := innovation.PlayerID(p)
	s.writeJSON(w, http.StatusOK, protocol.LegalActionsResponse{
		GameID:  sess.ID(),
		Player:  player,
		Actions: sess.LegalActions(player),
	})
}

func (s *GameServer) handleSave(w http.ResponseWriter, sess *innovation.Session) {
	raw, err := sess.Save()
	if err != nil {
		s.log.Error().Err(err).Str("game_id", sess.ID()).Msg("could not serialize game")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Add("Content-Type", "application/json")
	w.Write(raw)
}

func (s *GameServer) push(gameID string, summary innovation.GameSummary) {
	s.hub.broadcast(gameID, protocol.GameResponse{
		Command: protocol.SummaryCmd(summary),
		GameID:  gameID,
		Summary: summary,
	})
}

func (s *GameServer) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	bytes, err := json.Marshal(payload)
	if err != nil {
		s.log.Error().Err(err).Msg("could not marshal response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes)
}

// decodeBody parses a JSON request body into v, reporting 400 on a
// missing or malformed body. Returns false when the request was rejected.
func (s *GameServer) decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if r.Body == nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("missing body"))
		return false
	}
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if err == io.EOF {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte("missing body"))
			return false
		}
		s.log.Warn().Err(err).Msg("unparseable request body")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("malformed body"))
		return false
	}
	return true
}

// errStatus maps engine errors onto HTTP statuses: turn-order and
// suspension conflicts are 409, malformed or illegal input is 400 or 422,
// anything else is a server fault.
func errStatus(err error) int {
	switch {
	case errors.Is(err, innovation.ErrGameOver),
		errors.Is(err, innovation.ErrNotYourTurn),
		errors.Is(err, innovation.ErrAwaitingChoice),
		errors.Is(err, innovation.ErrNoPendingChoice):
		return http.StatusConflict
	case errors.Is(err, innovation.ErrInvalidChoice),
		errors.Is(err, innovation.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, innovation.ErrPreconditionViolation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, innovation.ErrCorrupted),
		errors.Is(err, innovation.ErrParseFailure),
		errors.Is(err, innovation.ErrValidation),
		errors.Is(err, innovation.ErrUnsupportedMigration):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

package innovation

import (
	"fmt"
	"sync"
)

// Session owns the latest snapshot of one game and serializes access to
// it. The engine itself is single-threaded by contract; the session is
// the one-instance-one-owner lock the host application is required to
// hold around each game.
type Session struct {
	mu     sync.Mutex
	engine *Engine
	game   *GameData
}

func NewSession(e *Engine, g *GameData) *Session {
	return &Session{engine: e, game: g}
}

func (s *Session) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.GameID
}

// Act applies one action to the session's game.
func (s *Session) Act(act Action) (GameSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ng, err := s.engine.ProcessAction(s.game, act)
	if err != nil {
		return GameSummary{}, err
	}
	s.game = ng
	return s.engine.Summary(ng), nil
}

// Answer resolves the game's pending choice.
func (s *Session) Answer(ans ChoiceAnswer) (GameSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ng, err := s.engine.ProcessChoiceAnswer(s.game, ans)
	if err != nil {
		return GameSummary{}, err
	}
	s.game = ng
	return s.engine.Summary(ng), nil
}

// Snapshot returns an independent copy of the current state.
func (s *Session) Snapshot() *GameData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Clone()
}

func (s *Session) Summary() GameSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Summary(s.game)
}

func (s *Session) LegalActions(p PlayerID) []Action {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.PlayerLegalActions(s.game, p)
}

// Save externalizes the current snapshot through the serializer.
func (s *Session) Save() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.SerializeGame(s.game)
}

// GameStore maps game ids to live sessions.
type GameStore interface {
	FindGame(id string) (*Session, bool)
	AddGame(sess *Session) error
	RemoveGame(id string)
	GameIDs() []string
}

// InMemoryGameStore is the default store: a mutex-guarded map. A
// persistent backend would implement GameStore over the serializer.
type InMemoryGameStore struct {
	mu    sync.RWMutex
	games map[string]*Session
}

func NewInMemoryGameStore() *InMemoryGameStore {
	return &InMemoryGameStore{games: map[string]*Session{}}
}

func (s *InMemoryGameStore) FindGame(id string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.games[id]
	return sess, ok
}

func (s *InMemoryGameStore) AddGame(sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := sess.ID()
	if _, exists := s.games[id]; exists {
		return fmt.Errorf("game with id %s already exists", id)
	}
	s.games[id] = sess
	return nil
}

func (s *InMemoryGameStore) RemoveGame(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, id)
}

func (s *InMemoryGameStore) GameIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.games))
	for id := range s.games {
		ids = append(ids, id)
	}
	return ids
}

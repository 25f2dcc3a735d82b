package selfplay

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/andrewref/pyrisk/internal/game"
)

type instance struct {
	engine       *game.Engine
	createdAt    time.Time
	lastActivity time.Time
}

// Manager owns the active game engines. The engines themselves are
// single-game contexts over the shared board graph, so running many games
// concurrently is only a matter of creating more engines; access to any one
// engine must still be serialized by its driver.
type Manager struct {
	mu       sync.RWMutex
	games    map[string]*instance
	maxGames int
	logger   zerolog.Logger
}

// NewManager creates a manager capped at maxGames concurrent games.
// maxGames <= 0 means unlimited.
func NewManager(maxGames int, logger zerolog.Logger) *Manager {
	return &Manager{
		games:    make(map[string]*instance),
		maxGames: maxGames,
		logger:   logger.With().Str("component", "GameManager").Logger(),
	}
}

// Create deals a new game and registers it under a fresh ID.
func (m *Manager) Create(players int, rng *rand.Rand) (string, *game.Engine, error) {
	m.mu.RLock()
	current := len(m.games)
	m.mu.RUnlock()

	if m.maxGames > 0 && current >= m.maxGames {
		m.logger.Warn().
			Int("current_games", current).
			Int("max_games", m.maxGames).
			Msg("Rejecting game creation - manager at capacity")
		return "", nil, fmt.Errorf("manager at capacity: %d/%d games active", current, m.maxGames)
	}

	gameID := uuid.NewString()
	engine, err := game.NewEngine(game.Config{
		GameID:  gameID,
		Players: players,
		Rng:     rng,
		Logger:  m.logger,
	})
	if err != nil {
		return "", nil, fmt.Errorf("creating game: %w", err)
	}

	now := time.Now()
	m.mu.Lock()
	m.games[gameID] = &instance{engine: engine, createdAt: now, lastActivity: now}
	m.mu.Unlock()

	m.logger.Info().Str("game_id", gameID).Int("players", players).Msg("Game created")
	return gameID, engine, nil
}

// Get returns the engine for an ID and refreshes its activity timestamp.
func (m *Manager) Get(gameID string) (*game.Engine, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	inst, ok := m.games[gameID]
	if !ok {
		return nil, false
	}
	inst.lastActivity = time.Now()
	return inst.engine, true
}

// Remove drops a game from the manager.
func (m *Manager) Remove(gameID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.games[gameID]; ok {
		delete(m.games, gameID)
		m.logger.Info().Str("game_id", gameID).Msg("Game removed")
	}
}

// Len returns the number of active games.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}

// CleanupIdle removes games untouched for longer than maxIdle and returns
// how many were dropped.
func (m *Manager) CleanupIdle(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, inst := range m.games {
		if inst.lastActivity.Before(cutoff) {
			delete(m.games, id)
			removed++
			m.logger.Info().
				Str("game_id", id).
				Time("last_activity", inst.lastActivity).
				Msg("Removed idle game")
		}
	}
	return removed
}

// RunCleanup periodically removes idle games until the context is done.
func (m *Manager) RunCleanup(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.CleanupIdle(maxIdle)
		}
	}
}

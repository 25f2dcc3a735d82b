package game

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/andrewref/pyrisk/internal/game/core"
	"github.com/andrewref/pyrisk/internal/game/events"
	"github.com/andrewref/pyrisk/internal/game/rules"
)

// The board graph is static and game-independent: build it once and share it
// read-only across every engine in the process.
var sharedBoard = sync.OnceValue(core.NewBoard)

// Last-event strings are a compatibility surface for drivers that scrape
// them; keep them byte-stable.
const (
	eventGameReset       = "Game reset"
	eventBadAdjacency    = "Invalid adjacency"
	eventBadOwnership    = "Invalid ownership"
	eventNotEnoughTroops = "Not enough troops"
	eventBadTerritory    = "Unknown territory"
)

// Config carries the knobs for a new engine. Zero values get defaults:
// 4 players, a time-seeded RNG, a fresh event bus and a uuid game ID.
type Config struct {
	GameID   string
	Players  int
	Rng      *rand.Rand
	Logger   zerolog.Logger
	EventBus *events.EventBus
}

// Engine owns the mutable state of one game: ownership and troop tables,
// the turn pointer and the last-event text. It is the per-game context
// object; concurrent games each get their own Engine over the shared board.
// An Engine is not safe for concurrent use, callers must serialize access.
type Engine struct {
	board    *core.Board
	space    *rules.ActionSpace
	gameID   string
	logger   zerolog.Logger
	eventBus *events.EventBus
	rng      *rand.Rand

	winCheck  *rules.WinConditionChecker
	legalCalc *rules.LegalAttackCalculator

	players   int
	owner     []int // indexed by territory
	troops    []int // indexed by territory
	cur       int
	lastEvent string
	ended     bool
}

// NewEngine creates an engine and deals a fresh game.
func NewEngine(cfg Config) (*Engine, error) {
	if cfg.Players == 0 {
		cfg.Players = 4
	}
	if cfg.Rng == nil {
		cfg.Rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.GameID == "" {
		cfg.GameID = uuid.NewString()
	}
	if cfg.EventBus == nil {
		cfg.EventBus = events.NewEventBus()
	}

	board := sharedBoard()
	logger := cfg.Logger.With().
		Str("component", "GameEngine").
		Str("game_id", cfg.GameID).
		Logger()

	e := &Engine{
		board:     board,
		space:     rules.NewActionSpace(board),
		gameID:    cfg.GameID,
		logger:    logger,
		eventBus:  cfg.EventBus,
		rng:       cfg.Rng,
		winCheck:  rules.NewWinConditionChecker(logger),
		legalCalc: rules.NewLegalAttackCalculator(),
	}
	if err := e.Reset(cfg.Players); err != nil {
		return nil, err
	}
	return e, nil
}

// Reset starts a fresh nPlayers game: territories are shuffled and dealt
// round-robin so ownership is as balanced as ties allow, every territory
// gets exactly one troop, and the turn pointer returns to player 0.
func (e *Engine) Reset(nPlayers int) error {
	if nPlayers <= 0 {
		return fmt.Errorf("%w: %d", core.ErrInvalidPlayerCount, nPlayers)
	}

	n := e.board.NumTerritories()
	deck := make([]core.Territory, n)
	for i := range deck {
		deck[i] = core.Territory(i)
	}
	e.rng.Shuffle(n, func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })

	e.owner = make([]int, n)
	e.troops = make([]int, n)
	for i, t := range deck {
		e.owner[t] = i % nPlayers
	}
	for i := range e.troops {
		e.troops[i] = 1
	}

	e.players = nPlayers
	e.cur = 0
	e.ended = false
	e.lastEvent = eventGameReset

	e.eventBus.Publish(events.NewGameResetEvent(e.gameID, nPlayers, n))
	e.logger.Info().Int("players", nPlayers).Int("territories", n).Msg("Game reset")
	return nil
}

// GameID returns the engine's game identifier.
func (e *Engine) GameID() string { return e.gameID }

// Board returns the shared immutable board graph.
func (e *Engine) Board() *core.Board { return e.board }

// EventBus returns the bus this engine publishes game events on.
func (e *Engine) EventBus() *events.EventBus { return e.eventBus }

// NumPlayers returns the number of players dealt into the current game.
func (e *Engine) NumPlayers() int { return e.players }

// CurrentPlayer returns the turn pointer.
func (e *Engine) CurrentPlayer() int { return e.cur }

// NextPlayer advances the turn pointer, wrapping from the last player back
// to player 0. It performs no game-over check: the caller decides when to
// stop driving the game.
func (e *Engine) NextPlayer() {
	e.cur = (e.cur + 1) % e.players
	e.eventBus.Publish(events.NewTurnAdvancedEvent(e.gameID, e.cur))
}

// Owner returns the territory's owning player index.
func (e *Engine) Owner(t core.Territory) int { return e.owner[t] }

// Troops returns the territory's troop count.
func (e *Engine) Troops(t core.Territory) int { return e.troops[t] }

// Neighbors returns the territories adjacent to t.
func (e *Engine) Neighbors(t core.Territory) []core.Territory {
	return e.board.Neighbors(t)
}

// IsEnemy reports whether the territory is held by someone other than the
// current player.
func (e *Engine) IsEnemy(t core.Territory) bool { return e.owner[t] != e.cur }

// MyTerritories returns the territories held by the current player, in
// owner-loop order (ascending territory index, not guaranteed by contract).
func (e *Engine) MyTerritories() []core.Territory {
	var mine []core.Territory
	for t := range e.owner {
		if e.owner[t] == e.cur {
			mine = append(mine, core.Territory(t))
		}
	}
	return mine
}

// GameOver reports whether a single player holds every territory.
func (e *Engine) GameOver() bool {
	over, _ := e.winCheck.Check(e.owner)
	return over
}

// Winner returns the winning player index, or -1 while the board is still
// contested.
func (e *Engine) Winner() int {
	_, winner := e.winCheck.Check(e.owner)
	return winner
}

// LastEvent returns the human-readable description of the most recent reset
// or attack outcome.
func (e *Engine) LastEvent() string { return e.lastEvent }

// NumActions returns the size of the flat (source, target) action space.
func (e *Engine) NumActions() int { return e.board.NumActions() }

// ActionSpace returns the (source, target) pair indexing for this board.
func (e *Engine) ActionSpace() *rules.ActionSpace { return e.space }

// LegalAttacks returns a mask over the flat action space marking the attacks
// the current player could make right now.
func (e *Engine) LegalAttacks() []bool {
	return e.legalCalc.Mask(e.board, e.space, e.owner, e.troops, e.cur)
}

// Attack attempts a single attack from att into tgt for the current player.
// Validation failures leave state unchanged, record a descriptive last-event
// message and return false; they are recoverable by design so a driver can
// treat illegal actions as no-ops with feedback.
func (e *Engine) Attack(att, tgt core.Territory) bool {
	action := &core.AttackAction{Player: e.cur, From: att, To: tgt}
	res, err := core.ApplyAttack(e.board, e.owner, e.troops, action)
	if err != nil {
		e.lastEvent = rejectionText(err)
		e.eventBus.Publish(events.NewAttackRejectedEvent(
			e.gameID, e.cur, e.territoryName(att), e.territoryName(tgt), e.lastEvent))
		e.logger.Debug().
			Err(err).
			Int("player", e.cur).
			Str("from", e.territoryName(att)).
			Str("to", e.territoryName(tgt)).
			Msg("Attack rejected")
		return false
	}

	// The legacy message names the previous turn-order player, not the
	// territory's actual former owner; drivers scrape it, so it stays.
	// The captured event below carries the real previous owner.
	prevTurn := (e.cur - 1 + e.players) % e.players
	e.lastEvent = fmt.Sprintf("%s took %s from %s",
		playerName(e.cur), e.board.Name(tgt), playerName(prevTurn))

	e.eventBus.Publish(events.NewTerritoryCapturedEvent(
		e.gameID, e.cur, e.board.Name(att), e.board.Name(tgt), res.Moved, res.PreviousOwner))
	e.logger.Debug().
		Int("player", e.cur).
		Str("from", e.board.Name(att)).
		Str("to", e.board.Name(tgt)).
		Int("moved", res.Moved).
		Int("previous_owner", res.PreviousOwner).
		Msg("Territory captured")

	if over, winner := e.winCheck.Check(e.owner); over && !e.ended {
		e.ended = true
		e.eventBus.Publish(events.NewGameEndedEvent(e.gameID, winner))
		e.logger.Info().Int("winner", winner).Msg("Game over")
	}
	return true
}

// territoryName tolerates out-of-range indices so rejection paths can always
// report something useful.
func (e *Engine) territoryName(t core.Territory) string {
	if !e.board.Valid(t) {
		return fmt.Sprintf("territory(%d)", int(t))
	}
	return e.board.Name(t)
}

func playerName(i int) string { return fmt.Sprintf("AI_%d", i) }

func rejectionText(err error) string {
	switch {
	case errors.Is(err, core.ErrNotAdjacent):
		return eventBadAdjacency
	case errors.Is(err, core.ErrInvalidOwnership):
		return eventBadOwnership
	case errors.Is(err, core.ErrInsufficientTroops):
		return eventNotEnoughTroops
	case errors.Is(err, core.ErrUnknownTerritory):
		return eventBadTerritory
	default:
		return err.Error()
	}
}

package selfplay

import (
	"context"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/andrewref/pyrisk/internal/game"
)

// EpisodeResult summarizes one self-play episode.
type EpisodeResult struct {
	GameID  string
	Turns   int
	Attacks int
	// Winner is -1 when the episode hit the turn limit before conquest.
	Winner int
}

// Runner drives complete episodes with uniformly random agents: each turn
// the current player picks one legal attack at random (or passes when it has
// none) and then yields the turn. One attack per turn, matching the
// environment's single-attack semantics.
type Runner struct {
	maxTurns int
	rng      *rand.Rand
	logger   zerolog.Logger

	// OnTurn, when set, is called at the start of every turn before the
	// agent acts. Useful for progress dumps.
	OnTurn func(turn int, e *game.Engine)
}

// NewRunner creates a runner. maxTurns bounds an episode so a stalled random
// game still terminates.
func NewRunner(maxTurns int, rng *rand.Rand, logger zerolog.Logger) *Runner {
	return &Runner{
		maxTurns: maxTurns,
		rng:      rng,
		logger:   logger.With().Str("component", "EpisodeRunner").Logger(),
	}
}

// Play runs one episode to conquest or the turn limit.
func (r *Runner) Play(ctx context.Context, e *game.Engine) (*EpisodeResult, error) {
	res := &EpisodeResult{GameID: e.GameID(), Winner: -1}

	for res.Turns = 0; res.Turns < r.maxTurns; res.Turns++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if e.GameOver() {
			res.Winner = e.Winner()
			break
		}
		if r.OnTurn != nil {
			r.OnTurn(res.Turns, e)
		}

		if idx, ok := r.pickAction(e.LegalAttacks()); ok {
			att, tgt, _ := e.ActionSpace().Decode(idx)
			if e.Attack(att, tgt) {
				res.Attacks++
			}
		}
		e.NextPlayer()
	}

	r.logger.Info().
		Str("game_id", res.GameID).
		Int("turns", res.Turns).
		Int("attacks", res.Attacks).
		Int("winner", res.Winner).
		Msg("Episode finished")
	return res, nil
}

// pickAction chooses uniformly among the set indices of the mask.
func (r *Runner) pickAction(mask []bool) (int, bool) {
	legal := 0
	for _, ok := range mask {
		if ok {
			legal++
		}
	}
	if legal == 0 {
		return 0, false
	}
	nth := r.rng.Intn(legal)
	for i, ok := range mask {
		if !ok {
			continue
		}
		if nth == 0 {
			return i, true
		}
		nth--
	}
	return 0, false // unreachable
}

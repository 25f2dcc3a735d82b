package rules

import "github.com/rs/zerolog"

// WinConditionChecker handles game over detection and winner determination.
// The only win condition is total conquest: the game is over once every
// territory shares the owner of the first territory in canonical order.
type WinConditionChecker struct {
	logger zerolog.Logger
}

// NewWinConditionChecker creates a new win condition checker
func NewWinConditionChecker(logger zerolog.Logger) *WinConditionChecker {
	return &WinConditionChecker{
		logger: logger.With().Str("component", "WinConditionChecker").Logger(),
	}
}

// Check returns (isGameOver, winnerID). owners is indexed by territory.
// Returns winner -1 while the board is still contested.
func (wc *WinConditionChecker) Check(owners []int) (bool, int) {
	if len(owners) == 0 {
		return false, -1
	}
	first := owners[0]
	for _, o := range owners[1:] {
		if o != first {
			return false, -1
		}
	}
	wc.logger.Debug().Int("winner_player_id", first).Msg("Single-owner condition met")
	return true, first
}

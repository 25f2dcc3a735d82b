package events

import "time"

// Event type constants
const (
	TypeGameReset         = "game.reset"
	TypeAttackRejected    = "attack.rejected"
	TypeTerritoryCaptured = "territory.captured"
	TypeTurnAdvanced      = "turn.advanced"
	TypeGameEnded         = "game.ended"
)

// GameResetEvent is published when a game (re)starts.
type GameResetEvent struct {
	BaseEvent
	NumPlayers     int
	NumTerritories int
}

// NewGameResetEvent creates a new GameResetEvent
func NewGameResetEvent(gameID string, numPlayers, numTerritories int) *GameResetEvent {
	return &GameResetEvent{
		BaseEvent: BaseEvent{
			EventType: TypeGameReset,
			Time:      time.Now(),
			Game:      gameID,
		},
		NumPlayers:     numPlayers,
		NumTerritories: numTerritories,
	}
}

// AttackRejectedEvent is published when an attack fails validation. Rejected
// attacks leave game state untouched, so a driver can treat them as no-ops
// with feedback.
type AttackRejectedEvent struct {
	BaseEvent
	Player int
	From   string
	To     string
	Reason string
}

// NewAttackRejectedEvent creates a new AttackRejectedEvent
func NewAttackRejectedEvent(gameID string, player int, from, to, reason string) *AttackRejectedEvent {
	return &AttackRejectedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeAttackRejected,
			Time:      time.Now(),
			Game:      gameID,
		},
		Player: player,
		From:   from,
		To:     to,
		Reason: reason,
	}
}

// TerritoryCapturedEvent is published when an attack succeeds.
// PreviousOwner is the player who actually held the target before the
// capture (unlike the legacy last-event text, which names the previous
// turn-order player).
type TerritoryCapturedEvent struct {
	BaseEvent
	Player        int
	From          string
	To            string
	Moved         int
	PreviousOwner int
}

// NewTerritoryCapturedEvent creates a new TerritoryCapturedEvent
func NewTerritoryCapturedEvent(gameID string, player int, from, to string, moved, previousOwner int) *TerritoryCapturedEvent {
	return &TerritoryCapturedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeTerritoryCaptured,
			Time:      time.Now(),
			Game:      gameID,
		},
		Player:        player,
		From:          from,
		To:            to,
		Moved:         moved,
		PreviousOwner: previousOwner,
	}
}

// TurnAdvancedEvent is published when the turn pointer moves.
type TurnAdvancedEvent struct {
	BaseEvent
	Player int
}

// NewTurnAdvancedEvent creates a new TurnAdvancedEvent
func NewTurnAdvancedEvent(gameID string, player int) *TurnAdvancedEvent {
	return &TurnAdvancedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeTurnAdvanced,
			Time:      time.Now(),
			Game:      gameID,
		},
		Player: player,
	}
}

// GameEndedEvent is published once, when a single player holds every
// territory.
type GameEndedEvent struct {
	BaseEvent
	Winner int
}

// NewGameEndedEvent creates a new GameEndedEvent
func NewGameEndedEvent(gameID string, winner int) *GameEndedEvent {
	return &GameEndedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeGameEnded,
			Time:      time.Now(),
			Game:      gameID,
		},
		Winner: winner,
	}
}

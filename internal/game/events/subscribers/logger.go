package subscribers

import (
	"github.com/rs/zerolog"

	"github.com/andrewref/pyrisk/internal/game/events"
)

// LoggerSubscriber writes game events to structured logs.
type LoggerSubscriber struct {
	id              string
	logger          zerolog.Logger
	eventTypeFilter map[string]bool // nil means log all event types
}

// NewLoggerSubscriber creates a new logger subscriber
func NewLoggerSubscriber(id string, logger zerolog.Logger) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:     id,
		logger: logger.With().Str("subscriber", "event_logger").Logger(),
	}
}

// ID returns the subscriber's unique identifier
func (ls *LoggerSubscriber) ID() string { return ls.id }

// SetEventFilter sets which event types to log (empty means log all)
func (ls *LoggerSubscriber) SetEventFilter(eventTypes []string) {
	if len(eventTypes) == 0 {
		ls.eventTypeFilter = nil
		return
	}
	ls.eventTypeFilter = make(map[string]bool, len(eventTypes))
	for _, eventType := range eventTypes {
		ls.eventTypeFilter[eventType] = true
	}
}

// InterestedIn returns true if the subscriber wants to receive this event type
func (ls *LoggerSubscriber) InterestedIn(eventType string) bool {
	if ls.eventTypeFilter == nil {
		return true
	}
	return ls.eventTypeFilter[eventType]
}

// HandleEvent processes an event by logging it. High-traffic per-turn events
// log at debug, lifecycle events at info.
func (ls *LoggerSubscriber) HandleEvent(event events.Event) {
	level := zerolog.InfoLevel
	switch event.Type() {
	case events.TypeAttackRejected, events.TypeTurnAdvanced:
		level = zerolog.DebugLevel
	}

	entry := ls.logger.WithLevel(level).
		Str("event_type", event.Type()).
		Str("game_id", event.GameID())

	switch e := event.(type) {
	case *events.GameResetEvent:
		entry = entry.Int("players", e.NumPlayers).Int("territories", e.NumTerritories)
	case *events.AttackRejectedEvent:
		entry = entry.
			Int("player", e.Player).
			Str("from", e.From).
			Str("to", e.To).
			Str("reason", e.Reason)
	case *events.TerritoryCapturedEvent:
		entry = entry.
			Int("player", e.Player).
			Str("from", e.From).
			Str("to", e.To).
			Int("moved", e.Moved).
			Int("previous_owner", e.PreviousOwner)
	case *events.TurnAdvancedEvent:
		entry = entry.Int("player", e.Player)
	case *events.GameEndedEvent:
		entry = entry.Int("winner", e.Winner)
	}

	entry.Msg("Game event")
}

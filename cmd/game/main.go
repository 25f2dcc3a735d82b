package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/andrewref/pyrisk/internal/config"
	"github.com/andrewref/pyrisk/internal/game"
	"github.com/andrewref/pyrisk/internal/game/events"
	"github.com/andrewref/pyrisk/internal/game/events/subscribers"
	"github.com/andrewref/pyrisk/internal/selfplay"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	players := flag.Int("players", -1, "Number of players (-1 to use config default)")
	seed := flag.Int64("seed", -1, "RNG seed (-1 to use config default)")
	maxTurns := flag.Int("max-turns", -1, "Episode turn limit (-1 to use config default)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	cfg := config.Get()

	if *players == -1 {
		*players = cfg.Game.DefaultPlayers
	}
	if *seed == -1 {
		*seed = cfg.Game.Seed
	}
	if *maxTurns == -1 {
		*maxTurns = cfg.Selfplay.MaxEpisodeTurns
	}
	if *logLevel == "" {
		*logLevel = cfg.Log.Level
	}

	setupLogging(*logLevel, cfg.Log.Format)

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	log.Info().
		Int("players", *players).
		Int64("seed", *seed).
		Int("max_turns", *maxTurns).
		Msg("Starting self-play demo")

	manager := selfplay.NewManager(cfg.Selfplay.MaxGames, log.Logger)
	gameID, engine, err := manager.Create(*players, rng)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create game")
	}

	fmt.Printf("Initial board:\n%s\n\n", engine.Map())

	// Log captures and game end on the engine's bus.
	eventLogger := subscribers.NewLoggerSubscriber("demo", log.Logger)
	eventLogger.SetEventFilter([]string{events.TypeTerritoryCaptured, events.TypeGameEnded})
	engine.EventBus().Subscribe(eventLogger)

	runner := selfplay.NewRunner(*maxTurns, rng, log.Logger)
	if interval := cfg.Selfplay.MapDumpInterval; interval > 0 {
		runner.OnTurn = func(turn int, e *game.Engine) {
			if turn > 0 && turn%interval == 0 {
				fmt.Printf("Board after %d turns:\n%s\n\n", turn, e.Map())
			}
		}
	}
	result, err := runner.Play(context.Background(), engine)
	if err != nil {
		log.Fatal().Err(err).Msg("Episode failed")
	}

	fmt.Printf("Final board after %d turns:\n%s\n\n", result.Turns, engine.Map())
	fmt.Printf("Last event: %s\n", engine.LastEvent())

	if result.Winner >= 0 {
		fmt.Printf("Game over! AI_%d holds the whole board after %d attacks.\n",
			result.Winner, result.Attacks)
	} else {
		fmt.Printf("Turn limit reached with no winner (%d attacks).\n", result.Attacks)
	}

	manager.Remove(gameID)
}

func setupLogging(level, format string) {
	var logLevel zerolog.Level
	switch level {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "info":
		logLevel = zerolog.InfoLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	if format == "json" || os.Getenv("APP_ENV") == "production" {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		})
	}
}

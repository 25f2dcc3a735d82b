package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Game     GameConfig     `mapstructure:"game"`
	Selfplay SelfplayConfig `mapstructure:"selfplay"`
	Log      LogConfig      `mapstructure:"log"`
}

// GameConfig holds game mechanics configuration
type GameConfig struct {
	// DefaultPlayers is used when a driver does not specify a player count.
	DefaultPlayers int `mapstructure:"default_players"`
	// Seed seeds the game RNG; 0 means seed from the clock.
	Seed int64 `mapstructure:"seed"`
}

// SelfplayConfig holds self-play driver settings
type SelfplayConfig struct {
	// MaxGames caps the number of concurrently managed games.
	MaxGames int `mapstructure:"max_games"`
	// MaxEpisodeTurns bounds an episode in case random agents stall.
	MaxEpisodeTurns int `mapstructure:"max_episode_turns"`
	// MapDumpInterval controls how often (in turns) the demo driver prints
	// the board; 0 disables intermediate dumps.
	MapDumpInterval int `mapstructure:"map_dump_interval"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	v.SetDefault("game.default_players", 4)
	v.SetDefault("game.seed", 0)

	v.SetDefault("selfplay.max_games", 100)
	v.SetDefault("selfplay.max_episode_turns", 2000)
	v.SetDefault("selfplay.map_dump_interval", 50)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()

	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("PYRISK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if configPath != "" {
			// Specific file requested but not readable; fall back to defaults.
		} else if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// Set allows runtime config updates
func Set(key string, value interface{}) {
	v.Set(key, value)
	v.Unmarshal(cfg)
}

// WatchConfig enables hot-reloading of the config file
func WatchConfig(onChange func()) {
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		v.Unmarshal(cfg)
		if onChange != nil {
			onChange()
		}
	})
}

// Validate validates the configuration values
func Validate(c *Config) error {
	if c.Game.DefaultPlayers <= 0 {
		return fmt.Errorf("game.default_players must be positive")
	}
	if c.Selfplay.MaxGames <= 0 {
		return fmt.Errorf("selfplay.max_games must be positive")
	}
	if c.Selfplay.MaxEpisodeTurns <= 0 {
		return fmt.Errorf("selfplay.max_episode_turns must be positive")
	}
	if c.Selfplay.MapDumpInterval < 0 {
		return fmt.Errorf("selfplay.map_dump_interval must be non-negative")
	}
	return nil
}

package cli

import (
	"log/slog"

	"github.com/saylorsolutions/cmdsig/env"
)

const (
	EnvLogLevel        = "CMDSIG_LOG_LEVEL"        // EnvLogLevel sets the level of the default logger, one of debug, info, warn, or error.
	EnvInteractiveFlag = "CMDSIG_INTERACTIVE_FLAG" // EnvInteractiveFlag changes the flag that triggers [CommandSet.RespondInteractive].
)

// Config holds settings that affect how a [CommandSet] behaves, rather than what commands do.
type Config struct {
	LogLevel        slog.Level
	InteractiveFlag string // InteractiveFlag specifies the flag that the user should pass to trigger [CommandSet.RespondInteractive].
}

// DefaultConfig returns the configuration used when nothing is set in the environment.
func DefaultConfig() Config {
	return Config{
		LogLevel:        slog.LevelWarn,
		InteractiveFlag: "-i",
	}
}

// LoadConfig reads configuration from the environment, falling back to [DefaultConfig] for anything that isn't set or can't be parsed.
// Variable names are compared case-insensitive.
func LoadConfig() Config {
	return loadConfig(env.Load())
}

func loadConfig(vars env.Vars) Config {
	cfg := DefaultConfig()
	cfg.LogLevel = vars.Level(EnvLogLevel, cfg.LogLevel)
	cfg.InteractiveFlag = vars.Val(EnvInteractiveFlag, cfg.InteractiveFlag)
	return cfg
}

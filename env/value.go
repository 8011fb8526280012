// Package env reads configuration from environment variables.
// Keys are compared case-insensitive, and values are trimmed.
package env

import (
	"log/slog"
	"os"
	"strings"
)

// Vars is a snapshot of environment variables, keyed by lower-case name.
type Vars map[string]string

// Load takes a snapshot of the process environment.
func Load() Vars {
	return Parse(os.Environ())
}

// Parse builds [Vars] from "KEY=value" pairs, as returned by [os.Environ].
// Pairs without an "=" are ignored.
func Parse(environ []string) Vars {
	vars := Vars{}
	for _, kv := range environ {
		key, val, found := strings.Cut(kv, "=")
		if !found {
			continue
		}
		vars[strings.ToLower(key)] = val
	}
	return vars
}

// Val will attempt to get an environment variable value using the given key.
// If the variable isn't set, or is empty, then the defaultVal will be returned.
func (v Vars) Val(key string, defaultVal string) string {
	if val, ok := v[strings.ToLower(key)]; ok {
		trimmed := strings.TrimSpace(val)
		if len(trimmed) == 0 {
			return defaultVal
		}
		return trimmed
	}
	return defaultVal
}

// Level parses a [slog.Level] like "debug", "info", "warn", "error", or "info+2".
// The defaultVal will be returned if the variable isn't set, is empty, or isn't a level.
func (v Vars) Level(key string, defaultVal slog.Level) slog.Level {
	sval := v.Val(key, "")
	if len(sval) == 0 {
		return defaultVal
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(sval)); err != nil {
		return defaultVal
	}
	return level
}

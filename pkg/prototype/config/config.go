package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// Config wraps a decoded document for typed value extraction.
type Config struct {
	data map[string]any
}

// New creates a Config from the given map.
// If data is nil, an empty Config is returned.
func New(data map[string]any) Config {
	if data == nil {
		data = make(map[string]any)
	}
	return Config{data: data}
}

// String returns the string value for key, or defaultVal if missing or not a string.
func (c Config) String(key, defaultVal string) string {
	if s, ok := c.data[key].(string); ok {
		return s
	}
	return defaultVal
}

// Bool returns the boolean value for key, or defaultVal if missing or not a bool.
func (c Config) Bool(key string, defaultVal bool) bool {
	if b, ok := c.data[key].(bool); ok {
		return b
	}
	return defaultVal
}

// LogLevel parses a level name ("debug", "info", "warn", "error") for key.
// Unknown or missing values yield defaultVal.
func (c Config) LogLevel(key string, defaultVal slog.Level) slog.Level {
	s, ok := c.data[key].(string)
	if !ok {
		return defaultVal
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return defaultVal
	}
	return level
}

// Map returns the nested object under key with string keys, or nil.
//
// YAML decodes nested objects as map[string]any; map[any]any from other
// decoders is accepted when every key is a string.
func (c Config) Map(key string) map[string]any {
	m, err := stringMap(c.data[key])
	if err != nil {
		return nil
	}
	return m
}

// Has returns true if the key exists in the config.
func (c Config) Has(key string) bool {
	_, ok := c.data[key]
	return ok
}

func stringMap(v any) (map[string]any, error) {
	switch m := v.(type) {
	case map[string]any:
		return m, nil
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string key %v", k)
			}
			out[ks] = val
		}
		return out, nil
	default:
		return nil, fmt.Errorf("not an object: %T", v)
	}
}

package logger

import (
	"fmt"
	"log/slog"
	"strings"
)

// Level selects the minimum severity that a logger emits.
type Level int

const (
	InfoLevel Level = iota
	DebugLevel
	WarnLevel
	ErrorLevel
	DefaultLevel Level = InfoLevel
)

var levels = map[Level]slog.Level{
	DebugLevel: slog.LevelDebug,
	InfoLevel:  slog.LevelInfo,
	WarnLevel:  slog.LevelWarn,
	ErrorLevel: slog.LevelError,
}

var levelNames = map[string]Level{
	"debug": DebugLevel,
	"info":  InfoLevel,
	"warn":  WarnLevel,
	"error": ErrorLevel,
}

// ParseLevel parses a level name: debug, info, warn, or error.
func ParseLevel(s string) (Level, error) {
	if lvl, ok := levelNames[strings.ToLower(s)]; ok {
		return lvl, nil
	}
	return DefaultLevel, fmt.Errorf("unknown log level %q", s)
}

func (lvl Level) String() string {
	for name, l := range levelNames {
		if l == lvl {
			return name
		}
	}
	return fmt.Sprintf("Level(%d)", int(lvl))
}

// Set implements flag.Value.
func (lvl *Level) Set(s string) error {
	l, err := ParseLevel(s)
	if err == nil {
		*lvl = l
	}
	return err
}

// UnmarshalText implements encoding.TextUnmarshaler, so that levels may be
// given by name in config files.
func (lvl *Level) UnmarshalText(text []byte) error {
	return lvl.Set(string(text))
}

package logging

import (
	"log/slog"
	"os"
)

// Level is the current log level of Default. To change the level at runtime,
// for example to DEBUG, call Level.Set(slog.LevelDebug)
var Level = new(slog.LevelVar)

// Default is a *slog.Logger configured with a JSON handler writing to stdout.
// Its level comes from the LOG_LEVEL environment variable and defaults to
// slog.LevelInfo if LOG_LEVEL is unset or holds an unknown value.
var Default *slog.Logger

func init() {
	Level.Set(levelFromEnv())
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: Level})
	Default = slog.New(handler)
	slog.SetDefault(Default)
}

func levelFromEnv() slog.Level {
	envLogLevel, levelIsSet := os.LookupEnv("LOG_LEVEL")
	if !levelIsSet || len(envLogLevel) == 0 {
		return slog.LevelInfo
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(envLogLevel)); err != nil {
		slog.Error("error unmarshalling LOG_LEVEL value",
			slog.String("LOG_LEVEL", envLogLevel),
			slog.Any("error", err))
		return slog.LevelInfo
	}
	return level
}

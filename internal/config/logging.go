package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

type LoggingConfig struct {
	Level  string `default:"info" validate:"oneof=debug info warn error"`
	Format string `default:"text" validate:"oneof=text json"`
}

func (c LoggingConfig) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.Level))); err != nil {
		return slog.LevelInfo
	}
	return level
}

func (c LoggingConfig) Handler(w io.Writer) (slog.Handler, error) {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}
	switch c.Format {
	case "", "text":
		return slog.NewTextHandler(w, opts), nil
	case "json":
		return slog.NewJSONHandler(w, opts), nil
	default:
		return nil, fmt.Errorf("invalid config, unknown logging format: %v", c.Format)
	}
}

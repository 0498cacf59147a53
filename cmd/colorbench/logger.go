package main

import (
	"io"
	"log/slog"
	"sort"
	"strings"
)

// handlerFor maps a -log-format value to its slog handler constructor.
var handlerFor = map[string]func(io.Writer, *slog.HandlerOptions) slog.Handler{
	"text": func(w io.Writer, o *slog.HandlerOptions) slog.Handler { return slog.NewTextHandler(w, o) },
	"json": func(w io.Writer, o *slog.HandlerOptions) slog.Handler { return slog.NewJSONHandler(w, o) },
}

// logFormats lists the accepted -log-format values, sorted.
func logFormats() []string {
	names := make([]string, 0, len(handlerFor))
	for name := range handlerFor {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// parseLevel accepts anything slog.Level understands: "debug", "INFO",
// "warn+2" and so on.
func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	err := lvl.UnmarshalText([]byte(strings.TrimSpace(s)))

	return lvl, err
}

// newLogger writes records at or above cfg.LogLevel to w in cfg.LogFormat.
// Parse has already rejected unknown formats; text is the fallback.
func newLogger(cfg *Config, w io.Writer) *slog.Logger {
	mk, ok := handlerFor[cfg.LogFormat]
	if !ok {
		mk = handlerFor["text"]
	}

	return slog.New(mk(w, &slog.HandlerOptions{Level: cfg.LogLevel}))
}

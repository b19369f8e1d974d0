package main

import (
	"context"
	"log/slog"
	"os"
)

var (
	logLevel = new(slog.LevelVar)
	theLog   = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
)

func debugEnabled() bool {
	return theLog.Enabled(context.Background(), slog.LevelDebug)
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package ctxlog carries a *slog.Logger through context.Context so that the
// parsing pipeline and the parsers it invokes log through the application's
// configured handler.
package ctxlog

import (
	"context"
	"log/slog"
)

// loggerKey is unexported to prevent collisions with keys from other packages.
type loggerKey struct{}

// discard is handed out when a context carries no logger. Library callers
// that never configure logging get silence rather than a panic.
var discard = slog.New(slog.DiscardHandler)

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext extracts the logger stored by WithLogger, or a logger that
// discards everything when none is present.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return discard
}

// Package logging is the client's structured-logging contract. Components
// take a Logger and bind their name with With("component", ...); the slog
// implementation below is the only one in the tree, but callers never depend
// on it directly.
package logging

import "context"

// Logger logs structured records. Args are alternating key-value pairs:
//
//	log.Info(ctx, "stored token expired", "key", key)
type Logger interface {
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger carrying the given pairs on every record.
	With(args ...any) Logger
}

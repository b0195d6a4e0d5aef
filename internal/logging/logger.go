// Package logging defines the structured-logging interface shared by the
// server and client binaries, so components never depend on a concrete
// logging backend.
package logging

import "context"

// Logger is a context-aware, structured logger. The variadic args are
// key–value pairs: log.Info(ctx, "starting server", "addr", addr).
type Logger interface {
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}

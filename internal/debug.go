package internal

import (
	"context"
	"io"
	"time"

	"github.com/davidmdm/ansi"
)

type debugKey struct{}

func WithDebug(ctx context.Context, debug bool) context.Context {
	return context.WithValue(ctx, debugKey{}, debug)
}

func Debug(ctx context.Context) ansi.Terminal {
	if debug, _ := ctx.Value(debugKey{}).(bool); !debug {
		return ansi.Terminal{Writer: io.Discard}
	}
	return ansi.Terminal{Writer: Stderr(ctx)}
}

// DebugTimer logs the start of msg and returns a func that logs its completion and
// reports the elapsed time.
func DebugTimer(ctx context.Context, msg string) func() time.Duration {
	start := time.Now()
	Debug(ctx).Printf("start: %s\n", msg)
	return func() time.Duration {
		elapsed := time.Since(start)
		Debug(ctx).Printf("done:  %s: %s\n\n", msg, elapsed)
		return elapsed
	}
}

//go:build windows

package main

import (
	"context"
	"os"
	"os/signal"
)

// buildContext returns a context canceled on Ctrl+C, so a build stops
// dispatching pages. Call stop() to restore default signal handling.
// syscall.SIGTERM is not delivered on Windows.
func buildContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt)
}

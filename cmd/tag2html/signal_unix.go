//go:build !windows

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// buildContext returns a context canceled on SIGINT or SIGTERM, so a build
// stops dispatching pages. Call stop() to restore default signal handling.
func buildContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

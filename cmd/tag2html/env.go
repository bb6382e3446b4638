package main

import (
	"io"
	"os"
	"time"

	"go.uber.org/automaxprocs/maxprocs"
	"golang.org/x/term"

	"github.com/alnah/go-tag2html/internal/assets"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, terminal detection, and style loading.
type Environment struct {
	Now         func() time.Time
	Stdin       io.Reader
	Stdout      io.Writer
	Stderr      io.Writer
	StyleLoader assets.StyleLoader

	// IsTerminal reports whether Stdin is interactive.
	IsTerminal func() bool

	// SetMaxProcs adjusts GOMAXPROCS before workers are sized.
	SetMaxProcs func(logf func(format string, args ...any))
}

// DefaultEnv returns production environment with embedded styles.
func DefaultEnv() *Environment {
	return &Environment{
		Now:         time.Now,
		Stdin:       os.Stdin,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		StyleLoader: assets.NewEmbeddedLoader(),
		IsTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd()))
		},
		SetMaxProcs: setMaxProcs,
	}
}

// setMaxProcs matches GOMAXPROCS to the container CPU quota.
// The error is ignored: maxprocs.Set only fails on an invalid GOMAXPROCS
// env value, and the runtime default then applies.
func setMaxProcs(logf func(format string, args ...any)) {
	_, _ = maxprocs.Set(maxprocs.Logger(logf))
}

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	tag2html "github.com/alnah/go-tag2html"
	"github.com/alnah/go-tag2html/internal/config"
	"github.com/alnah/go-tag2html/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrInvalidFlags     = errors.New("invalid flags")
	ErrUnexpectedArgs   = errors.New("unexpected arguments")
	ErrConflictingFlags = errors.New("conflicting flags")
	ErrUnknownCommand   = errors.New("unknown command")
	ErrNoPages          = errors.New("no pages found")
	ErrPrepareDirs      = errors.New("failed to create folders")
	ErrReadAnswer       = errors.New("failed to read answer")
	ErrClearOutput      = errors.New("failed to clear previous output")
	ErrAborted          = errors.New("aborted")
	ErrReadPage         = errors.New("failed to read page")
	ErrWritePage        = errors.New("failed to write page")
	ErrWriteStyle       = errors.New("failed to write stylesheet")
	ErrBuildFailed      = errors.New("some pages failed")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// runBuild converts every page of the input folder.
func runBuild(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseBuildFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: %s", ErrUnexpectedArgs, strings.Join(positional, " "))
	}
	if flags.clear.yes && flags.clear.keep {
		return fmt.Errorf("%w: --yes and --keep", ErrConflictingFlags)
	}

	logf := verboseLogger(env, flags.common.verbose)
	start := env.Now()

	env.SetMaxProcs(logf)
	warnUnknownEnvVars(env.Stderr)

	cfg, err := resolveConfig(flags, loadEnvConfig())
	if err != nil {
		return err
	}

	workers := tag2html.ResolveWorkers(cfg.Workers)
	logf("Workers: %d", workers)

	if err := prepareDirs(cfg); err != nil {
		return err
	}

	pages, err := discoverPages(cfg.Input.Dir, cfg.Output.Dir)
	if err != nil {
		return fmt.Errorf("discovering pages: %w", err)
	}
	if len(pages) == 0 {
		return fmt.Errorf("%w in %s%s", ErrNoPages, cfg.Input.Dir, hints.ForNoPages(cfg.Input.Dir))
	}
	logf("Pages found: %d", len(pages))

	if err := clearPreviousOutput(ctx, cfg.Output.Dir, flags.clear, logf, env); err != nil {
		return err
	}

	written, err := writeDefaultStyle(cfg, env.StyleLoader)
	if err != nil {
		return err
	}
	if written {
		logf("Wrote %s style to %s", cfg.Style.Theme, cfg.StylesheetPath())
	}

	conv := tag2html.NewConverter()
	results := convertBatch(ctx, conv, pages, cfg.StylesheetHref(), workers)

	failed := printResults(results, flags.common.quiet, flags.common.verbose, env)
	logf("Done in %v", env.Now().Sub(start).Round(time.Millisecond))

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrBuildFailed, failed, len(results))
	}
	return nil
}

// resolveConfig builds the effective configuration.
// Precedence: CLI flags > env vars > config file > defaults.
func resolveConfig(flags *buildFlags, env *envConfig) (*config.Config, error) {
	name := flags.common.config
	if name == "" {
		name = env.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		var err error
		cfg, err = config.LoadConfig(name)
		if err != nil {
			var searchErr *config.SearchError
			if errors.As(err, &searchErr) {
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(searchErr.Tried))
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	applyEnvConfig(env, cfg)
	mergeFlags(flags, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// prepareDirs creates the extras folder (and so the output folder) and
// the input folder when they are missing.
func prepareDirs(cfg *config.Config) error {
	if err := os.MkdirAll(cfg.ExtrasPath(), dirPermissions); err != nil {
		return fmt.Errorf("%w: %v%s", ErrPrepareDirs, err, hints.ForOutputDirectory())
	}
	if err := os.MkdirAll(cfg.Input.Dir, dirPermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrPrepareDirs, err)
	}
	return nil
}

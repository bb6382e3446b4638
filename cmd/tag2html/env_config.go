package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/alnah/go-tag2html/internal/config"
)

// envPrefix starts every environment variable read by tag2html.
const envPrefix = "TAG2HTML_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // TAG2HTML_CONFIG: config file name or path
	InputDir   string // TAG2HTML_INPUT_DIR: pages folder
	OutputDir  string // TAG2HTML_OUTPUT_DIR: output folder
	ExtrasDir  string // TAG2HTML_EXTRAS_DIR: extras folder inside the output folder
	Stylesheet string // TAG2HTML_STYLESHEET: stylesheet file name
	Theme      string // TAG2HTML_THEME: built-in style name
	Workers    int    // TAG2HTML_WORKERS: parallel workers
}

// knownEnvVars lists valid TAG2HTML_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"TAG2HTML_CONFIG":     true,
	"TAG2HTML_INPUT_DIR":  true,
	"TAG2HTML_OUTPUT_DIR": true,
	"TAG2HTML_EXTRAS_DIR": true,
	"TAG2HTML_STYLESHEET": true,
	"TAG2HTML_THEME":      true,
	"TAG2HTML_WORKERS":    true,
}

// loadEnvConfig reads configuration from environment variables.
// An unparsable or non-positive TAG2HTML_WORKERS is ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("TAG2HTML_CONFIG"),
		InputDir:   os.Getenv("TAG2HTML_INPUT_DIR"),
		OutputDir:  os.Getenv("TAG2HTML_OUTPUT_DIR"),
		ExtrasDir:  os.Getenv("TAG2HTML_EXTRAS_DIR"),
		Stylesheet: os.Getenv("TAG2HTML_STYLESHEET"),
		Theme:      os.Getenv("TAG2HTML_THEME"),
	}

	if workers := os.Getenv("TAG2HTML_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized TAG2HTML_* variables.
// Helps catch typos like TAG2HTML_OUTPUT instead of TAG2HTML_OUTPUT_DIR.
func warnUnknownEnvVars(w io.Writer) {
	var unknown []string
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
	}
}

// applyEnvConfig overrides config values with set environment variables.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.InputDir != "" {
		cfg.Input.Dir = env.InputDir
	}
	if env.OutputDir != "" {
		cfg.Output.Dir = env.OutputDir
	}
	if env.ExtrasDir != "" {
		cfg.Output.ExtrasDir = env.ExtrasDir
	}
	if env.Stylesheet != "" {
		cfg.Style.Stylesheet = env.Stylesheet
	}
	if env.Theme != "" {
		cfg.Style.Theme = env.Theme
	}
	if env.Workers > 0 {
		cfg.Workers = env.Workers
	}
}

// mergeFlags overrides config values with the flags that were set.
func mergeFlags(f *buildFlags, cfg *config.Config) {
	if f.paths.inputDir != "" {
		cfg.Input.Dir = f.paths.inputDir
	}
	if f.paths.outputDir != "" {
		cfg.Output.Dir = f.paths.outputDir
	}
	if f.paths.extrasDir != "" {
		cfg.Output.ExtrasDir = f.paths.extrasDir
	}
	if f.paths.stylesheet != "" {
		cfg.Style.Stylesheet = f.paths.stylesheet
	}
	if f.style.theme != "" {
		cfg.Style.Theme = f.style.theme
	}
	if f.style.noDefault {
		cfg.Style.SkipDefault = true
	}
	if f.workers != 0 {
		cfg.Workers = f.workers
	}
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tag2html "github.com/alnah/go-tag2html"
	"github.com/alnah/go-tag2html/internal/fileutil"
	"github.com/alnah/go-tag2html/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidField    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength = 4096 // PATH_MAX on Linux
	MaxNameLength = 255  // NAME_MAX on most filesystems
)

// Default values, matching the layout of a fresh site folder.
const (
	DefaultInputDir   = "./pages"
	DefaultOutputDir  = "./output"
	DefaultExtrasDir  = "ext"
	DefaultStylesheet = "style.css"
	DefaultTheme      = "default"
)

// appDirName is the folder searched under the user config directory.
const appDirName = "go-tag2html"

// Config holds all configuration for a site build.
type Config struct {
	Input   InputConfig  `yaml:"input"`
	Output  OutputConfig `yaml:"output"`
	Style   StyleConfig  `yaml:"style"`
	Workers int          `yaml:"workers"` // 0 = auto
}

// InputConfig defines where pages are read from.
type InputConfig struct {
	Dir string `yaml:"dir"`
}

// OutputConfig defines where pages and extras are written to.
type OutputConfig struct {
	Dir       string `yaml:"dir"`
	ExtrasDir string `yaml:"extrasDir"` // Relative to Dir
}

// StyleConfig defines the stylesheet linked from every page.
type StyleConfig struct {
	Stylesheet  string `yaml:"stylesheet"`  // File name inside the extras directory
	Theme       string `yaml:"theme"`       // Built-in style written when the stylesheet is missing
	SkipDefault bool   `yaml:"skipDefault"` // Never write the built-in style
}

// SearchError reports the locations tried when resolving a config name.
type SearchError struct {
	Tried []string
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("%v: tried %s", ErrConfigNotFound, strings.Join(e.Tried, ", "))
}

// Unwrap lets errors.Is match ErrConfigNotFound.
func (e *SearchError) Unwrap() error { return ErrConfigNotFound }

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Input:  InputConfig{Dir: DefaultInputDir},
		Output: OutputConfig{Dir: DefaultOutputDir, ExtrasDir: DefaultExtrasDir},
		Style:  StyleConfig{Stylesheet: DefaultStylesheet, Theme: DefaultTheme},
	}
}

// StylesheetHref returns the stylesheet reference written into pages.
// Pages live in the output directory, so the href is relative to it.
func (c *Config) StylesheetHref() string {
	return filepath.ToSlash(filepath.Join(c.Output.ExtrasDir, c.Style.Stylesheet))
}

// ExtrasPath returns the extras directory on disk.
func (c *Config) ExtrasPath() string {
	return filepath.Join(c.Output.Dir, c.Output.ExtrasDir)
}

// StylesheetPath returns the stylesheet file on disk.
func (c *Config) StylesheetPath() string {
	return filepath.Join(c.ExtrasPath(), c.Style.Stylesheet)
}

// Validate checks that paths are usable and values are in range.
// Called automatically by LoadConfig, but available for callers that
// merge flags and environment into a Config.
func (c *Config) Validate() error {
	if err := validateRequired("input.dir", c.Input.Dir, MaxPathLength); err != nil {
		return err
	}
	if err := validateRequired("output.dir", c.Output.Dir, MaxPathLength); err != nil {
		return err
	}
	if samePath(c.Input.Dir, c.Output.Dir) {
		return fmt.Errorf("%w: output.dir: must differ from input.dir %q", ErrInvalidField, c.Input.Dir)
	}
	if err := validateRequired("output.extrasDir", c.Output.ExtrasDir, MaxPathLength); err != nil {
		return err
	}
	if err := fileutil.ValidateLocalDir(c.Output.ExtrasDir); err != nil {
		return fmt.Errorf("%w: output.extrasDir: %v", ErrInvalidField, err)
	}
	if err := validateRequired("style.stylesheet", c.Style.Stylesheet, MaxNameLength); err != nil {
		return err
	}
	if err := fileutil.ValidateName(c.Style.Stylesheet); err != nil {
		return fmt.Errorf("%w: style.stylesheet: %v", ErrInvalidField, err)
	}
	if err := validateFieldLength("style.theme", c.Style.Theme, MaxNameLength); err != nil {
		return err
	}
	if c.Workers < 0 || c.Workers > tag2html.MaxWorkers {
		return fmt.Errorf("%w: workers: must be between 0 and %d, got %d", ErrInvalidField, tag2html.MaxWorkers, c.Workers)
	}
	return nil
}

// samePath reports whether a and b name the same folder once made absolute.
func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}

func validateRequired(fieldName, value string, maxLength int) error {
	if value == "" {
		return fmt.Errorf("%w: %s: required", ErrInvalidField, fieldName)
	}
	return validateFieldLength(fieldName, value, maxLength)
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Keys absent from the file keep their default value.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	f, err := os.Open(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	defer f.Close()

	cfg := DefaultConfig()
	if err := yamlutil.DecodeStrict(f, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, <user config dir>/go-tag2html/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	tried := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		tried = append(tried, localPath)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, appDirName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			tried = append(tried, userPath)
		}
	}

	return "", &SearchError{Tried: tried}
}

// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"
)

// IsCI detects a continuous integration environment, where no one can
// answer an interactive prompt.
var IsCI = func() bool {
	return os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""
}

// ForAborted returns hints after the user declined to clear previous output.
// In CI, the prompt cannot be answered, so the flags are the only way out.
func ForAborted() string {
	if IsCI() {
		return format("no one can answer the prompt in CI; pass --yes to clear previous output or --keep to preserve it")
	}
	return format("answer y to clear previous output, or pass --keep to build over it")
}

// ForNoPages returns a hint when the input directory holds no page files.
func ForNoPages(inputDir string) string {
	return format("add page files to " + inputDir + " or select another folder with --input-dir")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-tag2html/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-tag2html") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

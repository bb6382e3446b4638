package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-tag2html/internal/assets"
	"github.com/alnah/go-tag2html/internal/config"
	"github.com/alnah/go-tag2html/internal/fileutil"
	"github.com/alnah/go-tag2html/internal/hints"
)

// writeDefaultStyle writes the configured built-in style to the stylesheet
// path when no file exists there. An existing stylesheet is never touched.
// Returns whether a file was written.
func writeDefaultStyle(cfg *config.Config, loader assets.StyleLoader) (bool, error) {
	if cfg.Style.SkipDefault {
		return false, nil
	}

	path := cfg.StylesheetPath()
	if fileutil.FileExists(path) {
		return false, nil
	}

	css, err := loader.LoadStyle(cfg.Style.Theme)
	if err != nil {
		if errors.Is(err, assets.ErrStyleNotFound) {
			return false, fmt.Errorf("%w%s", err, hints.ForStyleNotFound(loader.Styles()))
		}
		return false, err
	}

	// #nosec G306 -- stylesheets are served with the pages
	if err := os.WriteFile(path, []byte(css), filePermissions); err != nil {
		return false, fmt.Errorf("%w: %v", ErrWriteStyle, err)
	}
	return true, nil
}

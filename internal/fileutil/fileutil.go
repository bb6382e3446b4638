// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrNameEmpty         = errors.New("name cannot be empty")
	ErrNamePathTraversal = errors.New("name contains path separator or null byte")
	ErrDirNotLocal       = errors.New("directory must be a relative path inside its parent")
)

// ValidateName checks that name is a plain file name, safe to join to a
// directory.
func ValidateName(name string) error {
	if name == "" {
		return ErrNameEmpty
	}
	if strings.ContainsAny(name, "/\\\x00") || name == "." || name == ".." {
		return fmt.Errorf("%w: %q", ErrNamePathTraversal, name)
	}
	return nil
}

// ValidateLocalDir checks that dir is a relative path that stays inside
// the directory it is joined to. Nested paths such as "assets/css" are
// accepted.
func ValidateLocalDir(dir string) error {
	if dir == "" {
		return ErrNameEmpty
	}
	if !filepath.IsLocal(dir) {
		return fmt.Errorf("%w: %q", ErrDirNotLocal, dir)
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "site" -> false (name)
//   - "./site.yaml" -> true (relative path)
//   - "/etc/tag2html/site.yaml" -> true (absolute)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// ListRegularFiles returns the paths of regular files directly inside dir,
// sorted by name. Symlinks to regular files are included; subdirectories
// are not descended into.
func ListRegularFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if isRegular(path, entry) {
			paths = append(paths, path)
		}
	}
	return paths, nil
}

// RemoveRegularFiles deletes the regular files directly inside dir and
// returns the removed paths. Subdirectories and their content are kept.
// A missing dir is not an error.
func RemoveRegularFiles(dir string) ([]string, error) {
	paths, err := ListRegularFiles(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	removed := make([]string, 0, len(paths))
	for _, path := range paths {
		if err := os.Remove(path); err != nil {
			return removed, fmt.Errorf("removing %s: %w", path, err)
		}
		removed = append(removed, path)
	}
	return removed, nil
}

func isRegular(path string, entry fs.DirEntry) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&fs.ModeSymlink != 0 {
		return FileExists(path)
	}
	return false
}

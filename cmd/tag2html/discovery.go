package main

import (
	"path/filepath"

	"github.com/alnah/go-tag2html/internal/fileutil"
)

// pageExt is appended to the full input file name.
const pageExt = ".html"

// PageFile represents a single page to build.
type PageFile struct {
	InputPath  string
	OutputPath string
}

// discoverPages lists the regular files directly inside inputDir, sorted
// by name, and pairs each with its output path in outputDir.
// Subfolders are not descended into.
func discoverPages(inputDir, outputDir string) ([]PageFile, error) {
	paths, err := fileutil.ListRegularFiles(inputDir)
	if err != nil {
		return nil, err
	}

	pages := make([]PageFile, 0, len(paths))
	for _, path := range paths {
		pages = append(pages, PageFile{
			InputPath:  path,
			OutputPath: outputPath(path, outputDir),
		})
	}
	return pages, nil
}

// outputPath keeps the input extension: pages/index.txt -> output/index.txt.html.
func outputPath(inputPath, outputDir string) string {
	return filepath.Join(outputDir, filepath.Base(inputPath)+pageExt)
}

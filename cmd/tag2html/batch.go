package main

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	tag2html "github.com/alnah/go-tag2html"
)

// PageConverter is the interface for the conversion service.
type PageConverter interface {
	Convert(ctx context.Context, input tag2html.Input) (*tag2html.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ PageConverter = (*tag2html.Converter)(nil)

// PageResult holds the outcome of a single page build.
type PageResult struct {
	InputPath  string
	OutputPath string
	Title      string
	Err        error
	Duration   time.Duration
}

// convertBatch builds pages concurrently with at most workers goroutines.
// Results are returned in the order of pages. Pages not started before
// ctx is done fail with ctx.Err().
func convertBatch(ctx context.Context, conv PageConverter, pages []PageFile, stylesheet string, workers int) []PageResult {
	if len(pages) == 0 {
		return nil
	}

	concurrency := min(max(workers, 1), len(pages))

	results := make([]PageResult, len(pages))
	var wg sync.WaitGroup
	jobs := make(chan int, len(pages))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range jobs {
				if err := ctx.Err(); err != nil {
					results[idx] = PageResult{
						InputPath:  pages[idx].InputPath,
						OutputPath: pages[idx].OutputPath,
						Err:        err,
					}
					continue
				}
				results[idx] = convertPage(ctx, conv, pages[idx], stylesheet)
			}
		}()
	}

	for i := range pages {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertPage reads, converts, and writes a single page.
func convertPage(ctx context.Context, conv PageConverter, page PageFile, stylesheet string) PageResult {
	start := time.Now()
	result := PageResult{
		InputPath:  page.InputPath,
		OutputPath: page.OutputPath,
	}

	content, err := os.ReadFile(page.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadPage, err)
		result.Duration = time.Since(start)
		return result
	}

	converted, err := conv.Convert(ctx, tag2html.Input{
		Source:     string(content),
		Stylesheet: stylesheet,
	})
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}
	result.Title = converted.Title

	// #nosec G306 -- pages are meant to be readable
	if err := os.WriteFile(page.OutputPath, converted.HTML, filePermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWritePage, err)
	}
	result.Duration = time.Since(start)
	return result
}

// ResultSummary holds the count of succeeded and failed pages.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed pages.
func countResults(results []PageResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults outputs page results and returns the number of failures.
func printResults(results []PageResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			title := r.Title
			if title == "" {
				title = "untitled"
			}
			fmt.Fprintf(env.Stdout, "%s -> %s [%s] (%v)\n", r.InputPath, r.OutputPath, title, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}

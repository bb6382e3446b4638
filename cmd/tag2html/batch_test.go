package main

// Notes:
// - convertBatch: order of results, worker bounds, converter errors, and
//   read/write failures. A mock converter records concurrency.
// - printResults: quiet/verbose output and failure count.

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	tag2html "github.com/alnah/go-tag2html"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Mock converter
// ---------------------------------------------------------------------------

type mockConverter struct {
	err     error
	delay   time.Duration
	active  atomic.Int32
	peak    atomic.Int32
	mu      sync.Mutex
	sources []string
}

func (m *mockConverter) Convert(_ context.Context, input tag2html.Input) (*tag2html.ConvertResult, error) {
	n := m.active.Add(1)
	defer m.active.Add(-1)
	for {
		peak := m.peak.Load()
		if n <= peak || m.peak.CompareAndSwap(peak, n) {
			break
		}
	}
	time.Sleep(m.delay)

	m.mu.Lock()
	m.sources = append(m.sources, input.Source)
	m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}
	return &tag2html.ConvertResult{
		HTML:  []byte(input.Stylesheet + "|" + input.Source),
		Title: "T-" + input.Source,
	}, nil
}

func makePages(t *testing.T, n int) []PageFile {
	t.Helper()

	in := t.TempDir()
	out := t.TempDir()
	files := make(map[string]string, n)
	pages := make([]PageFile, 0, n)
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("p%02d", i)
		files[name] = name
		pages = append(pages, PageFile{
			InputPath:  filepath.Join(in, name),
			OutputPath: filepath.Join(out, name+".html"),
		})
	}
	writeFiles(t, in, files)
	return pages
}

// ---------------------------------------------------------------------------
// TestConvertBatch - Parallel page builds
// ---------------------------------------------------------------------------

func TestConvertBatch_OrderAndOutput(t *testing.T) {
	t.Parallel()

	pages := makePages(t, 10)
	conv := &mockConverter{}

	results := convertBatch(context.Background(), conv, pages, "ext/style.css", 3)

	if len(results) != len(pages) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(pages))
	}
	for i, r := range results {
		if r.Err != nil {
			t.Errorf("results[%d].Err = %v", i, r.Err)
			continue
		}
		if r.InputPath != pages[i].InputPath {
			t.Errorf("results[%d].InputPath = %q, want %q", i, r.InputPath, pages[i].InputPath)
		}
		name := filepath.Base(pages[i].InputPath)
		if r.Title != "T-"+name {
			t.Errorf("results[%d].Title = %q, want %q", i, r.Title, "T-"+name)
		}
		if got, want := readFile(t, r.OutputPath), "ext/style.css|"+name; got != want {
			t.Errorf("%s = %q, want %q", r.OutputPath, got, want)
		}
	}
}

func TestConvertBatch_WorkerBound(t *testing.T) {
	t.Parallel()

	pages := makePages(t, 8)
	conv := &mockConverter{delay: 5 * time.Millisecond}

	convertBatch(context.Background(), conv, pages, "", 2)

	if peak := conv.peak.Load(); peak > 2 {
		t.Errorf("peak concurrency = %d, want <= 2", peak)
	}
	if len(conv.sources) != len(pages) {
		t.Errorf("converted %d pages, want %d", len(conv.sources), len(pages))
	}
}

func TestConvertBatch_ZeroWorkersStillRuns(t *testing.T) {
	t.Parallel()

	pages := makePages(t, 2)
	results := convertBatch(context.Background(), &mockConverter{}, pages, "", 0)

	if summary := countResults(results); summary.Succeeded != 2 {
		t.Errorf("Succeeded = %d, want 2", summary.Succeeded)
	}
}

func TestConvertBatch_Empty(t *testing.T) {
	t.Parallel()

	if results := convertBatch(context.Background(), &mockConverter{}, nil, "", 4); results != nil {
		t.Errorf("results = %v, want nil", results)
	}
}

func TestConvertBatch_ConverterError(t *testing.T) {
	t.Parallel()

	pages := makePages(t, 3)
	results := convertBatch(context.Background(), &mockConverter{err: tag2html.ErrInternal}, pages, "", 2)

	for i, r := range results {
		if !errors.Is(r.Err, tag2html.ErrInternal) {
			t.Errorf("results[%d].Err = %v, want ErrInternal", i, r.Err)
		}
		if exists(r.OutputPath) {
			t.Errorf("%s should not be written", r.OutputPath)
		}
	}
}

func TestConvertPage_IOErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"page": "x"})

	tests := []struct {
		name    string
		page    PageFile
		wantErr error
	}{
		{
			name:    "missing input",
			page:    PageFile{InputPath: filepath.Join(dir, "missing"), OutputPath: filepath.Join(dir, "missing.html")},
			wantErr: ErrReadPage,
		},
		{
			name:    "missing output folder",
			page:    PageFile{InputPath: filepath.Join(dir, "page"), OutputPath: filepath.Join(dir, "nope", "page.html")},
			wantErr: ErrWritePage,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := convertPage(context.Background(), &mockConverter{}, tt.page, "")
			if !errors.Is(r.Err, tt.wantErr) {
				t.Errorf("Err = %v, want %v", r.Err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestPrintResults - Result reporting
// ---------------------------------------------------------------------------

func TestPrintResults(t *testing.T) {
	t.Parallel()

	results := []PageResult{
		{InputPath: "pages/a", OutputPath: "output/a.html", Title: "Alpha", Duration: 3 * time.Millisecond},
		{InputPath: "pages/b", OutputPath: "output/b.html"},
		{InputPath: "pages/c", OutputPath: "output/c.html", Err: ErrReadPage},
	}

	tests := []struct {
		name          string
		quiet         bool
		verbose       bool
		wantStdout    []string
		notWantStdout []string
	}{
		{
			name:       "normal",
			wantStdout: []string{"Created output/a.html", "Created output/b.html", "2 succeeded, 1 failed"},
		},
		{
			name:          "quiet",
			quiet:         true,
			notWantStdout: []string{"Created", "succeeded"},
		},
		{
			name:       "verbose",
			verbose:    true,
			wantStdout: []string{"pages/a -> output/a.html [Alpha] (3ms)", "pages/b -> output/b.html [untitled]"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv("", false)
			failed := printResults(results, tt.quiet, tt.verbose, env.Environment)

			if failed != 1 {
				t.Errorf("failed = %d, want 1", failed)
			}
			if !strings.Contains(env.stderr.String(), "FAILED pages/c: "+ErrReadPage.Error()) {
				t.Errorf("stderr should report the failure, got %q", env.stderr)
			}
			for _, want := range tt.wantStdout {
				if !strings.Contains(env.stdout.String(), want) {
					t.Errorf("stdout should contain %q, got %q", want, env.stdout)
				}
			}
			for _, notWant := range tt.notWantStdout {
				if strings.Contains(env.stdout.String(), notWant) {
					t.Errorf("stdout should not contain %q, got %q", notWant, env.stdout)
				}
			}
		})
	}
}

func TestPrintResults_SinglePageNoSummary(t *testing.T) {
	t.Parallel()

	env := newTestEnv("", false)
	printResults([]PageResult{{OutputPath: "output/a.html"}}, false, false, env.Environment)

	if strings.Contains(env.stdout.String(), "succeeded") {
		t.Errorf("single page should not print a summary, got %q", env.stdout)
	}
}

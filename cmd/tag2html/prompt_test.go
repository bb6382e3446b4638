package main

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"
	"time"
)

// ---------------------------------------------------------------------------
// TestConfirmClear - Answer parsing
// ---------------------------------------------------------------------------

func TestConfirmClear(t *testing.T) {
	t.Parallel()

	tests := []struct {
		answer string
		want   bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"YeS\r\n", true},
		{"  y  \n", true},
		{"y", true},
		{"n\n", false},
		{"N\n", false},
		{"no\n", false},
		{"\n", false},
		{"", false},
		{"yes please\n", false},
		{"maybe\ny\n", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.answer, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv(tt.answer, false)
			got, err := confirmClear(context.Background(), env.Environment)
			if err != nil {
				t.Fatalf("confirmClear() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("confirmClear(%q) = %v, want %v", tt.answer, got, tt.want)
			}
		})
	}
}

func TestConfirmClear_QuestionOnlyOnTerminal(t *testing.T) {
	t.Parallel()

	for _, terminal := range []bool{true, false} {
		env := newTestEnv("y\n", terminal)
		if _, err := confirmClear(context.Background(), env.Environment); err != nil {
			t.Fatal(err)
		}
		if got := env.stdout.String() == clearQuestion; got != terminal {
			t.Errorf("terminal=%v: question shown = %v", terminal, got)
		}
	}
}

func TestConfirmClear_ReadError(t *testing.T) {
	t.Parallel()

	env := newTestEnv("", false)
	env.Stdin = iotest.ErrReader(errors.New("closed"))

	if _, err := confirmClear(context.Background(), env.Environment); !errors.Is(err, ErrReadAnswer) {
		t.Errorf("error = %v, want ErrReadAnswer", err)
	}
}

func TestConfirmClear_CanceledWhileWaiting(t *testing.T) {
	t.Parallel()

	// Nothing is ever written to the pipe, so the read blocks.
	stdin, stdinWriter := io.Pipe()
	t.Cleanup(func() { stdinWriter.Close() })

	env := newTestEnv("", true)
	env.Stdin = stdin

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() {
		_, err := confirmClear(ctx, env.Environment)
		errc <- err
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-errc:
		if !errors.Is(err, ErrAborted) {
			t.Errorf("error = %v, want ErrAborted", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("confirmClear() kept waiting after cancel")
	}
}

func TestConfirmClear_AlreadyCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	env := newTestEnv("y\n", true)
	ok, err := confirmClear(ctx, env.Environment)
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("error = %v, want ErrAborted", err)
	}
	if ok {
		t.Error("confirmClear() = true, want false")
	}
	if env.stdout.Len() != 0 {
		t.Errorf("question shown after cancel: %q", env.stdout.String())
	}
}

// ---------------------------------------------------------------------------
// TestClearPreviousOutput - Deletion rules
// ---------------------------------------------------------------------------

func TestClearPreviousOutput_NothingToDelete(t *testing.T) {
	t.Parallel()

	out := t.TempDir()
	writeFiles(t, filepath.Join(out, "ext"), map[string]string{"style.css": "x"})

	// An unreadable answer proves the prompt is never reached.
	env := newTestEnv("", false)
	env.Stdin = iotest.ErrReader(errors.New("must not read"))

	if err := clearPreviousOutput(context.Background(), out, clearFlags{}, func(string, ...any) {}, env.Environment); err != nil {
		t.Fatalf("clearPreviousOutput() error = %v", err)
	}
}

func TestClearPreviousOutput_Aborted(t *testing.T) {
	t.Parallel()

	out := t.TempDir()
	writeFiles(t, out, map[string]string{"old.html": "x"})

	err := clearPreviousOutput(context.Background(), out, clearFlags{}, func(string, ...any) {}, newTestEnv("n\n", false).Environment)
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("error = %v, want ErrAborted", err)
	}
	if !strings.Contains(err.Error(), "--keep") {
		t.Errorf("error should hint at --keep, got %q", err)
	}
	if !exists(filepath.Join(out, "old.html")) {
		t.Error("old.html should be kept")
	}
}

func TestClearPreviousOutput_CanceledKeepsFiles(t *testing.T) {
	t.Parallel()

	out := t.TempDir()
	writeFiles(t, out, map[string]string{"old.html": "x"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := clearPreviousOutput(ctx, out, clearFlags{}, func(string, ...any) {}, newTestEnv("y\n", false).Environment)
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("error = %v, want ErrAborted", err)
	}
	if !exists(filepath.Join(out, "old.html")) {
		t.Error("old.html should be kept")
	}
}

func TestClearPreviousOutput_LogsDeletedFiles(t *testing.T) {
	t.Parallel()

	out := t.TempDir()
	writeFiles(t, out, map[string]string{"a.html": "x", "b.html": "y"})

	var logged []string
	logf := func(format string, args ...any) {
		logged = append(logged, strings.TrimSpace(strings.ReplaceAll(format, "%s", args[0].(string))))
	}

	if err := clearPreviousOutput(context.Background(), out, clearFlags{yes: true}, logf, newTestEnv("", false).Environment); err != nil {
		t.Fatalf("clearPreviousOutput() error = %v", err)
	}

	want := []string{
		"Deleted " + filepath.Join(out, "a.html"),
		"Deleted " + filepath.Join(out, "b.html"),
	}
	if strings.Join(logged, "\n") != strings.Join(want, "\n") {
		t.Errorf("logged = %q, want %q", logged, want)
	}
}

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alnah/go-tag2html/internal/fileutil"
	"github.com/alnah/go-tag2html/internal/hints"
)

const clearQuestion = "Delete previous output? [y/N] "

// confirmClear asks whether to delete previous output and reads one line
// from env.Stdin. Only "y" or "yes" (any case) confirm; an empty answer
// or end of input declines. The question is shown only on a terminal.
// A done ctx stops the wait with ErrAborted.
func confirmClear(ctx context.Context, env *Environment) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("%w: %v", ErrAborted, err)
	}

	terminal := env.IsTerminal()
	if terminal {
		fmt.Fprint(env.Stdout, clearQuestion)
	}

	type reply struct {
		answer string
		err    error
	}
	// The reader is left blocked on cancel; the process exits soon after.
	replies := make(chan reply, 1)
	go func() {
		answer, err := bufio.NewReader(env.Stdin).ReadString('\n')
		replies <- reply{answer, err}
	}()

	var r reply
	select {
	case <-ctx.Done():
		if terminal {
			fmt.Fprintln(env.Stdout)
		}
		return false, fmt.Errorf("%w: %v", ErrAborted, ctx.Err())
	case r = <-replies:
	}

	if r.err != nil && !errors.Is(r.err, io.EOF) {
		return false, fmt.Errorf("%w: %v", ErrReadAnswer, r.err)
	}

	switch strings.ToLower(strings.TrimSpace(r.answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// clearPreviousOutput deletes the regular files of outputDir, asking
// first unless --yes or --keep was given. Subfolders, including the
// extras folder, are kept. Nothing is asked when there is nothing to delete.
func clearPreviousOutput(ctx context.Context, outputDir string, f clearFlags, logf func(string, ...any), env *Environment) error {
	if f.keep {
		return nil
	}

	existing, err := fileutil.ListRegularFiles(outputDir)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrClearOutput, err)
	}
	if len(existing) == 0 {
		return nil
	}

	if !f.yes {
		ok, err := confirmClear(ctx, env)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w%s", ErrAborted, hints.ForAborted())
		}
	}

	removed, err := fileutil.RemoveRegularFiles(outputDir)
	for _, path := range removed {
		logf("Deleted %s", path)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrClearOutput, err)
	}
	return nil
}

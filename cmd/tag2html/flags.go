package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// pathFlags holds the folder and stylesheet locations.
// Empty values leave the configured value untouched.
type pathFlags struct {
	inputDir   string
	outputDir  string
	extrasDir  string
	stylesheet string
}

// styleFlags holds the built-in stylesheet flags.
type styleFlags struct {
	theme     string
	noDefault bool
}

// clearFlags answer the "delete previous output" question up front.
type clearFlags struct {
	yes  bool
	keep bool
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common  commonFlags
	paths   pathFlags
	style   styleFlags
	clear   clearFlags
	workers int
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addPathFlags adds folder flags to a FlagSet.
func addPathFlags(fs *flag.FlagSet, f *pathFlags) {
	fs.StringVarP(&f.inputDir, "input-dir", "i", "", "folder to read pages from")
	fs.StringVarP(&f.outputDir, "output-dir", "o", "", "folder to write pages to")
	fs.StringVarP(&f.extrasDir, "extras-dir", "e", "", "extras folder inside the output folder")
	fs.StringVarP(&f.stylesheet, "stylesheet", "s", "", "stylesheet file name inside the extras folder")
}

// addStyleFlags adds built-in stylesheet flags to a FlagSet.
func addStyleFlags(fs *flag.FlagSet, f *styleFlags) {
	fs.StringVarP(&f.theme, "theme", "t", "", "built-in style written when the stylesheet is missing")
	fs.BoolVar(&f.noDefault, "no-default-style", false, "never write the built-in stylesheet")
}

// addClearFlags adds the previous output flags to a FlagSet.
func addClearFlags(fs *flag.FlagSet, f *clearFlags) {
	fs.BoolVarP(&f.yes, "yes", "y", false, "clear previous output without asking")
	fs.BoolVar(&f.keep, "keep", false, "keep previous output without asking")
}

// parseBuildFlags parses build command flags and returns positional args.
// Usage goes to w on -h or a parse error.
func parseBuildFlags(args []string, w io.Writer) (*buildFlags, []string, error) {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	fs.SetOutput(w)
	f := &buildFlags{}

	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	addCommonFlags(fs, &f.common)
	addPathFlags(fs, &f.paths)
	addStyleFlags(fs, &f.style)
	addClearFlags(fs, &f.clear)

	fs.Usage = func() { printBuildUsage(w) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}

	return f, fs.Args(), nil
}

package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: tag2html [command] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Convert every page of the input folder (default)")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'tag2html help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: tag2html build [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert every file of the input folder to <output>/<file>.html.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Folders:")
	fmt.Fprintln(w, "  -i, --input-dir <path>    Folder to read pages from (default: ./pages)")
	fmt.Fprintln(w, "  -o, --output-dir <path>   Folder to write pages to (default: ./output)")
	fmt.Fprintln(w, "  -e, --extras-dir <path>   Extras folder inside the output folder (default: ext)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "  -s, --stylesheet <name>   Stylesheet file in the extras folder (default: style.css)")
	fmt.Fprintln(w, "  -t, --theme <name>        Built-in style written when the stylesheet is missing")
	fmt.Fprintln(w, "      --no-default-style    Never write the built-in stylesheet")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Previous Output:")
	fmt.Fprintln(w, "  -y, --yes                 Clear previous output without asking")
	fmt.Fprintln(w, "      --keep                Keep previous output without asking")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case cmdBuild:
		printBuildUsage(env.Stdout)
	case cmdVersion:
		fmt.Fprintln(env.Stdout, "Usage: tag2html version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case cmdHelp:
		fmt.Fprintln(env.Stdout, "Usage: tag2html help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	return nil
}

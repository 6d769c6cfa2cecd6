package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: bookmark <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, c := range getCommands() {
		fmt.Fprintf(w, "  %-11s %s\n", c.Name, c.Desc)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'bookmark help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: bookmark build [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Compile every page listed in the book config to HTML.")
	fmt.Fprintln(w, "The output directory is deleted and recreated on every build.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -c, --config <path>       Config file (default: book.yaml, book.yml, book.json)")
	fmt.Fprintln(w, "  -o, --out <dir>           Output directory (overrides distDir)")
	fmt.Fprintln(w, "  -w, --workers <n>         Pages converted at once (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "  -e, --engine <name>       Markdown engine: native, commonmark")
	fmt.Fprintln(w, "      --highlight <style>   Highlight code blocks (see 'bookmark styles')")
	fmt.Fprintln(w, "      --style <name|path>   Page CSS style name or file")
	fmt.Fprintln(w, "      --template <name>     Template set name")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory with custom styles/ and templates/")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs, sizes and timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  BOOKMARK_CONFIG, BOOKMARK_OUT, BOOKMARK_ENGINE, BOOKMARK_HIGHLIGHT,")
	fmt.Fprintln(w, "  BOOKMARK_STYLE, BOOKMARK_WORKERS override the config file; flags override both.")
}

// printNewUsage prints usage for the new command.
func printNewUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: bookmark new <name> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Create a book skeleton: <name>/book.yaml, <name>/src/README.md and")
	fmt.Fprintln(w, "<name>/src/assets/.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -t, --title <s>           Book name (default: directory name)")
	fmt.Fprintln(w, "  -a, --author <s>          Author name")
	fmt.Fprintln(w, "      --json                Write book.json instead of book.yaml")
	fmt.Fprintln(w, "  -f, --force               Replace an existing directory")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "new":
		printNewUsage(env.Stdout)
	case "styles":
		fmt.Fprintln(env.Stdout, "Usage: bookmark styles")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "List built-in page styles and code highlighting styles.")
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: bookmark version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: bookmark help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}

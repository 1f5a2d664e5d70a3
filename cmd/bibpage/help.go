package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: bibpage [command] [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Render the publications page (default)")
	fmt.Fprintln(w, "  cite       Print the BibTeX citation of one entry")
	fmt.Fprintln(w, "  list       List the entries of the bibliography")
	fmt.Fprintln(w, "  init       Write a starter config file")
	fmt.Fprintln(w, "  doctor     Check the project and PDF dependencies")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  completion Generate shell completion script")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'bibpage help <command>' for details on a specific command.")
}

// printCommonUsage prints the flags shared by build, cite, list and doctor.
func printCommonUsage(w io.Writer) {
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -i, --input <path>        BibTeX file (default: bibtex.bib)")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs and timings")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: bibpage build [input.bib] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render a BibTeX bibliography into a static HTML publications page.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    BibTeX file (overrides --input and the config)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       HTML output path (default: index.html)")
	printCommonUsage(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "      --style <s>           CSS style name or file path: default, minimal")
	fmt.Fprintln(w, "      --template <s>        Template set: default, compact")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom asset directory")
	fmt.Fprintln(w, "      --css <path>          Extra CSS file appended to the style")
	fmt.Fprintln(w, "      --code-style <s>      Chroma style for code in the about text")
	fmt.Fprintln(w, "      --highlight <name>    Name to emphasize in author lists (repeatable)")
	fmt.Fprintln(w, "      --date <s>            Footer date: \"auto\", \"auto:FORMAT\", or literal")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D")
	fmt.Fprintln(w, "                            Presets (case-insensitive): iso, european, us, long")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "PDF:")
	fmt.Fprintln(w, "      --pdf <path>          Also print the page to a PDF file")
	fmt.Fprintln(w, "      --paper <s>           Paper size: a4, letter")
	fmt.Fprintln(w, "  -t, --timeout <d>         PDF generation timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  BIBPAGE_CONFIG, BIBPAGE_INPUT, BIBPAGE_OUTPUT, BIBPAGE_STYLE,")
	fmt.Fprintln(w, "  BIBPAGE_PDF, BIBPAGE_TIMEOUT override the config; flags override both.")
}

// printCiteUsage prints usage for the cite command.
func printCiteUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: bibpage cite <key> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the BibTeX citation of the entry with the given key.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --copy                Copy the citation to the clipboard")
	printCommonUsage(w)
}

// printListUsage prints usage for the list command.
func printListUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: bibpage list [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List the entries of the bibliography in source order.")
	fmt.Fprintln(w, "Selected entries are marked with *.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -s, --selected            Only list selected entries")
	fmt.Fprintln(w, "      --json                Output JSON")
	printCommonUsage(w)
}

// printInitUsage prints usage for the init command.
func printInitUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: bibpage init [path] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write a starter config file (default: bibpage.yaml).")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -f, --force               Overwrite an existing file")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: bibpage doctor [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check the config, the bibliography, the output directory")
	fmt.Fprintln(w, "and the Chrome installation used by --pdf.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --json                Output JSON")
	printCommonUsage(w)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "cite":
		printCiteUsage(env.Stdout)
	case "list":
		printListUsage(env.Stdout)
	case "init":
		printInitUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: bibpage version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "completion":
		printCompletionUsage(env.Stdout)
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: bibpage help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}

package main

import (
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-bibpage/internal/assets"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash       Shell = "bash"
	ShellZsh        Shell = "zsh"
	ShellFish       Shell = "fish"
	ShellPowerShell Shell = "powershell"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = fmt.Errorf("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagInt
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long       string   // --output
	Short      string   // -o (empty if none)
	Type       flagType // completion type
	Desc       string   // help text
	Values     []string // for enum flags
	FileGlob   string   // for file flags
	Repeatable bool     // may be given more than once
}

// commandDef describes a command for completion.
type commandDef struct {
	Name        string
	Desc        string
	Flags       []flagDef
	TakesFiles  bool     // accepts file arguments
	FilePattern string   // glob for file arguments (e.g., "*.bib")
	Args        []string // fixed positional values (e.g., shell names)
}

// completionMeta holds completion-specific metadata for flags.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	Values   []string // enum values
	FileGlob string   // file glob pattern
	IsDir    bool     // directory completion
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	// Enum flags
	"paper":    {Values: []string{"a4", "letter"}},
	"style":    {Values: assets.StyleNames()},
	"template": {Values: assets.TemplateSetNames()},

	// File flags with glob patterns
	"config": {FileGlob: "*.yaml,*.yml"},
	"input":  {FileGlob: "*.bib"},
	"output": {FileGlob: "*.html,*.htm"},
	"pdf":    {FileGlob: "*.pdf"},
	"css":    {FileGlob: "*.css"},

	// Directory flags
	"asset-path": {IsDir: true},
}

// supportedShells lists the shells accepted by the completion command.
var supportedShells = []string{
	string(ShellBash), string(ShellZsh), string(ShellFish), string(ShellPowerShell),
}

// commandFlagSet creates a FlagSet holding the flags of the named command.
// It reuses the registration of the command parsers.
func commandFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	switch name {
	case "build":
		addBuildFlags(fs, &buildFlags{})
	case "cite":
		addCiteFlags(fs, &citeFlags{})
	case "list":
		addListFlags(fs, &listFlags{})
	case "init":
		addInitFlags(fs, &initFlags{})
	case "doctor":
		var jsonOutput bool
		addDoctorFlags(fs, &commonFlags{}, &jsonOutput)
	}
	return fs
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
// Enriches with completion metadata from flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}

		// Determine base type from pflag type
		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "uint32", "uint64":
			fd.Type = flagInt
		case "stringArray", "stringSlice":
			fd.Repeatable = true
		default:
			fd.Type = flagString
		}

		// Override type based on completion metadata
		if meta, ok := flagCompletionMeta[f.Name]; ok {
			if len(meta.Values) > 0 {
				fd.Type = flagEnum
				fd.Values = meta.Values
			} else if meta.FileGlob != "" {
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			} else if meta.IsDir {
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
// Flags are extracted from the actual FlagSets.
func getCommands() []commandDef {
	return []commandDef{
		{
			Name:        "build",
			Desc:        "Render the publications page",
			Flags:       extractFlagsFromFlagSet(commandFlagSet("build")),
			TakesFiles:  true,
			FilePattern: "*.bib",
		},
		{
			Name:  "cite",
			Desc:  "Print the BibTeX citation of one entry",
			Flags: extractFlagsFromFlagSet(commandFlagSet("cite")),
		},
		{
			Name:  "list",
			Desc:  "List the entries of the bibliography",
			Flags: extractFlagsFromFlagSet(commandFlagSet("list")),
		},
		{
			Name:        "init",
			Desc:        "Write a starter config file",
			Flags:       extractFlagsFromFlagSet(commandFlagSet("init")),
			TakesFiles:  true,
			FilePattern: "*.yaml,*.yml",
		},
		{
			Name:  "doctor",
			Desc:  "Check the project and PDF dependencies",
			Flags: extractFlagsFromFlagSet(commandFlagSet("doctor")),
		},
		{
			Name: "version",
			Desc: "Show version information",
		},
		{
			Name: "help",
			Desc: "Show help for a command",
			Args: []string{"build", "cite", "list", "init", "doctor", "version", "help", "completion"},
		},
		{
			Name: "completion",
			Desc: "Generate shell completion script",
			Args: supportedShells,
		},
	}
}

// defaultCommand is run when no command name is given, so its flags and
// file arguments are offered at the top level.
func defaultCommand(cmds []commandDef) commandDef {
	for _, c := range cmds {
		if c.Name == "build" {
			return c
		}
	}
	return commandDef{}
}

// uniqueFlags returns the flags of all commands, first definition wins.
func uniqueFlags(cmds []commandDef) []flagDef {
	seen := make(map[string]bool)
	var flags []flagDef
	for _, c := range cmds {
		for _, f := range c.Flags {
			if seen[f.Long] {
				continue
			}
			seen[f.Long] = true
			flags = append(flags, f)
		}
	}
	return flags
}

// globs splits a comma-separated glob list.
func globs(pattern string) []string {
	if pattern == "" {
		return nil
	}
	return strings.Split(pattern, ",")
}

// flagWords returns "--long -s" for each flag, for word lists.
func flagWords(flags []flagDef) []string {
	var words []string
	for _, f := range flags {
		words = append(words, "--"+f.Long)
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return words
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	switch shell {
	case ShellBash:
		return generateBash(w)
	case ShellZsh:
		return generateZsh(w)
	case ShellFish:
		return generateFish(w)
	case ShellPowerShell:
		return generatePowerShell(w)
	default:
		return fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedShell, shell, strings.Join(supportedShells, ", "))
	}
}

// ---------------------------------------------------------------------------
// Bash
// ---------------------------------------------------------------------------

func generateBash(w io.Writer) error {
	cmds := getCommands()
	var b strings.Builder

	names := make([]string, 0, len(cmds))
	for _, c := range cmds {
		names = append(names, c.Name)
	}

	b.WriteString("# bash completion for bibpage\n\n")
	b.WriteString("_bibpage_completions() {\n")
	b.WriteString("    local cur prev cmd i\n")
	b.WriteString("    COMPREPLY=()\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	b.WriteString("    cmd=\"\"\n\n")
	b.WriteString("    for ((i=1; i<COMP_CWORD; i++)); do\n")
	b.WriteString("        case \"${COMP_WORDS[i]}\" in\n")
	fmt.Fprintf(&b, "            %s)\n", strings.Join(names, "|"))
	b.WriteString("                cmd=\"${COMP_WORDS[i]}\"\n")
	b.WriteString("                break\n")
	b.WriteString("                ;;\n")
	b.WriteString("        esac\n")
	b.WriteString("    done\n\n")

	// Flag values
	b.WriteString("    case \"$prev\" in\n")
	for _, f := range uniqueFlags(cmds) {
		if f.Type == flagBool {
			continue
		}
		fmt.Fprintf(&b, "        %s)\n", bashFlagPattern(f))
		switch f.Type {
		case flagEnum:
			fmt.Fprintf(&b, "            COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", strings.Join(f.Values, " "))
		case flagFile:
			fmt.Fprintf(&b, "            COMPREPLY=(%s)\n", bashFileWords(f.FileGlob))
		case flagDir:
			b.WriteString("            COMPREPLY=($(compgen -d -- \"$cur\"))\n")
		}
		b.WriteString("            return 0\n")
		b.WriteString("            ;;\n")
	}
	b.WriteString("    esac\n\n")

	// Commands
	b.WriteString("    case \"$cmd\" in\n")
	build := defaultCommand(cmds)
	b.WriteString("        \"\")\n")
	b.WriteString("            if [[ \"$cur\" == -* ]]; then\n")
	fmt.Fprintf(&b, "                COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", strings.Join(flagWords(build.Flags), " "))
	b.WriteString("            else\n")
	fmt.Fprintf(&b, "                COMPREPLY=($(compgen -W \"%s\" -- \"$cur\") %s)\n", strings.Join(names, " "), bashFileWords(build.FilePattern))
	b.WriteString("            fi\n")
	b.WriteString("            ;;\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "        %s)\n", c.Name)
		if len(c.Flags) > 0 {
			b.WriteString("            if [[ \"$cur\" == -* ]]; then\n")
			fmt.Fprintf(&b, "                COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", strings.Join(flagWords(c.Flags), " "))
			b.WriteString("                return 0\n")
			b.WriteString("            fi\n")
		}
		switch {
		case c.TakesFiles:
			fmt.Fprintf(&b, "            COMPREPLY=(%s)\n", bashFileWords(c.FilePattern))
		case len(c.Args) > 0:
			fmt.Fprintf(&b, "            COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", strings.Join(c.Args, " "))
		}
		b.WriteString("            ;;\n")
	}
	b.WriteString("    esac\n")
	b.WriteString("    return 0\n")
	b.WriteString("}\n\n")
	b.WriteString("complete -o filenames -F _bibpage_completions bibpage\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// bashFlagPattern returns the case pattern matching a flag, e.g. "--output|-o".
func bashFlagPattern(f flagDef) string {
	if f.Short != "" {
		return "--" + f.Long + "|-" + f.Short
	}
	return "--" + f.Long
}

// bashFileWords returns compgen calls offering directories and the files
// matching each glob. One call per glob avoids relying on extglob.
func bashFileWords(pattern string) string {
	parts := []string{`$(compgen -d -- "$cur")`}
	for _, g := range globs(pattern) {
		parts = append(parts, fmt.Sprintf(`$(compgen -f -X '!%s' -- "$cur")`, g))
	}
	return strings.Join(parts, " ")
}

// ---------------------------------------------------------------------------
// Zsh
// ---------------------------------------------------------------------------

func generateZsh(w io.Writer) error {
	cmds := getCommands()
	var b strings.Builder

	b.WriteString("#compdef bibpage\n\n")
	b.WriteString("_bibpage() {\n")
	b.WriteString("    local curcontext=\"$curcontext\" state line\n")
	b.WriteString("    typeset -A opt_args\n\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "        '%s:%s'\n", c.Name, zshEscape(c.Desc))
	}
	b.WriteString("    )\n\n")
	b.WriteString("    _arguments -C \\\n")
	b.WriteString("        '1: :->command' \\\n")
	b.WriteString("        '*:: :->args'\n\n")
	b.WriteString("    case $state in\n")
	b.WriteString("        command)\n")
	b.WriteString("            _describe -t commands 'bibpage command' commands\n")
	build := defaultCommand(cmds)
	fmt.Fprintf(&b, "            _files -g %s\n", zshGlob(build.FilePattern))
	b.WriteString("            ;;\n")
	b.WriteString("        args)\n")
	b.WriteString("            case $line[1] in\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "                %s)\n", c.Name)
		specs := make([]string, 0, len(c.Flags)+1)
		for _, f := range c.Flags {
			specs = append(specs, zshFlagSpec(f))
		}
		switch {
		case c.TakesFiles:
			specs = append(specs, fmt.Sprintf("'*:file:_files -g %s'", zshGlob(c.FilePattern)))
		case len(c.Args) > 0:
			specs = append(specs, fmt.Sprintf("'1:argument:(%s)'", strings.Join(c.Args, " ")))
		}
		if len(specs) == 0 {
			b.WriteString("                    ;;\n")
			continue
		}
		b.WriteString("                    _arguments -s \\\n")
		for i, s := range specs {
			if i < len(specs)-1 {
				fmt.Fprintf(&b, "                        %s \\\n", s)
			} else {
				fmt.Fprintf(&b, "                        %s\n", s)
			}
		}
		b.WriteString("                    ;;\n")
	}
	b.WriteString("            esac\n")
	b.WriteString("            ;;\n")
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("compdef _bibpage bibpage\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// zshFlagSpec returns the _arguments spec of a flag.
func zshFlagSpec(f flagDef) string {
	var action string
	switch f.Type {
	case flagBool:
		action = ""
	case flagEnum:
		action = fmt.Sprintf(":%s:(%s)", f.Long, strings.Join(f.Values, " "))
	case flagFile:
		action = fmt.Sprintf(":file:_files -g %s", zshGlob(f.FileGlob))
	case flagDir:
		action = ":directory:_files -/"
	default:
		action = fmt.Sprintf(":%s: ", f.Long)
	}

	desc := "[" + zshEscape(f.Desc) + "]"
	repeat := ""
	if f.Repeatable {
		repeat = "*"
	}

	if f.Short == "" {
		return fmt.Sprintf("'%s--%s%s%s'", repeat, f.Long, desc, action)
	}
	return fmt.Sprintf("'(-%s --%s)'{-%s,--%s}'%s%s'", f.Short, f.Long, f.Short, f.Long, desc, action)
}

// zshGlob returns a quoted zsh glob matching any pattern of the list,
// e.g. "(*.yaml|*.yml)".
func zshGlob(pattern string) string {
	gs := globs(pattern)
	switch len(gs) {
	case 0:
		return `"*"`
	case 1:
		return `"` + gs[0] + `"`
	default:
		return `"(` + strings.Join(gs, "|") + `)"`
	}
}

// zshEscape escapes text placed inside a single-quoted _arguments spec.
func zshEscape(s string) string {
	r := strings.NewReplacer(`'`, `'\''`, `[`, `\[`, `]`, `\]`, `:`, `\:`)
	return r.Replace(s)
}

// ---------------------------------------------------------------------------
// Fish
// ---------------------------------------------------------------------------

func generateFish(w io.Writer) error {
	cmds := getCommands()
	var b strings.Builder

	b.WriteString("# fish completion for bibpage\n\n")
	b.WriteString("function __fish_bibpage_needs_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    set -l commands")
	for _, c := range cmds {
		b.WriteString(" " + c.Name)
	}
	b.WriteString("\n")
	b.WriteString("    for word in $cmd[2..-1]\n")
	b.WriteString("        if contains -- $word $commands\n")
	b.WriteString("            return 1\n")
	b.WriteString("        end\n")
	b.WriteString("    end\n")
	b.WriteString("    return 0\n")
	b.WriteString("end\n\n")
	b.WriteString("function __fish_bibpage_using_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    if test (count $cmd) -gt 1; and test $argv[1] = $cmd[2]\n")
	b.WriteString("        return 0\n")
	b.WriteString("    end\n")
	b.WriteString("    return 1\n")
	b.WriteString("end\n\n")
	b.WriteString("complete -c bibpage -f\n\n")

	// Commands, plus build flags and files since build is the default.
	b.WriteString("# Commands\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "complete -c bibpage -n __fish_bibpage_needs_command -a %s -d '%s'\n", c.Name, fishEscape(c.Desc))
	}
	build := defaultCommand(cmds)
	for _, f := range build.Flags {
		b.WriteString(fishFlagLine("__fish_bibpage_needs_command", f))
	}
	fmt.Fprintf(&b, "complete -c bibpage -n __fish_bibpage_needs_command -a '%s'\n", fishFiles(build.FilePattern))

	for _, c := range cmds {
		cond := fmt.Sprintf("'__fish_bibpage_using_command %s'", c.Name)
		if len(c.Flags) == 0 && !c.TakesFiles && len(c.Args) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n# %s\n", c.Name)
		for _, f := range c.Flags {
			b.WriteString(fishFlagLine(cond, f))
		}
		switch {
		case c.TakesFiles:
			fmt.Fprintf(&b, "complete -c bibpage -n %s -a '%s'\n", cond, fishFiles(c.FilePattern))
		case len(c.Args) > 0:
			fmt.Fprintf(&b, "complete -c bibpage -n %s -a '%s'\n", cond, strings.Join(c.Args, " "))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// fishFlagLine returns the complete line of a flag under a condition.
func fishFlagLine(cond string, f flagDef) string {
	line := fmt.Sprintf("complete -c bibpage -n %s", cond)
	if f.Short != "" {
		line += " -s " + f.Short
	}
	line += " -l " + f.Long
	switch f.Type {
	case flagBool:
	case flagEnum:
		line += fmt.Sprintf(" -x -a '%s'", strings.Join(f.Values, " "))
	case flagFile:
		line += fmt.Sprintf(" -r -a '%s'", fishFiles(f.FileGlob))
	case flagDir:
		line += " -x -a '(__fish_complete_directories)'"
	default:
		line += " -x"
	}
	return line + fmt.Sprintf(" -d '%s'\n", fishEscape(f.Desc))
}

// fishFiles returns a command substitution listing files by suffix.
func fishFiles(pattern string) string {
	var calls []string
	for _, g := range globs(pattern) {
		calls = append(calls, "__fish_complete_suffix "+strings.TrimPrefix(g, "*"))
	}
	if len(calls) == 0 {
		return "(__fish_complete_path)"
	}
	return "(" + strings.Join(calls, "; ") + ")"
}

// fishEscape escapes text placed inside a single-quoted fish string.
func fishEscape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return r.Replace(s)
}

// ---------------------------------------------------------------------------
// PowerShell
// ---------------------------------------------------------------------------

func generatePowerShell(w io.Writer) error {
	cmds := getCommands()
	var b strings.Builder

	b.WriteString("# PowerShell completion for bibpage\n\n")
	b.WriteString("Register-ArgumentCompleter -Native -CommandName bibpage -ScriptBlock {\n")
	b.WriteString("    param($wordToComplete, $commandAst, $cursorPosition)\n\n")

	b.WriteString("    $commands = [ordered]@{\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "        '%s' = '%s'\n", c.Name, psEscape(c.Desc))
	}
	b.WriteString("    }\n\n")

	b.WriteString("    $flags = @{\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "        '%s' = @(%s)\n", c.Name, psList(flagWords(c.Flags)))
	}
	b.WriteString("    }\n\n")

	b.WriteString("    $arguments = @{\n")
	for _, c := range cmds {
		if len(c.Args) > 0 {
			fmt.Fprintf(&b, "        '%s' = @(%s)\n", c.Name, psList(c.Args))
		}
	}
	b.WriteString("    }\n\n")

	b.WriteString("    $values = @{\n")
	for _, f := range uniqueFlags(cmds) {
		if f.Type != flagEnum {
			continue
		}
		fmt.Fprintf(&b, "        '--%s' = @(%s)\n", f.Long, psList(f.Values))
	}
	b.WriteString("    }\n\n")

	b.WriteString("    $words = @($commandAst.CommandElements | ForEach-Object { $_.ToString() })\n")
	b.WriteString("    $prev = if ($wordToComplete) { if ($words.Count -ge 2) { $words[-2] } else { '' } } else { $words[-1] }\n")
	b.WriteString("    $cmd = ''\n")
	b.WriteString("    foreach ($word in ($words | Select-Object -Skip 1)) {\n")
	b.WriteString("        if ($commands.Contains($word)) { $cmd = $word; break }\n")
	b.WriteString("    }\n\n")

	b.WriteString("    if ($values.ContainsKey($prev)) {\n")
	b.WriteString("        $values[$prev] | Where-Object { $_ -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)\n")
	b.WriteString("        }\n")
	b.WriteString("        return\n")
	b.WriteString("    }\n\n")

	b.WriteString("    if ($wordToComplete -like '-*') {\n")
	b.WriteString("        $key = if ($cmd) { $cmd } else { 'build' }\n")
	b.WriteString("        $flags[$key] | Where-Object { $_ -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterName', $_)\n")
	b.WriteString("        }\n")
	b.WriteString("        return\n")
	b.WriteString("    }\n\n")

	b.WriteString("    if (-not $cmd) {\n")
	b.WriteString("        $commands.Keys | Where-Object { $_ -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $commands[$_])\n")
	b.WriteString("        }\n")
	b.WriteString("        return\n")
	b.WriteString("    }\n\n")

	b.WriteString("    if ($arguments.ContainsKey($cmd)) {\n")
	b.WriteString("        $arguments[$cmd] | Where-Object { $_ -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)\n")
	b.WriteString("        }\n")
	b.WriteString("    }\n")
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// psList returns a comma-separated list of single-quoted PowerShell strings.
func psList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = "'" + psEscape(s) + "'"
	}
	return strings.Join(quoted, ", ")
}

// psEscape escapes text placed inside a single-quoted PowerShell string.
func psEscape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: completion takes one shell name, got %d arguments", ErrUsage, len(args))
	}

	shell := Shell(args[0])
	return GenerateCompletion(env.Stdout, shell)
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: bibpage completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w, "  powershell  PowerShell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(bibpage completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (before compinit):")
	fmt.Fprintln(w, "    eval \"$(bibpage completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    bibpage completion fish > ~/.config/fish/completions/bibpage.fish")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  PowerShell:")
	fmt.Fprintln(w, "    # Add to $PROFILE:")
	fmt.Fprintln(w, "    bibpage completion powershell | Out-String | Invoke-Expression")
}

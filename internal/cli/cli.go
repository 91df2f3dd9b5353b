package cli

import (
	"fmt"
	"io"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Command is one quizdeck subcommand.
type Command struct {
	Name    string
	Summary string
	Usage   []string
	Run     func(args []string, stdout, stderr io.Writer) int
}

var commands []Command

func init() {
	commands = []Command{
		{
			Name:    "play",
			Summary: "Run a quiz session from a question bank",
			Usage: []string{
				"quizdeck play --bank <path|-> [--config <path>] [--ui auto|live|plain] [--no-color]",
			},
			Run: runPlay,
		},
		{
			Name:    "validate",
			Summary: "Validate a question bank document",
			Usage:   []string{"quizdeck validate --bank <path|->"},
			Run:     runValidate,
		},
		{
			Name:    "sample",
			Summary: "Print an example question bank",
			Usage:   []string{"quizdeck sample"},
			Run:     runSample,
		},
	}
}

// Run dispatches to a subcommand and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stdout)
		return ExitUsage
	}
	switch args[0] {
	case "help", "-h", "--help":
		printUsage(stdout)
		return ExitOK
	}
	cmd, ok := lookupCommand(args[0])
	if !ok {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return ExitUsage
	}
	return cmd.Run(args[1:], stdout, stderr)
}

func lookupCommand(name string) (Command, bool) {
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd, true
		}
	}
	return Command{}, false
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			return true
		}
	}
	return false
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "quizdeck presents a question bank as a live quiz session.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  quizdeck <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-10s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, `Run "quizdeck <command> --help" for command details.`)
}

// printCommandUsage writes one command's summary and usage lines.
func printCommandUsage(w io.Writer, name string) {
	cmd, ok := lookupCommand(name)
	if !ok {
		return
	}
	if cmd.Summary != "" {
		fmt.Fprintf(w, "%s\n\n", cmd.Summary)
	}
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}
}

package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"quizdeck/internal/bank"
)

// runValidate handles the validate command.
func runValidate(args []string, stdout, stderr io.Writer) int {
	if wantsHelp(args) {
		printCommandUsage(stdout, "validate")
		return ExitOK
	}

	flags := flag.NewFlagSet("validate", flag.ContinueOnError)
	flags.SetOutput(stderr)
	bankPath := flags.String("bank", "", "Path to the question bank JSON (use - for stdin)")
	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			printCommandUsage(stdout, "validate")
			return ExitOK
		}
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		printCommandUsage(stderr, "validate")
		return ExitUsage
	}
	if flags.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
		printCommandUsage(stderr, "validate")
		return ExitUsage
	}
	if *bankPath == "" {
		fmt.Fprintln(stderr, "--bank is required")
		printCommandUsage(stderr, "validate")
		return ExitUsage
	}

	loaded, err := bank.Load(*bankPath)
	if err != nil {
		fmt.Fprintf(stderr, "Bank rejected:\n%v\n", err)
		return ExitError
	}

	counts := loaded.Counts()
	fmt.Fprintf(stdout, "Bank OK: %d questions (%d single, %d multiple, %d text)\n",
		loaded.Len(), counts.Single, counts.Multiple, counts.Text)
	return ExitOK
}

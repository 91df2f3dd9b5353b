package cli

import (
	"fmt"
	"io"

	"quizdeck/internal/bank"
)

// runSample handles the sample command.
func runSample(args []string, stdout, stderr io.Writer) int {
	if wantsHelp(args) {
		printCommandUsage(stdout, "sample")
		return ExitOK
	}
	if len(args) > 0 {
		fmt.Fprintln(stderr, "sample takes no arguments")
		printCommandUsage(stderr, "sample")
		return ExitUsage
	}
	fmt.Fprint(stdout, bank.SampleJSON)
	return ExitOK
}

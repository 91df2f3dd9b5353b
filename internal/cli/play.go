package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"quizdeck/internal/bank"
	"quizdeck/internal/config"
	"quizdeck/internal/session"
	"quizdeck/internal/ui/play"
)

// runPlay handles the play command.
func runPlay(args []string, stdout, stderr io.Writer) int {
	if wantsHelp(args) {
		printCommandUsage(stdout, "play")
		return ExitOK
	}

	flags := flag.NewFlagSet("play", flag.ContinueOnError)
	flags.SetOutput(stderr)
	bankPath := flags.String("bank", "", "Path to the question bank JSON (use - for stdin)")
	configPath := flags.String("config", "", "Path to a deck config YAML")
	uiMode := flags.String("ui", "auto", "UI mode: auto, live, or plain")
	noColor := flags.Bool("no-color", false, "Disable color output")
	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			printCommandUsage(stdout, "play")
			return ExitOK
		}
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		printCommandUsage(stderr, "play")
		return ExitUsage
	}
	if flags.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
		printCommandUsage(stderr, "play")
		return ExitUsage
	}
	if *bankPath == "" {
		fmt.Fprintln(stderr, "--bank is required")
		printCommandUsage(stderr, "play")
		return ExitUsage
	}

	deck := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return ExitError
		}
		deck = loaded
	}
	if *noColor {
		deck.NoColor = true
	}

	loaded, err := bank.Load(*bankPath)
	if err != nil {
		fmt.Fprintf(stderr, "Bank rejected:\n%v\n", err)
		return ExitError
	}

	decision, err := resolveUIMode(*uiMode, stdout)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitUsage
	}
	if decision.warning != "" {
		fmt.Fprintln(stderr, decision.warning)
	}

	sess := session.New(loaded, session.Options{FeedbackDelay: deck.FeedbackDelay()})
	if !decision.useLive {
		return plainLoop(sess, deck, os.Stdin, stdout, stderr)
	}

	model := play.New(sess, deck, play.Options{NoColor: deck.NoColor})
	program := tea.NewProgram(model, tea.WithOutput(stdout), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(stderr, "ui error: %v\n", err)
		return ExitError
	}
	return ExitOK
}

package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"quizdeck/internal/bank"
	"quizdeck/internal/config"
	"quizdeck/internal/session"
)

// plainLoop drives a session through line commands, for stdouts without TTY
// support and for scripted runs. There is no transient feedback banner
// here: verdicts are printed inline as they land.
func plainLoop(sess *session.Session, deck config.Deck, in io.Reader, stdout, stderr io.Writer) int {
	counts := sess.Counts()
	fmt.Fprintf(stdout, "%s · %s\n", deck.Title, deck.Subtitle)
	fmt.Fprintf(stdout, "Session %s\n", sess.ID())
	fmt.Fprintf(stdout, "%d questions (%d single, %d multiple, %d text)\n", sess.Len(), counts.Single, counts.Multiple, counts.Text)
	fmt.Fprintln(stdout, `Type "help" for commands.`)
	fmt.Fprintln(stdout)
	printQuestion(stdout, sess)

	scanner := bufio.NewScanner(in)
	fmt.Fprint(stdout, "> ")
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			fmt.Fprint(stdout, "> ")
			continue
		}
		if quit := runPlainCommand(sess, fields, stdout, stderr); quit {
			return ExitOK
		}
		fmt.Fprint(stdout, "> ")
	}
	return ExitOK
}

func runPlainCommand(sess *session.Session, fields []string, stdout, stderr io.Writer) (quit bool) {
	pos := sess.Position()
	switch fields[0] {
	case "quit", "q", "exit":
		return true
	case "help", "?":
		printPlainHelp(stdout)
	case "show":
		printQuestion(stdout, sess)
	case "select", "s":
		if idx, ok := plainIndexArg(fields, stderr); ok {
			sess.Select(pos, idx)
			printQuestion(stdout, sess)
		}
	case "submit":
		sess.Submit(pos)
		printOutcome(stdout, sess, pos)
	case "correct":
		sess.Judge(pos, true)
		printOutcome(stdout, sess, pos)
	case "wrong":
		sess.Judge(pos, false)
		printOutcome(stdout, sess, pos)
	case "next", "n":
		sess.Advance()
		printQuestion(stdout, sess)
	case "prev", "p":
		if sess.Retreat() {
			fmt.Fprintln(stdout, "Left the session.")
			return true
		}
		printQuestion(stdout, sess)
	case "jump", "g":
		if idx, ok := plainIndexArg(fields, stderr); ok {
			sess.Jump(idx)
			printQuestion(stdout, sess)
		}
	case "restart", "r":
		sess.Restart()
		printQuestion(stdout, sess)
	case "status":
		printStatus(stdout, sess)
	default:
		fmt.Fprintf(stderr, "unknown command %q; type \"help\"\n", fields[0])
	}
	return false
}

// plainIndexArg parses the 1-based number argument of select and jump.
func plainIndexArg(fields []string, stderr io.Writer) (int, bool) {
	if len(fields) < 2 {
		fmt.Fprintf(stderr, "%s needs a number\n", fields[0])
		return 0, false
	}
	number, err := strconv.Atoi(fields[1])
	if err != nil || number < 1 {
		fmt.Fprintf(stderr, "%s needs a positive number\n", fields[0])
		return 0, false
	}
	return number - 1, true
}

func printPlainHelp(w io.Writer) {
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  select <n>   choose option n (single replaces, multiple toggles)")
	fmt.Fprintln(w, "  submit       lock the answer in; reveals text answers")
	fmt.Fprintln(w, "  correct      judge a revealed text answer correct")
	fmt.Fprintln(w, "  wrong        judge a revealed text answer wrong")
	fmt.Fprintln(w, "  next / prev  move through the bank (prev resets the question it returns to)")
	fmt.Fprintln(w, "  jump <n>     go straight to question n")
	fmt.Fprintln(w, "  status       list all questions and their progress")
	fmt.Fprintln(w, "  restart      wipe answers and start over")
	fmt.Fprintln(w, "  show, quit")
}

func printQuestion(w io.Writer, sess *session.Session) {
	if sess.Completed() {
		fmt.Fprintln(w, "Session complete. Well played! (restart or quit)")
		return
	}
	question := sess.Current()
	record := sess.Record(sess.Position())
	fmt.Fprintf(w, "Question %d/%d %s\n", sess.Position()+1, sess.Len(), plainKindLabel(question.Kind))
	fmt.Fprintln(w, question.Prompt)
	for idx, option := range question.Options {
		marker := " "
		if record.IsSelected(idx) {
			marker = "x"
		}
		fmt.Fprintf(w, "  [%s] %d. %s\n", marker, idx+1, option)
	}
	if record.Submitted {
		printReveal(w, question, record)
	}
}

func printOutcome(w io.Writer, sess *session.Session, pos int) {
	question, ok := sess.Question(pos)
	if !ok {
		return
	}
	record := sess.Record(pos)
	if !record.Submitted {
		fmt.Fprintln(w, "Nothing submitted; select an option first.")
		return
	}
	switch record.Verdict {
	case session.VerdictCorrect:
		fmt.Fprintln(w, "Correct!")
	case session.VerdictWrong:
		fmt.Fprintln(w, "Wrong!")
	default:
		fmt.Fprintln(w, `Answer revealed; judge it with "correct" or "wrong".`)
	}
	printReveal(w, question, record)
}

func printReveal(w io.Writer, question bank.Question, record session.Record) {
	switch question.Kind {
	case bank.Single:
		fmt.Fprintf(w, "Answer: %d. %s\n", question.AnswerIndex+1, question.Options[question.AnswerIndex])
	case bank.Multiple:
		parts := make([]string, 0, len(question.AnswerSet))
		for _, idx := range question.AnswerSet {
			parts = append(parts, fmt.Sprintf("%d. %s", idx+1, question.Options[idx]))
		}
		fmt.Fprintf(w, "Answer: %s\n", strings.Join(parts, "; "))
	case bank.Text:
		fmt.Fprintf(w, "Reference answer: %s\n", question.AnswerText)
	}
	if question.Explanation != "" {
		fmt.Fprintf(w, "Why: %s\n", question.Explanation)
	}
}

func printStatus(w io.Writer, sess *session.Session) {
	for pos := 0; pos < sess.Len(); pos++ {
		question, _ := sess.Question(pos)
		record := sess.Record(pos)
		fmt.Fprintf(w, "%3d  %-11s %s\n", pos+1, plainRecordStatus(question, record), shortPrompt(question.Prompt))
	}
}

func plainRecordStatus(question bank.Question, record session.Record) string {
	switch {
	case record.Verdict == session.VerdictCorrect:
		return "correct"
	case record.Verdict == session.VerdictWrong:
		return "wrong"
	case record.Submitted && question.Kind == bank.Text:
		return "revealed"
	case record.Submitted:
		return "submitted"
	case record.HasSelection():
		return "in progress"
	default:
		return "-"
	}
}

func plainKindLabel(kind bank.Kind) string {
	switch kind {
	case bank.Single:
		return "(single choice)"
	case bank.Multiple:
		return "(multiple choice)"
	case bank.Text:
		return "(free text)"
	default:
		return ""
	}
}

func shortPrompt(text string) string {
	normalized := strings.Join(strings.Fields(text), " ")
	const limit = 60
	if len(normalized) <= limit {
		return normalized
	}
	return normalized[:limit-3] + "..."
}

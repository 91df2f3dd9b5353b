package play

import (
	"strconv"
	"strings"

	"quizdeck/internal/bank"
)

// optionLetter maps option indices to display letters (A, B, C, ...).
func optionLetter(idx int) string {
	if idx < 0 || idx >= 26 {
		return strconv.Itoa(idx + 1)
	}
	return string(rune('A' + idx))
}

// formatPosition renders a 1-based question number.
func formatPosition(pos int) string {
	return strconv.Itoa(pos + 1)
}

func formatCount(count int) string {
	return strconv.Itoa(count)
}

// formatBankSummary renders the preview line with per-kind counts.
func formatBankSummary(total int, counts bank.Counts) string {
	return formatCount(total) + " questions — " +
		formatCount(counts.Single) + " single · " +
		formatCount(counts.Multiple) + " multiple · " +
		formatCount(counts.Text) + " text"
}

// formatCanonicalAnswer renders the canonical answer heading: letters for
// choice kinds, the reference text for text kind.
func formatCanonicalAnswer(question bank.Question) string {
	switch question.Kind {
	case bank.Single:
		return optionLetter(question.AnswerIndex)
	case bank.Multiple:
		letters := make([]string, 0, len(question.AnswerSet))
		for _, idx := range question.AnswerSet {
			letters = append(letters, optionLetter(idx))
		}
		return strings.Join(letters, ", ")
	default:
		return question.AnswerText
	}
}

// formatCanonicalContent renders the option texts behind a choice answer.
func formatCanonicalContent(question bank.Question) string {
	if !question.Kind.IsChoice() {
		return ""
	}
	indices := question.AnswerSet
	if question.Kind == bank.Single {
		indices = []int{question.AnswerIndex}
	}
	texts := make([]string, 0, len(indices))
	for _, idx := range indices {
		if idx >= 0 && idx < len(question.Options) {
			texts = append(texts, question.Options[idx])
		}
	}
	return strings.Join(texts, "; ")
}

// truncatePrompt collapses whitespace and shortens a prompt for table rows.
func truncatePrompt(text string) string {
	normalized := strings.Join(strings.Fields(text), " ")
	const limit = 80
	if len(normalized) <= limit {
		return normalized
	}
	return normalized[:limit-3] + "..."
}

// kindLabel names a question kind for the tag line.
func kindLabel(kind bank.Kind) string {
	switch kind {
	case bank.Single:
		return "[ single choice ]"
	case bank.Multiple:
		return "[ multiple choice ]"
	case bank.Text:
		return "[ free text ]"
	default:
		return "[ unknown ]"
	}
}

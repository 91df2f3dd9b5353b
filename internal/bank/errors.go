package bank

import "fmt"

// ErrorKind classifies bank ingestion failures.
type ErrorKind int

const (
	// MalformedInput means the document is not a JSON array of questions.
	MalformedInput ErrorKind = iota
	// EmptyBank means the array parsed but holds no questions.
	EmptyBank
	// MissingPrompt means a question has no text.
	MissingPrompt
	// InvalidKind means a question names an unknown type.
	InvalidKind
	// MissingOptions means a choice question lacks an options array.
	MissingOptions
	// InvalidAnswer means the answer field does not decode for the kind.
	InvalidAnswer
	// AnswerOutOfRange means a choice answer indexes outside the options.
	AnswerOutOfRange
)

// Error reports why a bank document was rejected. Question is the 1-based
// question number, 0 for document-level failures. Ingestion is
// all-or-nothing: the first Error aborts the whole parse.
type Error struct {
	Kind     ErrorKind
	Question int
	Detail   string
}

// Error renders an operator-facing message with 1-based question numbers.
func (e *Error) Error() string {
	switch e.Kind {
	case MalformedInput:
		if e.Detail != "" {
			return "bank must be a JSON array of questions: " + e.Detail
		}
		return "bank must be a JSON array of questions"
	case EmptyBank:
		return "bank has no questions"
	case MissingPrompt:
		return fmt.Sprintf("question %d: missing prompt (text)", e.Question)
	case InvalidKind:
		return fmt.Sprintf("question %d: unknown type %s", e.Question, e.Detail)
	case MissingOptions:
		return fmt.Sprintf("question %d: choice questions need an options array", e.Question)
	case InvalidAnswer:
		return fmt.Sprintf("question %d: %s", e.Question, e.Detail)
	case AnswerOutOfRange:
		return fmt.Sprintf("question %d: answer index %s is outside the options", e.Question, e.Detail)
	default:
		return fmt.Sprintf("question %d: invalid", e.Question)
	}
}

func documentError(kind ErrorKind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

func questionError(kind ErrorKind, index int, detail string) *Error {
	return &Error{Kind: kind, Question: index + 1, Detail: detail}
}

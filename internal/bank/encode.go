package bank

import (
	"encoding/json"
	"fmt"
)

// Encode re-serializes a bank to the ingestion shape. Parsing the result
// reproduces an equivalent bank, modulo regenerated IDs.
func Encode(b Bank) ([]byte, error) {
	entries := make([]wireQuestion, 0, len(b.Questions))
	for _, question := range b.Questions {
		answer, err := encodeAnswer(question)
		if err != nil {
			return nil, err
		}
		entries = append(entries, wireQuestion{
			Type:        string(question.Kind),
			Text:        question.Prompt,
			Options:     question.Options,
			Answer:      answer,
			Explanation: question.Explanation,
		})
	}
	return json.MarshalIndent(entries, "", "  ")
}

func encodeAnswer(question Question) (json.RawMessage, error) {
	switch question.Kind {
	case Single:
		return json.Marshal(question.AnswerIndex)
	case Multiple:
		return json.Marshal(question.AnswerSet)
	case Text:
		return json.Marshal(question.AnswerText)
	default:
		return nil, fmt.Errorf("encode bank: unknown kind %q", question.Kind)
	}
}

package bank

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
)

// wireQuestion is the ingestion shape: the JSON object an operator pastes.
// The answer stays raw until the kind is known.
type wireQuestion struct {
	Type        string          `json:"type,omitempty"`
	Text        string          `json:"text"`
	Options     []string        `json:"options,omitempty"`
	Answer      json.RawMessage `json:"answer,omitempty"`
	Explanation string          `json:"explanation,omitempty"`
}

// Parse turns a raw JSON document into a validated Bank. Ingestion is
// all-or-nothing: the first failure aborts and no partial bank is returned.
// Identical input always yields an identical bank.
func Parse(data []byte) (Bank, error) {
	entries, err := decodeDocument(data)
	if err != nil {
		return Bank{}, err
	}
	if len(entries) == 0 {
		return Bank{}, documentError(EmptyBank, "")
	}
	questions := make([]Question, 0, len(entries))
	for i, entry := range entries {
		question, err := buildQuestion(i, entry)
		if err != nil {
			return Bank{}, err
		}
		questions = append(questions, question)
	}
	return Bank{Questions: questions}, nil
}

func decodeDocument(data []byte) ([]wireQuestion, error) {
	var entries []wireQuestion
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&entries); err != nil {
		return nil, documentError(MalformedInput, err.Error())
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return nil, documentError(MalformedInput, "multiple documents are not supported")
	}
	return entries, nil
}

func buildQuestion(index int, entry wireQuestion) (Question, error) {
	prompt := strings.TrimSpace(entry.Text)
	if prompt == "" {
		return Question{}, questionError(MissingPrompt, index, "")
	}
	kind, err := parseKind(index, entry.Type)
	if err != nil {
		return Question{}, err
	}
	question := Question{
		ID:          fmt.Sprintf("q-%d", index),
		Kind:        kind,
		Prompt:      prompt,
		Explanation: strings.TrimSpace(entry.Explanation),
	}
	if kind.IsChoice() {
		if len(entry.Options) == 0 {
			return Question{}, questionError(MissingOptions, index, "")
		}
		question.Options = entry.Options
	}
	if err := assignAnswer(&question, index, entry.Answer); err != nil {
		return Question{}, err
	}
	return question, nil
}

func parseKind(index int, raw string) (Kind, error) {
	switch Kind(strings.TrimSpace(raw)) {
	case "":
		return Single, nil
	case Single:
		return Single, nil
	case Multiple:
		return Multiple, nil
	case Text:
		return Text, nil
	default:
		return "", questionError(InvalidKind, index, fmt.Sprintf("%q", raw))
	}
}

// assignAnswer decodes the kind-appropriate answer shape and checks that
// choice indices fit the options. The observed ingestion format tolerates a
// bare number where a multiple-choice array is expected; that number is
// coerced to a one-element set.
func assignAnswer(question *Question, index int, raw json.RawMessage) error {
	if len(raw) == 0 {
		return questionError(InvalidAnswer, index, "missing answer")
	}
	switch question.Kind {
	case Single:
		var answer int
		if err := json.Unmarshal(raw, &answer); err != nil {
			return questionError(InvalidAnswer, index, "single-choice answer must be an option index")
		}
		if answer < 0 || answer >= len(question.Options) {
			return questionError(AnswerOutOfRange, index, fmt.Sprintf("%d", answer))
		}
		question.AnswerIndex = answer
	case Multiple:
		indices, err := decodeIndexSet(raw)
		if err != nil {
			return questionError(InvalidAnswer, index, "multiple-choice answer must be option indices")
		}
		if len(indices) == 0 {
			return questionError(InvalidAnswer, index, "multiple-choice answer must name at least one option")
		}
		for _, idx := range indices {
			if idx < 0 || idx >= len(question.Options) {
				return questionError(AnswerOutOfRange, index, fmt.Sprintf("%d", idx))
			}
		}
		question.AnswerSet = normalizeIndexSet(indices)
	case Text:
		var answer string
		if err := json.Unmarshal(raw, &answer); err != nil {
			return questionError(InvalidAnswer, index, "text answer must be a reference string")
		}
		question.AnswerText = strings.TrimSpace(answer)
	}
	return nil
}

func decodeIndexSet(raw json.RawMessage) ([]int, error) {
	var indices []int
	if err := json.Unmarshal(raw, &indices); err == nil {
		return indices, nil
	}
	var single int
	if err := json.Unmarshal(raw, &single); err != nil {
		return nil, err
	}
	return []int{single}, nil
}

// normalizeIndexSet sorts and deduplicates answer indices so set grading
// never depends on authoring order.
func normalizeIndexSet(indices []int) []int {
	seen := make(map[int]struct{}, len(indices))
	normalized := make([]int, 0, len(indices))
	for _, idx := range indices {
		if _, dup := seen[idx]; dup {
			continue
		}
		seen[idx] = struct{}{}
		normalized = append(normalized, idx)
	}
	sort.Ints(normalized)
	return normalized
}

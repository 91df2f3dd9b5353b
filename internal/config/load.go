package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads, parses, normalizes, and validates a deck config file.
func Load(path string) (Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Deck{}, fmt.Errorf("read deck config: %w", err)
	}
	deck, err := Parse(data)
	if err != nil {
		return Deck{}, err
	}
	Normalize(&deck)
	if err := Validate(deck); err != nil {
		return Deck{}, err
	}
	return deck, nil
}

// Parse decodes a single strict YAML document into a Deck.
func Parse(data []byte) (Deck, error) {
	var deck Deck
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&deck); err != nil {
		return Deck{}, fmt.Errorf("parse deck config: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Deck{}, fmt.Errorf("parse deck config: multiple YAML documents are not supported")
		}
		return Deck{}, fmt.Errorf("parse deck config: %w", err)
	}
	return deck, nil
}

// Normalize trims titles and fills defaults in place.
func Normalize(deck *Deck) {
	deck.Title = strings.TrimSpace(deck.Title)
	deck.Subtitle = strings.TrimSpace(deck.Subtitle)
	if deck.Title == "" {
		deck.Title = defaultTitle
	}
	if deck.Subtitle == "" {
		deck.Subtitle = defaultSubtitle
	}
	if deck.FeedbackSeconds == 0 {
		deck.FeedbackSeconds = defaultFeedbackSeconds
	}
}

// Validate rejects values normalization cannot repair.
func Validate(deck Deck) error {
	if deck.FeedbackSeconds < 0 {
		return fmt.Errorf("deck config: feedback_seconds must not be negative")
	}
	if deck.FeedbackSeconds > maxFeedbackSeconds {
		return fmt.Errorf("deck config: feedback_seconds must be at most %d", maxFeedbackSeconds)
	}
	return nil
}

// Package config holds the presenter-facing deck configuration.
package config

import "time"

const (
	defaultTitle           = "Knowledge Quiz"
	defaultSubtitle        = "Live Session"
	defaultFeedbackSeconds = 3
	maxFeedbackSeconds     = 60
)

// Deck describes how a bank is presented. All fields are optional;
// Normalize fills the defaults.
type Deck struct {
	Title           string  `yaml:"title"`
	Subtitle        string  `yaml:"subtitle"`
	FeedbackSeconds float64 `yaml:"feedback_seconds"`
	NoColor         bool    `yaml:"no_color"`
}

// Default returns a normalized deck with no file behind it.
func Default() Deck {
	deck := Deck{}
	Normalize(&deck)
	return deck
}

// FeedbackDelay converts feedback_seconds to a duration.
func (d Deck) FeedbackDelay() time.Duration {
	return time.Duration(d.FeedbackSeconds * float64(time.Second))
}

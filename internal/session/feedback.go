package session

import "time"

// Feedback is a snapshot of the transient verdict banner. Seq identifies
// the showing; a dismissal scheduled for an older Seq must not fire.
type Feedback struct {
	Visible bool
	Seq     int
}

// Feedback returns the current banner snapshot.
func (s *Session) Feedback() Feedback {
	return Feedback{Visible: s.feedbackVisible, Seq: s.feedbackSeq}
}

// FeedbackDelay is how long the renderer should keep the banner up before
// calling ExpireFeedback.
func (s *Session) FeedbackDelay() time.Duration {
	return s.feedbackDelay
}

// ExpireFeedback hides the banner if seq still names the current showing.
// Stale expirations, scheduled before navigation or a newer submission
// replaced the banner, are ignored. Callers must serialize ExpireFeedback
// with the intent methods through one event loop.
func (s *Session) ExpireFeedback(seq int) {
	if seq != s.feedbackSeq {
		return
	}
	s.feedbackVisible = false
}

// showFeedback starts a fresh banner showing, invalidating any pending
// expiration for the previous one.
func (s *Session) showFeedback() {
	s.feedbackSeq++
	s.feedbackVisible = true
}

// dismissFeedback hides the banner immediately and invalidates pending
// expirations.
func (s *Session) dismissFeedback() {
	s.feedbackSeq++
	s.feedbackVisible = false
}

package bank

// Kind identifies how a question is answered and graded.
type Kind string

const (
	// Single is a single-choice question graded by index equality.
	Single Kind = "single"
	// Multiple is a multiple-choice question graded by set equality.
	Multiple Kind = "multiple"
	// Text is a free-text question judged manually after reveal.
	Text Kind = "text"
)

// IsChoice reports whether the kind carries selectable options.
func (k Kind) IsChoice() bool {
	return k == Single || k == Multiple
}

// Question is one validated entry of a bank. Immutable after Parse.
type Question struct {
	ID          string
	Kind        Kind
	Prompt      string
	Options     []string
	AnswerIndex int    // Single: index into Options
	AnswerSet   []int  // Multiple: sorted, deduplicated indices into Options
	AnswerText  string // Text: reference answer revealed after submission
	Explanation string
}

// Bank is the ordered question sequence for one session, validated and
// immutable once Parse returns it.
type Bank struct {
	Questions []Question
}

// Len returns the number of questions in the bank.
func (b Bank) Len() int {
	return len(b.Questions)
}

// Counts aggregates questions by kind.
type Counts struct {
	Single   int
	Multiple int
	Text     int
}

// Counts tallies the bank's questions by kind.
func (b Bank) Counts() Counts {
	var counts Counts
	for _, question := range b.Questions {
		switch question.Kind {
		case Single:
			counts.Single++
		case Multiple:
			counts.Multiple++
		case Text:
			counts.Text++
		}
	}
	return counts
}

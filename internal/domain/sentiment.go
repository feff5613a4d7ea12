package domain

// Label is the categorical polarity assigned to a piece of text
type Label string

// Sentiment labels
const (
	LabelPositive Label = "positive"
	LabelNegative Label = "negative"
	LabelNeutral  Label = "neutral"
)

// Fixed scores reported for each label
const (
	ScorePositive = 0.87
	ScoreNegative = -0.76
	ScoreNeutral  = 0.00
)

// String returns the wire representation of the label
func (l Label) String() string {
	return string(l)
}

// Result is the outcome of classifying a single piece of text.
// Text always holds the caller's original, un-normalized input.
type Result struct {
	Text      string
	Sentiment Label
	Score     float64
}

// NewResult builds a Result with the score that belongs to the label
func NewResult(text string, label Label) Result {
	return Result{
		Text:      text,
		Sentiment: label,
		Score:     ScoreFor(label),
	}
}

// ScoreFor returns the fixed score for a label. Unknown labels score as neutral.
func ScoreFor(label Label) float64 {
	switch label {
	case LabelPositive:
		return ScorePositive
	case LabelNegative:
		return ScoreNegative
	default:
		return ScoreNeutral
	}
}

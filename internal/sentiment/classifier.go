package sentiment

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/SentimentService_Go/internal/domain"
)

// Classifier assigns a sentiment label and score to text
type Classifier interface {
	Classify(text string) domain.Result
}

// KeywordClassifier labels text by substring containment against fixed keyword lists.
// There is no tokenization, so a keyword embedded in a longer word still matches.
type KeywordClassifier struct {
	positive []string
	negative []string
}

// NewKeywordClassifier creates a classifier over the built-in keyword lists
func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{
		positive: positiveKeywords,
		negative: negativeKeywords,
	}
}

// Classify labels the text. Text containing keywords from both lists is neutral.
func (c *KeywordClassifier) Classify(text string) domain.Result {
	normalized := normalize(text)
	hasPositive := containsAny(normalized, c.positive)
	hasNegative := containsAny(normalized, c.negative)

	switch {
	case hasPositive && !hasNegative:
		return domain.NewResult(text, domain.LabelPositive)
	case hasNegative && !hasPositive:
		return domain.NewResult(text, domain.LabelNegative)
	default:
		return domain.NewResult(text, domain.LabelNeutral)
	}
}

// normalize lowercases with full Unicode case mapping.
// A Caser keeps state between calls, so one is built per call.
func normalize(text string) string {
	return cases.Lower(language.Und).String(text)
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

package sentiment

// Keyword lists matched by substring against the lowercased input.
// Never mutated after init, so concurrent reads need no locking.
var (
	positiveKeywords = []string{
		"good",
		"great",
		"love",
		"awesome",
		"отлично",
		"супер",
	}

	negativeKeywords = []string{
		"bad",
		"hate",
		"terrible",
		"ужасно",
		"плохо",
	}
)

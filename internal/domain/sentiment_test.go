package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewResult(t *testing.T) {
	tests := []struct {
		label Label
		score float64
	}{
		{LabelPositive, 0.87},
		{LabelNegative, -0.76},
		{LabelNeutral, 0.00},
		{Label("mixed"), 0.00},
	}

	for _, tt := range tests {
		t.Run(tt.label.String(), func(t *testing.T) {
			r := NewResult("some text", tt.label)
			assert.Equal(t, "some text", r.Text)
			assert.Equal(t, tt.label, r.Sentiment)
			assert.InDelta(t, tt.score, r.Score, 1e-9)
		})
	}
}

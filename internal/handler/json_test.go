package handler

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SentimentService_Go/internal/domain"
)

func TestWriteJSONString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "hello", `"hello"`},
		{"empty", "", `""`},
		{"quote", `say "hi"`, `"say \"hi\""`},
		{"backslash", `a\b`, `"a\\b"`},
		{"newline", "a\nb", `"a\nb"`},
		{"carriage return", "a\rb", `"a\rb"`},
		{"tab", "a\tb", `"a\tb"`},
		{"other control character", "a\x01b", `"a\u0001b"`},
		{"unit separator", "\x1f", `"\u001f"`},
		{"non-ascii untouched", "отлично 👍", `"отлично 👍"`},
		{"html untouched", "<b>&</b>", `"<b>&</b>"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			writeJSONString(&buf, tt.input)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteJSONString_RoundTrip(t *testing.T) {
	inputs := []string{
		"quote \" backslash \\ newline \n end",
		"\r\n\t mixed \x00 \x7f",
		`{"text":"nested"}`,
		"ужасно \\ \"плохо\"",
	}

	for _, input := range inputs {
		var buf bytes.Buffer
		writeJSONString(&buf, input)

		var decoded string
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded), buf.String())
		assert.Equal(t, input, decoded)
	}
}

func TestFormatScore(t *testing.T) {
	assert.Equal(t, "0.87", formatScore(domain.ScorePositive))
	assert.Equal(t, "-0.76", formatScore(domain.ScoreNegative))
	assert.Equal(t, "0.00", formatScore(domain.ScoreNeutral))
	assert.Equal(t, "0.13", formatScore(0.125000001))
}

func TestWriteResultJSON(t *testing.T) {
	var buf bytes.Buffer

	writeResultJSON(&buf, domain.NewResult("I \"love\" this\n", domain.LabelPositive))

	assert.Equal(t, `{"text":"I \"love\" this\n","sentiment":"positive","score":0.87}`, buf.String())
}

func TestWriteErrorJSON(t *testing.T) {
	var buf bytes.Buffer

	writeErrorJSON(&buf, domain.ErrMsgTextRequired)

	assert.Equal(t, `{"error":"text query parameter is required"}`, buf.String())
}

package handler

import (
	"bytes"
	"strconv"

	"github.com/osse101/SentimentService_Go/internal/domain"
)

const hexDigits = "0123456789abcdef"

// writeJSONString writes s as a quoted JSON string.
// Backslash, double quote, \n, \r and \t get short escapes; any other
// control character is written as \u00XX. Everything else, including
// non-ASCII UTF-8, is copied through unchanged.
func writeJSONString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}
		buf.WriteString(s[start:i])
		switch c {
		case '\\':
			buf.WriteString(`\\`)
		case '"':
			buf.WriteString(`\"`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			buf.WriteString(`\u00`)
			buf.WriteByte(hexDigits[c>>4])
			buf.WriteByte(hexDigits[c&0xF])
		}
		start = i + 1
	}
	buf.WriteString(s[start:])
	buf.WriteByte('"')
}

// formatScore renders a score with exactly two decimals and a '.' separator
func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', 2, 64)
}

// writeResultJSON writes {"text":"...","sentiment":"...","score":0.00}
func writeResultJSON(buf *bytes.Buffer, result domain.Result) {
	buf.WriteString(`{"text":`)
	writeJSONString(buf, result.Text)
	buf.WriteString(`,"sentiment":`)
	writeJSONString(buf, result.Sentiment.String())
	buf.WriteString(`,"score":`)
	buf.WriteString(formatScore(result.Score))
	buf.WriteByte('}')
}

// writeErrorJSON writes {"error":"..."}
func writeErrorJSON(buf *bytes.Buffer, message string) {
	buf.WriteString(`{"error":`)
	writeJSONString(buf, message)
	buf.WriteByte('}')
}

// Package query parses raw URL query strings with last-wins semantics.
//
// Malformed input never produces an error: pairs that fail to decode are
// dropped, so a caller simply sees the parameter as absent.
package query

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

const (
	pairSeparator  = "&"
	valueSeparator = "="
	replacementStr = string(utf8.RuneError)
)

// Values holds decoded query parameters. A later occurrence of a key overwrites an earlier one.
type Values struct {
	params map[string]string
}

// Parse decodes a raw query string such as "text=hello%20world&lang=en"
func Parse(rawQuery string) Values {
	v := Values{params: make(map[string]string)}
	if rawQuery == "" {
		return v
	}

	for _, pair := range strings.Split(rawQuery, pairSeparator) {
		if pair == "" {
			continue
		}

		rawKey, rawValue, _ := strings.Cut(pair, valueSeparator)
		key, err := decode(rawKey)
		if err != nil {
			continue
		}
		value, err := decode(rawValue)
		if err != nil {
			continue
		}
		v.set(key, value)
	}

	return v
}

// Lookup parses rawQuery and returns the value of key, if present
func Lookup(rawQuery, key string) (string, bool) {
	return Parse(rawQuery).Get(key)
}

// Get returns the value for key and whether it was present.
// A present key with an empty value returns ("", true).
func (v Values) Get(key string) (string, bool) {
	value, ok := v.params[key]
	return value, ok
}

func (v *Values) set(key, value string) {
	v.params[key] = value
}

// decode percent-decodes s, treating '+' as a space.
// Byte sequences that are not valid UTF-8 become U+FFFD.
func decode(s string) (string, error) {
	decoded, err := url.QueryUnescape(s)
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(decoded, replacementStr), nil
}

// Package wordcode maps words to strings of three digit character codes and
// finds such strings inside long runs of decimal digits.
package wordcode

import (
	"errors"
	"fmt"
	"strings"
)

// MaxCode is the largest character value a three digit group can hold.
const MaxCode = 999

var (
	ErrEmptyWord  = errors.New("empty word")
	ErrCodeRange  = errors.New("character code does not fit in three digits")
	ErrCodeLength = errors.New("code length is not a multiple of three")
	ErrCodeDigit  = errors.New("code contains a non-digit")
)

// Encode returns the zero padded three digit code of each character of word,
// concatenated in order. "Hi" encodes to "072105".
func Encode(word string) (string, error) {
	var b strings.Builder
	b.Grow(3 * len(word))
	for i, r := range word {
		if r > MaxCode {
			return "", fmt.Errorf("%w: %q at byte %d", ErrCodeRange, r, i)
		}
		fmt.Fprintf(&b, "%03d", r)
	}
	return b.String(), nil
}

// Decode reverses Encode.
func Decode(code string) (string, error) {
	if len(code)%3 != 0 {
		return "", fmt.Errorf("%w: %d", ErrCodeLength, len(code))
	}
	var b strings.Builder
	for i := 0; i < len(code); i += 3 {
		v, ok := groupValue(code[i : i+3])
		if !ok {
			return "", fmt.Errorf("%w: %q at %d", ErrCodeDigit, code[i:i+3], i)
		}
		b.WriteRune(rune(v))
	}
	return b.String(), nil
}

// groupValue parses a group of at most three decimal digits.
func groupValue(g string) (int, bool) {
	if g == "" {
		return 0, false
	}
	v := 0
	for i := 0; i < len(g); i++ {
		c := g[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		v = 10*v + int(c-'0')
	}
	return v, true
}

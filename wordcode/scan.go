package wordcode

import "fmt"

// NotFound is the offset reported when a word does not occur.
const NotFound = -1

// Pattern is a word prepared for repeated searches.
type Pattern struct {
	word  string
	code  string
	chars []int
}

// Compile checks that word can be encoded and precomputes its character codes.
func Compile(word string) (*Pattern, error) {
	if word == "" {
		return nil, ErrEmptyWord
	}
	code, err := Encode(word)
	if err != nil {
		return nil, err
	}
	chars := make([]int, 0, len(code)/3)
	for _, r := range word {
		chars = append(chars, int(r))
	}
	return &Pattern{word: word, code: code, chars: chars}, nil
}

// Word returns the word the pattern was compiled from.
func (p *Pattern) Word() string {
	return p.word
}

// Code returns the encoded form of the word.
func (p *Pattern) Code() string {
	return p.code
}

func (p *Pattern) String() string {
	return fmt.Sprintf("%q (%s)", p.word, p.code)
}

// Find returns the smallest offset i such that the groups digits[i+3j:i+3j+3]
// decode to the characters of the word, or NotFound.
//
// A final group cut short by the end of digits is decoded as it stands, so
// "07207" matches "H\a" at 0. The scan gives up completely the first time a
// candidate needs a group that starts past the end of digits, rather than
// moving on to the next offset. No later offset could fit the word anyway.
func (p *Pattern) Find(digits string) int {
	n := len(digits)
	last := len(p.chars) - 1
	for i := 0; i < n; i++ {
		for j, want := range p.chars {
			start := i + 3*j
			if start >= n {
				return NotFound
			}
			v, ok := groupValue(digits[start:min(start+3, n)])
			if !ok || v != want {
				break
			}
			if j == last {
				return i
			}
		}
	}
	return NotFound
}

// Find is a one shot version of Compile and Pattern.Find. An empty word, or
// one that cannot be encoded, is never found.
func Find(digits, word string) int {
	p, err := Compile(word)
	if err != nil {
		return NotFound
	}
	return p.Find(digits)
}

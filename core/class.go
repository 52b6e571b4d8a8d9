package core

import "unicode"

// CharClass is the category used to find word boundaries.
type CharClass int

const (
	ClassWhitespace CharClass = iota
	ClassPunctuation
	ClassWord
)

func (c CharClass) String() string {
	switch c {
	case ClassWhitespace:
		return "whitespace"
	case ClassPunctuation:
		return "punctuation"
	case ClassWord:
		return "word"
	}
	return "unknown"
}

// Classify returns the class of r. Letters, digits and '_' are word
// characters, space, tab and newline are whitespace, and everything else is
// punctuation.
func Classify(r rune) CharClass {
	switch {
	case r == ' ' || r == '\t' || r == '\n':
		return ClassWhitespace
	case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r):
		return ClassWord
	default:
		return ClassPunctuation
	}
}

// bigWordClass is Classify for WORD motions, where only whitespace separates.
func bigWordClass(r rune) CharClass {
	c := Classify(r)
	if c == ClassPunctuation {
		return ClassWord
	}
	return c
}

func isWhitespace(r rune) bool {
	return Classify(r) == ClassWhitespace
}

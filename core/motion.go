package core

// Resolve computes the cursor offset reached by m from cursor in text.
//
// Offsets range over [0, len(text)]; len(text) is the position after the last
// character. The result is false only when a character search finds no
// match, in which case the offset is the unchanged cursor.
func Resolve(m GoToAction, text []rune, cursor int) (int, bool) {
	n := len(text)
	cursor = max(0, min(cursor, n))

	switch m.Kind {
	case GoToLeft:
		return max(cursor-1, 0), true
	case GoToRight:
		return min(cursor+1, n), true
	case GoToBeginningOfLine:
		return 0, true
	case GoToEndOfLine:
		return n, true
	case GoToFirstNonSpace:
		return firstNonSpace(text), true
	case GoToNextWord:
		return nextWordStart(text, cursor, Classify), true
	case GoToNextWORD:
		return nextWordStart(text, cursor, bigWordClass), true
	case GoToBeginningOfWord:
		return wordStartBackward(text, cursor, Classify), true
	case GoToBeginningOfWORD:
		return wordStartBackward(text, cursor, bigWordClass), true
	case GoToEndWord:
		return wordEnd(text, cursor, Classify), true
	case GoToEndWORD:
		return wordEnd(text, cursor, bigWordClass), true
	case GoToEndOfPreviousWord:
		return previousWordEnd(text, cursor, Classify), true
	case GoToEndOfPreviousWORD:
		return previousWordEnd(text, cursor, bigWordClass), true
	case GoToNextOccurrenceOf:
		for i := cursor + 1; i < n; i++ {
			if text[i] == m.Char {
				return i, true
			}
		}
		return cursor, false
	case GoToPreviousOccurrenceOf:
		for i := cursor - 1; i >= 0; i-- {
			if text[i] == m.Char {
				return i, true
			}
		}
		return cursor, false
	case GoToNone:
		return cursor, true
	}
	return cursor, false
}

func firstNonSpace(text []rune) int {
	for i, r := range text {
		if !isWhitespace(r) {
			return i
		}
	}
	return len(text)
}

// nextWordStart skips the run under the cursor and the whitespace after it.
// It returns len(text) when no word follows.
func nextWordStart(text []rune, cursor int, class func(rune) CharClass) int {
	n := len(text)
	i := cursor
	if i < n && !isWhitespace(text[i]) {
		c := class(text[i])
		for i < n && class(text[i]) == c {
			i++
		}
	}
	for i < n && isWhitespace(text[i]) {
		i++
	}
	return i
}

// wordStartBackward returns the first offset of the run before the cursor,
// or of the run under it when the cursor is not on its first character.
func wordStartBackward(text []rune, cursor int, class func(rune) CharClass) int {
	i := cursor - 1
	for i >= 0 && isWhitespace(text[i]) {
		i--
	}
	if i < 0 {
		return 0
	}
	c := class(text[i])
	for i > 0 && class(text[i-1]) == c {
		i--
	}
	return i
}

// wordEnd returns the last offset of the run after the cursor. A cursor in
// the middle of a run stops at the end of that run. It returns len(text) when
// only whitespace follows.
func wordEnd(text []rune, cursor int, class func(rune) CharClass) int {
	n := len(text)
	i := cursor + 1
	for i < n && isWhitespace(text[i]) {
		i++
	}
	if i >= n {
		return n
	}
	c := class(text[i])
	for i+1 < n && class(text[i+1]) == c {
		i++
	}
	return i
}

// previousWordEnd returns the last offset of the run preceding the one under
// the cursor, or 0 when there is none.
func previousWordEnd(text []rune, cursor int, class func(rune) CharClass) int {
	n := len(text)
	if n == 0 {
		return 0
	}
	i := min(cursor, n-1)
	if !isWhitespace(text[i]) {
		c := class(text[i])
		for i >= 0 && class(text[i]) == c {
			i--
		}
	}
	for i >= 0 && isWhitespace(text[i]) {
		i--
	}
	return max(i, 0)
}

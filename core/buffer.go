package core

import (
	"slices"
	"unicode"
)

// lineBuffer is the edited text (a single line of runes) and the cursor.
// The cursor is an offset in [0, len(runes)].
type lineBuffer struct {
	runes  []rune
	cursor int
}

func newLineBuffer(content string) lineBuffer {
	return lineBuffer{runes: []rune(content)}
}

func (b *lineBuffer) content() string {
	return string(b.runes)
}

func (b *lineBuffer) len() int {
	return len(b.runes)
}

func (b *lineBuffer) clone() lineBuffer {
	return lineBuffer{runes: slices.Clone(b.runes), cursor: b.cursor}
}

// setContent replaces the text, keeping the cursor where it was when it
// still fits.
func (b *lineBuffer) setContent(content string) {
	b.runes = []rune(content)
	b.clampCursor()
}

func (b *lineBuffer) clampCursor() {
	b.cursor = max(0, min(b.cursor, len(b.runes)))
}

// clampToLastChar keeps the cursor on a character, as Normal mode requires.
func (b *lineBuffer) clampToLastChar() {
	if n := len(b.runes); n > 0 && b.cursor >= n {
		b.cursor = n - 1
	}
}

func (b *lineBuffer) insert(r rune) {
	b.runes = slices.Insert(b.runes, b.cursor, r)
	b.cursor++
}

func (b *lineBuffer) deleteNext() {
	if b.cursor < len(b.runes) {
		b.runes = slices.Delete(b.runes, b.cursor, b.cursor+1)
	}
}

func (b *lineBuffer) deletePrevious() {
	if b.cursor > 0 {
		b.runes = slices.Delete(b.runes, b.cursor-1, b.cursor)
		b.cursor--
	}
}

// deleteRange removes [start, end) and leaves the cursor at start.
func (b *lineBuffer) deleteRange(start, end int) {
	start = max(0, min(start, len(b.runes)))
	end = max(start, min(end, len(b.runes)))
	b.runes = slices.Delete(b.runes, start, end)
	b.cursor = start
}

func (b *lineBuffer) clear() {
	b.runes = b.runes[:0]
	b.cursor = 0
}

func (b *lineBuffer) replace(r rune) {
	if b.cursor < len(b.runes) {
		b.runes[b.cursor] = r
	}
}

// toggleCase flips the case of the character under the cursor. Characters
// without case are left alone.
func (b *lineBuffer) toggleCase() {
	if b.cursor >= len(b.runes) {
		return
	}
	r := b.runes[b.cursor]
	switch {
	case unicode.IsUpper(r):
		b.runes[b.cursor] = unicode.ToLower(r)
	case unicode.IsLower(r):
		b.runes[b.cursor] = unicode.ToUpper(r)
	}
}

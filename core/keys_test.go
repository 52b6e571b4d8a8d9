package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeys(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want []KeyEvent
	}{
		{"plain", "ab", []KeyEvent{Char('a'), Char('b')}},
		{"space literal", "a b", []KeyEvent{Char('a'), Char(' '), Char('b')}},
		{"escape", "i<Esc>", []KeyEvent{Char('i'), Special(KeyEscape)}},
		{"case insensitive", "<esc><BS><cr>", []KeyEvent{Special(KeyEscape), Special(KeyBackspace), Special(KeyEnter)}},
		{"arrows", "<Left><Right><Up><Down>", []KeyEvent{Special(KeyLeft), Special(KeyRight), Special(KeyUp), Special(KeyDown)}},
		{"navigation", "<Home><End><Del>", []KeyEvent{Special(KeyHome), Special(KeyEnd), Special(KeyDelete)}},
		{"space and tab", "<Space><Tab>", []KeyEvent{Special(KeySpace), Special(KeyTab)}},
		{"literal brackets", "<lt><gt>", []KeyEvent{Char('<'), Char('>')}},
		{"ctrl", "<C-r>", []KeyEvent{Ctrl('r')}},
		{"ctrl upper", "<C-R>", []KeyEvent{Ctrl('r')}},
		{"ctrl dash", "<C-->", []KeyEvent{Ctrl('-')}},
		{"shift arrow", "<S-Left>", []KeyEvent{{Key: KeyLeft, Modifiers: ModShift}}},
		{"alt", "<A-x><M-y>", []KeyEvent{{Rune: 'x', Modifiers: ModAlt}, {Rune: 'y', Modifiers: ModAlt}}},
		{"unicode", "ä", []KeyEvent{Char('ä')}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKeys(tt.spec)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseKeys_Errors(t *testing.T) {
	tests := []struct {
		spec string
		want error
	}{
		{"", ErrEmptyKeys},
		{"a<Esc", ErrUnmatchedBracket},
		{"<>", ErrUnknownKey},
		{"<Foo>", ErrUnknownKey},
		{"<X-a>", ErrUnknownModifier},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			_, err := ParseKeys(tt.spec)

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestMustParseKeys_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParseKeys("<Nope>") })
}

func TestKeyEvent_String(t *testing.T) {
	assert.Equal(t, "a", Char('a').String())
	assert.Equal(t, "Ctrl+r", Ctrl('r').String())
	assert.Equal(t, "Escape", Special(KeyEscape).String())
	assert.Equal(t, "Shift+Left", KeyEvent{Key: KeyLeft, Modifiers: ModShift}.String())
}

func TestNormalizeShift(t *testing.T) {
	assert.Equal(t, KeyEvent{Rune: 'A', Modifiers: ModShift}, normalizeShift(Char('A')))
	assert.Equal(t, KeyEvent{Rune: 'A', Modifiers: ModShift}, normalizeShift(KeyEvent{Rune: 'a', Modifiers: ModShift}))
	assert.Equal(t, Char('$'), normalizeShift(KeyEvent{Rune: '$', Modifiers: ModShift}))
	assert.Equal(t, Char('a'), normalizeShift(Char('a')))
	assert.Equal(t, KeyEvent{Key: KeyLeft, Modifiers: ModShift}, normalizeShift(KeyEvent{Key: KeyLeft, Modifiers: ModShift}))
}

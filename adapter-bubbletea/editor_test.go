package adapter_bubbletea

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	editor "github.com/ionut-t/vimcore/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyType(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func TestConvertBubbleKey(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []editor.KeyEvent
	}{
		{"rune", runes("a"), []editor.KeyEvent{editor.Char('a')}},
		{"upper rune", runes("A"), []editor.KeyEvent{editor.Char('A')}},
		{"paste", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab"), Paste: true}, []editor.KeyEvent{editor.Char('a'), editor.Char('b')}},
		{"alt rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true}, []editor.KeyEvent{{Rune: 'x', Modifiers: editor.ModAlt}}},
		{"escape", keyType(tea.KeyEsc), []editor.KeyEvent{editor.Special(editor.KeyEscape)}},
		{"backspace", keyType(tea.KeyBackspace), []editor.KeyEvent{editor.Special(editor.KeyBackspace)}},
		{"space", keyType(tea.KeySpace), []editor.KeyEvent{editor.Special(editor.KeySpace)}},
		{"tab", keyType(tea.KeyTab), []editor.KeyEvent{editor.Special(editor.KeyTab)}},
		{"enter", keyType(tea.KeyEnter), []editor.KeyEvent{editor.Special(editor.KeyEnter)}},
		{"left", keyType(tea.KeyLeft), []editor.KeyEvent{editor.Special(editor.KeyLeft)}},
		{"home", keyType(tea.KeyHome), []editor.KeyEvent{editor.Special(editor.KeyHome)}},
		{"delete", keyType(tea.KeyDelete), []editor.KeyEvent{editor.Special(editor.KeyDelete)}},
		{"ctrl r", keyType(tea.KeyCtrlR), []editor.KeyEvent{editor.Ctrl('r')}},
		{"ctrl h", keyType(tea.KeyCtrlH), []editor.KeyEvent{editor.Ctrl('h')}},
		{"unsupported", keyType(tea.KeyF1), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, convertBubbleKey(tt.msg))
		})
	}
}

func TestUpdate_ForwardsKeys(t *testing.T) {
	m := New()
	m.Focus()

	m = send(t, m, runes("i"), runes("a"), runes("b"), keyType(tea.KeyEsc), runes("0"), runes("x"))

	assert.Equal(t, "b", m.Content())
	assert.True(t, m.IsNormalMode())
}

func TestUpdate_IgnoresKeysWhenBlurred(t *testing.T) {
	m := New(editor.WithContent("abc"))

	m = send(t, m, runes("x"))

	assert.Equal(t, "abc", m.Content())
}

func TestUpdate_CtrlCQuits(t *testing.T) {
	m := New()
	m.Focus()

	_, cmd := m.Update(keyType(tea.KeyCtrlC))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestListenForEditorUpdate(t *testing.T) {
	m := New(editor.WithContent("a"))
	m.Focus()

	m = send(t, m, runes("i"))
	assert.Equal(t, ModeChangeMsg{Mode: editor.InsertMode}, m.listenForEditorUpdate()())

	m = send(t, m, keyType(tea.KeyEsc))
	assert.Equal(t, ModeChangeMsg{Mode: editor.NormalMode}, m.listenForEditorUpdate()())

	m = send(t, m, runes("x"), runes("u"))
	assert.Equal(t, UndoMsg{Content: "a"}, m.listenForEditorUpdate()())

	m = send(t, m, runes("u"))
	assert.Equal(t, messageMsg{text: editor.OldestChangeMessage}, m.listenForEditorUpdate()())
}

func TestUpdate_MessageLine(t *testing.T) {
	m := New()

	m = send(t, m, messageMsg{text: "already at oldest change"})
	assert.Contains(t, ansi.Strip(m.View()), "already at oldest change")

	m = send(t, m, clearMsg{})
	assert.NotContains(t, ansi.Strip(m.View()), "already at oldest change")
}

func TestView(t *testing.T) {
	t.Run("StatusLine", func(t *testing.T) {
		m := New(editor.WithContent("hello"))
		m.Focus()

		view := ansi.Strip(m.View())
		assert.Contains(t, view, "hello")
		assert.Contains(t, view, "NORMAL")
		assert.Contains(t, view, "1/5")

		m = send(t, m, runes("d"))
		view = ansi.Strip(m.View())
		assert.Contains(t, view, "NORMAL  d")

		m = send(t, m, runes("A"))
		assert.Contains(t, ansi.Strip(m.View()), "INSERT")
	})

	t.Run("HiddenStatusLine", func(t *testing.T) {
		m := New(editor.WithContent("hello"))
		m.HideStatusLine(true)

		assert.NotContains(t, ansi.Strip(m.View()), "NORMAL")
	})

	t.Run("Placeholder", func(t *testing.T) {
		m := New()
		m.SetPlaceholder("type here")

		assert.Contains(t, ansi.Strip(m.View()), "type here")
	})

	t.Run("Highlighted", func(t *testing.T) {
		m := New(editor.WithContent("x := 1"))
		m.SetLanguage("go", "monokai")

		assert.Contains(t, ansi.Strip(m.View()), ":= 1")
	})
}

func TestScroll_KeepsCursorVisible(t *testing.T) {
	m := New(editor.WithContent("abcdefghij"))
	m.Focus()
	m.SetWidth(4)

	m = send(t, m, runes("$"))

	line := ansi.Strip(m.renderLine())
	assert.Equal(t, "ghij", line)
	assert.Equal(t, 6, m.offset)

	m = send(t, m, runes("0"))
	assert.Equal(t, 0, m.offset)
	assert.Equal(t, "abcd", ansi.Strip(m.renderLine()))
}

func TestScroll_WideCharacters(t *testing.T) {
	m := New(editor.WithContent("日本語"))
	m.Focus()
	m.SetWidth(4)

	m = send(t, m, runes("$"))

	assert.Equal(t, 2, m.offset)
	assert.Equal(t, "本語", ansi.Strip(m.renderLine()))
}

package adapter_tcell

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	editor "github.com/ionut-t/vimcore/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(width, height)
	t.Cleanup(screen.Fini)
	return screen
}

func row(screen tcell.SimulationScreen, y int) string {
	cells, width, _ := screen.GetContents()
	var b strings.Builder
	for x := 0; x < width; x++ {
		cell := cells[y*width+x]
		if len(cell.Runes) == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteString(string(cell.Runes))
	}
	return strings.TrimRight(b.String(), " ")
}

func runAsync(screen tcell.Screen, ed editor.Editor) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- Run(context.Background(), screen, ed)
	}()
	return done
}

func wait(t *testing.T, done <-chan error) {
	t.Helper()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return")
	}
}

func TestConvertKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want editor.KeyEvent
		ok   bool
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), editor.Char('a'), true},
		{"upper", tcell.NewEventKey(tcell.KeyRune, 'A', tcell.ModShift), editor.KeyEvent{Rune: 'A', Modifiers: editor.ModShift}, true},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), editor.Char(' '), true},
		{"alt", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt), editor.KeyEvent{Rune: 'x', Modifiers: editor.ModAlt}, true},
		{"ctrl rune", tcell.NewEventKey(tcell.KeyRune, 'R', tcell.ModCtrl), editor.Ctrl('r'), true},
		{"ctrl key", tcell.NewEventKey(tcell.KeyCtrlR, 0, tcell.ModCtrl), editor.Ctrl('r'), true},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), editor.Special(editor.KeyEscape), true},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), editor.Special(editor.KeyBackspace), true},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), editor.Special(editor.KeyTab), true},
		{"delete", tcell.NewEventKey(tcell.KeyDelete, 0, tcell.ModNone), editor.Special(editor.KeyDelete), true},
		{"home", tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModNone), editor.Special(editor.KeyHome), true},
		{"unsupported", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), editor.KeyEvent{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ConvertKey(tt.ev)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRun_EditsAndDraws(t *testing.T) {
	screen := newScreen(t, 20, 3)
	ed := editor.New()

	done := runAsync(screen, ed)
	for _, r := range "iab" {
		screen.InjectKey(tcell.KeyRune, r, tcell.ModNone)
	}
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'd', tcell.ModNone)
	screen.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)
	wait(t, done)

	assert.Equal(t, "ab", ed.Content())
	assert.Equal(t, "ab", row(screen, 0))
	assert.Equal(t, "NORMAL  d", strings.TrimSpace(row(screen, 1)))

	x, y, visible := screen.GetCursor()
	assert.True(t, visible)
	assert.Equal(t, 1, x)
	assert.Equal(t, 0, y)
}

func TestRun_ShowsMessages(t *testing.T) {
	screen := newScreen(t, 40, 3)
	ed := editor.New()

	done := runAsync(screen, ed)
	screen.InjectKey(tcell.KeyRune, 'u', tcell.ModNone)
	screen.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)
	wait(t, done)

	assert.Equal(t, editor.OldestChangeMessage, row(screen, 2))
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	screen := newScreen(t, 20, 3)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, screen, editor.New())
	}()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return")
	}
}

func TestDraw_ScrollsToCursor(t *testing.T) {
	screen := newScreen(t, 4, 3)
	ed := editor.New(editor.WithContent("abcdefghij"))
	v := NewView(screen, ed)

	require.NoError(t, ed.HandleKeys("$"))
	v.Draw()

	assert.Equal(t, "ghij", row(screen, 0))
	x, _, _ := screen.GetCursor()
	assert.Equal(t, 3, x)

	require.NoError(t, ed.HandleKeys("0"))
	v.Draw()

	assert.Equal(t, "abcd", row(screen, 0))
}

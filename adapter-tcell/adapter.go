package adapter_tcell

import (
	"context"
	"unicode"

	"github.com/gdamore/tcell/v2"
	editor "github.com/ionut-t/vimcore/core"
	"github.com/rivo/uniseg"
)

type Theme struct {
	TextStyle       tcell.Style
	NormalModeStyle tcell.Style
	InsertModeStyle tcell.Style
	PendingStyle    tcell.Style
	StatusLineStyle tcell.Style
	MessageStyle    tcell.Style
}

var DefaultTheme = Theme{
	TextStyle:       tcell.StyleDefault,
	NormalModeStyle: tcell.StyleDefault.Background(tcell.ColorSlateBlue).Foreground(tcell.ColorWhite),
	InsertModeStyle: tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite),
	PendingStyle:    tcell.StyleDefault.Background(tcell.ColorDarkSlateGray).Foreground(tcell.ColorOrange),
	StatusLineStyle: tcell.StyleDefault.Background(tcell.ColorDarkSlateGray).Foreground(tcell.ColorWhite),
	MessageStyle:    tcell.StyleDefault.Foreground(tcell.ColorGreen),
}

// View draws an editor on a tcell screen: the line on the first row, the
// status line on the second and messages on the third.
type View struct {
	screen  tcell.Screen
	editor  editor.Editor
	Theme   Theme
	offset  int // First visible display column
	message string
}

func NewView(screen tcell.Screen, ed editor.Editor) *View {
	return &View{
		screen: screen,
		editor: ed,
		Theme:  DefaultTheme,
	}
}

// Run draws ed on screen and forwards key presses to it until Ctrl+C is
// pressed, ctx is done or the screen is finalized. The caller owns the
// screen: it must be initialized before and finalized after Run.
func Run(ctx context.Context, screen tcell.Screen, ed editor.Editor) error {
	v := NewView(screen, ed)
	v.Draw()

	stop := context.AfterFunc(ctx, func() {
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil

		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				return ctx.Err()
			}

		case *tcell.EventResize:
			screen.Sync()
			v.Draw()

		case *tcell.EventKey:
			if isQuit(ev) {
				return nil
			}
			if key, ok := ConvertKey(ev); ok {
				ed.HandleKey(key)
			}
			v.Draw()
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyCtrlC ||
		(ev.Key() == tcell.KeyRune && ev.Rune() == 'c' && ev.Modifiers()&tcell.ModCtrl != 0)
}

// ConvertKey converts a tcell key event to an editor key event. It reports
// false for keys the editor has no use for.
func ConvertKey(ev *tcell.EventKey) (editor.KeyEvent, bool) {
	var key editor.KeyEvent

	mods := ev.Modifiers()
	if mods&tcell.ModAlt != 0 {
		key.Modifiers |= editor.ModAlt
	}

	switch k := ev.Key(); k {
	case tcell.KeyRune:
		key.Rune = ev.Rune()
		if mods&tcell.ModCtrl != 0 {
			key.Rune = unicode.ToLower(key.Rune)
			key.Modifiers |= editor.ModCtrl
		}
		if mods&tcell.ModShift != 0 {
			key.Modifiers |= editor.ModShift
		}
	case tcell.KeyEscape:
		key.Key = editor.KeyEscape
	case tcell.KeyEnter:
		key.Key = editor.KeyEnter
	case tcell.KeyTab:
		key.Key = editor.KeyTab
		key.Rune = '\t'
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		key.Key = editor.KeyBackspace
	case tcell.KeyDelete:
		key.Key = editor.KeyDelete
	case tcell.KeyLeft:
		key.Key = editor.KeyLeft
	case tcell.KeyRight:
		key.Key = editor.KeyRight
	case tcell.KeyUp:
		key.Key = editor.KeyUp
	case tcell.KeyDown:
		key.Key = editor.KeyDown
	case tcell.KeyHome:
		key.Key = editor.KeyHome
	case tcell.KeyEnd:
		key.Key = editor.KeyEnd
	default:
		// Backspace, Tab and Enter share codes with Ctrl+H, Ctrl+I and
		// Ctrl+M and are matched above.
		if k < tcell.KeyCtrlA || k > tcell.KeyCtrlZ {
			return editor.KeyEvent{}, false
		}
		key.Rune = 'a' + rune(k-tcell.KeyCtrlA)
		key.Modifiers |= editor.ModCtrl
	}

	return key, true
}

// Draw renders the editor and shows the screen.
func (v *View) Draw() {
	v.drainSignals()

	width, height := v.screen.Size()
	v.screen.Clear()
	v.scroll(width)

	runes := []rune(v.editor.Content())
	cur := v.editor.Cursor()
	cursorX := -1
	x, col := 0, 0
	for i, r := range runes {
		w := cellWidth(r)
		if col < v.offset {
			col += w
			continue
		}
		if x+w > width {
			break
		}
		if i == cur {
			cursorX = x
		}
		v.screen.SetContent(x, 0, displayRune(r), nil, v.Theme.TextStyle)
		x += w
		col += w
	}
	if cur >= len(runes) {
		cursorX = x
	}

	if height > 1 {
		v.drawStatusLine(width)
	}
	if height > 2 && v.message != "" {
		drawString(v.screen, 0, 2, width, v.message, v.Theme.MessageStyle)
	}

	if cursorX >= 0 && cursorX < width {
		v.screen.ShowCursor(cursorX, 0)
	} else {
		v.screen.HideCursor()
	}

	v.screen.Show()
}

func (v *View) drawStatusLine(width int) {
	for x := 0; x < width; x++ {
		v.screen.SetContent(x, 1, ' ', nil, v.Theme.StatusLineStyle)
	}

	x := 0
	switch v.editor.Mode() {
	case editor.NormalMode:
		x = drawString(v.screen, x, 1, width, " NORMAL ", v.Theme.NormalModeStyle)
	case editor.InsertMode:
		x = drawString(v.screen, x, 1, width, " INSERT ", v.Theme.InsertModeStyle)
	}

	if pending := v.editor.Pending(); !pending.IsZero() {
		drawString(v.screen, x, 1, width, " "+pending.String(), v.Theme.PendingStyle)
	}
}

// drainSignals keeps the latest message and empties the signal channel.
func (v *View) drainSignals() {
	for {
		select {
		case signal := <-v.editor.GetUpdateSignalChan():
			switch signal := signal.(type) {
			case editor.MessageSignal:
				_, v.message = signal.Value()
			case editor.ModeSignal, editor.UndoSignal, editor.RedoSignal:
				v.message = ""
			}
		default:
			return
		}
	}
}

// scroll moves the visible window so the cursor cell stays on screen.
func (v *View) scroll(width int) {
	runes := []rune(v.editor.Content())
	cur := min(v.editor.Cursor(), len(runes))

	cursorCol := 0
	for _, r := range runes[:cur] {
		cursorCol += cellWidth(r)
	}
	cursorWidth := 1
	if cur < len(runes) {
		cursorWidth = cellWidth(runes[cur])
	}

	if cursorCol < v.offset {
		v.offset = cursorCol
	} else if cursorCol+cursorWidth > v.offset+width {
		v.offset = cursorCol + cursorWidth - width
	}
	v.offset = max(0, v.offset)
}

func drawString(screen tcell.Screen, x, y, width int, s string, style tcell.Style) int {
	for _, r := range s {
		w := cellWidth(r)
		if x+w > width {
			break
		}
		screen.SetContent(x, y, r, nil, style)
		x += w
	}
	return x
}

func displayRune(r rune) rune {
	if r == '\t' {
		return ' '
	}
	return r
}

func cellWidth(r rune) int {
	return max(1, uniseg.StringWidth(string(displayRune(r))))
}

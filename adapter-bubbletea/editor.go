package adapter_bubbletea

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ionut-t/vimcore/adapter-bubbletea/highlighter"
	editor "github.com/ionut-t/vimcore/core"
	"github.com/rivo/uniseg"
)

type Theme struct {
	NormalModeStyle  lipgloss.Style
	InsertModeStyle  lipgloss.Style
	PendingStyle     lipgloss.Style
	StatusLineStyle  lipgloss.Style
	CommandLineStyle lipgloss.Style
	MessageStyle     lipgloss.Style
	CursorStyle      lipgloss.Style
	PlaceholderStyle lipgloss.Style
}

var DefaultTheme = Theme{
	NormalModeStyle:  lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("255")),
	InsertModeStyle:  lipgloss.NewStyle().Background(lipgloss.Color("26")).Foreground(lipgloss.Color("255")),
	PendingStyle:     lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("208")),
	StatusLineStyle:  lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("255")),
	CommandLineStyle: lipgloss.NewStyle().Background(lipgloss.Color("235")).Foreground(lipgloss.Color("255")),
	MessageStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	CursorStyle:      lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	PlaceholderStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}

const (
	defaultWidth    = 80
	messageDuration = 3 * time.Second
)

type Model struct {
	editor           editor.Editor
	cursor           cursor.Model
	width            int
	offset           int // First visible display column
	showStatusLine   bool
	theme            Theme
	StatusLineFunc   func() string
	message          string
	isFocused        bool
	placeholder      string
	clearMsgCancel   context.CancelFunc
	highlighter      *highlighter.Highlighter
	language         string
	highlighterTheme string
}

// ModeChangeMsg is sent after the editor switches mode.
type ModeChangeMsg struct {
	Mode editor.Mode
}

// UndoMsg is sent after an undo, with the restored content.
type UndoMsg struct {
	Content string
}

// RedoMsg is sent after a redo, with the restored content.
type RedoMsg struct {
	Content string
}

type messageMsg struct {
	text string
}

type clearMsg struct{}

func (m *Model) dispatchClearMsg(duration time.Duration) tea.Cmd {
	if m.clearMsgCancel != nil {
		m.clearMsgCancel()
	}

	ctx, cancel := context.WithTimeout(context.Background(), duration)
	m.clearMsgCancel = cancel

	return func() tea.Msg {
		defer cancel()
		<-ctx.Done()
		if ctx.Err() == context.DeadlineExceeded {
			return clearMsg{}
		}
		return nil
	}
}

// New creates a model around a fresh editing session configured by options.
func New(options ...editor.Option) Model {
	return NewWithEditor(editor.New(options...))
}

// NewWithEditor creates a model around an existing editor.
func NewWithEditor(ed editor.Editor) Model {
	c := cursor.New()
	c.Style = DefaultTheme.CursorStyle
	c.SetMode(cursor.CursorStatic)

	return Model{
		editor:         ed,
		cursor:         c,
		width:          defaultWidth,
		showStatusLine: true,
		theme:          DefaultTheme,
	}
}

// SetWidth sets the number of columns available to the line.
func (m *Model) SetWidth(width int) {
	m.width = max(1, width)
	m.scroll()
}

// SetContent replaces the text and restarts the undo history.
func (m *Model) SetContent(content string) {
	m.editor.SetContent(content)
	m.offset = 0
	m.scroll()
}

// Content returns the current text.
func (m *Model) Content() string {
	return m.editor.Content()
}

// Editor returns the underlying editor.
func (m *Model) Editor() editor.Editor {
	return m.editor
}

// WithTheme allows setting a custom theme for the editor.
func (m *Model) WithTheme(theme Theme) {
	m.theme = theme
	m.cursor.Style = theme.CursorStyle
}

// SetLanguage sets the language used for syntax highlighting.
//
// If the language is empty, syntax highlighting will be disabled.
//
// The theme parameter allows specifying a Chroma theme for the syntax highlighter.
// For a full list of available themes, see: https://github.com/alecthomas/chroma/blob/master/styles
func (m *Model) SetLanguage(language string, theme string) {
	if m.language == language && m.highlighterTheme == theme {
		return
	}

	m.language = language
	m.highlighterTheme = theme
	if language == "" {
		m.highlighter = nil
		return
	}

	m.highlighter = highlighter.New(language, theme)
}

// DispatchMessage displays message in the message line for duration.
func (m *Model) DispatchMessage(message string, duration time.Duration) tea.Cmd {
	m.message = message

	return m.dispatchClearMsg(duration)
}

// HideStatusLine controls whether the status and message lines are rendered.
func (m *Model) HideStatusLine(hide bool) {
	m.showStatusLine = !hide
}

// SetPlaceholder sets the text shown while the line is empty.
func (m *Model) SetPlaceholder(placeholder string) {
	m.placeholder = placeholder
}

// SetCursorMode sets how the cursor is drawn: blinking, static or hidden.
func (m *Model) SetCursorMode(mode cursor.Mode) tea.Cmd {
	return m.cursor.SetMode(mode)
}

// Focus sets the editor to focused state. Keys are ignored while blurred.
func (m *Model) Focus() tea.Cmd {
	m.isFocused = true
	return m.cursor.Focus()
}

// Blur sets the editor to unfocused state.
func (m *Model) Blur() {
	m.isFocused = false
	m.cursor.Blur()
}

// IsFocused returns whether the editor is currently focused.
func (m *Model) IsFocused() bool {
	return m.isFocused
}

// IsNormalMode returns whether the editor is in normal mode.
func (m *Model) IsNormalMode() bool {
	return m.editor.IsNormalMode()
}

// IsInsertMode returns whether the editor is in insert mode.
func (m *Model) IsInsertMode() bool {
	return m.editor.IsInsertMode()
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.listenForEditorUpdate(), cursor.Blink)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetWidth(msg.Width)

	case tea.KeyMsg:
		if !m.IsFocused() {
			break
		}

		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		for _, key := range convertBubbleKey(msg) {
			m.editor.HandleKey(key)
		}

		m.scroll()
		m.cursor.Blink = false
		if m.cursor.Mode() == cursor.CursorBlink {
			cmds = append(cmds, m.cursor.BlinkCmd())
		}

	case ModeChangeMsg, UndoMsg, RedoMsg:
		cmds = append(cmds, m.listenForEditorUpdate())

	case messageMsg:
		cmds = append(cmds, m.DispatchMessage(msg.text, messageDuration), m.listenForEditorUpdate())

	case clearMsg:
		m.message = ""
		m.clearMsgCancel = nil
	}

	var cursorCmd tea.Cmd
	m.cursor, cursorCmd = m.cursor.Update(msg)
	cmds = append(cmds, cursorCmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	line := m.renderLine()

	if !m.showStatusLine {
		return line
	}

	statusLine := m.getStatusLine()
	paddingWidth := m.width - lipgloss.Width(statusLine)
	if paddingWidth > 0 {
		statusLine += m.theme.StatusLineStyle.Render(strings.Repeat(" ", paddingWidth))
	}

	commandLine := m.theme.CommandLineStyle.Render("")
	if m.message != "" {
		commandLine = m.theme.MessageStyle.
			Background(m.theme.CommandLineStyle.GetBackground()).
			Render(m.message)
	}
	paddingWidth = m.width - lipgloss.Width(commandLine)
	if paddingWidth > 0 {
		commandLine += m.theme.CommandLineStyle.Render(strings.Repeat(" ", paddingWidth))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		line,
		statusLine,
		commandLine,
	)
}

// renderLine draws the visible slice of the line with the cursor cell.
func (m Model) renderLine() string {
	content := m.editor.Content()
	cur := m.editor.Cursor()

	if content == "" && m.placeholder != "" {
		m.cursor.SetChar(" ")
		return m.cursor.View() + m.theme.PlaceholderStyle.Render(m.placeholder)
	}

	var styles []lipgloss.Style
	if m.highlighter != nil {
		styles = m.highlighter.Styles(content)
	}

	runes := []rune(content)
	var b strings.Builder
	col := 0
	for i, r := range runes {
		text := displayText(r)
		w := uniseg.StringWidth(text)
		if col < m.offset {
			col += w
			continue
		}
		if col+w > m.offset+m.width {
			break
		}
		col += w

		switch {
		case i == cur:
			m.cursor.SetChar(text)
			b.WriteString(m.cursor.View())
		case styles != nil:
			b.WriteString(styles[i].Render(text))
		default:
			b.WriteString(text)
		}
	}

	if cur >= len(runes) {
		m.cursor.SetChar(" ")
		b.WriteString(m.cursor.View())
	}

	return b.String()
}

// scroll moves the visible window so the cursor cell stays on screen.
func (m *Model) scroll() {
	runes := []rune(m.editor.Content())
	cur := min(m.editor.Cursor(), len(runes))

	cursorCol := 0
	for _, r := range runes[:cur] {
		cursorCol += uniseg.StringWidth(displayText(r))
	}
	cursorWidth := 1
	if cur < len(runes) {
		cursorWidth = max(1, uniseg.StringWidth(displayText(runes[cur])))
	}

	if cursorCol < m.offset {
		m.offset = cursorCol
	} else if cursorCol+cursorWidth > m.offset+m.width {
		m.offset = cursorCol + cursorWidth - m.width
	}
	m.offset = max(0, m.offset)
}

func displayText(r rune) string {
	if r == '\t' {
		return " "
	}
	return string(r)
}

func (m *Model) getStatusLine() string {
	if m.StatusLineFunc != nil {
		return m.StatusLineFunc()
	}

	var statusLine string
	switch m.editor.Mode() {
	case editor.NormalMode:
		statusLine = m.theme.NormalModeStyle.Render(" NORMAL ")
	case editor.InsertMode:
		statusLine = m.theme.InsertModeStyle.Render(" INSERT ")
	}

	if pending := m.editor.Pending(); !pending.IsZero() {
		statusLine += m.theme.PendingStyle.Render(" " + pending.String())
	}

	cursorInfo := fmt.Sprintf("%d/%d ", m.editor.Cursor()+1, len([]rune(m.editor.Content())))

	width := m.width - (lipgloss.Width(cursorInfo) + lipgloss.Width(statusLine))
	gap := strings.Repeat(" ", max(0, width))

	statusLine += m.theme.StatusLineStyle.Render(
		gap + cursorInfo,
	)

	return statusLine
}

func (m *Model) listenForEditorUpdate() tea.Cmd {
	return func() tea.Msg {
		editorChan := m.editor.GetUpdateSignalChan()
		signal := <-editorChan

		switch signal := signal.(type) {
		case editor.ModeSignal:
			return ModeChangeMsg{Mode: signal.Value()}

		case editor.UndoSignal:
			return UndoMsg{Content: signal.Value()}

		case editor.RedoSignal:
			return RedoMsg{Content: signal.Value()}

		case editor.MessageSignal:
			_, message := signal.Value()
			return messageMsg{text: message}
		}

		return nil
	}
}

// convertBubbleKey converts a Bubbletea key to editor key events. Pasted
// text arrives as one message and becomes one event per character.
func convertBubbleKey(msg tea.KeyMsg) []editor.KeyEvent {
	if msg.Type == tea.KeyRunes && len(msg.Runes) > 1 {
		keys := make([]editor.KeyEvent, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			keys = append(keys, editor.Char(r))
		}
		return keys
	}

	key := editor.KeyEvent{}

	if len(msg.Runes) > 0 {
		key.Rune = msg.Runes[0]
	}

	if msg.Alt {
		key.Modifiers |= editor.ModAlt
	}

	switch msg.Type {
	case tea.KeyRunes:
	case tea.KeyEnter:
		key.Key = editor.KeyEnter
	case tea.KeySpace:
		key.Key = editor.KeySpace
		key.Rune = ' '
	case tea.KeyEsc:
		key.Key = editor.KeyEscape
	case tea.KeyBackspace:
		key.Key = editor.KeyBackspace
	case tea.KeyTab:
		key.Key = editor.KeyTab
		key.Rune = '\t'
	case tea.KeyUp:
		key.Key = editor.KeyUp
	case tea.KeyDown:
		key.Key = editor.KeyDown
	case tea.KeyLeft:
		key.Key = editor.KeyLeft
	case tea.KeyRight:
		key.Key = editor.KeyRight
	case tea.KeyHome:
		key.Key = editor.KeyHome
	case tea.KeyEnd:
		key.Key = editor.KeyEnd
	case tea.KeyDelete:
		key.Key = editor.KeyDelete
	default:
		// Ctrl+letter arrives as its own key type; Tab, Enter and Ctrl+H
		// share codes with named keys handled above.
		if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
			key.Rune = 'a' + rune(msg.Type-tea.KeyCtrlA)
			key.Modifiers |= editor.ModCtrl
			break
		}
		return nil
	}

	return []editor.KeyEvent{key}
}

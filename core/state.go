package core

import (
	"io"
	"log/slog"
)

// Session is one editing session: a single line of text with a cursor, the
// current mode, the pending command and the undo history. It is not safe for
// concurrent use; hosts with several panes create one Session per pane.
type Session struct {
	buffer  lineBuffer
	mode    Mode
	pending OPending
	history *History[string]

	initContent  string
	maxHistory   int
	groupInsert  bool
	signalBuffer int

	logger       *slog.Logger
	updateSignal chan Signal
}

var _ Editor = (*Session)(nil)

// New creates a session in Normal mode.
func New(options ...Option) *Session {
	s := &Session{
		mode:         NormalMode,
		maxHistory:   DefaultMaxHistory,
		signalBuffer: DefaultSignalBuffer,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, option := range options {
		option(s)
	}

	s.updateSignal = make(chan Signal, s.signalBuffer)
	s.reset(s.initContent)

	return s
}

func (s *Session) reset(content string) {
	s.buffer = newLineBuffer(content)
	s.pending = OPending{}
	s.history = NewHistory(content)
	s.history.SetLimit(s.maxHistory)
}

// HandleKey processes one key press to completion.
func (s *Session) HandleKey(key KeyEvent) {
	actions := HandleEvent(s.mode, key, s.pending)

	if !actions.Pending.IsZero() {
		s.logger.Debug("awaiting keys", "key", key, "pending", actions.Pending)
		s.pending = actions.Pending
		return
	}

	if !s.pending.IsZero() && len(actions.List) == 0 {
		s.logger.Debug("pending command cancelled", "key", key, "pending", s.pending)
	}
	s.pending = OPending{}

	if len(actions.List) > 0 {
		s.apply(actions.List)
	}

	// In Normal mode the cursor sits on a character, never after the last one.
	if s.mode == NormalMode {
		s.buffer.clampToLastChar()
	}
}

// HandleKeys parses spec with ParseKeys and processes every key in order.
func (s *Session) HandleKeys(spec string) error {
	keys, err := ParseKeys(spec)
	if err != nil {
		return err
	}
	for _, key := range keys {
		s.HandleKey(key)
	}
	return nil
}

// apply runs list in order. If any action fails, the buffer and mode are
// restored to what they were before the list, so commands apply entirely or
// not at all.
func (s *Session) apply(list []Action) {
	before := s.buffer.clone()
	modeBefore := s.mode

	for _, action := range list {
		if !s.applyAction(action) {
			s.buffer = before
			s.mode = modeBefore
			s.logger.Debug("motion failed, actions dropped", "actions", list, "failed", action)
			return
		}
	}

	s.logger.Debug("actions applied", "actions", list, "cursor", s.buffer.cursor)

	if s.mode != modeBefore {
		s.DispatchSignal(ModeSignal{mode: s.mode})
	}

	s.saveHistory()
}

func (s *Session) applyAction(action Action) bool {
	switch action.Kind {
	case ActionGoTo:
		target, ok := Resolve(action.Motion, s.buffer.runes, s.buffer.cursor)
		if !ok {
			return false
		}
		s.buffer.cursor = target
	case ActionDelete:
		return s.deleteMotion(action.Motion, action.Adjust)
	case ActionDeleteLine:
		s.buffer.clear()
	case ActionDeleteNextChar:
		s.buffer.deleteNext()
	case ActionDeletePreviousChar:
		s.buffer.deletePrevious()
	case ActionInsertChar:
		s.buffer.insert(action.Char)
	case ActionReplaceWith:
		s.buffer.replace(action.Char)
	case ActionToggleCapitalisation:
		s.buffer.toggleCase()
	case ActionSelectMode:
		s.mode = action.Mode
	case ActionUndo:
		s.undo()
	case ActionRedo:
		s.redo()
	case ActionNone:
	default:
		s.logger.Warn("unhandled action", "action", action)
		return false
	}
	return true
}

// deleteMotion deletes between the cursor and the target of m, moved by
// adjust when present. The order of the two offsets does not matter.
func (s *Session) deleteMotion(m, adjust GoToAction) bool {
	end, ok := Resolve(m, s.buffer.runes, s.buffer.cursor)
	if !ok {
		return false
	}

	last := m
	if !adjust.IsZero() {
		if end, ok = Resolve(adjust, s.buffer.runes, end); !ok {
			return false
		}
		last = adjust
	}

	start, stop := min(s.buffer.cursor, end), max(s.buffer.cursor, end)
	if last.inclusive() {
		stop = min(stop+1, s.buffer.len())
	}

	s.buffer.deleteRange(start, stop)
	return true
}

func (s *Session) undo() {
	content, ok := s.history.Undo()
	if !ok {
		s.DispatchMessage(OldestChangeMessage)
		return
	}
	s.buffer.setContent(content)
	s.DispatchSignal(UndoSignal{content: content})
}

func (s *Session) redo() {
	content, ok := s.history.Redo()
	if !ok {
		s.DispatchMessage(NewestChangeMessage)
		return
	}
	s.buffer.setContent(content)
	s.DispatchSignal(RedoSignal{content: content})
}

// saveHistory records the content unless an insert session is being grouped.
// Content equal to the current entry is never recorded, which also keeps
// undo and redo from adding entries.
func (s *Session) saveHistory() {
	if s.groupInsert && s.mode == InsertMode {
		return
	}
	if s.history.Save(s.buffer.content()) {
		s.logger.Debug("history saved", "entries", s.history.Len())
	}
}

// SetContent replaces the text, clears any pending command and restarts the
// history from the new content.
func (s *Session) SetContent(content string) {
	s.reset(content)
}

// Content returns the current text.
func (s *Session) Content() string {
	return s.buffer.content()
}

// Cursor returns the cursor offset in runes.
func (s *Session) Cursor() int {
	return s.buffer.cursor
}

func (s *Session) Mode() Mode {
	return s.mode
}

func (s *Session) Pending() OPending {
	return s.pending
}

// History returns every history snapshot, oldest first.
func (s *Session) History() []string {
	return s.history.Entries()
}

func (s *Session) HistoryPosition() int {
	return s.history.Position()
}

func (s *Session) GetUpdateSignalChan() <-chan Signal {
	return s.updateSignal
}

func (s *Session) IsNormalMode() bool {
	return s.mode == NormalMode
}

func (s *Session) IsInsertMode() bool {
	return s.mode == InsertMode
}

package core

type Signal any

// ModeSignal is sent when the session switches mode.
type ModeSignal struct {
	mode Mode
}

func (m ModeSignal) Value() Mode {
	return m.mode
}

// UndoSignal is sent after a successful undo.
type UndoSignal struct {
	content string
}

func (u UndoSignal) Value() string {
	return u.content
}

// RedoSignal is sent after a successful redo.
type RedoSignal struct {
	content string
}

func (r RedoSignal) Value() string {
	return r.content
}

type MessageSignal struct {
	id    string
	value string
}

func (m MessageSignal) Value() (id, message string) {
	id = m.id
	message = m.value

	return id, message
}

// DispatchSignal sends signal to the host without ever blocking. Signals are
// dropped when nobody drains the channel.
func (s *Session) DispatchSignal(signal Signal) {
	select {
	case s.updateSignal <- signal:
	default:
		s.logger.Debug("signal channel full, dropping signal", "signal", signal)
	}
}

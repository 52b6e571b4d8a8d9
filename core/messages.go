package core

var (
	EmptyMessage        = ""
	OldestChangeMessage = "already at oldest change"
	NewestChangeMessage = "already at newest change"
)

func (s *Session) DispatchMessage(args ...string) {
	id := args[0]
	value := id
	if len(args) > 1 {
		value = args[1]
	}
	s.DispatchSignal(MessageSignal{id, value})
}

package core

// Editor is what a host needs from an editing session: feed key events in,
// read text, cursor and mode back out.
type Editor interface {
	// Event handling
	HandleKey(key KeyEvent)       // Process one key press
	HandleKeys(spec string) error // Process a sequence in Vim notation

	// Queries
	Content() string   // Current text
	Cursor() int       // Cursor offset in runes
	Mode() Mode        // Current mode
	Pending() OPending // Command waiting for more keys, if any

	// Content management
	SetContent(content string) // Replace the text and restart history

	// History inspection
	History() []string // Every snapshot, oldest first
	HistoryPosition() int

	GetUpdateSignalChan() <-chan Signal // For UI updates

	IsNormalMode() bool
	IsInsertMode() bool
}

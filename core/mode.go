package core

type Mode string

const (
	NormalMode Mode = "normal"
	InsertMode Mode = "insert"
)

// keyTable maps the key presses of one mode to actions. Each method receives
// an event whose modifiers have already been normalized.
type keyTable interface {
	blank(key KeyEvent) Actions
	ctrl(key KeyEvent) Actions
	shift(key KeyEvent) Actions
}

var keyTables = map[Mode]keyTable{
	NormalMode: normalMode{},
	InsertMode: insertMode{},
}

func (m Mode) table() keyTable {
	if t, ok := keyTables[m]; ok {
		return t
	}
	return keyTables[NormalMode]
}

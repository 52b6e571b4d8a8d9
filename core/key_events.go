package core

import (
	"fmt"
	"strings"
	"unicode"
)

// --- KeyCode, KeyModifiers, Key ---

// KeyCode represents non-character keys
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyEnter
	KeyTab
	KeyBackspace
	KeyEscape
	KeySpace

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Navigation keys
	KeyHome
	KeyEnd

	// Editing keys
	KeyDelete
)

// KeyModifiers represents modifier keys held during a keystroke
type KeyModifiers uint8

const (
	ModNone KeyModifiers = 0
	ModCtrl KeyModifiers = 1 << iota
	ModAlt
	ModShift
)

// KeyEvent represents a keyboard input event.
//
// Character keys carry their rune with Key set to KeyUnknown. Space and Tab
// carry both the key code and the rune.
type KeyEvent struct {
	Rune      rune
	Key       KeyCode
	Modifiers KeyModifiers
}

// Char returns a character key event.
func Char(r rune) KeyEvent {
	return KeyEvent{Rune: r}
}

// Special returns a non-character key event.
func Special(code KeyCode) KeyEvent {
	k := KeyEvent{Key: code}
	switch code {
	case KeySpace:
		k.Rune = ' '
	case KeyTab:
		k.Rune = '\t'
	}
	return k
}

// Ctrl returns the control chord for r, e.g. Ctrl('r').
func Ctrl(r rune) KeyEvent {
	return KeyEvent{Rune: r, Modifiers: ModCtrl}
}

// IsChar reports whether the event produces a character.
func (k KeyEvent) IsChar() bool {
	if k.Rune == 0 {
		return false
	}
	return k.Key == KeyUnknown || k.Key == KeySpace || k.Key == KeyTab
}

// normalizeShift makes terminals that report shift differently agree: an
// uppercase letter always carries ModShift, and ModShift on a lowercase
// letter uppercases it. Shift on a character without case is dropped.
func normalizeShift(k KeyEvent) KeyEvent {
	if !k.IsChar() {
		return k
	}
	switch {
	case unicode.IsUpper(k.Rune):
		k.Modifiers |= ModShift
	case k.Modifiers&ModShift != 0:
		upper := unicode.ToUpper(k.Rune)
		if upper == k.Rune {
			k.Modifiers &^= ModShift
		}
		k.Rune = upper
	}
	return k
}

// String returns a string representation of a Key
func (k KeyEvent) String() string {
	var parts []string

	// Modifiers first
	if k.Modifiers&ModCtrl != 0 {
		parts = append(parts, "Ctrl")
	}
	if k.Modifiers&ModAlt != 0 {
		parts = append(parts, "Alt")
	}
	if k.Modifiers&ModShift != 0 {
		parts = append(parts, "Shift")
	}

	switch k.Key {
	case KeyUnknown:
		if k.Rune != 0 {
			parts = append(parts, string(k.Rune))
		} else {
			parts = append(parts, "Unknown")
		}
	case KeyEnter:
		parts = append(parts, "Enter")
	case KeyTab:
		parts = append(parts, "Tab")
	case KeyBackspace:
		parts = append(parts, "Backspace")
	case KeyEscape:
		parts = append(parts, "Escape")
	case KeySpace:
		parts = append(parts, "Space")
	case KeyUp:
		parts = append(parts, "Up")
	case KeyDown:
		parts = append(parts, "Down")
	case KeyLeft:
		parts = append(parts, "Left")
	case KeyRight:
		parts = append(parts, "Right")
	case KeyHome:
		parts = append(parts, "Home")
	case KeyEnd:
		parts = append(parts, "End")
	case KeyDelete:
		parts = append(parts, "Delete")
	default:
		parts = append(parts, fmt.Sprintf("SpecialKey(%d)", k.Key))
	}

	return strings.Join(parts, "+")
}

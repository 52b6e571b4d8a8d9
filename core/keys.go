package core

import (
	"fmt"
	"strings"
	"unicode"
)

// ParseKeys parses a key sequence written in Vim notation into events.
//
// Plain characters stand for themselves. Special keys are written between
// angle brackets: <Esc>, <BS>, <CR>, <Tab>, <Space>, <Del>, <Left>, <Right>,
// <Up>, <Down>, <Home>, <End>, <lt> (a literal '<'), and chords such as <C-r>
// or <S-Left>.
func ParseKeys(spec string) ([]KeyEvent, error) {
	if spec == "" {
		return nil, ErrEmptyKeys
	}

	var events []KeyEvent
	runes := []rune(spec)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '<' {
			events = append(events, Char(runes[i]))
			continue
		}

		end := i + 1
		for end < len(runes) && runes[end] != '>' {
			end++
		}
		if end == len(runes) {
			return nil, fmt.Errorf("%w at offset %d", ErrUnmatchedBracket, i)
		}

		event, err := parseBracketed(string(runes[i+1 : end]))
		if err != nil {
			return nil, err
		}
		events = append(events, event)
		i = end
	}

	return events, nil
}

// MustParseKeys is ParseKeys for sequences known to be valid.
func MustParseKeys(spec string) []KeyEvent {
	events, err := ParseKeys(spec)
	if err != nil {
		panic("invalid key sequence " + spec + ": " + err.Error())
	}
	return events
}

// parseBracketed parses the inside of <...>, e.g. "Esc" or "C-r".
func parseBracketed(inner string) (KeyEvent, error) {
	if inner == "" {
		return KeyEvent{}, fmt.Errorf("%w: <>", ErrUnknownKey)
	}

	var mods KeyModifiers
	parts := strings.Split(inner, "-")
	keyPart := parts[len(parts)-1]
	if keyPart == "" && len(parts) > 1 {
		// <C--> is Ctrl and a literal '-'
		keyPart = "-"
		parts = parts[:len(parts)-1]
	}
	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(p) {
		case "c":
			mods |= ModCtrl
		case "a", "m":
			mods |= ModAlt
		case "s":
			mods |= ModShift
		default:
			return KeyEvent{}, fmt.Errorf("%w %q in <%s>", ErrUnknownModifier, p, inner)
		}
	}

	event, err := parseKeyName(keyPart)
	if err != nil {
		return KeyEvent{}, err
	}
	event.Modifiers |= mods
	if mods&ModCtrl != 0 && event.Key == KeyUnknown {
		event.Rune = unicode.ToLower(event.Rune)
	}
	return event, nil
}

func parseKeyName(name string) (KeyEvent, error) {
	switch strings.ToLower(name) {
	case "esc", "escape":
		return Special(KeyEscape), nil
	case "bs", "backspace":
		return Special(KeyBackspace), nil
	case "cr", "enter", "return":
		return Special(KeyEnter), nil
	case "tab":
		return Special(KeyTab), nil
	case "space":
		return Special(KeySpace), nil
	case "del", "delete":
		return Special(KeyDelete), nil
	case "left":
		return Special(KeyLeft), nil
	case "right":
		return Special(KeyRight), nil
	case "up":
		return Special(KeyUp), nil
	case "down":
		return Special(KeyDown), nil
	case "home":
		return Special(KeyHome), nil
	case "end":
		return Special(KeyEnd), nil
	case "lt":
		return Char('<'), nil
	case "gt":
		return Char('>'), nil
	case "bar":
		return Char('|'), nil
	case "bslash":
		return Char('\\'), nil
	}

	if runes := []rune(name); len(runes) == 1 {
		return Char(runes[0]), nil
	}
	return KeyEvent{}, fmt.Errorf("%w %q", ErrUnknownKey, name)
}

package core

type insertMode struct{}

func (insertMode) blank(key KeyEvent) Actions {
	switch key.Key {
	case KeyEscape:
		// Vim leaves insert mode on the character before the insertion point.
		return Do(GoTo(Motion(GoToLeft)), SelectMode(NormalMode))
	case KeyBackspace:
		return Do(Act(ActionDeletePreviousChar))
	case KeyDelete:
		return Do(Act(ActionDeleteNextChar))
	case KeyLeft:
		return Do(GoTo(Motion(GoToLeft)))
	case KeyRight:
		return Do(GoTo(Motion(GoToRight)))
	case KeyHome:
		return Do(GoTo(Motion(GoToBeginningOfLine)))
	case KeyEnd:
		return Do(GoTo(Motion(GoToEndOfLine)))
	}

	if key.IsChar() {
		return Do(InsertChar(key.Rune))
	}
	// Enter, Up and Down have no meaning on a single line.
	return Actions{}
}

func (insertMode) ctrl(key KeyEvent) Actions {
	// Terminals send Ctrl-H for backspace.
	if key.Key == KeyUnknown && key.Rune == 'h' {
		return Do(Act(ActionDeletePreviousChar))
	}
	return Actions{}
}

func (insertMode) shift(key KeyEvent) Actions {
	if key.IsChar() {
		return Do(InsertChar(key.Rune))
	}
	return Actions{}
}

package core

type normalMode struct{}

func (normalMode) blank(key KeyEvent) Actions {
	switch key.Key {
	case KeyLeft, KeyBackspace:
		return Do(GoTo(Motion(GoToLeft)))
	case KeyRight:
		return Do(GoTo(Motion(GoToRight)))
	case KeyHome:
		return Do(GoTo(Motion(GoToBeginningOfLine)))
	case KeyEnd:
		return Do(GoTo(Motion(GoToEndOfLine)))
	case KeyUnknown:
	default:
		return Actions{}
	}

	switch key.Rune {
	case '$':
		return Do(GoTo(Motion(GoToEndOfLine)))
	case '0':
		return Do(GoTo(Motion(GoToBeginningOfLine)))
	case '^':
		return Do(GoTo(Motion(GoToFirstNonSpace)))
	case 'a': // Append after the cursor
		return Do(GoTo(Motion(GoToRight)), SelectMode(InsertMode))
	case 'b':
		return Do(GoTo(Motion(GoToBeginningOfWord)))
	case 'c':
		return Await(Pending(PendingChange))
	case 'd':
		return Await(Pending(PendingDelete))
	case 'e':
		return Do(GoTo(Motion(GoToEndWord)))
	case 'f':
		return Await(Combinable(FindNext))
	case 'g':
		return Await(Pending(PendingGoTo))
	case 'h':
		return Do(GoTo(Motion(GoToLeft)))
	case 'i':
		return Do(SelectMode(InsertMode))
	case 'l':
		return Do(GoTo(Motion(GoToRight)))
	case 'r':
		return Await(Pending(PendingReplaceOne))
	case 's': // Substitute the character under the cursor
		return Do(GoTo(Motion(GoToRight)), Act(ActionDeletePreviousChar), SelectMode(InsertMode))
	case 't':
		return Await(Combinable(FindNextDecrement))
	case 'u':
		return Do(Act(ActionUndo))
	case 'w':
		return Do(GoTo(Motion(GoToNextWord)))
	case 'x':
		return Do(Act(ActionDeleteNextChar))
	case '~':
		// The mutation leaves the cursor in place; the motion steps past it.
		return Do(Act(ActionToggleCapitalisation), GoTo(Motion(GoToRight)))
	}
	return Actions{}
}

func (normalMode) ctrl(key KeyEvent) Actions {
	if key.Key == KeyUnknown && key.Rune == 'r' {
		return Do(Act(ActionRedo))
	}
	return Actions{}
}

func (normalMode) shift(key KeyEvent) Actions {
	if key.Key != KeyUnknown {
		return Actions{}
	}

	switch key.Rune {
	case 'A':
		return Do(GoTo(Motion(GoToEndOfLine)), SelectMode(InsertMode))
	case 'B':
		return Do(GoTo(Motion(GoToBeginningOfWORD)))
	case 'D':
		return Do(Delete(Motion(GoToEndOfLine), GoToAction{}))
	case 'E':
		return Do(GoTo(Motion(GoToEndWORD)))
	case 'F':
		return Await(Combinable(FindPrevious))
	case 'I':
		return Do(GoTo(Motion(GoToFirstNonSpace)), SelectMode(InsertMode))
	case 'S':
		return Do(Act(ActionDeleteLine), SelectMode(InsertMode))
	case 'T':
		return Await(Combinable(FindPreviousIncrement))
	case 'W':
		return Do(GoTo(Motion(GoToNextWORD)))
	case 'X':
		return Do(Act(ActionDeletePreviousChar))
	}
	return Actions{}
}

package core

// HandleEvent resolves one key event in mode, given the pending state left by
// the previous event. It never fails: keys without a meaning resolve to the
// empty Actions.
func HandleEvent(mode Mode, key KeyEvent, pending OPending) Actions {
	if pending.IsZero() {
		return handleNonPending(mode, key)
	}
	return handlePending(mode, pending, key)
}

// handleNonPending dispatches on the modifier combination of the event.
func handleNonPending(mode Mode, key KeyEvent) Actions {
	key = normalizeShift(key)
	table := mode.table()

	switch key.Modifiers {
	case ModNone:
		return table.blank(key)
	case ModCtrl:
		return table.ctrl(key)
	case ModShift:
		return table.shift(key)
	}
	return Actions{}
}

// handlePending completes pending with the next key. Only character keys can
// complete a pending command; anything else cancels it.
func handlePending(mode Mode, pending OPending, key KeyEvent) Actions {
	if !key.IsChar() {
		return Actions{}
	}
	ch := normalizeShift(key).Rune

	switch pending.Kind {
	case PendingCombinable:
		first, second := findMotion(pending.Find, ch)
		if second.IsZero() {
			return Do(GoTo(first))
		}
		return Do(GoTo(first), GoTo(second))

	case PendingReplaceOne:
		return Do(ReplaceWith(ch))

	case PendingGoTo:
		switch ch {
		case 'e':
			return Do(GoTo(Motion(GoToEndOfPreviousWord)))
		case 'E':
			return Do(GoTo(Motion(GoToEndOfPreviousWORD)))
		}
		// Only ge and gE exist; any other g-command is dropped.
		return Actions{}

	case PendingDelete:
		return operatorMotion(mode, key, PendingDelete)

	case PendingChange:
		return withInsert(operatorMotion(mode, key, PendingChange))

	case PendingDeleteAction:
		return Do(Delete(operatorFindMotion(pending.Find, ch)))

	case PendingChangeAction:
		return Do(Delete(operatorFindMotion(pending.Find, ch)), SelectMode(InsertMode))
	}
	return Actions{}
}

// operatorMotion resolves the key following an operator (d or c) as if it
// were typed on its own, then combines the result with the operator.
func operatorMotion(mode Mode, key KeyEvent, operator PendingKind) Actions {
	next := handleNonPending(mode, key)

	switch next.Pending.Kind {
	case PendingNone:
	case PendingCombinable:
		if operator == PendingChange {
			return Await(OPending{Kind: PendingChangeAction, Find: next.Pending.Find})
		}
		return Await(OPending{Kind: PendingDeleteAction, Find: next.Pending.Find})
	case operator:
		// dd and cc work on the whole line.
		return Do(Act(ActionDeleteLine))
	default:
		return Actions{}
	}

	if action, ok := next.single(); ok && action.Kind == ActionGoTo {
		return Do(Delete(action.Motion, GoToAction{}))
	}
	if operator == PendingChange {
		// Only motions can follow c.
		return Actions{}
	}
	return next
}

// withInsert appends the switch to insert mode that completes a change.
func withInsert(a Actions) Actions {
	if len(a.List) == 0 {
		return a
	}
	list := append(a.List[:len(a.List):len(a.List)], SelectMode(InsertMode))
	return Do(list...)
}

// findMotion returns the motion for a character search, plus the adjustment
// moving the cursor next to the found character for t and T.
func findMotion(find CombinablePending, ch rune) (GoToAction, GoToAction) {
	switch find {
	case FindNext:
		return NextOccurrenceOf(ch), GoToAction{}
	case FindNextDecrement:
		return NextOccurrenceOf(ch), Motion(GoToLeft)
	case FindPrevious:
		return PreviousOccurrenceOf(ch), GoToAction{}
	case FindPreviousIncrement:
		return PreviousOccurrenceOf(ch), Motion(GoToRight)
	}
	return GoToAction{}, GoToAction{}
}

// operatorFindMotion is findMotion for an operator. Deletion stops before the
// end offset, so f must step past the found character while t, which stops
// before it, needs no adjustment at all.
func operatorFindMotion(find CombinablePending, ch rune) (GoToAction, GoToAction) {
	first, second := findMotion(find, ch)
	switch find {
	case FindNext:
		second = Motion(GoToRight)
	case FindNextDecrement:
		second = GoToAction{}
	}
	return first, second
}

package core

import "fmt"

// GoToKind identifies a cursor motion.
type GoToKind int

const (
	GoToNone                 GoToKind = iota // No motion
	GoToBeginningOfLine                      // 0
	GoToBeginningOfWORD                      // B
	GoToBeginningOfWord                      // b
	GoToEndOfLine                            // $ and A
	GoToEndOfPreviousWORD                    // gE
	GoToEndOfPreviousWord                    // ge
	GoToEndWORD                              // E
	GoToEndWord                              // e
	GoToFirstNonSpace                        // ^ and I
	GoToLeft                                 // h, <Left>, <BS>
	GoToNextOccurrenceOf                     // f{char}
	GoToNextWORD                             // W
	GoToNextWord                             // w
	GoToPreviousOccurrenceOf                 // F{char}
	GoToRight                                // l, <Right>

	goToKindCount
)

// GoToAction describes a motion. Resolving it yields a new cursor offset and
// never modifies text. The zero value is "no motion".
type GoToAction struct {
	Kind GoToKind
	Char rune // Target of the occurrence searches
}

// Motion returns the motion of the given kind.
func Motion(kind GoToKind) GoToAction {
	return GoToAction{Kind: kind}
}

// NextOccurrenceOf returns the motion searching forward for ch.
func NextOccurrenceOf(ch rune) GoToAction {
	return GoToAction{Kind: GoToNextOccurrenceOf, Char: ch}
}

// PreviousOccurrenceOf returns the motion searching backward for ch.
func PreviousOccurrenceOf(ch rune) GoToAction {
	return GoToAction{Kind: GoToPreviousOccurrenceOf, Char: ch}
}

// IsZero reports whether g is the absent motion.
func (g GoToAction) IsZero() bool {
	return g.Kind == GoToNone
}

// inclusive reports whether an operator applied to g covers the character
// the motion lands on.
func (g GoToAction) inclusive() bool {
	switch g.Kind {
	case GoToEndWord, GoToEndWORD, GoToEndOfPreviousWord, GoToEndOfPreviousWORD:
		return true
	}
	return false
}

func (k GoToKind) String() string {
	switch k {
	case GoToNone:
		return "none"
	case GoToBeginningOfLine:
		return "beginning-of-line"
	case GoToBeginningOfWORD:
		return "beginning-of-WORD"
	case GoToBeginningOfWord:
		return "beginning-of-word"
	case GoToEndOfLine:
		return "end-of-line"
	case GoToEndOfPreviousWORD:
		return "end-of-previous-WORD"
	case GoToEndOfPreviousWord:
		return "end-of-previous-word"
	case GoToEndWORD:
		return "end-WORD"
	case GoToEndWord:
		return "end-word"
	case GoToFirstNonSpace:
		return "first-non-space"
	case GoToLeft:
		return "left"
	case GoToNextOccurrenceOf:
		return "next-occurrence-of"
	case GoToNextWORD:
		return "next-WORD"
	case GoToNextWord:
		return "next-word"
	case GoToPreviousOccurrenceOf:
		return "previous-occurrence-of"
	case GoToRight:
		return "right"
	}
	return fmt.Sprintf("GoToKind(%d)", int(k))
}

func (g GoToAction) String() string {
	if g.Kind == GoToNextOccurrenceOf || g.Kind == GoToPreviousOccurrenceOf {
		return fmt.Sprintf("%s(%q)", g.Kind, g.Char)
	}
	return g.Kind.String()
}

// ActionKind identifies a buffer mutation or mode change.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionDelete
	ActionDeleteLine
	ActionDeleteNextChar
	ActionDeletePreviousChar
	ActionGoTo
	ActionInsertChar
	ActionRedo
	ActionReplaceWith
	ActionSelectMode
	ActionToggleCapitalisation
	ActionUndo

	actionKindCount
)

func (k ActionKind) String() string {
	switch k {
	case ActionNone:
		return "none"
	case ActionDelete:
		return "delete"
	case ActionDeleteLine:
		return "delete-line"
	case ActionDeleteNextChar:
		return "delete-next-char"
	case ActionDeletePreviousChar:
		return "delete-previous-char"
	case ActionGoTo:
		return "goto"
	case ActionInsertChar:
		return "insert-char"
	case ActionRedo:
		return "redo"
	case ActionReplaceWith:
		return "replace-with"
	case ActionSelectMode:
		return "select-mode"
	case ActionToggleCapitalisation:
		return "toggle-capitalisation"
	case ActionUndo:
		return "undo"
	}
	return fmt.Sprintf("ActionKind(%d)", int(k))
}

// Action is a single step applied to the session.
//
// Only the fields relevant to Kind are set: Motion for GoTo and Delete,
// Adjust (optional) for Delete, Char for InsertChar and ReplaceWith, and Mode
// for SelectMode.
type Action struct {
	Kind   ActionKind
	Motion GoToAction
	// Adjust is resolved from the endpoint of Motion to move that endpoint
	// before deleting. It is used to give f/t/F/T their Vim reach.
	Adjust GoToAction
	Char   rune
	Mode   Mode
}

// Act returns the action of a kind that carries no payload.
func Act(kind ActionKind) Action {
	return Action{Kind: kind}
}

// GoTo returns the action moving the cursor with m.
func GoTo(m GoToAction) Action {
	return Action{Kind: ActionGoTo, Motion: m}
}

// Delete returns the action deleting from the cursor to the target of m,
// optionally moved by adjust. Pass the zero GoToAction for no adjustment.
func Delete(m, adjust GoToAction) Action {
	return Action{Kind: ActionDelete, Motion: m, Adjust: adjust}
}

// InsertChar returns the action inserting ch at the cursor.
func InsertChar(ch rune) Action {
	return Action{Kind: ActionInsertChar, Char: ch}
}

// ReplaceWith returns the action overwriting the character under the cursor.
func ReplaceWith(ch rune) Action {
	return Action{Kind: ActionReplaceWith, Char: ch}
}

// SelectMode returns the action switching to mode.
func SelectMode(mode Mode) Action {
	return Action{Kind: ActionSelectMode, Mode: mode}
}

func (a Action) String() string {
	switch a.Kind {
	case ActionDelete:
		if a.Adjust.IsZero() {
			return fmt.Sprintf("delete(%s)", a.Motion)
		}
		return fmt.Sprintf("delete(%s, %s)", a.Motion, a.Adjust)
	case ActionGoTo:
		return fmt.Sprintf("goto(%s)", a.Motion)
	case ActionInsertChar, ActionReplaceWith:
		return fmt.Sprintf("%s(%q)", a.Kind, a.Char)
	case ActionSelectMode:
		return fmt.Sprintf("select-mode(%s)", a.Mode)
	}
	return a.Kind.String()
}

// CombinablePending is a character search waiting for its target character.
type CombinablePending int

const (
	FindNone              CombinablePending = iota
	FindNext                                // f
	FindNextDecrement                       // t
	FindPrevious                            // F
	FindPreviousIncrement                   // T
)

func (c CombinablePending) String() string {
	switch c {
	case FindNone:
		return "none"
	case FindNext:
		return "f"
	case FindNextDecrement:
		return "t"
	case FindPrevious:
		return "F"
	case FindPreviousIncrement:
		return "T"
	}
	return fmt.Sprintf("CombinablePending(%d)", int(c))
}

// PendingKind identifies the command waiting for more keys.
type PendingKind int

const (
	PendingNone         PendingKind = iota
	PendingChange                   // c
	PendingCombinable               // f, t, F, T
	PendingChangeAction             // cf, ct, cF, cT
	PendingDelete                   // d
	PendingDeleteAction             // df, dt, dF, dT
	PendingGoTo                     // g
	PendingReplaceOne               // r
)

// OPending is an operator or prefix waiting for the rest of its command.
// The zero value means nothing is pending.
type OPending struct {
	Kind PendingKind
	Find CombinablePending // Set for the Combinable, DeleteAction and ChangeAction kinds
}

// Pending returns the pending state of a kind with no character search.
func Pending(kind PendingKind) OPending {
	return OPending{Kind: kind}
}

// Combinable returns the pending character search k.
func Combinable(k CombinablePending) OPending {
	return OPending{Kind: PendingCombinable, Find: k}
}

// IsZero reports whether nothing is pending.
func (p OPending) IsZero() bool {
	return p.Kind == PendingNone
}

func (p OPending) String() string {
	switch p.Kind {
	case PendingNone:
		return ""
	case PendingChange:
		return "c"
	case PendingCombinable:
		return p.Find.String()
	case PendingChangeAction:
		return "c" + p.Find.String()
	case PendingDelete:
		return "d"
	case PendingDeleteAction:
		return "d" + p.Find.String()
	case PendingGoTo:
		return "g"
	case PendingReplaceOne:
		return "r"
	}
	return fmt.Sprintf("PendingKind(%d)", int(p.Kind))
}

// Actions is what the state machine produces for one key event: nothing, a
// new pending state, or an ordered list of actions to apply.
type Actions struct {
	List    []Action
	Pending OPending
}

// Do returns the actions applied in the given order.
func Do(actions ...Action) Actions {
	return Actions{List: actions}
}

// Await returns actions entering the pending state p.
func Await(p OPending) Actions {
	return Actions{Pending: p}
}

// IsEmpty reports whether a is a no-op.
func (a Actions) IsEmpty() bool {
	return len(a.List) == 0 && a.Pending.IsZero()
}

// single returns the only action of the list.
func (a Actions) single() (Action, bool) {
	if !a.Pending.IsZero() || len(a.List) != 1 {
		return Action{}, false
	}
	return a.List[0], true
}

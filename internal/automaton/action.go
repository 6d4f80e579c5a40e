package automaton

import (
	"fmt"

	"github.com/franleplant/lr1/internal/grammar"
)

// ActionType distinguishes the three parser moves an ACTION table cell can
// hold, plus the zero value ActionError, which Build never records (an empty
// cell is an empty slice from Tables.Action).
type ActionType int

const (
	ActionError ActionType = iota
	ActionShift
	ActionReduce
	ActionAccept
)

func (t ActionType) String() string {
	switch t {
	case ActionShift:
		return "Shift"
	case ActionReduce:
		return "Reduce"
	case ActionAccept:
		return "Accept"
	default:
		return "Error"
	}
}

// Action is a single ACTION table entry.
type Action struct {
	Type ActionType

	// State is the destination state. Meaningful only when Type is
	// ActionShift.
	State int

	// Production is the index, into the owning Tables' augmented grammar's
	// production list, of the production to reduce. Meaningful only when
	// Type is ActionReduce.
	Production int
}

// Equal returns whether act and o describe the same action.
func (act Action) Equal(o Action) bool {
	if act.Type != o.Type {
		return false
	}
	switch act.Type {
	case ActionShift:
		return act.State == o.State
	case ActionReduce:
		return act.Production == o.Production
	default:
		return true
	}
}

// String renders act as e.g. "Shift(4)", "Reduce(List -> Pair)" (the
// production's text, looked up in g), "Accept", or "".
func (act Action) String(g grammar.Grammar) string {
	switch act.Type {
	case ActionShift:
		return fmt.Sprintf("Shift(%d)", act.State)
	case ActionReduce:
		return fmt.Sprintf("Reduce(%s)", g.Productions[act.Production].String())
	case ActionAccept:
		return "Accept"
	default:
		return ""
	}
}

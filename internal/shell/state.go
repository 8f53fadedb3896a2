package shell

import (
	"errors"

	levels "github.com/tphakala/go-audio-levels"
)

// State is a menu level of the interactive shell.
type State int

const (
	// StateSelectStandard is the top-level menu.
	StateSelectStandard State = iota
	// StateSelectAction is the per-standard menu.
	StateSelectAction
	// StateExit ends the session.
	StateExit
)

var stateNames = [...]string{
	"SelectStandard",
	"SelectAction",
	"Exit",
}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "Unknown"
}

// Action is the work a transition asks the shell to perform.
type Action int

const (
	ActionNone Action = iota
	ActionPlotLinear
	ActionPlotLog
	ActionConvert
)

var actionNames = [...]string{
	"None",
	"PlotLinear",
	"PlotLog",
	"Convert",
}

func (a Action) String() string {
	if a >= 0 && int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "Unknown"
}

// Errors recovered locally by the shell.
var (
	// ErrInvalidChoice indicates menu input outside the accepted set.
	ErrInvalidChoice = errors.New("invalid choice")

	// ErrInvalidNumber indicates conversion input that is not a float.
	ErrInvalidNumber = errors.New("invalid number")
)

// Step is the outcome of one transition.
type Step struct {
	State    State
	Standard levels.Standard
	Action   Action
	Err      error
}

// Transition computes the next step for one line of menu input:
//
//	SelectStandard: 1 -> SelectAction(SMPTE), 2 -> SelectAction(EBU), 3 -> Exit
//	SelectAction:   1 -> plot linear, 2 -> plot log, 3 -> convert, 4 -> SelectStandard
//
// Any other input keeps the current state and sets Err to ErrInvalidChoice.
// Exit is terminal.
func Transition(state State, std levels.Standard, input string) Step {
	stay := Step{State: state, Standard: std}

	switch state {
	case StateSelectStandard:
		switch input {
		case "1":
			return Step{State: StateSelectAction, Standard: levels.SMPTE}
		case "2":
			return Step{State: StateSelectAction, Standard: levels.EBU}
		case "3":
			return Step{State: StateExit, Standard: std}
		}

	case StateSelectAction:
		switch input {
		case "1":
			stay.Action = ActionPlotLinear
			return stay
		case "2":
			stay.Action = ActionPlotLog
			return stay
		case "3":
			stay.Action = ActionConvert
			return stay
		case "4":
			return Step{State: StateSelectStandard, Standard: std}
		}

	case StateExit:
		return stay
	}

	stay.Err = ErrInvalidChoice
	return stay
}

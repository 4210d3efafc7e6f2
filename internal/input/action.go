package input

import "fmt"

// Action is a discrete player intent.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionSoftDrop
	ActionRotate
	ActionTogglePause
	ActionReset
	ActionQuit
	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:        "none",
	ActionMoveLeft:    "move_left",
	ActionMoveRight:   "move_right",
	ActionSoftDrop:    "soft_drop",
	ActionRotate:      "rotate",
	ActionTogglePause: "toggle_pause",
	ActionReset:       "reset",
	ActionQuit:        "quit",
}

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return fmt.Sprintf("Action(%d)", uint8(a))
}

// ParseAction returns the action with the given config name.
func ParseAction(name string) (Action, error) {
	for a := ActionMoveLeft; a < actionCount; a++ {
		if actionNames[a] == name {
			return a, nil
		}
	}
	return ActionNone, fmt.Errorf("unknown action %q", name)
}

// EdgeTriggered reports whether the action fires once per press rather than
// on every frame the key is held.
func (a Action) EdgeTriggered() bool {
	switch a {
	case ActionRotate, ActionTogglePause, ActionReset, ActionQuit:
		return true
	default:
		return false
	}
}

// Actions is a set of actions fired in one frame.
type Actions uint16

func (s Actions) Has(a Action) bool {
	return s&(1<<a) != 0
}

func (s *Actions) add(a Action) {
	*s |= 1 << a
}

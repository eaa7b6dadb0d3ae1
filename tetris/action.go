package tetris

import "fmt"

// Action is one discrete player input. At most one Action is applied per tick.
type Action uint8

const (
	ActionNone Action = iota
	MoveLeft
	MoveRight
	SoftDrop
	HardLeft
	HardRight
	HardDrop
	RotateLeft
	RotateRight
	RotateDouble
	Hold
	Quit
)

var actionNames = [...]string{
	ActionNone:   "none",
	MoveLeft:     "move_left",
	MoveRight:    "move_right",
	SoftDrop:     "soft_drop",
	HardLeft:     "hard_left",
	HardRight:    "hard_right",
	HardDrop:     "hard_drop",
	RotateLeft:   "rotate_left",
	RotateRight:  "rotate_right",
	RotateDouble: "rotate_double",
	Hold:         "hold",
	Quit:         "quit",
}

// Actions lists every action a player can bind, in display order.
var Actions = []Action{
	MoveLeft, MoveRight, HardLeft, HardRight, SoftDrop, HardDrop,
	RotateLeft, RotateRight, RotateDouble, Hold, Quit,
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return fmt.Sprintf("Action(%d)", uint8(a))
}

// ParseAction returns the action with the given snake_case name.
func ParseAction(name string) (Action, error) {
	for a, n := range actionNames {
		if n == name {
			return Action(a), nil
		}
	}
	return ActionNone, fmt.Errorf("unknown action %q", name)
}

func (a Action) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Action) UnmarshalText(text []byte) error {
	parsed, err := ParseAction(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

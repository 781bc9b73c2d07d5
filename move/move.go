// Package move turns a chosen rotation and offset into the primitive
// actions a game server expects.
package move

import (
	"fmt"
	"strings"
)

// Action is one primitive input.
type Action uint8

const (
	ActionDown Action = iota
	ActionLeft
	ActionRight
	ActionTurnLeft
	ActionTurnRight
	ActionDrop
	ActionSkip
)

var actionNames = map[Action]string{
	ActionDown:      "down",
	ActionLeft:      "left",
	ActionRight:     "right",
	ActionTurnLeft:  "turnleft",
	ActionTurnRight: "turnright",
	ActionDrop:      "drop",
	ActionSkip:      "skip",
}

func (a Action) String() string {
	if n, ok := actionNames[a]; ok {
		return n
	}
	return fmt.Sprintf("Action(%d)", a)
}

// ParseAction is the inverse of String.
func ParseAction(s string) (Action, error) {
	for a, n := range actionNames {
		if n == strings.ToLower(strings.TrimSpace(s)) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", s)
}

// Sequence turns the piece clockwise rotation times, shifts it offset
// columns (positive is left, negative right) and hard drops it.
func Sequence(rotation, offset int) []Action {
	actions := make([]Action, 0, rotation+abs(offset)+1)
	for ; rotation > 0; rotation-- {
		actions = append(actions, ActionTurnRight)
	}
	for ; offset < 0; offset++ {
		actions = append(actions, ActionRight)
	}
	for ; offset > 0; offset-- {
		actions = append(actions, ActionLeft)
	}
	return append(actions, ActionDrop)
}

// String joins actions with commas, the way they are sent to the server.
func String(actions []Action) string {
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = a.String()
	}
	return strings.Join(names, ",")
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

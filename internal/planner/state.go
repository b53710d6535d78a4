// Package planner decides which placement operations toggle a dropdown window
// and runs them against the compositor.
package planner

import (
	"fmt"

	"hyprdrop/internal/wm"
)

// State is where the matched window currently sits relative to the user.
type State int

const (
	Absent State = iota
	ActiveHere
	Elsewhere
	Hidden
)

func (s State) String() string {
	switch s {
	case Absent:
		return "absent"
	case ActiveHere:
		return "active-here"
	case Elsewhere:
		return "elsewhere"
	case Hidden:
		return "hidden"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Classify places a matched client. The special workspace check comes first,
// so a client is Hidden even if the compositor reports the special workspace
// as active.
func Classify(client wm.Client, active wm.Workspace, special string) State {
	switch {
	case client.Workspace.IsSpecial(special):
		return Hidden
	case client.Workspace.ID == active.ID:
		return ActiveHere
	default:
		return Elsewhere
	}
}

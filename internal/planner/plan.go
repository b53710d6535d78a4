package planner

import (
	"hyprdrop/internal/match"
	"hyprdrop/internal/wm"
)

// Options tune plan construction.
type Options struct {
	// Special is the name of the hidden workspace.
	Special string
	// FocusAfterShow inserts a focuswindow step before bringactivetotop.
	FocusAfterShow bool
}

// LaunchCommand is what to run when no window matches.
type LaunchCommand struct {
	Command    string
	Background bool
}

// Plan computes the operations for a window in state. rule must already be
// bound to the matched window (see match.Rule.Bind).
func Plan(state State, rule match.Rule, active wm.Workspace, launch LaunchCommand, opts Options) []Operation {
	hide := Operation{Kind: MoveToWorkspaceSilent, Target: SpecialTarget(opts.Special), Rule: rule}

	switch state {
	case Absent:
		op := Operation{Kind: Launch, Command: launch.Command, Background: launch.Background}
		if launch.Background {
			op.Target = SpecialTarget(opts.Special)
		}
		return []Operation{op}

	case ActiveHere:
		return []Operation{hide}

	case Elsewhere, Hidden:
		var ops []Operation
		// Moving straight from another ordinary workspace can freeze the
		// compositor's rendering; hopping through the special workspace avoids it.
		if state == Elsewhere {
			ops = append(ops, hide)
		}
		ops = append(ops, Operation{Kind: MoveToWorkspace, Target: WorkspaceTarget(active.ID), Rule: rule})
		if opts.FocusAfterShow {
			ops = append(ops, Operation{Kind: FocusWindow, Rule: rule})
		}
		// Two floating windows on one workspace have no defined stacking
		// order otherwise.
		return append(ops, Operation{Kind: BringActiveToTop})
	}
	return nil
}

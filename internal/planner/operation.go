package planner

import (
	"fmt"
	"strconv"

	"hyprdrop/internal/match"
	"hyprdrop/internal/wm"
)

// OpKind enumerates the placement operations.
type OpKind int

const (
	Launch OpKind = iota
	MoveToWorkspaceSilent
	MoveToWorkspace
	FocusWindow
	BringActiveToTop
)

func (k OpKind) String() string {
	switch k {
	case Launch:
		return "exec"
	case MoveToWorkspaceSilent:
		return "movetoworkspacesilent"
	case MoveToWorkspace:
		return "movetoworkspace"
	case FocusWindow:
		return "focuswindow"
	case BringActiveToTop:
		return "bringactivetotop"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// Target is a workspace: the named special workspace when Special is set,
// otherwise the numeric ID.
type Target struct {
	ID      int
	Special string
}

// SpecialTarget addresses the special workspace called name.
func SpecialTarget(name string) Target {
	return Target{Special: name}
}

// WorkspaceTarget addresses an ordinary workspace.
func WorkspaceTarget(id int) Target {
	return Target{ID: id}
}

func (t Target) String() string {
	if t.Special != "" {
		return wm.SpecialPrefix + t.Special
	}
	return strconv.Itoa(t.ID)
}

// Operation is one step of a plan.
type Operation struct {
	Kind OpKind

	// Command and Background apply to Launch. A background launch lands on Target.
	Command    string
	Background bool

	Target Target
	Rule   match.Rule
}

// Args renders the operation as dispatcher arguments.
func (o Operation) Args() []string {
	switch o.Kind {
	case Launch:
		cmd := o.Command
		if o.Background {
			cmd = fmt.Sprintf("[workspace %s silent] %s", o.Target, cmd)
		}
		return []string{o.Kind.String(), cmd}
	case MoveToWorkspaceSilent, MoveToWorkspace:
		return []string{o.Kind.String(), o.Target.String() + "," + o.Rule.Selector()}
	case FocusWindow:
		return []string{o.Kind.String(), o.Rule.Selector()}
	default:
		return []string{o.Kind.String()}
	}
}

func (o Operation) String() string {
	args := o.Args()
	if len(args) == 1 {
		return args[0]
	}
	return args[0] + " " + args[1]
}

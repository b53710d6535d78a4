package planner

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hyprdrop/internal/match"
	"hyprdrop/internal/wm"
	"hyprdrop/pkg/logger"
)

const special = "hyprdrop"

var defaults = Options{Special: special}

func TestClassify(t *testing.T) {
	active := wm.Workspace{ID: 5, Name: "5"}
	tests := []struct {
		name string
		ws   wm.Workspace
		want State
	}{
		{"same workspace", wm.Workspace{ID: 5, Name: "5"}, ActiveHere},
		{"other workspace", wm.Workspace{ID: 2, Name: "2"}, Elsewhere},
		{"bare special name", wm.Workspace{ID: -98, Name: special}, Hidden},
		{"prefixed special name", wm.Workspace{ID: -98, Name: "special:" + special}, Hidden},
		{"another special workspace", wm.Workspace{ID: -97, Name: "special:scratch"}, Elsewhere},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(wm.Client{Workspace: tt.ws}, active, special)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyHiddenWinsOverActive(t *testing.T) {
	ws := wm.Workspace{ID: -98, Name: "special:" + special}
	assert.Equal(t, Hidden, Classify(wm.Client{Workspace: ws}, ws, special))
}

func TestPlanScenarios(t *testing.T) {
	rule := match.Class("foo")
	active := wm.Workspace{ID: 5, Name: "5"}
	hide := Operation{Kind: MoveToWorkspaceSilent, Target: SpecialTarget(special), Rule: rule}
	show := Operation{Kind: MoveToWorkspace, Target: WorkspaceTarget(5), Rule: rule}
	raise := Operation{Kind: BringActiveToTop}

	tests := []struct {
		name  string
		state State
		want  []Operation
	}{
		{"absent launches", Absent, []Operation{{Kind: Launch, Command: "foo --class=foo"}}},
		{"active here hides", ActiveHere, []Operation{hide}},
		{"elsewhere hops through special", Elsewhere, []Operation{hide, show, raise}},
		{"hidden is shown", Hidden, []Operation{show, raise}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Plan(tt.state, rule, active, LaunchCommand{Command: "foo --class=foo"}, defaults)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Plan() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPlanFocusAfterShow(t *testing.T) {
	rule := match.Class("foo")
	opts := Options{Special: special, FocusAfterShow: true}
	got := Plan(Hidden, rule, wm.Workspace{ID: 1}, LaunchCommand{}, opts)

	kinds := make([]OpKind, len(got))
	for i, op := range got {
		kinds[i] = op.Kind
	}
	assert.Equal(t, []OpKind{MoveToWorkspace, FocusWindow, BringActiveToTop}, kinds)
}

func TestPlanBackgroundLaunch(t *testing.T) {
	got := Plan(Absent, match.Class("foo"), wm.Workspace{ID: 1}, LaunchCommand{Command: "foo --class=foo", Background: true}, defaults)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"exec", "[workspace special:hyprdrop silent] foo --class=foo"}, got[0].Args())
}

func TestOperationArgs(t *testing.T) {
	tests := []struct {
		op   Operation
		want []string
	}{
		{
			Operation{Kind: Launch, Command: "kitty --class=drop"},
			[]string{"exec", "kitty --class=drop"},
		},
		{
			Operation{Kind: MoveToWorkspaceSilent, Target: SpecialTarget(special), Rule: match.Class("drop")},
			[]string{"movetoworkspacesilent", "special:hyprdrop,class:^drop$"},
		},
		{
			Operation{Kind: MoveToWorkspace, Target: WorkspaceTarget(3), Rule: match.TitleEqual("notes")},
			[]string{"movetoworkspace", "3,title:^notes$"},
		},
		{
			Operation{Kind: FocusWindow, Rule: match.OpaqueHandle("term").Bind("0x55d0")},
			[]string{"focuswindow", "address:0x55d0"},
		},
		{
			Operation{Kind: BringActiveToTop},
			[]string{"bringactivetotop"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.op.Kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.op.Args())
		})
	}
}

type fakeDispatcher struct {
	calls []string
	fail  map[string]error
}

func (f *fakeDispatcher) Dispatch(_ context.Context, args ...string) error {
	f.calls = append(f.calls, args[0])
	return f.fail[args[0]]
}

func TestExecuteRunsInOrder(t *testing.T) {
	rule := match.Class("foo")
	ops := Plan(Elsewhere, rule, wm.Workspace{ID: 5}, LaunchCommand{}, defaults)
	d := &fakeDispatcher{}

	res := Execute(context.Background(), d, ops, logger.NewNop(), nil)

	assert.NoError(t, res.Err())
	assert.Equal(t, []string{"movetoworkspacesilent", "movetoworkspace", "bringactivetotop"}, d.calls)
	for i := range ops {
		assert.True(t, res.Succeeded(i))
	}
}

func TestExecuteContinuesAfterFailure(t *testing.T) {
	rule := match.Class("foo")
	ops := Plan(Elsewhere, rule, wm.Workspace{ID: 5}, LaunchCommand{}, defaults)
	boom := errors.New("no such window")
	d := &fakeDispatcher{fail: map[string]error{"movetoworkspacesilent": boom}}

	var reported []*DispatchError
	res := Execute(context.Background(), d, ops, logger.NewNop(), func(e *DispatchError) {
		reported = append(reported, e)
	})

	assert.Len(t, d.calls, 3)
	assert.False(t, res.Succeeded(0))
	assert.True(t, res.Succeeded(1))
	assert.True(t, res.Succeeded(2))

	require.Len(t, reported, 1)
	assert.Equal(t, MoveToWorkspaceSilent, reported[0].Op.Kind)
	assert.ErrorIs(t, res.Err(), boom)

	var merr *multierror.Error
	require.ErrorAs(t, res.Err(), &merr)
	assert.Len(t, merr.Errors, 1)
	assert.True(t, strings.HasPrefix(reported[0].Error(), "movetoworkspacesilent special:hyprdrop,class:^foo$"))
}

func TestExecuteCollectsEveryFailure(t *testing.T) {
	ops := []Operation{{Kind: BringActiveToTop}, {Kind: BringActiveToTop}}
	d := &fakeDispatcher{fail: map[string]error{"bringactivetotop": errors.New("down")}}

	res := Execute(context.Background(), d, ops, logger.NewNop(), nil)

	var merr *multierror.Error
	require.ErrorAs(t, res.Err(), &merr)
	assert.Len(t, merr.Errors, 2)
}

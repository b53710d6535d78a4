// Package app runs one dropdown toggle: resolve the window, plan the placement
// and apply it.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hyprdrop/internal/apps"
	"hyprdrop/internal/match"
	"hyprdrop/internal/planner"
	"hyprdrop/internal/wm"
	"hyprdrop/pkg/core"
	"hyprdrop/pkg/notify"
)

// Notifier surfaces failures on the desktop.
type Notifier interface {
	Show(message string, nType notify.NotificationType) error
}

// Ledger is the subset of ledger.Ledger the toggler needs.
type Ledger interface {
	match.HandleLookup
	Record(key, handle string) error
}

// Options holds the per-installation settings of a Toggler.
type Options struct {
	SpecialWorkspace string
	FocusAfterShow   bool
	DiscoveryDelay   time.Duration
}

// Request is one invocation.
type Request struct {
	Command    string
	Identifier string
	Args       []string
	Background bool
	// Debug mirrors every failed dispatch to the notifier.
	Debug bool
}

// Outcome describes what a toggle did.
type Outcome struct {
	State  planner.State
	Rule   match.Rule
	Result planner.Result
	// Handle is the window address recorded after launching an opaque-handle app.
	Handle string
}

// Toggler shows, hides or launches a dropdown window.
type Toggler struct {
	port     wm.Port
	ledger   Ledger
	notifier Notifier
	log      core.Logger
	opts     Options

	// sleep waits for a launched window to map. Replaced in tests.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewToggler creates a Toggler. notifier may be nil.
func NewToggler(port wm.Port, ledger Ledger, notifier Notifier, log core.Logger, opts Options) *Toggler {
	return &Toggler{
		port:     port,
		ledger:   ledger,
		notifier: notifier,
		log:      log,
		opts:     opts,
		sleep:    sleepContext,
	}
}

// Toggle performs one toggle. The returned error wraps ErrBoundaryUnavailable
// when the compositor could not be queried, and otherwise aggregates the failed
// dispatches; the remaining steps still ran.
func (t *Toggler) Toggle(ctx context.Context, req Request) (Outcome, error) {
	if req.Command == "" || req.Identifier == "" {
		return Outcome{}, fmt.Errorf("command and identifier are required")
	}

	clients, active, err := t.snapshot(ctx)
	if err != nil {
		return Outcome{}, err
	}

	profile := apps.Lookup(req.Command)
	rule := profile.Rule(req.Identifier)
	t.log.Debug("Derived match rule",
		"app", profile.Name,
		"kind", profile.Kind.String(),
		"rule", rule.String(),
	)

	state := planner.Absent
	client, found := match.Find(rule, clients, t.ledger)
	if found {
		rule = rule.Bind(client.Address)
		state = planner.Classify(client, active, t.opts.SpecialWorkspace)
	}
	t.log.Info("Window state",
		"identifier", req.Identifier,
		"state", state.String(),
		"address", client.Address,
		"workspace", client.Workspace.Name,
		"active_workspace", active.ID,
	)

	launch := planner.LaunchCommand{
		Command:    profile.CommandLine(req.Command, req.Identifier, req.Args),
		Background: req.Background,
	}
	ops := planner.Plan(state, rule, active, launch, planner.Options{
		Special:        t.opts.SpecialWorkspace,
		FocusAfterShow: t.opts.FocusAfterShow,
	})

	var onError func(*planner.DispatchError)
	if req.Debug {
		onError = t.notifyFailure
	}
	res := planner.Execute(ctx, t.port, ops, t.log, onError)
	out := Outcome{State: state, Rule: rule, Result: res}

	if state == planner.Absent && profile.Kind == apps.OpaqueHandleBased && res.Succeeded(0) {
		handle, err := t.discover(ctx, req.Identifier)
		switch {
		case err == nil:
			out.Handle = handle
		case errors.Is(err, ErrNoHandleDiscovered):
			t.log.Warn("Launched window not found, ledger left unchanged", "identifier", req.Identifier)
		default:
			t.log.Error("Failed to capture launched window", err, "identifier", req.Identifier)
		}
	}

	return out, res.Err()
}

func (t *Toggler) snapshot(ctx context.Context) ([]wm.Client, wm.Workspace, error) {
	clients, err := t.port.Clients(ctx)
	if err != nil {
		return nil, wm.Workspace{}, fmt.Errorf("%w: list clients via %s: %v", ErrBoundaryUnavailable, t.port.Name(), err)
	}
	active, err := t.port.ActiveWorkspace(ctx)
	if err != nil {
		return nil, wm.Workspace{}, fmt.Errorf("%w: active workspace via %s: %v", ErrBoundaryUnavailable, t.port.Name(), err)
	}
	t.log.Debug("Compositor snapshot", "clients", len(clients), "active_workspace", active.ID)
	return clients, active, nil
}

// discover waits once for the launched window, re-queries the clients once and
// records the address of the window created with the identifier as its title.
func (t *Toggler) discover(ctx context.Context, identifier string) (string, error) {
	if err := t.sleep(ctx, t.opts.DiscoveryDelay); err != nil {
		return "", err
	}

	clients, err := t.port.Clients(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: list clients via %s: %v", ErrBoundaryUnavailable, t.port.Name(), err)
	}

	client, ok := match.FindByInitialTitle(clients, identifier)
	if !ok {
		return "", ErrNoHandleDiscovered
	}
	if err := t.ledger.Record(identifier, client.Address); err != nil {
		return "", err
	}
	t.log.Info("Recorded window address", "identifier", identifier, "address", client.Address)
	return client.Address, nil
}

func (t *Toggler) notifyFailure(e *planner.DispatchError) {
	if t.notifier == nil {
		return
	}
	if err := t.notifier.Show(e.Error(), notify.Error); err != nil {
		t.log.Warn("Failed to show notification", "error", err.Error())
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

package planner

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"hyprdrop/pkg/core"
)

// Dispatcher runs one compositor dispatcher.
type Dispatcher interface {
	Dispatch(ctx context.Context, args ...string) error
}

// DispatchError is a failed step.
type DispatchError struct {
	Op  Operation
	Err error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

// Result reports the outcome of every step, in plan order.
type Result struct {
	Ops    []Operation
	Errors []error
}

// Succeeded reports whether step i completed.
func (r Result) Succeeded(i int) bool {
	return i < len(r.Errors) && r.Errors[i] == nil
}

// Err aggregates all step failures, or nil.
func (r Result) Err() error {
	var result *multierror.Error
	for _, err := range r.Errors {
		if err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

// Execute dispatches ops strictly in order, waiting for each reply. A failing
// step is reported through onError and does not stop the remaining steps.
func Execute(ctx context.Context, d Dispatcher, ops []Operation, log core.Logger, onError func(*DispatchError)) Result {
	res := Result{Ops: ops, Errors: make([]error, len(ops))}
	for i, op := range ops {
		if err := d.Dispatch(ctx, op.Args()...); err != nil {
			dispatchErr := &DispatchError{Op: op, Err: err}
			res.Errors[i] = dispatchErr
			log.Error("Dispatch failed", err, "step", i+1, "op", op.String())
			if onError != nil {
				onError(dispatchErr)
			}
			continue
		}
		log.Debug("Dispatched", "step", i+1, "op", op.String())
	}
	return res
}

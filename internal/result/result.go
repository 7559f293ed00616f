// Package result provides the three-state outcome value used across the
// use-case and remote layers: a call is either still in flight, succeeded
// with a payload, or failed with a cause. Failures travel as values, never
// as panics, and every layer boundary forwards them unchanged.
package result

import "errors"

type State int

const (
	StateLoading State = iota
	StateSuccess
	StateFailure
)

// Result is a tagged union over State. The zero value is a loading result.
type Result[T any] struct {
	state State
	value T
	err   error
}

// Loading returns an in-flight result with no payload yet.
func Loading[T any]() Result[T] {
	return Result[T]{state: StateLoading}
}

// Success wraps a payload.
func Success[T any](value T) Result[T] {
	return Result[T]{state: StateSuccess, value: value}
}

// Failure wraps an error cause. A nil cause is normalized so that a failure
// always carries a non-nil error.
func Failure[T any](err error) Result[T] {
	if err == nil {
		err = errors.New("unknown failure")
	}
	return Result[T]{state: StateFailure, err: err}
}

func (r Result[T]) State() State    { return r.state }
func (r Result[T]) IsLoading() bool { return r.state == StateLoading }
func (r Result[T]) IsSuccess() bool { return r.state == StateSuccess }
func (r Result[T]) IsFailure() bool { return r.state == StateFailure }

// Value returns the payload and whether the result is a success.
func (r Result[T]) Value() (T, bool) {
	return r.value, r.state == StateSuccess
}

// Err returns the failure cause, or nil for loading and success results.
func (r Result[T]) Err() error {
	if r.state != StateFailure {
		return nil
	}
	return r.err
}

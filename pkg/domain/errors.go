package domain

import "errors"

// ErrInvalidInput is returned when a capacity is not positive or the target is negative.
var ErrInvalidInput = errors.New("Invalid input: Values must be positive integers.")

// ErrInfeasible is returned when the target can never be measured with the given jugs.
var ErrInfeasible = errors.New("No solution possible.")

// ErrNoSolutionFound is returned when the search ends without reaching the target.
// For a feasible problem this indicates an internal logic error, not a user mistake.
var ErrNoSolutionFound = errors.New("No solution found.")

// ErrCacheMiss is returned by a solution cache that holds no entry for a problem.
var ErrCacheMiss = errors.New("solution not cached")

// ErrSearchAborted is returned when a bounded search is cut short by its state
// limit or by context cancellation. It matches ErrNoSolutionFound under errors.Is.
var ErrSearchAborted = &abortError{}

type abortError struct{}

func (*abortError) Error() string { return "search aborted" }

func (*abortError) Is(target error) bool { return target == ErrNoSolutionFound }

// IsUserError reports whether err is a failure caused by the request itself
// rather than by the solver.
func IsUserError(err error) bool {
	return errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrInfeasible)
}

// Message returns the user-facing text for a solver failure.
// Unknown errors are reported as ErrNoSolutionFound.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return ErrInvalidInput.Error()
	case errors.Is(err, ErrInfeasible):
		return ErrInfeasible.Error()
	default:
		return ErrNoSolutionFound.Error()
	}
}

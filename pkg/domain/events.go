package domain

import (
	"context"
	"errors"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventSolveStart  EventType = "solve_start"
	EventSolveFinish EventType = "solve_finish"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// SolveEvent describes one solve call.
// Steps, Explored, Duration and Err are only meaningful on EventSolveFinish.
type SolveEvent struct {
	EventBase
	Problem  Problem       `json:"problem"`
	Steps    int           `json:"steps"`
	Explored int           `json:"explored"`
	CacheHit bool          `json:"cache_hit,omitempty"`
	Duration time.Duration `json:"duration"`
	Err      error         `json:"-"`
}

// Outcome classifies the event result as "solved", "invalid_input",
// "infeasible" or "no_solution".
func (e *SolveEvent) Outcome() string {
	switch {
	case e.Err == nil:
		return "solved"
	case errors.Is(e.Err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(e.Err, ErrInfeasible):
		return "infeasible"
	default:
		return "no_solution"
	}
}

// LifecycleHooks defines callbacks for solver observability.
type LifecycleHooks struct {
	OnSolveStart  func(context.Context, *SolveEvent)
	OnSolveFinish func(context.Context, *SolveEvent)
}

// Combine returns hooks that call every non-nil hook in order.
func Combine(hooks ...LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnSolveStart: func(ctx context.Context, e *SolveEvent) {
			for _, h := range hooks {
				if h.OnSolveStart != nil {
					h.OnSolveStart(ctx, e)
				}
			}
		},
		OnSolveFinish: func(ctx context.Context, e *SolveEvent) {
			for _, h := range hooks {
				if h.OnSolveFinish != nil {
					h.OnSolveFinish(ctx, e)
				}
			}
		},
	}
}

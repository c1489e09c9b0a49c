package domain

import "fmt"

// Problem describes one request: two jug capacities and the amount to measure.
type Problem struct {
	CapacityX int `json:"xCapacity"`
	CapacityY int `json:"yCapacity"`
	Target    int `json:"targetAmount"`
}

// String renders the problem as "(x, y) -> target".
func (p Problem) String() string {
	return fmt.Sprintf("(%d, %d) -> %d", p.CapacityX, p.CapacityY, p.Target)
}

// State is the current water level of each jug.
type State struct {
	X int `json:"xAmount"`
	Y int `json:"yAmount"`
}

// Reached reports whether either jug holds exactly target.
func (s State) Reached(target int) bool {
	return s.X == target || s.Y == target
}

// Within reports whether both levels lie inside the given capacities.
func (s State) Within(capacityX, capacityY int) bool {
	return s.X >= 0 && s.X <= capacityX && s.Y >= 0 && s.Y <= capacityY
}

// Step is a State together with the Action that produced it.
type Step struct {
	State
	Action Action `json:"action"`
}

// Solution is the ordered list of Steps from (0, 0), exclusive, to a goal State.
// An empty, non-nil Solution means no action is needed.
type Solution []Step

// Last returns the final step, or false for an empty solution.
func (s Solution) Last() (Step, bool) {
	if len(s) == 0 {
		return Step{}, false
	}
	return s[len(s)-1], true
}

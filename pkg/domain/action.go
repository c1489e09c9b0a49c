package domain

// Action names one of the six deterministic jug transitions.
// Its value is the human-readable label exposed by every adapter.
type Action string

// The six canonical actions, in successor generation order.
const (
	ActionFillX    Action = "Fill X jug"
	ActionFillY    Action = "Fill Y jug"
	ActionEmptyX   Action = "Empty X jug"
	ActionEmptyY   Action = "Empty Y jug"
	ActionPourXToY Action = "Pour X to Y"
	ActionPourYToX Action = "Pour Y to X"
)

// Actions lists every action in the order successors are generated.
var Actions = []Action{
	ActionFillX,
	ActionFillY,
	ActionEmptyX,
	ActionEmptyY,
	ActionPourXToY,
	ActionPourYToX,
}

// Apply returns the State produced by performing a on s with the given capacities.
func (a Action) Apply(s State, capacityX, capacityY int) State {
	switch a {
	case ActionFillX:
		return State{X: capacityX, Y: s.Y}
	case ActionFillY:
		return State{X: s.X, Y: capacityY}
	case ActionEmptyX:
		return State{X: 0, Y: s.Y}
	case ActionEmptyY:
		return State{X: s.X, Y: 0}
	case ActionPourXToY:
		// n is the amount moved; s.X+s.Y may overflow int.
		n := min(s.X, capacityY-s.Y)
		return State{X: s.X - n, Y: s.Y + n}
	case ActionPourYToX:
		n := min(s.Y, capacityX-s.X)
		return State{X: s.X + n, Y: s.Y - n}
	default:
		return s
	}
}

// Valid reports whether a is one of the six canonical actions.
func (a Action) Valid() bool {
	for _, known := range Actions {
		if a == known {
			return true
		}
	}
	return false
}

package game

// Action represents a player action in a betting pass.
type Action int

const (
	Fold Action = iota
	Check
	Call
	Raise
)

func (a Action) String() string {
	return [...]string{"fold", "check", "call", "raise"}[a]
}

// Decision is an action plus the additional chips it commits.
type Decision struct {
	Action Action
	Amount int
}

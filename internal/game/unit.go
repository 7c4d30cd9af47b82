package game

// UnitInstance is an autonomous agent that carries items between structures.
type UnitInstance struct {
	Id     EntityId
	Action *CurrentAction
	Goal   Goal
	Held   *HeldItem
}

// NewUnitInstance creates an idle, empty-handed unit with the given goal.
func NewUnitInstance(goal Goal) *UnitInstance {
	return &UnitInstance{
		Id:     NewEntityId(),
		Action: NewCurrentAction(Idle(), 1),
		Goal:   goal,
		Held:   NewHeldItem(),
	}
}

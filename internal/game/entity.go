package game

import "github.com/google/uuid"

// EntityId is a weak reference to a unit or structure. The entity it names may
// be gone by the time it is resolved, so every lookup by EntityId is fallible.
type EntityId string

func NewEntityId() EntityId {
	return EntityId(uuid.New().String())
}

func (id EntityId) String() string {
	return string(id)
}

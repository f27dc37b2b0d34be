package ledger

import "github.com/google/uuid"

// Mode tells a submit operation whether to create a new resource or to
// replace an existing one.
type Mode struct {
	id   uuid.UUID
	edit bool
}

// Create is the mode for new resources.
func Create() Mode {
	return Mode{}
}

// Edit is the mode for updates of the resource with the given ID.
func Edit(id uuid.UUID) Mode {
	return Mode{id: id, edit: true}
}

func (m Mode) IsEdit() bool {
	return m.edit
}

func (m Mode) ID() uuid.UUID {
	return m.id
}

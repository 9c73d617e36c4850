package id

import (
	"github.com/google/uuid"
)

// Generator creates opaque identifiers.
type Generator interface {
	New() string
}

// UUID yields time-ordered v7 identifiers, so records created within the same
// millisecond still get distinct ids.
type UUID struct{}

func (UUID) New() string {
	v, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v.String()
}

package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered unique identifiers. Used for stored
// image filenames and for tentative client-side post IDs awaiting server
// confirmation.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

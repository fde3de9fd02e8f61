package utils

import "github.com/google/uuid"

// UUIDGenerator mints the 128-bit random identifiers used as primary keys.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a random (version 4) UUID in canonical string form.
func (g *UUIDGenerator) Generate() string {
	return uuid.NewString()
}

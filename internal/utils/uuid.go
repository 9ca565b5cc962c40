package utils

import "github.com/google/uuid"

// UUIDGenerator produces the run identifiers stamped on every log entry of
// a deployment run. V7 is preferred so identifiers sort by time.
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

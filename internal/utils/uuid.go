package utils

import "github.com/google/uuid"

// UUIDGenerator produces request identifiers. Time-ordered v7 ids are
// preferred so server logs sort by issue time; v4 is the fallback.
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

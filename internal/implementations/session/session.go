package session

import (
	"collegereminders/internal/core/domain/user"

	"github.com/google/uuid"
)

// UUID generates random (version 4) session tokens.
type UUID struct{}

func NewUUID() *UUID {
	return &UUID{}
}

func (g *UUID) GenerateToken() user.SessionToken {
	return user.SessionToken(uuid.NewString())
}

package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/mfell/agentx/internal/common/uuid Generator

// Generator mints session identifiers
type Generator interface {
	NewSessionID() string
}

// V4Generator implements Generator using random UUID-v4 strings
type V4Generator struct{}

func New() *V4Generator {
	return &V4Generator{}
}

// NewSessionID returns a new UUID-v4 string
func (g *V4Generator) NewSessionID() string {
	return uuid.NewString()
}

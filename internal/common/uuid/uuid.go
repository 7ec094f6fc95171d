package uuid

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/kits/internal/common/uuid UUID

// UUID generates identifiers for redemptions
type UUID interface {
	NewUUID() string
}

// DefaultUUID implements the UUID interface using the uuid package
type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a new random UUID
func (d *DefaultUUID) NewUUID() string {
	return uuid.New().String()
}

// Sequence generates predictable identifiers, prefix-1, prefix-2, ...
type Sequence struct {
	prefix string
	next   atomic.Int64
}

// NewSequence creates a Sequence with the given prefix
func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

// NewUUID returns the next identifier in the sequence
func (s *Sequence) NewUUID() string {
	return fmt.Sprintf("%s-%d", s.prefix, s.next.Add(1))
}

// IsValid reports whether id is a well formed UUID
func IsValid(id string) bool {
	return uuid.Validate(id) == nil
}

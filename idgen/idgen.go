// Package idgen produces identifiers for transactions and loans.
package idgen

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator returns a new unique identifier on every call
type Generator interface {
	NewID() string
}

// UUID generates random version 4 UUIDs
type UUID struct{}

func (UUID) NewID() string { return uuid.New().String() }

// Sequence generates "<prefix>-1", "<prefix>-2", ... and is meant for tests
// and reproducible sessions.
type Sequence struct {
	Prefix string
	n      atomic.Int64
}

func NewSequence(prefix string) *Sequence { return &Sequence{Prefix: prefix} }

func (s *Sequence) NewID() string {
	return fmt.Sprintf("%s-%d", s.Prefix, s.n.Add(1))
}

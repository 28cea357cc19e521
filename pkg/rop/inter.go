package rop

import (
	"time"

	"github.com/google/uuid"
)

// ValueProvider is implemented by anything that carries a success value.
type ValueProvider[T any] interface {
	// Value returns the success value, zero if there is none
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithFailure defines an interface for types that hold either a value or a failure payload
type WithFailure[T any, E ErrorKind] interface {
	ValueProvider[T]
	// Err returns the failure payload if the operation failed
	Err() E
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
	// IsFailure returns true if the operation failed
	IsFailure() bool
}

// Identified is implemented by values with a per-instance id.
type Identified interface {
	Id() uuid.UUID
}

var (
	_ WithFailure[int, error] = Outcome[int, error]{}
	_ Identified              = Outcome[int, error]{}
	_ ErrorKind               = (*KindError)(nil)
)

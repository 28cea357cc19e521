package rop

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrUnwrapFailure = errors.New("rop: unwrap called on failure")
	ErrUnwrapSuccess = errors.New("rop: unwrap error called on success")
)

// ErrorKind is implemented by every failure payload: it only has to describe itself.
type ErrorKind interface {
	Error() string
}

// Variant tags an Outcome as Success or Failure.
type Variant uint8

const (
	VariantSuccess Variant = iota
	VariantFailure
)

func (v Variant) String() string {
	if v == VariantFailure {
		return "Failure"
	}
	return "Success"
}

// Outcome is either a Success holding a T or a Failure holding an E.
// The zero Outcome is a Success of T's zero value.
type Outcome[T any, E ErrorKind] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       E
	variant   Variant
}

// Result is an Outcome whose failure payload is a plain error.
type Result[T any] = Outcome[T, error]

func Success[T any, E ErrorKind](v T) Outcome[T, E] {
	return Outcome[T, E]{
		value:     v,
		variant:   VariantSuccess,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Failure[T any, E ErrorKind](err E) Outcome[T, E] {
	return Outcome[T, E]{
		err:       err,
		variant:   VariantFailure,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Ok[T any](v T) Result[T] {
	return Success[T, error](v)
}

func Fail[T any](err error) Result[T] {
	return Failure[T](err)
}

// FromTuple converts a (value, error) pair into a Result.
// A nil err gives Success.
func FromTuple[T any](v T, err error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Ok(v)
}

// Match calls onSuccess or onFailure, never both, and returns its result.
func Match[T any, E ErrorKind, R any](o Outcome[T, E], onSuccess func(T) R, onFailure func(E) R) R {
	if o.variant == VariantFailure {
		return onFailure(o.err)
	}
	return onSuccess(o.value)
}

func (o Outcome[T, E]) Variant() Variant {
	return o.variant
}

func (o Outcome[T, E]) IsSuccess() bool {
	return o.variant == VariantSuccess
}

func (o Outcome[T, E]) IsFailure() bool {
	return o.variant == VariantFailure
}

// Value returns the success value, or T's zero value for a Failure.
func (o Outcome[T, E]) Value() T {
	return o.value
}

// Err returns the failure payload, or E's zero value for a Success.
func (o Outcome[T, E]) Err() E {
	return o.err
}

func (o Outcome[T, E]) Get() (T, E) {
	return o.value, o.err
}

// Unwrap returns the success value. It panics on a Failure: call it only
// where a failure is a programming error.
func (o Outcome[T, E]) Unwrap() T {
	if o.variant == VariantFailure {
		panic(fmt.Errorf("%w: %s", ErrUnwrapFailure, o))
	}
	return o.value
}

// UnwrapErr returns the failure payload. It panics on a Success.
func (o Outcome[T, E]) UnwrapErr() E {
	if o.variant == VariantSuccess {
		panic(fmt.Errorf("%w: %s", ErrUnwrapSuccess, o))
	}
	return o.err
}

func (o Outcome[T, E]) UnwrapOr(def T) T {
	if o.variant == VariantFailure {
		return def
	}
	return o.value
}

func (o Outcome[T, E]) UnwrapOrElse(orElse func(E) T) T {
	if o.variant == VariantFailure {
		return orElse(o.err)
	}
	return o.value
}

func (o Outcome[T, E]) Id() uuid.UUID {
	return o.id
}

// CreatedAt time creation (UTC)
func (o Outcome[T, E]) CreatedAt() time.Time {
	return o.createdAt
}

// String renders "Success(<value>)" or "Failure(<error>)". Diagnostics only.
func (o Outcome[T, E]) String() string {
	if o.variant == VariantFailure {
		return fmt.Sprintf("Failure(%v)", any(o.err))
	}
	return fmt.Sprintf("Success(%v)", any(o.value))
}

// MarshalZerologObject lets an Outcome be logged with zerolog's Object.
func (o Outcome[T, E]) MarshalZerologObject(e *zerolog.Event) {
	e.Str("variant", o.variant.String()).
		Str("id", o.id.String()).
		Time("created_at", o.createdAt)

	if o.variant == VariantFailure {
		e.Str("error", fmt.Sprint(any(o.err)))
		return
	}
	e.Interface("value", o.value)
}

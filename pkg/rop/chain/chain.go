package chain

import (
	"context"

	"github.com/ib-77/outcome/pkg/rop"
	"github.com/ib-77/outcome/pkg/rop/solo"
)

// Chain wraps a rop.Outcome with context to enable fluent chaining
type Chain[T any, E rop.ErrorKind] struct {
	ctx     context.Context
	outcome rop.Outcome[T, E]
}

// Start creates a new chain from a rop.Outcome
func Start[T any, E rop.ErrorKind](ctx context.Context, outcome rop.Outcome[T, E]) *Chain[T, E] {
	return &Chain[T, E]{
		ctx:     ctx,
		outcome: outcome,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T, error] {
	return Start(ctx, rop.Ok(value))
}

// Outcome returns the underlying rop.Outcome
func (c *Chain[T, E]) Outcome() rop.Outcome[T, E] {
	return c.outcome
}

// Then chains a function that returns rop.Outcome[U, E]
func Then[T, U any, E rop.ErrorKind](c *Chain[T, E], onSuccess func(context.Context, T) rop.Outcome[U, E]) *Chain[U, E] {
	return &Chain[U, E]{
		ctx:     c.ctx,
		outcome: solo.Switch(c.ctx, c.outcome, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T, error], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U, error] {
	return &Chain[U, error]{
		ctx:     c.ctx,
		outcome: solo.Try(c.ctx, c.outcome, tryOnSuccess),
	}
}

// Map chains a pure transformation function
func Map[T, U any, E rop.ErrorKind](c *Chain[T, E], onSuccess func(context.Context, T) U) *Chain[U, E] {
	return &Chain[U, E]{
		ctx:     c.ctx,
		outcome: solo.Map(c.ctx, c.outcome, onSuccess),
	}
}

// Ensure performs a side effect without changing the outcome
func (c *Chain[T, E]) Ensure(onSuccess func(context.Context, T)) *Chain[T, E] {
	return &Chain[T, E]{
		ctx:     c.ctx,
		outcome: solo.Tee(c.ctx, c.outcome, onSuccess),
	}
}

// Or returns the first successful chain among c and alternatives.
// If all of them failed, c is returned.
func (c *Chain[T, E]) Or(alternatives ...*Chain[T, E]) *Chain[T, E] {
	if c.outcome.IsSuccess() {
		return c
	}
	for _, alt := range alternatives {
		if alt.outcome.IsSuccess() {
			return alt
		}
	}
	return c
}

// Finally collapses the chain into a final value using solo.Finally
func Finally[T, U any, E rop.ErrorKind](c *Chain[T, E], onSuccess func(context.Context, T) U,
	onFailure func(context.Context, E) U) U {
	return solo.Finally(c.ctx, c.outcome, onSuccess, onFailure)
}

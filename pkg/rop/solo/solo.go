package solo

import (
	"context"
	"errors"

	"github.com/ib-77/outcome/pkg/rop"
)

func Succeed[T any, E rop.ErrorKind](input T) rop.Outcome[T, E] {
	return rop.Success[T, E](input)
}

func Fail[T any, E rop.ErrorKind](err E) rop.Outcome[T, E] {
	return rop.Failure[T](err)
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) rop.Result[T] {
	return AndValidate(ctx, rop.Ok(input), validate)
}

func AndValidate[T any](ctx context.Context, input rop.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) rop.Result[T] {

	if input.IsSuccess() {
		if isValid, errMsg := validate(ctx, input.Value()); !isValid {
			return rop.Fail[T](errors.New(errMsg))
		}
	}
	return input
}

func Switch[In, Out any, E rop.ErrorKind](ctx context.Context,
	input rop.Outcome[In, E],
	onSuccess func(ctx context.Context, r In) rop.Outcome[Out, E]) rop.Outcome[Out, E] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return rop.Failure[Out](input.Err())
}

func Map[In, Out any, E rop.ErrorKind](ctx context.Context,
	input rop.Outcome[In, E],
	onSuccess func(ctx context.Context, r In) Out) rop.Outcome[Out, E] {

	if input.IsSuccess() {
		return rop.Success[Out, E](onSuccess(ctx, input.Value()))
	}
	return rop.Failure[Out](input.Err())
}

// MapFailure converts the failure payload, leaving a success untouched.
func MapFailure[T any, In, Out rop.ErrorKind](ctx context.Context,
	input rop.Outcome[T, In],
	onFailure func(ctx context.Context, err In) Out) rop.Outcome[T, Out] {

	if input.IsFailure() {
		return rop.Failure[T](onFailure(ctx, input.Err()))
	}
	return rop.Success[T, Out](input.Value())
}

func Try[In, Out any](ctx context.Context, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out] {

	if input.IsSuccess() {
		out, err := onTryExecute(ctx, input.Value())
		return rop.FromTuple(out, err)
	}
	return rop.Fail[Out](input.Err())
}

func Tee[T any, E rop.ErrorKind](ctx context.Context,
	input rop.Outcome[T, E],
	onSuccess func(ctx context.Context, r T)) rop.Outcome[T, E] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Value())
	}
	return input
}

func DoubleTee[T any, E rop.ErrorKind](ctx context.Context, input rop.Outcome[T, E],
	onSuccess func(ctx context.Context, r T),
	onFailure func(ctx context.Context, err E)) rop.Outcome[T, E] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Value())
	} else {
		onFailure(ctx, input.Err())
	}
	return input
}

func Finally[In, Out any, E rop.ErrorKind](ctx context.Context, input rop.Outcome[In, E],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, err E) Out) Out {

	return rop.Match(input,
		func(v In) Out { return onSuccess(ctx, v) },
		func(err E) Out { return onFailure(ctx, err) })
}

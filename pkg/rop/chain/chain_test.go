package chain

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/outcome/pkg/rop"
)

var errParse = rop.DefineErrorKind("ParseError", "not a number")

func TestStart_Outcome_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	base := rop.Ok(10)
	c := Start(ctx, base)
	out := c.Outcome()
	if !out.IsSuccess() || out.Value() != 10 || out.Id() != base.Id() {
		t.Fatalf("expected success with 10, got %v", out)
	}
}

func TestFromValue_Success(t *testing.T) {
	t.Parallel()
	out := FromValue(context.Background(), 7).Outcome()
	if !out.IsSuccess() || out.Value() != 7 {
		t.Fatalf("expected success with 7, got %v", out)
	}
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := Start(ctx, rop.Fail[int](errors.New("boom")))
	called := false
	c2 := Then(c, func(ctx context.Context, v int) rop.Result[string] {
		called = true
		return rop.Ok("ok")
	})
	out := c2.Outcome()
	if out.IsSuccess() || out.Err() == nil || out.Err().Error() != "boom" {
		t.Fatalf("expected failure 'boom', got %v", out)
	}
	if called {
		t.Fatalf("Then onSuccess must not be called on failure input")
	}
}

func TestThen_KindFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	parse := func(_ context.Context, s string) rop.Outcome[int, *rop.KindError] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return rop.Failure[int](errParse.New())
		}
		return rop.Success[int, *rop.KindError](n)
	}

	out := Then(Start(ctx, rop.Success[string, *rop.KindError]("x")), parse).Outcome()
	if !out.IsFailure() || !errParse.Match(out.Err()) {
		t.Fatalf("expected ParseError failure, got %v", out)
	}

	out = Then(Start(ctx, rop.Success[string, *rop.KindError]("8")), parse).Outcome()
	if out.Unwrap() != 8 {
		t.Fatalf("expected 8, got %v", out)
	}
}

func TestThenTry_SuccessAndError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := ThenTry(FromValue(ctx, 3), func(ctx context.Context, v int) (string, error) {
		return "val_" + strconv.Itoa(v), nil
	}).Outcome()
	if !out.IsSuccess() || out.Value() != "val_3" {
		t.Fatalf("expected success 'val_3', got %v", out)
	}

	out = ThenTry(FromValue(ctx, 3), func(ctx context.Context, v int) (string, error) {
		return "", errors.New("try failed")
	}).Outcome()
	if !out.IsFailure() || out.Err().Error() != "try failed" {
		t.Fatalf("expected failure 'try failed', got %v", out)
	}
}

func TestMap_Transforms(t *testing.T) {
	t.Parallel()
	out := Map(FromValue(context.Background(), 21), func(_ context.Context, v int) int {
		return v * 2
	}).Outcome()
	if out.Unwrap() != 42 {
		t.Fatalf("expected 42, got %v", out)
	}
}

func TestEnsure_OnlyOnSuccess(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	calls := 0
	onSuccess := func(context.Context, int) { calls++ }

	FromValue(ctx, 1).Ensure(onSuccess)
	Start(ctx, rop.Fail[int](errors.New("x"))).Ensure(onSuccess)

	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
}

func TestOr(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	first := Start(ctx, rop.Fail[int](errors.New("first")))
	second := Start(ctx, rop.Fail[int](errors.New("second")))
	ok := FromValue(ctx, 5)

	if got := first.Or(second, ok); got != ok {
		t.Fatalf("expected the successful alternative, got %v", got.Outcome())
	}
	if got := ok.Or(first); got != ok {
		t.Fatalf("expected the receiver when it succeeded, got %v", got.Outcome())
	}
	if got := first.Or(second); got != first {
		t.Fatalf("expected the receiver when all failed, got %v", got.Outcome())
	}
}

func TestFinally_Divide(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	divByZero := rop.DefineErrorKind("DivideByZeroError", "Cannot divide by zero")

	divide := func(a, b float64) *Chain[float64, *rop.KindError] {
		if b == 0 {
			return Start(ctx, rop.Failure[float64](divByZero.New()))
		}
		return Start(ctx, rop.Success[float64, *rop.KindError](a/b))
	}
	onSuccess := func(_ context.Context, v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	onFailure := func(context.Context, *rop.KindError) string { return "Error" }

	if got := Finally(divide(1, 0), onSuccess, onFailure); got != "Error" {
		t.Fatalf("expected Error, got %q", got)
	}
	if got := Finally(divide(1, 1), onSuccess, onFailure); got != "1" {
		t.Fatalf("expected 1, got %q", got)
	}
}

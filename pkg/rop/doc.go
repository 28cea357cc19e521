// Package rop provides Outcome, a two-variant result type for operations that
// may fail, and a small set of helpers around it.
//
// An Outcome is either Success, holding a value, or Failure, holding an error
// payload. Callers inspect it with IsSuccess/IsFailure, consume it safely with
// Match, or take the value with Unwrap where failure is impossible.
//
// Error payloads implement ErrorKind. Lightweight kinds can be declared with
// DefineErrorKind:
//
//	var DivideByZero = rop.DefineErrorKind("DivideByZeroError", "Cannot divide by zero")
//
//	func divide(a, b float64) rop.Outcome[float64, *rop.KindError] {
//		if b == 0 {
//			return rop.Failure[float64](DivideByZero.New())
//		}
//		return rop.Success[float64, *rop.KindError](a / b)
//	}
//
// See package solo for synchronous combinators and package chain for a fluent
// wrapper.
package rop

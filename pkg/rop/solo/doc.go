// Package solo contains single-value, synchronous combinators that operate
// on rop.Outcome. They are the building blocks for failure-aware flows
// without nesting IsSuccess checks.
//
// Highlights:
// - Succeed/Fail: construct outcomes
// - Validate/AndValidate: turn a predicate into a failure on invalid input
// - Switch: move from Outcome[In, E] to Outcome[Out, E]
// - Map/MapFailure: transform the success value or the failure payload
// - Try: call a function (Out, error) and convert error to failure
// - Tee/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/failure handlers
package solo

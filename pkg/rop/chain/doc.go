// Package chain provides a fluent wrapper around rop.Outcome for building
// synchronous chains on top of the solo combinators.
//
// Key operations:
// - Start/FromValue: begin a chain from an Outcome or a value
// - Then: switch to a new Outcome[U, E] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - Ensure: run side effects on success without changing the outcome
// - Or: fall back to alternative chains when this one failed
// - Finally: collapse the chain into a final value via handlers
package chain

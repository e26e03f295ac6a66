// Package chain provides a fluent wrapper around result.Result[T, E] for
// building left-to-right pipelines without branching on the result at each
// step.
//
// Key operations:
// - From/FromValue: begin a chain from a result or a plain value
// - Then: compose result-returning functions (free Then switches the type)
// - Map: transform the success value (free Map switches the type)
// - Try: call a function returning (U, error) and fold the error in
// - Ensure/EnsureErr: run side effects without changing the result
// - Recover: attempt recovery from the error arm
// - Finally: collapse the chain into a final value via handlers
package chain

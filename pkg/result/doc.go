// Package result provides a generic success/failure container Result[T, E]
// that holds exactly one of a value or an error, plus the combinators needed
// to propagate failure through call chains without panicking.
//
// Highlights:
// - Ok/Err, OkOf/ErrMsg: construct results (the only construction path)
// - IsOk/IsErr, Contains, ToOptional, TryUnwrap: non-consuming observation
// - Unwrap/Expect/UnwrapErr/ExpectErr: panicking extraction
// - Take/TakeErr: consuming extraction, leaving the result empty
// - UnwrapOr/UnwrapOrElse: non-panicking recovery
// - Map/MapErr/AndThen/OrElse/Match: monadic composition
// - Unit/Void: specialization for operations that succeed with no payload
// - From/Tuple: bridges to and from the plain Go (T, error) convention
//
// Panics raised by Unwrap and friends signal contract violations (reading
// the wrong arm), never modeled failures: expected failures travel in the
// error arm itself and are recovered with OrElse/UnwrapOr/UnwrapOrElse.
package result

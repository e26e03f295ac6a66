package result

// Cross-type transformations live here as free functions: Go methods cannot
// introduce new type parameters, so anything that changes T or E takes the
// result as its first argument instead.

// Map transforms the success value with fn, retyping the result to U. An
// error result passes through untouched; fn is not called.
func Map[T, U, E any](r Result[T, E], fn func(T) U) Result[U, E] {
	switch r.state {
	case stateOk:
		return Ok[U, E](fn(r.ok.value))
	case stateErr:
		return Err[U, E](r.err.value)
	default:
		return Result[U, E]{}
	}
}

// MapErr transforms the error value with fn, retyping the error arm to F. A
// success passes through untouched.
func MapErr[T, E, F any](r Result[T, E], fn func(E) F) Result[T, F] {
	switch r.state {
	case stateErr:
		return Err[T, F](fn(r.err.value))
	case stateOk:
		return Ok[T, F](r.ok.value)
	default:
		return Result[T, F]{}
	}
}

// AndThen chains a result-returning continuation: on success fn decides the
// outcome, on error the continuation is never invoked and the error is
// carried into the new result type. This is the monadic bind.
func AndThen[T, U, E any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	switch r.state {
	case stateOk:
		return fn(r.ok.value)
	case stateErr:
		return Err[U, E](r.err.value)
	default:
		return Result[U, E]{}
	}
}

// Match is the exhaustive eliminator: exactly one of okFn/errFn runs and
// its value is returned. Every other combinator can be expressed through
// Match.
func Match[T, E, U any](r Result[T, E], okFn func(T) U, errFn func(E) U) U {
	switch r.state {
	case stateOk:
		return okFn(r.ok.value)
	case stateErr:
		return errFn(r.err.value)
	default:
		panic(emptyResultText)
	}
}

// Contains reports whether r is a success holding exactly value. An error
// result always compares false.
func Contains[T comparable, E any](r Result[T, E], value T) bool {
	return r.state == stateOk && r.ok.value == value
}

// From lifts the idiomatic Go (value, error) pair into a result: a nil
// error becomes a success.
func From[T any](value T, err error) Result[T, error] {
	if err != nil {
		return Err[T, error](err)
	}
	return Ok[T, error](value)
}

// FromVoid lifts a bare error return into the no-payload specialization.
func FromVoid(err error) Void[error] {
	if err != nil {
		return ErrVoid[error](err)
	}
	return OkVoid[error]()
}

// Tuple flattens the result back into the plain (value, error) convention,
// for handing results to code that expects ordinary Go errors.
func Tuple[T any, E error](r Result[T, E]) (T, error) {
	switch r.state {
	case stateOk:
		return r.ok.value, nil
	case stateErr:
		var zero T
		return zero, r.err.value
	default:
		panic(emptyResultText)
	}
}

package chain

import (
	"github.com/ib-77/result3/pkg/result"
)

// Chain wraps a result.Result to enable fluent chaining.
type Chain[T, E any] struct {
	res result.Result[T, E]
}

// From creates a new chain from an existing result.
func From[T, E any](r result.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: r}
}

// FromValue creates a new chain from a successful value.
func FromValue[T, E any](value T) Chain[T, E] {
	return Chain[T, E]{res: result.Ok[T, E](value)}
}

// Result returns the underlying result.
func (c Chain[T, E]) Result() result.Result[T, E] {
	return c.res
}

// Then composes a function that already returns a result. The function is
// not invoked when the chain already carries an error.
func (c Chain[T, E]) Then(onOk func(T) result.Result[T, E]) Chain[T, E] {
	if !c.res.IsOk() {
		return c
	}
	return Chain[T, E]{res: onOk(c.res.Unwrap())}
}

// Map transforms the successful value in place.
func (c Chain[T, E]) Map(onOk func(T) T) Chain[T, E] {
	if !c.res.IsOk() {
		return c
	}
	return Chain[T, E]{res: result.Ok[T, E](onOk(c.res.Unwrap()))}
}

// Ensure triggers a side effect on success without changing the result.
func (c Chain[T, E]) Ensure(onOk func(T)) Chain[T, E] {
	if onOk != nil {
		c.res.Inspect(onOk)
	}
	return c
}

// EnsureErr triggers a side effect on failure without changing the result.
func (c Chain[T, E]) EnsureErr(onErr func(E)) Chain[T, E] {
	if onErr != nil {
		c.res.InspectErr(onErr)
	}
	return c
}

// Recover attempts to replace an error with a fresh result; a success
// passes through unchanged.
func (c Chain[T, E]) Recover(onErr func(E) result.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: c.res.OrElse(onErr)}
}

// Finally collapses the chain to a value of the chained type. For a
// different final type use the free Finally function.
func (c Chain[T, E]) Finally(onOk func(T) T, onErr func(E) T) T {
	return result.Match(c.res, onOk, onErr)
}

// Then chains a function that switches the success type to U.
func Then[T, U, E any](c Chain[T, E], onOk func(T) result.Result[U, E]) Chain[U, E] {
	return Chain[U, E]{res: result.AndThen(c.res, onOk)}
}

// Map chains a pure transformation to a new success type.
func Map[T, U, E any](c Chain[T, E], onOk func(T) U) Chain[U, E] {
	return Chain[U, E]{res: result.Map(c.res, onOk)}
}

// Try chains a function that returns (U, error), folding a non-nil error
// into the error arm. The chain must carry plain error payloads.
func Try[T, U any](c Chain[T, error], try func(T) (U, error)) Chain[U, error] {
	return Chain[U, error]{res: result.AndThen(c.res, func(v T) result.Result[U, error] {
		return result.From(try(v))
	})}
}

// Finally collapses the chain into a final value using the two handlers.
func Finally[T, E, U any](c Chain[T, E], onOk func(T) U, onErr func(E) U) U {
	return result.Match(c.res, onOk, onErr)
}

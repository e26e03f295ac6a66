package result

// okArm and errArm are single-field carriers for the two union arms. Keeping
// the arms in distinct types means case discrimination never depends on T
// and E being different, so Result[string, string] stays unambiguous.
type okArm[T any] struct {
	value T
}

type errArm[E any] struct {
	value E
}

type state uint8

const (
	// stateEmpty is the zero value on purpose: a Result that was never built
	// through a factory, or whose payload was already taken, reports empty
	// and panics on first real access.
	stateEmpty state = iota
	stateOk
	stateErr
)

const emptyResultText = "attempted to use an empty result"

// Result holds exactly one of a success value of type T or an error value of
// type E. Instances are built through Ok/Err and the convenience factories
// only; the zero value counts as consumed and must not be used.
type Result[T, E any] struct {
	ok    okArm[T]
	err   errArm[E]
	state state
}

// Of is a Result with the default Error payload.
type Of[T any] = Result[T, Error]

// Ok wraps value as a success.
func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{ok: okArm[T]{value: value}, state: stateOk}
}

// Err wraps e as a failure.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: errArm[E]{value: e}, state: stateErr}
}

// OkOf wraps value as a success with the default Error type.
func OkOf[T any](value T) Of[T] {
	return Ok[T, Error](value)
}

// ErrMsg builds a failure carrying the default Error type, from a message
// and code. Pass 0 when there is no meaningful code.
func ErrMsg[T any](message string, code int) Of[T] {
	return Err[T, Error](Error{Message: message, Code: code})
}

// IsOk reports whether the result holds a success value. This is also the
// boolean view of a result: an empty (consumed or zero) result is neither
// ok nor err.
func (r Result[T, E]) IsOk() bool {
	return r.state == stateOk
}

// IsErr reports whether the result holds an error value.
func (r Result[T, E]) IsErr() bool {
	return r.state == stateErr
}

// Expect returns the success value. On an error result it panics with
// "<msg>: <Error.Message>" when E is the default Error type, else with msg
// alone. Panics here mean programmer error, not modeled failure.
func (r Result[T, E]) Expect(msg string) T {
	switch r.state {
	case stateOk:
		return r.ok.value
	case stateErr:
		panic(expectText(msg, any(r.err.value)))
	default:
		panic(emptyResultText)
	}
}

// Unwrap returns the success value, panicking if the result holds an error.
func (r Result[T, E]) Unwrap() T {
	return r.Expect("attempted to unwrap an error result")
}

// ExpectErr returns the error value, panicking with msg on a success.
func (r Result[T, E]) ExpectErr(msg string) E {
	switch r.state {
	case stateErr:
		return r.err.value
	case stateOk:
		panic(msg)
	default:
		panic(emptyResultText)
	}
}

// UnwrapErr returns the error value, panicking if the result holds a
// success.
func (r Result[T, E]) UnwrapErr() E {
	return r.ExpectErr("attempted to unwrap the error of an ok result")
}

// Take moves the success value out and leaves the result empty; any later
// access panics. Use Unwrap when the result must stay readable.
func (r *Result[T, E]) Take() T {
	v := r.Expect("attempted to unwrap an error result")
	*r = Result[T, E]{}
	return v
}

// TakeErr moves the error value out and leaves the result empty.
func (r *Result[T, E]) TakeErr() E {
	e := r.UnwrapErr()
	*r = Result[T, E]{}
	return e
}

// TryUnwrap returns a pointer into the success payload, or nil when the
// result holds an error or is empty. It is the only accessor that tolerates
// the wrong case without panicking.
func (r *Result[T, E]) TryUnwrap() *T {
	if r.state == stateOk {
		return &r.ok.value
	}
	return nil
}

// ToOptional reduces the result to a present/absent pair, discarding any
// error detail.
func (r Result[T, E]) ToOptional() (T, bool) {
	if r.state == stateOk {
		return r.ok.value, true
	}
	var zero T
	return zero, false
}

// UnwrapOr returns the success value, or def for anything else. Never
// panics.
func (r Result[T, E]) UnwrapOr(def T) T {
	if r.state == stateOk {
		return r.ok.value
	}
	return def
}

// UnwrapOrElse returns the success value, or the value fn computes from the
// error payload.
func (r Result[T, E]) UnwrapOrElse(fn func(E) T) T {
	switch r.state {
	case stateOk:
		return r.ok.value
	case stateErr:
		return fn(r.err.value)
	default:
		panic(emptyResultText)
	}
}

// OrElse returns the result unchanged on success, otherwise the result fn
// builds from the error payload. This is the recovery counterpart of
// AndThen.
func (r Result[T, E]) OrElse(fn func(E) Result[T, E]) Result[T, E] {
	if r.state == stateErr {
		return fn(r.err.value)
	}
	return r
}

// Inspect calls fn with the success value, if any, and returns the result
// unchanged. Useful for logging mid-chain.
func (r Result[T, E]) Inspect(fn func(T)) Result[T, E] {
	if r.state == stateOk {
		fn(r.ok.value)
	}
	return r
}

// InspectErr calls fn with the error value, if any, and returns the result
// unchanged.
func (r Result[T, E]) InspectErr(fn func(E)) Result[T, E] {
	if r.state == stateErr {
		fn(r.err.value)
	}
	return r
}

func (Result[T, E]) isResult() {}

func expectText(msg string, errValue any) string {
	if e, ok := errValue.(Error); ok {
		return msg + ": " + e.Message
	}
	return msg
}

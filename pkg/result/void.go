package result

// Unit is the payload of a success that carries no value.
type Unit struct{}

// Void is the no-payload success specialization: an operation either fully
// succeeds, or fails with E.
type Void[E any] = Result[Unit, E]

// VoidOf is Void with the default Error payload.
type VoidOf = Void[Error]

// OkVoid returns a success carrying no payload.
func OkVoid[E any]() Void[E] {
	return Ok[Unit, E](Unit{})
}

// Done returns a no-payload success with the default Error type.
func Done() VoidOf {
	return OkVoid[Error]()
}

// ErrVoid wraps e as a no-payload failure.
func ErrVoid[E any](e E) Void[E] {
	return Err[Unit, E](e)
}

// FailMsg builds a no-payload failure from a message and code.
func FailMsg(message string, code int) VoidOf {
	return ErrMsg[Unit](message, code)
}

// MapVoid applies fn to the success value for its effect and collapses the
// result to the no-payload specialization; an error passes through
// untouched. This is the shape map takes when the mapping function returns
// nothing.
func MapVoid[T, E any](r Result[T, E], fn func(T)) Void[E] {
	switch r.state {
	case stateOk:
		fn(r.ok.value)
		return OkVoid[E]()
	case stateErr:
		return ErrVoid[E](r.err.value)
	default:
		return Void[E]{}
	}
}

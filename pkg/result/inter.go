package result

// Any is the interface-level view shared by every Result instantiation,
// regardless of its type arguments. The static "this function yields a
// Result" guarantee needed by AndThen/OrElse is carried by their signatures;
// Any covers the cases where instantiations must be handled uniformly, for
// example collections of heterogeneous results.
type Any interface {
	// IsOk reports whether the result holds a success value.
	IsOk() bool
	// IsErr reports whether the result holds an error value.
	IsErr() bool

	isResult()
}

// Is reports whether v is a Result of some instantiation. Only values built
// by this package satisfy it; the marker method cannot be implemented
// elsewhere.
func Is(v any) bool {
	_, ok := v.(Any)
	return ok
}

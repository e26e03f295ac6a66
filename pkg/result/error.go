package result

import "fmt"

// Error is the default diagnostic payload for the error arm: a
// human-readable message and a numeric code. Two Errors are equal when both
// fields match, so == is the comparison to use.
type Error struct {
	Message string
	Code    int
}

// NewError builds an Error. A code of 0 means "unspecified".
func NewError(message string, code int) Error {
	return Error{Message: message, Code: code}
}

// Error implements the standard error interface so the default payload can
// flow through ordinary Go error plumbing.
func (e Error) Error() string {
	if e.Code == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (code %d)", e.Message, e.Code)
}

package game

import (
	"errors"
	"fmt"
)

// Stable error codes. Transports map these onto their own status codes,
// the engine itself only cares about identity.
type Code string

const (
	E_UNAUTHENTICATED Code = "E_UNAUTHENTICATED" // no caller identity

	E_VALIDATION   Code = "E_VALIDATION"   // malformed or out-of-range input
	E_NOT_FOUND    Code = "E_NOT_FOUND"    // nation, war or request does not exist
	E_CONFLICT     Code = "E_CONFLICT"     // duplicate or competing action
	E_INSUFFICIENT Code = "E_INSUFFICIENT" // not enough money, resources or units
	E_FORBIDDEN    Code = "E_FORBIDDEN"    // caller may not perform this action
	E_STATE        Code = "E_STATE"        // target is not in a state that allows this
	E_INTERNAL     Code = "E_INTERNAL"     // unexpected failure, logged server-side
)

type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func Errf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

func CodeOf(err error) Code {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Code
	}

	return ""
}

func IsCode(err error, code Code) bool {
	return CodeOf(err) == code
}

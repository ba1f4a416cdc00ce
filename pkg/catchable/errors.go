package catchable

import (
	"errors"
	"fmt"
)

// ErrUnknownAction is returned when an action name cannot be parsed.
var ErrUnknownAction = errors.New("unknown action")

// PanicError is the error produced for an element whose projection panicked.
type PanicError struct {
	// Value is the value passed to panic.
	Value any
	// Stack is the goroutine stack at the point of recovery.
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("catchable: recovered panic: %v", e.Value)
}

// Unwrap returns the panic value when it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

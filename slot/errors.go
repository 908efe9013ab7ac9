package slot

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrUninitializedAccess is matched by every failure to read an empty slot.
var ErrUninitializedAccess = errors.New("uninitialized access")

// UninitializedAccessError is the panic value of the checked accessors and the
// error returned by the Try* variants.
type UninitializedAccessError struct {
	Op   string // accessor that was called
	Type string // payload type
}

func (e *UninitializedAccessError) Error() string {
	return fmt.Sprintf("slot: %s on empty Slot[%s]: %v", e.Op, e.Type, ErrUninitializedAccess)
}

func (e *UninitializedAccessError) Unwrap() error {
	return ErrUninitializedAccess
}

func uninitialized[T any](op string) *UninitializedAccessError {
	return &UninitializedAccessError{
		Op:   op,
		Type: reflect.TypeFor[T]().String(),
	}
}

// Package guard turns uninitialized slot access into an error at a process boundary.
//
// Checked slot accessors panic on an empty slot. A server that must not crash on
// one bad request wraps the request handler with Run or Value: the panic is
// recovered, logged with an incident id, and returned as a *Fault. Panics that
// are not uninitialized access are re-raised untouched.
package guard

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/on-the-ground/safe_uninit_go/slot"
)

// Fault is a recovered uninitialized access.
type Fault struct {
	ID    uuid.UUID
	Cause error
	Stack []byte
}

func (f *Fault) Error() string {
	return fmt.Sprintf("incident %s: %v", f.ID, f.Cause)
}

func (f *Fault) Unwrap() error {
	return f.Cause
}

// Run calls fn and returns a *Fault if fn read an empty slot.
func Run(fn func(), opts ...Option) (err error) {
	cfg := newConfig(opts)
	defer func() {
		if r := recover(); r != nil {
			err = cfg.recovered(r)
		}
	}()
	fn()
	return nil
}

// Value calls fn and returns its result, or a *Fault if fn read an empty slot.
func Value[T any](fn func() T, opts ...Option) (res T, err error) {
	err = Run(func() { res = fn() }, opts...)
	if err != nil {
		var zero T
		return zero, err
	}
	return res, nil
}

// recovered converts r into a *Fault, or re-panics if r is not uninitialized access.
func (c config) recovered(r any) error {
	cause, ok := r.(error)
	if !ok || !errors.Is(cause, slot.ErrUninitializedAccess) {
		panic(r) // re-raise the panic if it's not the expected error
	}

	fault := &Fault{
		ID:    c.newID(),
		Cause: cause,
	}
	if c.stack {
		fault.Stack = debug.Stack()
	}

	fields := []zap.Field{
		zap.String("incident", fault.ID.String()),
		zap.Error(cause),
	}
	var access *slot.UninitializedAccessError
	if errors.As(cause, &access) {
		fields = append(fields,
			zap.String("op", access.Op),
			zap.String("type", access.Type),
		)
	}
	c.logger.Error("uninitialized slot access", fields...)
	return fault
}

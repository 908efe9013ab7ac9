package slot

import "fmt"

// NoAccess exposes only the explicit accessor family.
type NoAccess struct{}

// ReadOnly additionally exposes Deref.
type ReadOnly struct{}

// ReadWrite additionally exposes Deref, DerefMut and Update.
type ReadWrite struct{}

// Capability is the closed set of markers a Slot can carry.
type Capability interface {
	NoAccess | ReadOnly | ReadWrite
}

// CanRead is satisfied by markers that grant transparent read access.
type CanRead interface {
	ReadOnly | ReadWrite
}

// CanWrite is satisfied by markers that grant transparent write access.
type CanWrite interface {
	ReadWrite
}

// Deref reads through the slot as if it were the payload itself.
// It panics with an *UninitializedAccessError if the slot is empty.
func Deref[T any, C CanRead](s *Slot[T, C]) T {
	if !s.ok {
		panic(uninitialized[T]("Deref"))
	}
	return s.value
}

// DerefMut returns a pointer to the payload for in-place mutation:
//
//	*slot.DerefMut(&s) = 100
//
// It panics with an *UninitializedAccessError if the slot is empty.
func DerefMut[T any, C CanWrite](s *Slot[T, C]) *T {
	if !s.ok {
		panic(uninitialized[T]("DerefMut"))
	}
	return &s.value
}

// Update applies fn to the payload in place.
func Update[T any, C CanWrite](s *Slot[T, C], fn func(*T)) {
	fn(DerefMut(s))
}

func capabilityName[C Capability]() string {
	var c C
	switch any(c).(type) {
	case NoAccess:
		return "no_access"
	case ReadOnly:
		return "read"
	case ReadWrite:
		return "read_write"
	}
	panic(fmt.Sprintf("exhaustive match fallback, capability type: %T", c))
}

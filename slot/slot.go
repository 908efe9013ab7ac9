package slot

import "reflect"

// Slot holds zero or one value of type T. The zero value is an empty slot.
//
// C selects which transparent accessors exist for the slot; see Deref,
// DerefMut and Update. It carries no data.
type Slot[T any, C Capability] struct {
	_     [0]C // kept first: a trailing zero-size field would add padding
	value T
	ok    bool
}

// Defaulter lets a payload type supply its own default for Default.
type Defaulter[T any] interface {
	Default() T
}

// Uninit returns an empty slot.
func Uninit[T any, C Capability]() Slot[T, C] {
	return Slot[T, C]{}
}

// New returns a slot populated with value.
func New[T any, C Capability](value T) Slot[T, C] {
	return Slot[T, C]{value: value, ok: true}
}

// Default returns a populated slot holding T's default: the result of
// Default() when T or *T implements Defaulter[T], otherwise T's zero value.
//
// Default() is never called on a nil receiver. When T is a pointer type it is
// called on a pointer to a freshly allocated zero value.
func Default[T any, C Capability]() Slot[T, C] {
	var zero T
	if d, ok := any(&zero).(Defaulter[T]); ok {
		return New[T, C](d.Default())
	}
	if t := reflect.TypeFor[T](); t.Kind() == reflect.Pointer {
		if d, ok := reflect.New(t.Elem()).Interface().(Defaulter[T]); ok {
			return New[T, C](d.Default())
		}
	}
	return New[T, C](zero)
}

// Initialized reports whether the slot holds a value.
func (s *Slot[T, C]) Initialized() bool {
	return s.ok
}

// Capability reports the name of the slot's marker: "no_access", "read" or "read_write".
func (s *Slot[T, C]) Capability() string {
	return capabilityName[C]()
}

// Take moves the payload out, leaving the slot empty.
// It panics with an *UninitializedAccessError if the slot is empty.
func (s *Slot[T, C]) Take() T {
	if !s.ok {
		panic(uninitialized[T]("Take"))
	}
	return s.TakeUnchecked()
}

// TakeOption moves the payload out if there is one, leaving the slot empty.
func (s *Slot[T, C]) TakeOption() (T, bool) {
	ok := s.ok
	return s.TakeUnchecked(), ok
}

// Into is TakeOption.
func (s *Slot[T, C]) Into() (T, bool) {
	return s.TakeOption()
}

// TakeRef returns the payload without moving it out.
// It panics with an *UninitializedAccessError if the slot is empty.
func (s *Slot[T, C]) TakeRef() T {
	if !s.ok {
		panic(uninitialized[T]("TakeRef"))
	}
	return s.value
}

// TakeMut returns a pointer to the payload for in-place mutation.
// It panics with an *UninitializedAccessError if the slot is empty.
func (s *Slot[T, C]) TakeMut() *T {
	if !s.ok {
		panic(uninitialized[T]("TakeMut"))
	}
	return &s.value
}

// TakeUnchecked is Take without the presence check.
// The caller must guarantee the slot is populated.
func (s *Slot[T, C]) TakeUnchecked() T {
	v := s.value
	*s = Slot[T, C]{}
	return v
}

// TakeRefUnchecked is TakeRef without the presence check.
// The caller must guarantee the slot is populated.
func (s *Slot[T, C]) TakeRefUnchecked() T {
	return s.value
}

// TakeMutUnchecked is TakeMut without the presence check.
// The caller must guarantee the slot is populated.
func (s *Slot[T, C]) TakeMutUnchecked() *T {
	return &s.value
}

// Peek returns the payload and whether it is present, without moving it out.
func (s *Slot[T, C]) Peek() (T, bool) {
	return s.value, s.ok
}

// Initialize stores value, discarding whatever the slot held before.
func (s *Slot[T, C]) Initialize(value T) {
	s.Replace(value)
}

// Replace stores value and returns the previous payload, if any.
func (s *Slot[T, C]) Replace(value T) (old T, ok bool) {
	old, ok = s.value, s.ok
	s.value, s.ok = value, true
	return
}

// TryTake is Take returning an error instead of panicking.
func (s *Slot[T, C]) TryTake() (T, error) {
	if !s.ok {
		return *new(T), uninitialized[T]("TryTake")
	}
	return s.TakeUnchecked(), nil
}

// TryRef is TakeRef returning an error instead of panicking.
func (s *Slot[T, C]) TryRef() (T, error) {
	if !s.ok {
		return *new(T), uninitialized[T]("TryRef")
	}
	return s.value, nil
}

// TryMut is TakeMut returning an error instead of panicking.
func (s *Slot[T, C]) TryMut() (*T, error) {
	if !s.ok {
		return nil, uninitialized[T]("TryMut")
	}
	return &s.value, nil
}

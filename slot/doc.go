// Package slot provides a container for values that are declared before they exist.
//
// A Slot holds zero or one value of type T. It replaces the usual Go workarounds
// for staged initialization (a bare zero value that may or may not be "real",
// a pointer that may or may not be nil, an extra ok flag threaded next to the
// variable) with a single type whose every read is either checked or explicitly
// marked as unchecked.
//
// # Accessor families
//
// The checked family (Take, TakeRef, TakeMut) panics with an
// *UninitializedAccessError when the slot is empty. This is a programmer error,
// like an index out of range, and is not meant to be handled inline.
//
// The unchecked family (TakeUnchecked, TakeRefUnchecked, TakeMutUnchecked) skips
// the presence check. The caller must already know the slot is populated, for
// example because it just called Initialize. The result on an empty slot is
// unspecified.
//
// TakeOption, Peek and the Try* variants never panic.
//
// # Capabilities
//
// Every Slot carries a capability marker as its second type parameter:
//
//	slot.Slot[Config, slot.NoAccess]  // explicit accessors only
//	slot.Slot[Config, slot.ReadOnly]  // + Deref
//	slot.Slot[Config, slot.ReadWrite] // + Deref, DerefMut, Update
//
// The marker is a zero-size type parameter. Deref, DerefMut and Update are
// generic functions constrained on the marker, so calling DerefMut on a
// ReadOnly slot is rejected by the compiler, not at run time. The size and
// layout of a Slot do not depend on its marker.
//
// Of, ReadOnlyOf and NoAccessOf spell the three variants; Of defaults to ReadWrite.
//
// # Concurrency
//
// A Slot has no internal synchronization. Guard it with a mutex if it is
// shared between goroutines.
//
// Example:
//
//	var port slot.Of[int]
//	if err := parse(&port); err != nil {
//	    return err
//	}
//	*slot.DerefMut(&port) += 1
//	listen(port.Take())
package slot

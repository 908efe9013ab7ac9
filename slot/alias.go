package slot

// Of is a slot with full transparent access.
type Of[T any] = Slot[T, ReadWrite]

// ReadOnlyOf is a slot that can be read through with Deref only.
type ReadOnlyOf[T any] = Slot[T, ReadOnly]

// NoAccessOf is a slot with explicit accessors only.
type NoAccessOf[T any] = Slot[T, NoAccess]

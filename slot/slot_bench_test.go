package slot_test

import (
	"testing"

	"github.com/on-the-ground/safe_uninit_go/slot"
)

var sink int

func BenchmarkTakeRef(b *testing.B) {
	s := slot.New[int, slot.NoAccess](42)
	for b.Loop() {
		sink = s.TakeRef()
	}
}

func BenchmarkTakeRefUnchecked(b *testing.B) {
	s := slot.New[int, slot.NoAccess](42)
	for b.Loop() {
		sink = s.TakeRefUnchecked()
	}
}

func BenchmarkDeref(b *testing.B) {
	s := slot.New[int, slot.ReadWrite](42)
	for b.Loop() {
		sink = slot.Deref(&s)
	}
}

func BenchmarkDerefMut(b *testing.B) {
	s := slot.New[int, slot.ReadWrite](0)
	for b.Loop() {
		*slot.DerefMut(&s)++
	}
	sink = s.Take()
}

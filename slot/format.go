package slot

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
)

var debugConfig = spew.ConfigState{
	Indent:   " ",
	MaxDepth: 16,
	SortKeys: true,
}

// Format renders the payload with the caller's verb and flags, so a populated
// slot prints exactly like its value. %+v and %#v print the debug form instead,
// which also covers empty slots; %+v follows pointers in the payload.
// Any other rendering of an empty slot panics with an *UninitializedAccessError.
func (s Slot[T, C]) Format(f fmt.State, verb rune) {
	if verb == 'v' {
		switch {
		case f.Flag('#'):
			fmt.Fprint(f, s.GoString())
			return
		case f.Flag('+'):
			fmt.Fprint(f, s.debugString(func(v T) string {
				return debugConfig.Sprintf("%v", v)
			}))
			return
		}
	}
	if !s.ok {
		panic(uninitialized[T]("Format"))
	}
	fmt.Fprintf(f, fmt.FormatString(f, verb), s.value)
}

// GoString renders "Slot { value: None }" or "Slot { value: Some(...) }".
func (s Slot[T, C]) GoString() string {
	return s.debugString(func(v T) string {
		return fmt.Sprintf("%#v", v)
	})
}

func (s *Slot[T, C]) debugString(render func(T) string) string {
	if !s.ok {
		return "Slot { value: None }"
	}
	return "Slot { value: Some(" + render(s.value) + ") }"
}

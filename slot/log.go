package slot

import (
	"go.uber.org/zap/zapcore"
)

var _ zapcore.ObjectMarshaler = Slot[int, NoAccess]{}

// MarshalLogObject lets a slot be logged with zap.Object. Empty slots log
// without a value field.
func (s Slot[T, C]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddBool("initialized", s.ok)
	enc.AddString("capability", capabilityName[C]())
	if !s.ok {
		return nil
	}
	return enc.AddReflected("value", s.value)
}

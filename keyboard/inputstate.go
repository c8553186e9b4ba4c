package keyboard

import (
	"encoding/binary"
	"fmt"
	"io"
)

// ElementState is the direction of a key transition.
type ElementState uint8

const (
	Released ElementState = iota
	Pressed
)

func (s ElementState) String() string {
	if s == Pressed {
		return "pressed"
	}
	return "released"
}

// MarshalText implements encoding.TextMarshaler.
func (s ElementState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *ElementState) UnmarshalText(text []byte) error {
	switch string(text) {
	case "pressed":
		*s = Pressed
	case "released":
		*s = Released
	default:
		return fmt.Errorf("unknown element state %q", text)
	}
	return nil
}

// KeyboardInput is one normalized key transition handed back to the event
// loop. Key is KeyNone when the scancode has no stable identity.
type KeyboardInput struct {
	State     ElementState `json:"state" yaml:"state"`
	Scancode  uint16       `json:"scancode" yaml:"scancode"`
	Key       VirtualKey   `json:"key,omitempty" yaml:"key,omitempty"`
	Modifiers Modifiers    `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
	Synthetic bool         `json:"synthetic,omitempty" yaml:"synthetic,omitempty"`
}

// InputSize is the encoded size of a KeyboardInput.
const InputSize = 6

const (
	flagSynthetic = 0x01
	modifierMask  = ModShift | ModCtrl | ModAlt | ModLogo
)

func (in KeyboardInput) String() string {
	s := fmt.Sprintf("%s %s (scancode 0x%02x, modifiers %s)", in.Key, in.State, in.Scancode, in.Modifiers)
	if in.Synthetic {
		s += " synthetic"
	}
	return s
}

// MarshalBinary encodes KeyboardInput to its fixed wire layout.
//
// Wire format:
//
//	Byte 0:    State (0 released, 1 pressed)
//	Bytes 1-2: Scancode (little endian)
//	Byte 3:    VirtualKey (0 = none)
//	Byte 4:    Modifiers
//	Byte 5:    Flags (bit 0: synthetic)
func (in KeyboardInput) MarshalBinary() ([]byte, error) {
	b := make([]byte, InputSize)
	b[0] = uint8(in.State)
	binary.LittleEndian.PutUint16(b[1:3], in.Scancode)
	b[3] = uint8(in.Key)
	b[4] = uint8(in.Modifiers)
	if in.Synthetic {
		b[5] |= flagSynthetic
	}
	return b, nil
}

// UnmarshalBinary decodes the wire layout written by MarshalBinary.
func (in *KeyboardInput) UnmarshalBinary(data []byte) error {
	if len(data) < InputSize {
		return io.ErrUnexpectedEOF
	}
	if data[0] > uint8(Pressed) {
		return fmt.Errorf("invalid element state %d", data[0])
	}
	key := VirtualKey(data[3])
	if key != KeyNone && !key.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownKey, data[3])
	}
	if Modifiers(data[4])&^modifierMask != 0 {
		return fmt.Errorf("invalid modifiers 0x%02x", data[4])
	}
	if data[5]&^flagSynthetic != 0 {
		return fmt.Errorf("invalid input flags 0x%02x", data[5])
	}
	in.State = ElementState(data[0])
	in.Scancode = binary.LittleEndian.Uint16(data[1:3])
	in.Key = key
	in.Modifiers = Modifiers(data[4])
	in.Synthetic = data[5]&flagSynthetic != 0
	return nil
}

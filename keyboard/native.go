package keyboard

import (
	"fmt"
	"strconv"
	"strings"
)

// NativeFlags mirrors AppKit's NSEventModifierFlags.
type NativeFlags uint64

const (
	FlagCapsLock   NativeFlags = 1 << 16
	FlagShift      NativeFlags = 1 << 17
	FlagControl    NativeFlags = 1 << 18
	FlagOption     NativeFlags = 1 << 19
	FlagCommand    NativeFlags = 1 << 20
	FlagNumericPad NativeFlags = 1 << 21
	FlagHelp       NativeFlags = 1 << 22
	FlagFunction   NativeFlags = 1 << 23

	// FlagDeviceIndependentMask covers the flags above.
	FlagDeviceIndependentMask NativeFlags = 0xffff0000
)

var nativeFlagNames = [...]struct {
	flag NativeFlags
	name string
}{
	{FlagCapsLock, "capslock"},
	{FlagShift, "shift"},
	{FlagControl, "control"},
	{FlagOption, "option"},
	{FlagCommand, "command"},
	{FlagNumericPad, "numericpad"},
	{FlagHelp, "help"},
	{FlagFunction, "function"},
}

// NativeEvent is the only view this package has of a platform event.
// Implementations wrap the native handle and are responsible for its validity.
type NativeEvent interface {
	// KeyCode reads the hardware key code (scancode).
	KeyCode() uint16
	// ModifierFlags reads the modifier bitmask.
	ModifierFlags() NativeFlags
}

// Contains reports whether every flag of o is set in f.
func (f NativeFlags) Contains(o NativeFlags) bool {
	return f&o == o
}

func (f NativeFlags) String() string {
	var parts []string
	for _, n := range nativeFlagNames {
		if f.Contains(n.flag) {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// ParseNativeFlag resolves a single flag name such as "shift" or "command".
// "ctrl", "alt", "opt" and "cmd" are accepted as aliases. A number
// (decimal or 0x-prefixed) is taken as a raw modifier flags mask.
func ParseNativeFlag(name string) (NativeFlags, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "ctrl":
		n = "control"
	case "alt", "opt":
		n = "option"
	case "cmd", "logo":
		n = "command"
	case "fn":
		n = "function"
	}
	for _, f := range nativeFlagNames {
		if f.name == n {
			return f.flag, nil
		}
	}
	if v, err := strconv.ParseUint(n, 0, 64); err == nil {
		return NativeFlags(v), nil
	}
	return 0, fmt.Errorf("unknown modifier flag %q", name)
}

// EventModifiers converts native modifier flags to Modifiers.
func EventModifiers(f NativeFlags) Modifiers {
	var m Modifiers
	if f.Contains(FlagShift) {
		m |= ModShift
	}
	if f.Contains(FlagControl) {
		m |= ModCtrl
	}
	if f.Contains(FlagOption) {
		m |= ModAlt
	}
	if f.Contains(FlagCommand) {
		m |= ModLogo
	}
	return m
}

// NativeFlagFor converts Modifiers back to native flags. It is the inverse of
// EventModifiers for the shift, control, option and command bits.
func NativeFlagFor(m Modifiers) NativeFlags {
	var f NativeFlags
	if m.Shift() {
		f |= FlagShift
	}
	if m.Ctrl() {
		f |= FlagControl
	}
	if m.Alt() {
		f |= FlagOption
	}
	if m.Logo() {
		f |= FlagCommand
	}
	return f
}

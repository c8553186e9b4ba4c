package keyboard

import "unicode/utf8"

// TextEvent is a NativeEvent that also carries the typed characters.
type TextEvent interface {
	NativeEvent
	// Characters is the text produced with the active modifiers applied.
	Characters() string
	// CharactersIgnoringModifiers is the text without modifiers, except shift.
	CharactersIgnoringModifiers() string
}

// ResolveKey picks the virtual key for an ordinary key event.
//
// Printable keys are resolved from the characters first because the
// scancode keeps its QWERTY meaning under other layouts. Command can swap
// letters on Dvorak-QWERTY, so the unmodified characters are tried as well.
// Everything else falls through to the scancode table and finally to the
// F21-F24 character codes. Keypad keys type the same digits and symbols as
// the main block, so with the numeric pad flag set the scancode goes first.
func ResolveKey(ev TextEvent) VirtualKey {
	if ev.ModifierFlags().Contains(FlagNumericPad) {
		if k, ok := ScancodeToKey(ev.KeyCode()); ok {
			return k
		}
	}
	if k, ok := firstCharKey(ev.Characters()); ok {
		return k
	}
	if k, ok := firstCharKey(ev.CharactersIgnoringModifiers()); ok {
		return k
	}
	if k, ok := ScancodeToKey(ev.KeyCode()); ok {
		return k
	}
	if k, ok := DecodeFunctionKey(ev.CharactersIgnoringModifiers()); ok {
		return k
	}
	return KeyNone
}

// KeyEvent builds the KeyboardInput for a key down or key up event.
func KeyEvent(ev TextEvent, state ElementState) KeyboardInput {
	return KeyboardInput{
		State:     state,
		Scancode:  ev.KeyCode(),
		Key:       ResolveKey(ev),
		Modifiers: EventModifiers(ev.ModifierFlags()),
	}
}

func firstCharKey(s string) (VirtualKey, bool) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return KeyNone, false
	}
	return CharToKey(r)
}

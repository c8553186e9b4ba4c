package keyboard

// ModifierTransition decides whether the watched modifier changed between
// the remembered state and the current ambient flags.
//
// A press is reported when the key was not pressed and current contains
// watched; a release when it was pressed and current no longer does. Any
// other combination reports false. The event carries the scancode of the
// current native event and is never synthetic.
func ModifierTransition(current, watched Modifiers, wasPressed bool, scancode uint16) (KeyboardInput, bool) {
	if current.Contains(watched) == wasPressed {
		return KeyboardInput{}, false
	}
	return transitionInput(wasPressed, scancode, current), true
}

// ModifierEvent is ModifierTransition over a native event, watching a native
// flag mask. Masks with no Modifiers counterpart (caps lock, function)
// never report a transition.
func ModifierEvent(ev NativeEvent, mask NativeFlags, wasPressed bool) (KeyboardInput, bool) {
	watched := EventModifiers(mask)
	if watched == 0 {
		return KeyboardInput{}, false
	}
	return ModifierTransition(EventModifiers(ev.ModifierFlags()), watched, wasPressed, ev.KeyCode())
}

func transitionInput(wasPressed bool, scancode uint16, mods Modifiers) KeyboardInput {
	state := Pressed
	if wasPressed {
		state = Released
	}
	key, _ := ScancodeToKey(scancode)
	return KeyboardInput{
		State:     state,
		Scancode:  scancode,
		Key:       key,
		Modifiers: mods,
		Synthetic: false,
	}
}

package keyboard

// ModifierTracker remembers, per modifier, whether it was last seen pressed.
// AppKit reports modifier changes as a single "flags changed" notification
// without saying which key moved, so the event loop owns one tracker and
// feeds it every such notification. Not safe for concurrent use.
type ModifierTracker struct {
	Shift bool
	Ctrl  bool
	Alt   bool
	Logo  bool
}

// Modifiers returns the remembered state as a bitmask.
func (t *ModifierTracker) Modifiers() Modifiers {
	var m Modifiers
	if t.Shift {
		m |= ModShift
	}
	if t.Ctrl {
		m |= ModCtrl
	}
	if t.Alt {
		m |= ModAlt
	}
	if t.Logo {
		m |= ModLogo
	}
	return m
}

// FlagsChanged handles a flags-changed notification. It returns the key
// transitions it detected, in shift, control, logo, alt order, and whether
// the remembered modifier state changed.
func (t *ModifierTracker) FlagsChanged(ev NativeEvent) ([]KeyboardInput, bool) {
	before := t.Modifiers()
	var out []KeyboardInput
	for _, w := range [...]struct {
		mod   Modifiers
		state *bool
	}{
		{ModShift, &t.Shift},
		{ModCtrl, &t.Ctrl},
		{ModLogo, &t.Logo},
		{ModAlt, &t.Alt},
	} {
		if in, ok := ModifierEvent(ev, NativeFlagFor(w.mod), *w.state); ok {
			*w.state = !*w.state
			out = append(out, in)
		}
	}
	return out, t.Modifiers() != before
}

// Sync overwrites the remembered state from flags and reports whether it
// changed. Key down/up events carry the current flags too, which repairs a
// tracker that missed a flags-changed notification (e.g. while unfocused).
func (t *ModifierTracker) Sync(flags NativeFlags) bool {
	before := t.Modifiers()
	t.Shift = flags.Contains(FlagShift)
	t.Ctrl = flags.Contains(FlagControl)
	t.Alt = flags.Contains(FlagOption)
	t.Logo = flags.Contains(FlagCommand)
	return t.Modifiers() != before
}

// Reset marks every modifier released.
func (t *ModifierTracker) Reset() {
	*t = ModifierTracker{}
}

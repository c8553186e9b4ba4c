package keyboard

// scancodeTable maps AppKit hardware key codes (kVK_*) to virtual keys.
// Codes left at KeyNone have no stable identity: 0x34, 0x42, 0x44, 0x46,
// 0x4D, 0x5F, 0x6C, 0x6E, 0x70 and 0x7F are unassigned, 0x39 is caps lock,
// 0x3F is fn, 0x48 is keypad clear, 0x5E is JIS Ro, 0x66 and 0x68 are JIS
// Eisuu and Kana.
var scancodeTable = [0x80]VirtualKey{
	0x00: KeyA,
	0x01: KeyS,
	0x02: KeyD,
	0x03: KeyF,
	0x04: KeyH,
	0x05: KeyG,
	0x06: KeyZ,
	0x07: KeyX,
	0x08: KeyC,
	0x09: KeyV,
	0x0A: KeyCaret, // ISO section key, sits left of 1 on ISO layouts
	0x0B: KeyB,
	0x0C: KeyQ,
	0x0D: KeyW,
	0x0E: KeyE,
	0x0F: KeyR,
	0x10: KeyY,
	0x11: KeyT,
	0x12: Key1,
	0x13: Key2,
	0x14: Key3,
	0x15: Key4,
	0x16: Key6,
	0x17: Key5,
	0x18: KeyEqual,
	0x19: Key9,
	0x1A: Key7,
	0x1B: KeyMinus,
	0x1C: Key8,
	0x1D: Key0,
	0x1E: KeyRightBrace,
	0x1F: KeyO,
	0x20: KeyU,
	0x21: KeyLeftBrace,
	0x22: KeyI,
	0x23: KeyP,
	0x24: KeyEnter,
	0x25: KeyL,
	0x26: KeyJ,
	0x27: KeyApostrophe,
	0x28: KeyK,
	0x29: KeySemicolon,
	0x2A: KeyBackslash,
	0x2B: KeyComma,
	0x2C: KeySlash,
	0x2D: KeyN,
	0x2E: KeyM,
	0x2F: KeyPeriod,
	0x30: KeyTab,
	0x31: KeySpace,
	0x32: KeyGrave,
	0x33: KeyBackspace,
	0x35: KeyEscape,
	0x36: KeyRightLogo,
	0x37: KeyLeftLogo,
	0x38: KeyLeftShift,
	0x3A: KeyLeftAlt,
	0x3B: KeyLeftCtrl,
	0x3C: KeyRightShift,
	0x3D: KeyRightAlt,
	0x3E: KeyRightCtrl,
	0x40: KeyF17,
	0x41: KeyKpDot,
	0x43: KeyKpAsterisk,
	0x45: KeyKpPlus,
	0x47: KeyNumLock,
	0x49: KeyVolumeUp,
	0x4A: KeyVolumeDown,
	0x4B: KeyKpSlash,
	0x4C: KeyKpEnter,
	0x4E: KeyKpMinus,
	0x4F: KeyF18,
	0x50: KeyF19,
	0x51: KeyKpEqual,
	0x52: KeyKp0,
	0x53: KeyKp1,
	0x54: KeyKp2,
	0x55: KeyKp3,
	0x56: KeyKp4,
	0x57: KeyKp5,
	0x58: KeyKp6,
	0x59: KeyKp7,
	0x5A: KeyF20,
	0x5B: KeyKp8,
	0x5C: KeyKp9,
	0x5D: KeyYen,
	0x60: KeyF5,
	0x61: KeyF6,
	0x62: KeyF7,
	0x63: KeyF3,
	0x64: KeyF8,
	0x65: KeyF9,
	0x67: KeyF11,
	0x69: KeyF13,
	0x6A: KeyF16,
	0x6B: KeyF14,
	0x6D: KeyF10,
	0x6F: KeyF12,
	0x71: KeyF15,
	0x72: KeyInsert,
	0x73: KeyHome,
	0x74: KeyPageUp,
	0x75: KeyDelete,
	0x76: KeyF4,
	0x77: KeyEnd,
	0x78: KeyF2,
	0x79: KeyPageDown,
	0x7A: KeyF1,
	0x7B: KeyLeft,
	0x7C: KeyRight,
	0x7D: KeyDown,
	0x7E: KeyUp,
}

// ScancodeToKey maps a hardware scancode to its virtual key. Reserved or
// unknown codes report (KeyNone, false).
func ScancodeToKey(code uint16) (VirtualKey, bool) {
	if int(code) >= len(scancodeTable) {
		return KeyNone, false
	}
	k := scancodeTable[code]
	return k, k != KeyNone
}

// ScancodeFor returns the first scancode mapping to k.
func ScancodeFor(k VirtualKey) (uint16, bool) {
	if k == KeyNone {
		return 0, false
	}
	for code, v := range scancodeTable {
		if v == k {
			return uint16(code), true
		}
	}
	return 0, false
}

package keyboard

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKey is returned when a key name does not match any VirtualKey.
var ErrUnknownKey = errors.New("unknown virtual key")

// KeyName maps virtual keys to human-readable key names.
var KeyName = map[VirtualKey]string{
	// Numbers
	Key1: "Key1", Key2: "Key2", Key3: "Key3", Key4: "Key4", Key5: "Key5",
	Key6: "Key6", Key7: "Key7", Key8: "Key8", Key9: "Key9", Key0: "Key0",

	// Letters
	KeyA: "A", KeyB: "B", KeyC: "C", KeyD: "D", KeyE: "E", KeyF: "F", KeyG: "G",
	KeyH: "H", KeyI: "I", KeyJ: "J", KeyK: "K", KeyL: "L", KeyM: "M", KeyN: "N",
	KeyO: "O", KeyP: "P", KeyQ: "Q", KeyR: "R", KeyS: "S", KeyT: "T", KeyU: "U",
	KeyV: "V", KeyW: "W", KeyX: "X", KeyY: "Y", KeyZ: "Z",

	KeyEscape: "Escape",

	// Function keys
	KeyF1: "F1", KeyF2: "F2", KeyF3: "F3", KeyF4: "F4", KeyF5: "F5", KeyF6: "F6",
	KeyF7: "F7", KeyF8: "F8", KeyF9: "F9", KeyF10: "F10", KeyF11: "F11", KeyF12: "F12",
	KeyF13: "F13", KeyF14: "F14", KeyF15: "F15", KeyF16: "F16", KeyF17: "F17", KeyF18: "F18",
	KeyF19: "F19", KeyF20: "F20", KeyF21: "F21", KeyF22: "F22", KeyF23: "F23", KeyF24: "F24",

	// Control keys
	KeyPrintScreen: "PrintScreen",
	KeyScrollLock:  "ScrollLock",
	KeyPause:       "Pause",
	KeyInsert:      "Insert",
	KeyHome:        "Home",
	KeyDelete:      "Delete",
	KeyEnd:         "End",
	KeyPageDown:    "PageDown",
	KeyPageUp:      "PageUp",

	// Arrow keys
	KeyLeft:  "Left",
	KeyUp:    "Up",
	KeyRight: "Right",
	KeyDown:  "Down",

	KeyBackspace: "Backspace",
	KeyEnter:     "Enter",
	KeySpace:     "Space",
	KeyCompose:   "Compose",
	KeyCaret:     "Caret",

	// Numpad
	KeyNumLock:    "NumLock",
	KeyKp0:        "Kp0",
	KeyKp1:        "Kp1",
	KeyKp2:        "Kp2",
	KeyKp3:        "Kp3",
	KeyKp4:        "Kp4",
	KeyKp5:        "Kp5",
	KeyKp6:        "Kp6",
	KeyKp7:        "Kp7",
	KeyKp8:        "Kp8",
	KeyKp9:        "Kp9",
	KeyKpPlus:     "Kp+",
	KeyKpSlash:    "Kp/",
	KeyKpDot:      "Kp.",
	KeyKpComma:    "Kp,",
	KeyKpEnter:    "KpEnter",
	KeyKpEqual:    "Kp=",
	KeyKpAsterisk: "Kp*",
	KeyKpMinus:    "Kp-",

	// Punctuation and international keys
	KeyAbntC1:      "AbntC1",
	KeyAbntC2:      "AbntC2",
	KeyApostrophe:  "Apostrophe",
	KeyApplication: "Application",
	KeyAsterisk:    "Asterisk",
	KeyAt:          "At",
	KeyAx:          "Ax",
	KeyBackslash:   "Backslash",
	KeyCalculator:  "Calculator",
	KeyCapsLock:    "CapsLock",
	KeyColon:       "Colon",
	KeyComma:       "Comma",
	KeyConvert:     "Convert",
	KeyEqual:       "Equal",
	KeyGrave:       "Grave",
	KeyKana:        "Kana",
	KeyKanji:       "Kanji",
	KeyMinus:       "Minus",
	KeyNoConvert:   "NoConvert",
	KeyOEM102:      "OEM102",
	KeyPeriod:      "Period",
	KeyPlus:        "Plus",
	KeyLeftBrace:   "LeftBrace",
	KeyRightBrace:  "RightBrace",
	KeySemicolon:   "Semicolon",
	KeySlash:       "Slash",
	KeyTab:         "Tab",
	KeyUnderline:   "Underline",
	KeyUnlabeled:   "Unlabeled",
	KeyYen:         "Yen",

	// Modifier keys
	KeyLeftAlt:    "LeftAlt",
	KeyLeftCtrl:   "LeftCtrl",
	KeyLeftShift:  "LeftShift",
	KeyLeftLogo:   "LeftLogo",
	KeyRightAlt:   "RightAlt",
	KeyRightCtrl:  "RightCtrl",
	KeyRightShift: "RightShift",
	KeyRightLogo:  "RightLogo",

	// System, media and browser keys
	KeyMail:             "Mail",
	KeyMediaSelect:      "MediaSelect",
	KeyMediaStop:        "MediaStop",
	KeyMediaNext:        "MediaNext",
	KeyMediaPlayPause:   "MediaPlayPause",
	KeyMediaPrevious:    "MediaPrevious",
	KeyMute:             "Mute",
	KeyMyComputer:       "MyComputer",
	KeyNavigateForward:  "NavigateForward",
	KeyNavigateBackward: "NavigateBackward",
	KeyPower:            "Power",
	KeySleep:            "Sleep",
	KeyStop:             "Stop",
	KeySysrq:            "Sysrq",
	KeyVolumeDown:       "VolumeDown",
	KeyVolumeUp:         "VolumeUp",
	KeyWake:             "Wake",
	KeyWebBack:          "WebBack",
	KeyWebFavorites:     "WebFavorites",
	KeyWebForward:       "WebForward",
	KeyWebHome:          "WebHome",
	KeyWebRefresh:       "WebRefresh",
	KeyWebSearch:        "WebSearch",
	KeyWebStop:          "WebStop",
	KeyCopy:             "Copy",
	KeyPaste:            "Paste",
	KeyCut:              "Cut",
}

// glyphPair is one physical key carrying an unshifted and a shifted glyph.
type glyphPair struct {
	key            VirtualKey
	plain, shifted rune
}

// glyphPairs is the single source for both character directions, so
// CharToKey and KeyToChar stay inverse over their shared domain.
// Only keys whose glyph moves with the keyboard layout are listed.
var glyphPairs = [...]glyphPair{
	{KeyA, 'a', 'A'}, {KeyB, 'b', 'B'}, {KeyC, 'c', 'C'}, {KeyD, 'd', 'D'},
	{KeyE, 'e', 'E'}, {KeyF, 'f', 'F'}, {KeyG, 'g', 'G'}, {KeyH, 'h', 'H'},
	{KeyI, 'i', 'I'}, {KeyJ, 'j', 'J'}, {KeyK, 'k', 'K'}, {KeyL, 'l', 'L'},
	{KeyM, 'm', 'M'}, {KeyN, 'n', 'N'}, {KeyO, 'o', 'O'}, {KeyP, 'p', 'P'},
	{KeyQ, 'q', 'Q'}, {KeyR, 'r', 'R'}, {KeyS, 's', 'S'}, {KeyT, 't', 'T'},
	{KeyU, 'u', 'U'}, {KeyV, 'v', 'V'}, {KeyW, 'w', 'W'}, {KeyX, 'x', 'X'},
	{KeyY, 'y', 'Y'}, {KeyZ, 'z', 'Z'},

	{Key1, '1', '!'}, {Key2, '2', '@'}, {Key3, '3', '#'}, {Key4, '4', '$'},
	{Key5, '5', '%'}, {Key6, '6', '^'}, {Key7, '7', '&'}, {Key8, '8', '*'},
	{Key9, '9', '('}, {Key0, '0', ')'},

	{KeyEqual, '=', '+'},
	{KeyMinus, '-', '_'},
	{KeyRightBrace, ']', '}'},
	{KeyLeftBrace, '[', '{'},
	{KeyApostrophe, '\'', '"'},
	{KeySemicolon, ';', ':'},
	{KeyBackslash, '\\', '|'},
	{KeyComma, ',', '<'},
	{KeySlash, '/', '?'},
	{KeyPeriod, '.', '>'},
	{KeyGrave, '`', '~'},
}

var (
	charToKey = make(map[rune]VirtualKey, 2*len(glyphPairs))
	nameToKey = make(map[string]VirtualKey, len(KeyName))
)

// keyGlyphs holds {plain, shifted} per key; zero runes mean no glyph.
var keyGlyphs [keyCount][2]rune

func init() {
	for _, p := range glyphPairs {
		charToKey[p.plain] = p.key
		charToKey[p.shifted] = p.key
		keyGlyphs[p.key] = [2]rune{p.plain, p.shifted}
	}
	for k, name := range KeyName {
		nameToKey[strings.ToLower(name)] = k
	}
}

// CharToKey returns the virtual key that produces c, ignoring shift.
// Both glyphs of a key ('1' and '!') resolve to the same key; shift state
// has to be read from the modifier flags instead.
func CharToKey(c rune) (VirtualKey, bool) {
	k, ok := charToKey[c]
	return k, ok
}

// KeyToChar returns the glyph k produces under the given modifiers. Only
// ModShift is taken into account. Keys without a glyph (navigation,
// function and modifier keys) report false.
func KeyToChar(k VirtualKey, m Modifiers) (rune, bool) {
	if k >= keyCount {
		return 0, false
	}
	g := keyGlyphs[k]
	if g[0] == 0 {
		return 0, false
	}
	if m.Contains(ModShift) {
		return g[1], true
	}
	return g[0], true
}

// ParseVirtualKey looks up a key by its KeyName, case-insensitively.
func ParseVirtualKey(name string) (VirtualKey, error) {
	if k, ok := nameToKey[strings.ToLower(strings.TrimSpace(name))]; ok {
		return k, nil
	}
	return KeyNone, fmt.Errorf("%w: %q", ErrUnknownKey, name)
}

// AllKeys returns every defined virtual key in declaration order.
func AllKeys() []VirtualKey {
	keys := make([]VirtualKey, 0, keyCount-1)
	for k := KeyNone + 1; k < keyCount; k++ {
		keys = append(keys, k)
	}
	return keys
}

// String returns the key name, "None" for KeyNone.
func (k VirtualKey) String() string {
	if name, ok := KeyName[k]; ok {
		return name
	}
	if k == KeyNone {
		return "None"
	}
	return fmt.Sprintf("VirtualKey(%d)", uint8(k))
}

// Valid reports whether k is a defined key other than KeyNone.
func (k VirtualKey) Valid() bool {
	return k > KeyNone && k < keyCount
}

// MarshalText implements encoding.TextMarshaler.
func (k VirtualKey) MarshalText() ([]byte, error) {
	if k == KeyNone {
		return []byte{}, nil
	}
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKey, uint8(k))
	}
	return []byte(KeyName[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty text decodes to KeyNone.
func (k *VirtualKey) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*k = KeyNone
		return nil
	}
	v, err := ParseVirtualKey(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

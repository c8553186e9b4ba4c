// Package keyboard normalizes macOS keyboard signals (hardware scancodes,
// typed characters and ambient modifier flags) into layout-independent
// virtual keys and discrete press/release events.
package keyboard

// VirtualKey identifies a key independently of the active keyboard layout.
// The zero value KeyNone means "no mapping".
type VirtualKey uint8

// Modifier bitmasks
const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModLogo // Command key
)

// Virtual keys
const (
	KeyNone VirtualKey = iota

	// Numbers 1-0 (top row)
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	Key0

	// Letters A-Z
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	KeyEscape

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24

	// Control keys
	KeyPrintScreen
	KeyScrollLock
	KeyPause
	KeyInsert
	KeyHome
	KeyDelete
	KeyEnd
	KeyPageDown
	KeyPageUp

	// Arrow keys
	KeyLeft
	KeyUp
	KeyRight
	KeyDown

	KeyBackspace
	KeyEnter
	KeySpace
	KeyCompose
	KeyCaret // ISO section key on some layouts

	// Numpad
	KeyNumLock
	KeyKp0
	KeyKp1
	KeyKp2
	KeyKp3
	KeyKp4
	KeyKp5
	KeyKp6
	KeyKp7
	KeyKp8
	KeyKp9
	KeyKpPlus
	KeyKpSlash
	KeyKpDot
	KeyKpComma
	KeyKpEnter
	KeyKpEqual
	KeyKpAsterisk
	KeyKpMinus

	// Punctuation and international keys
	KeyAbntC1
	KeyAbntC2
	KeyApostrophe // ' and "
	KeyApplication
	KeyAsterisk
	KeyAt
	KeyAx
	KeyBackslash // \ and |
	KeyCalculator
	KeyCapsLock
	KeyColon
	KeyComma // , and <
	KeyConvert
	KeyEqual // = and +
	KeyGrave // ` and ~
	KeyKana
	KeyKanji
	KeyMinus // - and _
	KeyNoConvert
	KeyOEM102
	KeyPeriod // . and >
	KeyPlus
	KeyLeftBrace  // [ and {
	KeyRightBrace // ] and }
	KeySemicolon  // ; and :
	KeySlash      // / and ?
	KeyTab
	KeyUnderline
	KeyUnlabeled
	KeyYen

	// Modifier keys
	KeyLeftAlt
	KeyLeftCtrl
	KeyLeftShift
	KeyLeftLogo
	KeyRightAlt
	KeyRightCtrl
	KeyRightShift
	KeyRightLogo

	// System, media and browser keys
	KeyMail
	KeyMediaSelect
	KeyMediaStop
	KeyMediaNext
	KeyMediaPlayPause
	KeyMediaPrevious
	KeyMute
	KeyMyComputer
	KeyNavigateForward
	KeyNavigateBackward
	KeyPower
	KeySleep
	KeyStop
	KeySysrq
	KeyVolumeDown
	KeyVolumeUp
	KeyWake
	KeyWebBack
	KeyWebFavorites
	KeyWebForward
	KeyWebHome
	KeyWebRefresh
	KeyWebSearch
	KeyWebStop
	KeyCopy
	KeyPaste
	KeyCut

	keyCount
)

package keyboard

import (
	"unicode/utf16"
	"unicode/utf8"
)

// AppKit function-key unicodes for keys beyond F20, which have no
// dependable scancode and arrive in the event's character payload.
const (
	unicodeF21 = 0xF718
	unicodeF22 = 0xF719
	unicodeF23 = 0xF71A
	unicodeF24 = 0xF71B
)

// DecodeFunctionKey inspects the first UTF-16 code unit of text and
// resolves F21-F24.
func DecodeFunctionKey(text string) (VirtualKey, bool) {
	r, size := utf8.DecodeRuneInString(text)
	if size == 0 {
		return KeyNone, false
	}
	switch utf16.Encode([]rune{r})[0] {
	case unicodeF21:
		return KeyF21, true
	case unicodeF22:
		return KeyF22, true
	case unicodeF23:
		return KeyF23, true
	case unicodeF24:
		return KeyF24, true
	}
	return KeyNone, false
}

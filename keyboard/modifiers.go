package keyboard

import (
	"fmt"
	"strings"
)

// Modifiers is the ambient modifier state of the whole keyboard. It is not
// tied to a key: left and right shift both set ModShift.
type Modifiers uint8

var modifierNames = [...]struct {
	mod  Modifiers
	name string
}{
	{ModShift, "shift"},
	{ModCtrl, "ctrl"},
	{ModAlt, "alt"},
	{ModLogo, "logo"},
}

// Contains reports whether every flag of o is set in m.
func (m Modifiers) Contains(o Modifiers) bool {
	return m&o == o
}

// Union returns the flags set in either m or o.
func (m Modifiers) Union(o Modifiers) Modifiers {
	return m | o
}

// Shift reports whether ModShift is set.
func (m Modifiers) Shift() bool { return m.Contains(ModShift) }

// Ctrl reports whether ModCtrl is set.
func (m Modifiers) Ctrl() bool { return m.Contains(ModCtrl) }

// Alt reports whether ModAlt is set.
func (m Modifiers) Alt() bool { return m.Contains(ModAlt) }

// Logo reports whether ModLogo is set.
func (m Modifiers) Logo() bool { return m.Contains(ModLogo) }

// String renders the set flags joined by '|', or "none".
func (m Modifiers) String() string {
	if m == 0 {
		return "none"
	}
	var parts []string
	for _, n := range modifierNames {
		if m.Contains(n.mod) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// ParseModifiers parses a '|' or '+' separated list such as "shift|ctrl".
// "none" and the empty string yield no flags.
func ParseModifiers(s string) (Modifiers, error) {
	var m Modifiers
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return r == '|' || r == '+' || r == ',' || r == ' '
	})
	for _, f := range fields {
		if f == "none" {
			continue
		}
		found := false
		for _, n := range modifierNames {
			if f == n.name {
				m |= n.mod
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown modifier %q", f)
		}
	}
	return m, nil
}

// MarshalText implements encoding.TextMarshaler.
func (m Modifiers) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Modifiers) UnmarshalText(text []byte) error {
	v, err := ParseModifiers(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

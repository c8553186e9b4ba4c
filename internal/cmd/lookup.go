package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Alia5/keynorm/keyboard"
)

// Scancode looks up hardware scancodes.
type Scancode struct {
	Codes []string `arg:"" name:"code" help:"Scancode, decimal or 0x-prefixed hex"`
}

// Run is called by Kong when the scancode command is executed.
func (c *Scancode) Run(out *Output) error {
	for _, s := range c.Codes {
		code, err := strconv.ParseUint(s, 0, 16)
		if err != nil {
			return fmt.Errorf("invalid scancode %q: %w", s, err)
		}
		label := fmt.Sprintf("0x%02x", code)
		if k, ok := keyboard.ScancodeToKey(uint16(code)); ok {
			out.Resolved(label, k.String())
		} else {
			out.Missing(label)
		}
	}
	return nil
}

// Char resolves typed characters to virtual keys.
type Char struct {
	Text []string `arg:"" help:"Characters to resolve; every rune is looked up"`
}

// Run is called by Kong when the char command is executed.
func (c *Char) Run(out *Output) error {
	for _, s := range c.Text {
		for _, r := range s {
			label := strconv.QuoteRune(r)
			if k, ok := keyboard.CharToKey(r); ok {
				out.Resolved(label, k.String())
			} else {
				out.Missing(label)
			}
		}
	}
	return nil
}

// Key shows the glyph a virtual key types.
type Key struct {
	Names []string `arg:"" name:"key" help:"Virtual key names, e.g. Key1, Semicolon"`
	Shift bool     `help:"Apply the shift modifier"`
}

// Run is called by Kong when the key command is executed.
func (c *Key) Run(out *Output) error {
	var mods keyboard.Modifiers
	if c.Shift {
		mods = keyboard.ModShift
	}
	for _, name := range c.Names {
		k, err := keyboard.ParseVirtualKey(name)
		if err != nil {
			return err
		}
		label := k.String()
		if code, ok := keyboard.ScancodeFor(k); ok {
			label = fmt.Sprintf("%s (scancode 0x%02x)", label, code)
		}
		if r, ok := keyboard.KeyToChar(k, mods); ok {
			out.Resolved(label, strconv.QuoteRune(r))
		} else {
			out.Missing(label)
		}
	}
	return nil
}

// FnKey decodes AppKit function-key code points.
type FnKey struct {
	Units []string `arg:"" name:"unit" help:"UTF-16 code unit in hex, e.g. f718"`
}

// Run is called by Kong when the fnkey command is executed.
func (c *FnKey) Run(out *Output) error {
	for _, s := range c.Units {
		u, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(s), "0x"), 16, 16)
		if err != nil {
			return fmt.Errorf("invalid code unit %q: %w", s, err)
		}
		label := fmt.Sprintf("U+%04X", u)
		if k, ok := keyboard.DecodeFunctionKey(string(rune(u))); ok {
			out.Resolved(label, k.String())
		} else {
			out.Missing(label)
		}
	}
	return nil
}

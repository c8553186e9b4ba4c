package cmd

import (
	"fmt"
	"strconv"

	"github.com/Alia5/keynorm/keyboard"
)

// Table dumps the scancode and character tables.
type Table struct {
	Format string `help:"Output format" enum:"text,json,yaml,toml" default:"text" env:"KEYNORM_TABLE_FORMAT"`
	Only   string `help:"Restrict output to one table" enum:"all,scancodes,characters" default:"all"`
}

type glyphs struct {
	Plain   string `json:"plain" yaml:"plain" toml:"plain"`
	Shifted string `json:"shifted" yaml:"shifted" toml:"shifted"`
}

// Run is called by Kong when the table command is executed.
func (c *Table) Run(out *Output) error {
	if c.Format == "text" {
		c.printText(out)
		return nil
	}
	return out.Encode(c.Format, c.build())
}

func (c *Table) build() map[string]any {
	root := map[string]any{}
	if c.Only != "characters" {
		scancodes := map[string]string{}
		for code := 0; code <= 0xFF; code++ {
			if k, ok := keyboard.ScancodeToKey(uint16(code)); ok {
				scancodes[fmt.Sprintf("0x%02x", code)] = k.String()
			}
		}
		root["scancodes"] = scancodes
	}
	if c.Only != "scancodes" {
		chars := map[string]glyphs{}
		for _, k := range keyboard.AllKeys() {
			plain, ok := keyboard.KeyToChar(k, 0)
			if !ok {
				continue
			}
			shifted, _ := keyboard.KeyToChar(k, keyboard.ModShift)
			chars[k.String()] = glyphs{Plain: string(plain), Shifted: string(shifted)}
		}
		root["characters"] = chars
	}
	return root
}

func (c *Table) printText(out *Output) {
	if c.Only != "characters" {
		out.Line("scancodes:")
		for code := 0; code <= 0xFF; code++ {
			if k, ok := keyboard.ScancodeToKey(uint16(code)); ok {
				out.Line("  0x%02x  %s", code, k)
			}
		}
	}
	if c.Only != "scancodes" {
		out.Line("characters:")
		for _, k := range keyboard.AllKeys() {
			plain, ok := keyboard.KeyToChar(k, 0)
			if !ok {
				continue
			}
			shifted, _ := keyboard.KeyToChar(k, keyboard.ModShift)
			out.Line("  %-12s %s %s", k, strconv.QuoteRune(plain), strconv.QuoteRune(shifted))
		}
	}
}

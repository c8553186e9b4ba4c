package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mgutz/ansi"
	toml "github.com/pelletier/go-toml"
	"golang.org/x/term"
	yaml "gopkg.in/yaml.v3"
)

// Output writes command results to stdout. Colour is only used when stdout
// is a terminal.
type Output struct {
	w     io.Writer
	color bool
}

// NewOutput wraps f, enabling colour if f is a terminal.
func NewOutput(f *os.File) *Output {
	return &Output{w: f, color: term.IsTerminal(int(f.Fd()))}
}

// NewPlainOutput wraps w without colour.
func NewPlainOutput(w io.Writer) *Output {
	return &Output{w: w}
}

func (o *Output) paint(s, style string) string {
	if !o.color {
		return s
	}
	return ansi.Color(s, style)
}

// Resolved prints "input -> value".
func (o *Output) Resolved(input, value string) {
	fmt.Fprintf(o.w, "%s -> %s\n", input, o.paint(value, "green"))
}

// Missing prints "input -> no mapping".
func (o *Output) Missing(input string) {
	fmt.Fprintf(o.w, "%s -> %s\n", input, o.paint("no mapping", "yellow"))
}

// Line prints a plain line.
func (o *Output) Line(format string, args ...any) {
	fmt.Fprintf(o.w, format+"\n", args...)
}

// Encode writes v as json, yaml or toml.
func (o *Output) Encode(format string, v any) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case "json":
		data, err = json.MarshalIndent(v, "", "  ")
		data = append(data, '\n')
	case "yaml":
		data, err = yaml.Marshal(v)
	case "toml":
		data, err = toml.Marshal(v)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}
	_, err = o.w.Write(data)
	return err
}

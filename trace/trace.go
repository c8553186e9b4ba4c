// Package trace reads recorded AppKit keyboard event traces and replays them
// through the keyboard normalization layer.
package trace

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Alia5/keynorm/keyboard"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

var (
	ErrUnknownKind         = errors.New("unknown event kind")
	ErrUnsupportedFormat   = errors.New("unsupported trace format")
	ErrInvalidModifierFlag = errors.New("invalid modifier flag")
)

// Kind is the AppKit event type of a record.
type Kind string

const (
	KindKeyDown      Kind = "keyDown"
	KindKeyUp        Kind = "keyUp"
	KindFlagsChanged Kind = "flagsChanged"
)

// Format is a trace file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Record is one native keyboard event as written in a trace file.
// Flags lists modifier flag names ("shift", "command", ...) or holds the raw
// modifier flags number.
type Record struct {
	Kind                        Kind     `json:"kind" yaml:"kind" toml:"kind"`
	KeyCode                     uint16   `json:"keyCode" yaml:"keyCode" toml:"keyCode"`
	Flags                       FlagList `json:"flags,omitempty" yaml:"flags,omitempty" toml:"flags,omitempty"`
	Characters                  string   `json:"characters,omitempty" yaml:"characters,omitempty" toml:"characters,omitempty"`
	CharactersIgnoringModifiers string   `json:"charactersIgnoringModifiers,omitempty" yaml:"charactersIgnoringModifiers,omitempty" toml:"charactersIgnoringModifiers,omitempty"`
}

// Trace is a named sequence of records.
type Trace struct {
	Name   string   `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Events []Record `json:"events" yaml:"events" toml:"events"`
}

// Event is a decoded Record. It implements keyboard.TextEvent.
type Event struct {
	Kind     Kind
	Code     uint16
	Flags    keyboard.NativeFlags
	Chars    string
	CharsRaw string
}

func (e Event) KeyCode() uint16                     { return e.Code }
func (e Event) ModifierFlags() keyboard.NativeFlags { return e.Flags }
func (e Event) Characters() string                  { return e.Chars }
func (e Event) CharactersIgnoringModifiers() string { return e.CharsRaw }

// MarshalBinary encodes the event for raw logging.
//
// Wire format:
//
//	Byte 0:    Kind (0 keyDown, 1 keyUp, 2 flagsChanged)
//	Bytes 1-2: Key code (little endian)
//	Bytes 3-6: Device independent modifier flags >> 16 (little endian)
func (e Event) MarshalBinary() ([]byte, error) {
	var kind byte
	switch e.Kind {
	case KindKeyDown:
		kind = 0
	case KindKeyUp:
		kind = 1
	case KindFlagsChanged:
		kind = 2
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, e.Kind)
	}
	b := make([]byte, 7)
	b[0] = kind
	binary.LittleEndian.PutUint16(b[1:3], e.Code)
	binary.LittleEndian.PutUint32(b[3:7], uint32((e.Flags&keyboard.FlagDeviceIndependentMask)>>16))
	return b, nil
}

// Event validates the record and converts it.
func (r Record) Event() (Event, error) {
	switch r.Kind {
	case KindKeyDown, KindKeyUp, KindFlagsChanged:
	default:
		return Event{}, fmt.Errorf("%w: %q", ErrUnknownKind, r.Kind)
	}

	flags, err := r.Flags.Native()
	if err != nil {
		return Event{}, err
	}

	return Event{
		Kind:     r.Kind,
		Code:     r.KeyCode,
		Flags:    flags,
		Chars:    r.Characters,
		CharsRaw: r.CharactersIgnoringModifiers,
	}, nil
}

// FormatFromPath picks a format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Decode reads a whole trace in the given format.
func Decode(r io.Reader, format Format) (*Trace, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read trace: %w", err)
	}

	var t Trace
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&t)
	case FormatYAML:
		err = yaml.Unmarshal(data, &t)
	case FormatTOML:
		err = toml.Unmarshal(data, &t)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s trace: %w", format, err)
	}
	return &t, nil
}

// Load opens path and decodes it according to its extension.
func Load(path string) (*Trace, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open trace: %w", err)
	}
	defer f.Close()

	t, err := Decode(f, format)
	if err != nil {
		return nil, err
	}
	if t.Name == "" {
		t.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return t, nil
}

package trace

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/Alia5/keynorm/keyboard"

	yaml "gopkg.in/yaml.v3"
)

// FlagList holds the modifier flags of a record. Trace files may spell them
// as a list of names (["shift", "command"]) or as the raw
// NSEventModifierFlags number (131072); a number is kept as a single entry.
type FlagList []string

// Native resolves every entry to native flags.
func (l FlagList) Native() (keyboard.NativeFlags, error) {
	var flags keyboard.NativeFlags
	for _, name := range l {
		f, err := keyboard.ParseNativeFlag(name)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInvalidModifierFlag, err)
		}
		flags |= f
	}
	return flags, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *FlagList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] != '[' && data[0] != 'n' {
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidModifierFlag, data)
		}
		*l = FlagList{n.String()}
		return nil
	}
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	*l = names
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *FlagList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		if node.Tag == "!!null" {
			*l = nil
			return nil
		}
		*l = FlagList{node.Value}
		return nil
	}
	var names []string
	if err := node.Decode(&names); err != nil {
		return err
	}
	*l = names
	return nil
}

// UnmarshalTOML implements toml.Unmarshaler.
func (l *FlagList) UnmarshalTOML(v any) error {
	switch t := v.(type) {
	case int64:
		*l = FlagList{strconv.FormatInt(t, 10)}
	case []any:
		names := make(FlagList, 0, len(t))
		for _, e := range t {
			switch s := e.(type) {
			case string:
				names = append(names, s)
			case int64:
				names = append(names, strconv.FormatInt(s, 10))
			default:
				return fmt.Errorf("%w: %v", ErrInvalidModifierFlag, e)
			}
		}
		*l = names
	default:
		return fmt.Errorf("%w: %v", ErrInvalidModifierFlag, v)
	}
	return nil
}

package trace_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Alia5/keynorm/internal/log"
	"github.com/Alia5/keynorm/keyboard"
	"github.com/Alia5/keynorm/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoadFormats(t *testing.T) {
	for _, name := range []string{"shift_a.yaml", "shift_a.json", "shift_a.toml"} {
		t.Run(name, func(t *testing.T) {
			tr, err := trace.Load(filepath.Join("testdata", name))
			require.NoError(t, err)
			assert.Equal(t, "shift-a", tr.Name)
			require.Len(t, tr.Events, 4)

			assert.Equal(t, trace.Record{
				Kind:    trace.KindFlagsChanged,
				KeyCode: 0x38,
				Flags:   []string{"shift"},
			}, tr.Events[0])
			assert.Equal(t, trace.KindKeyDown, tr.Events[1].Kind)
			assert.Equal(t, "A", tr.Events[1].Characters)
			assert.Equal(t, uint16(0x38), tr.Events[3].KeyCode)
			assert.Empty(t, tr.Events[3].Flags)
		})
	}
}

func TestLoadNameFromPath(t *testing.T) {
	tr, err := trace.Load(filepath.Join("testdata", "azerty_cmd.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "azerty_cmd", tr.Name)
	assert.Equal(t, "\uf718", tr.Events[2].Characters)
}

func TestLoadErrors(t *testing.T) {
	_, err := trace.Load("trace.xml")
	assert.ErrorIs(t, err, trace.ErrUnsupportedFormat)

	_, err = trace.Load(filepath.Join("testdata", "missing.yaml"))
	assert.Error(t, err)

	_, err = trace.Decode(strings.NewReader(`{"events": [], "extra": 1}`), trace.FormatJSON)
	assert.Error(t, err)

	_, err = trace.Decode(strings.NewReader("events: [}"), trace.FormatYAML)
	assert.Error(t, err)

	_, err = trace.Decode(strings.NewReader(""), trace.Format("ini"))
	assert.ErrorIs(t, err, trace.ErrUnsupportedFormat)
}

func TestRecordEvent(t *testing.T) {
	ev, err := trace.Record{
		Kind:       trace.KindKeyDown,
		KeyCode:    0x12,
		Flags:      []string{"shift", "cmd", "capslock"},
		Characters: "!",
	}.Event()
	require.NoError(t, err)
	assert.Equal(t, keyboard.FlagShift|keyboard.FlagCommand|keyboard.FlagCapsLock, ev.ModifierFlags())
	assert.Equal(t, uint16(0x12), ev.KeyCode())

	b, err := ev.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x12, 0x00, 0x13, 0x00, 0x00, 0x00}, b)

	_, err = trace.Record{Kind: "mouseDown"}.Event()
	assert.ErrorIs(t, err, trace.ErrUnknownKind)

	_, err = trace.Record{Kind: trace.KindFlagsChanged, Flags: []string{"hyper"}}.Event()
	assert.ErrorIs(t, err, trace.ErrInvalidModifierFlag)
}

func TestLoadNumericFlags(t *testing.T) {
	want, err := trace.Load(filepath.Join("testdata", "shift_a.yaml"))
	require.NoError(t, err)
	wantOut, err := trace.NewReplayer(discardLogger(), nil).Replay(context.Background(), want)
	require.NoError(t, err)

	for _, name := range []string{"shift_a_mask.json", "shift_a_mask.yaml", "shift_a_mask.toml"} {
		t.Run(name, func(t *testing.T) {
			tr, err := trace.Load(filepath.Join("testdata", name))
			require.NoError(t, err)
			require.Len(t, tr.Events, 4)

			ev, err := tr.Events[0].Event()
			require.NoError(t, err)
			assert.Equal(t, keyboard.NativeFlags(0x20102), ev.ModifierFlags())

			out, err := trace.NewReplayer(discardLogger(), nil).Replay(context.Background(), tr)
			require.NoError(t, err)
			assert.Equal(t, wantOut, out)
		})
	}
}

func TestFlagListDecoding(t *testing.T) {
	type testCase struct {
		name     string
		input    string
		format   trace.Format
		expected keyboard.NativeFlags
		wantErr  bool
	}

	cases := []testCase{
		{name: "json number", input: `{"events":[{"kind":"keyDown","flags":131072}]}`, format: trace.FormatJSON, expected: keyboard.FlagShift},
		{name: "json numeric string", input: `{"events":[{"kind":"keyDown","flags":["131072"]}]}`, format: trace.FormatJSON, expected: keyboard.FlagShift},
		{name: "json names", input: `{"events":[{"kind":"keyDown","flags":["shift","fn"]}]}`, format: trace.FormatJSON, expected: keyboard.FlagShift | keyboard.FlagFunction},
		{name: "json null", input: `{"events":[{"kind":"keyDown","flags":null}]}`, format: trace.FormatJSON},
		{name: "json object", input: `{"events":[{"kind":"keyDown","flags":{"shift":true}}]}`, format: trace.FormatJSON, wantErr: true},
		{name: "yaml number", input: "events:\n  - kind: keyDown\n    flags: 1048576\n", format: trace.FormatYAML, expected: keyboard.FlagCommand},
		{name: "yaml names", input: "events:\n  - kind: keyDown\n    flags: [ctrl, opt]\n", format: trace.FormatYAML, expected: keyboard.FlagControl | keyboard.FlagOption},
		{name: "toml number", input: "[[events]]\nkind = \"keyDown\"\nflags = 262144\n", format: trace.FormatTOML, expected: keyboard.FlagControl},
		{name: "toml names", input: "[[events]]\nkind = \"keyDown\"\nflags = [\"cmd\"]\n", format: trace.FormatTOML, expected: keyboard.FlagCommand},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr, err := trace.Decode(strings.NewReader(tc.input), tc.format)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Len(t, tr.Events, 1)
			ev, err := tr.Events[0].Event()
			require.NoError(t, err)
			assert.Equal(t, tc.expected, ev.ModifierFlags())
		})
	}
}

func TestReplayShiftA(t *testing.T) {
	tr, err := trace.Load(filepath.Join("testdata", "shift_a.yaml"))
	require.NoError(t, err)

	var raw bytes.Buffer
	r := trace.NewReplayer(discardLogger(), log.NewRaw(&raw))
	out, err := r.Replay(context.Background(), tr)
	require.NoError(t, err)
	require.Len(t, out, 6)

	shift := keyboard.ModShift
	none := keyboard.Modifiers(0)

	assert.Equal(t, trace.Emission{Record: 0, Input: &keyboard.KeyboardInput{
		State: keyboard.Pressed, Scancode: 0x38, Key: keyboard.KeyLeftShift, Modifiers: keyboard.ModShift,
	}}, out[0])
	assert.Equal(t, trace.Emission{Record: 0, Modifiers: &shift}, out[1])
	assert.Equal(t, trace.Emission{Record: 1, Input: &keyboard.KeyboardInput{
		State: keyboard.Pressed, Scancode: 0x00, Key: keyboard.KeyA, Modifiers: keyboard.ModShift,
	}}, out[2])
	assert.Equal(t, trace.Emission{Record: 2, Input: &keyboard.KeyboardInput{
		State: keyboard.Released, Scancode: 0x00, Key: keyboard.KeyA, Modifiers: keyboard.ModShift,
	}}, out[3])
	assert.Equal(t, trace.Emission{Record: 3, Input: &keyboard.KeyboardInput{
		State: keyboard.Released, Scancode: 0x38, Key: keyboard.KeyLeftShift,
	}}, out[4])
	assert.Equal(t, trace.Emission{Record: 3, Modifiers: &none}, out[5])
	assert.Zero(t, r.Modifiers())

	// one NAT line per record, one OUT line per input
	lines := strings.Split(strings.TrimSpace(raw.String()), "\n")
	require.Len(t, lines, 8)
	assert.Contains(t, lines[0], " NAT 7 bytes: 02 38 00 02 00 00 00")
	assert.Contains(t, lines[1], " OUT 6 bytes: 01 38 00")
}

func TestReplayLayoutAndFunctionKeys(t *testing.T) {
	tr, err := trace.Load(filepath.Join("testdata", "azerty_cmd.yaml"))
	require.NoError(t, err)

	out, err := trace.NewReplayer(discardLogger(), nil).Replay(context.Background(), tr)
	require.NoError(t, err)
	require.Len(t, out, 4)

	assert.Equal(t, keyboard.KeyLeftLogo, out[0].Input.Key)
	require.NotNil(t, out[1].Modifiers)
	assert.Equal(t, keyboard.ModLogo, *out[1].Modifiers)
	assert.Equal(t, keyboard.KeyQ, out[2].Input.Key)
	assert.Equal(t, keyboard.KeyF21, out[3].Input.Key)
	assert.Equal(t, keyboard.ModLogo, out[3].Input.Modifiers)
}

func TestReplayRepairsStaleModifiers(t *testing.T) {
	r := trace.NewReplayer(discardLogger(), nil)
	out := r.Step(0, trace.Event{Kind: trace.KindKeyDown, Code: 0x00, Flags: keyboard.FlagControl, Chars: "a", CharsRaw: "a"})
	require.Len(t, out, 2)
	require.NotNil(t, out[0].Modifiers)
	assert.Equal(t, keyboard.ModCtrl, *out[0].Modifiers)
	assert.Equal(t, keyboard.KeyA, out[1].Input.Key)

	out = r.Step(1, trace.Event{Kind: trace.KindKeyUp, Code: 0x00, Flags: keyboard.FlagControl, Chars: "a", CharsRaw: "a"})
	require.Len(t, out, 1)
	assert.Equal(t, keyboard.Released, out[0].Input.State)
}

func TestReplayStopsOnInvalidRecord(t *testing.T) {
	tr := &trace.Trace{Events: []trace.Record{
		{Kind: trace.KindFlagsChanged, KeyCode: 0x38, Flags: []string{"shift"}},
		{Kind: "scrollWheel"},
	}}
	out, err := trace.NewReplayer(discardLogger(), nil).Replay(context.Background(), tr)
	assert.ErrorIs(t, err, trace.ErrUnknownKind)
	assert.ErrorContains(t, err, "record 1")
	assert.Len(t, out, 2)
}

func TestReplayCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tr := &trace.Trace{Events: []trace.Record{{Kind: trace.KindKeyDown}}}
	out, err := trace.NewReplayer(discardLogger(), nil).Replay(ctx, tr)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out)
}

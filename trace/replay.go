package trace

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Alia5/keynorm/internal/log"
	"github.com/Alia5/keynorm/keyboard"
)

// Emission is one thing the event loop would dispatch after a record: either
// a key transition or a new modifier snapshot.
type Emission struct {
	Record    int                     `json:"record" yaml:"record"`
	Input     *keyboard.KeyboardInput `json:"input,omitempty" yaml:"input,omitempty"`
	Modifiers *keyboard.Modifiers     `json:"modifiersChanged,omitempty" yaml:"modifiersChanged,omitempty"`
}

// Replayer plays the role of the event loop: it owns the remembered
// modifier state and feeds records through the keyboard package.
type Replayer struct {
	tracker keyboard.ModifierTracker
	logger  *slog.Logger
	raw     log.RawLogger
}

// NewReplayer returns a Replayer. A nil raw logger disables hex dumps.
func NewReplayer(logger *slog.Logger, raw log.RawLogger) *Replayer {
	if raw == nil {
		raw = log.NewRaw(nil)
	}
	return &Replayer{logger: logger, raw: raw}
}

// Modifiers returns the modifier state the replayer currently remembers.
func (r *Replayer) Modifiers() keyboard.Modifiers {
	return r.tracker.Modifiers()
}

// Step processes a single event and returns what it emitted.
func (r *Replayer) Step(index int, ev Event) []Emission {
	if b, err := ev.MarshalBinary(); err == nil {
		r.raw.Log(true, b)
	}
	r.logger.Log(context.Background(), log.LevelTrace, "native event",
		"record", index,
		"kind", ev.Kind,
		"scancode", ev.Code,
		"flags", ev.Flags.String(),
	)

	var out []Emission
	switch ev.Kind {
	case KindFlagsChanged:
		inputs, changed := r.tracker.FlagsChanged(ev)
		for _, in := range inputs {
			out = append(out, r.emitInput(index, in))
		}
		if changed {
			out = append(out, r.emitModifiers(index))
		}
	case KindKeyDown, KindKeyUp:
		// Key events carry the flags too; a tracker that missed a
		// flags-changed notification is repaired before the key goes out.
		if r.tracker.Sync(ev.Flags) {
			out = append(out, r.emitModifiers(index))
		}
		state := keyboard.Pressed
		if ev.Kind == KindKeyUp {
			state = keyboard.Released
		}
		out = append(out, r.emitInput(index, keyboard.KeyEvent(ev, state)))
	}
	return out
}

// Replay runs every record of t in order. It stops at the first invalid
// record or when ctx is done.
func (r *Replayer) Replay(ctx context.Context, t *Trace) ([]Emission, error) {
	r.logger.Debug("replaying trace", "name", t.Name, "records", len(t.Events))

	var out []Emission
	for i, rec := range t.Events {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		ev, err := rec.Event()
		if err != nil {
			return out, fmt.Errorf("record %d: %w", i, err)
		}
		out = append(out, r.Step(i, ev)...)
	}

	r.logger.Info("trace replayed", "name", t.Name, "records", len(t.Events), "emitted", len(out))
	return out, nil
}

func (r *Replayer) emitInput(index int, in keyboard.KeyboardInput) Emission {
	if b, err := in.MarshalBinary(); err == nil {
		r.raw.Log(false, b)
	}
	r.logger.Debug("keyboard input",
		"record", index,
		"key", in.Key.String(),
		"state", in.State.String(),
		"scancode", in.Scancode,
		"modifiers", in.Modifiers.String(),
	)
	return Emission{Record: index, Input: &in}
}

func (r *Replayer) emitModifiers(index int) Emission {
	m := r.tracker.Modifiers()
	r.logger.Debug("modifiers changed", "record", index, "modifiers", m.String())
	return Emission{Record: index, Modifiers: &m}
}

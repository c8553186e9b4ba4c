package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Alia5/keynorm/internal/log"
	"github.com/Alia5/keynorm/keyboard"
	"github.com/Alia5/keynorm/trace"
)

// Replay feeds a recorded trace through the normalization layer.
type Replay struct {
	File    string        `arg:"" type:"existingfile" help:"Trace file (.json, .yaml, .yml, .toml)"`
	Format  string        `help:"Output format" enum:"text,json,yaml" default:"text" env:"KEYNORM_REPLAY_FORMAT"`
	Timeout time.Duration `help:"Abort the replay after this long (0 disables)" default:"0s" env:"KEYNORM_REPLAY_TIMEOUT"`
}

// Run is called by Kong when the replay command is executed.
func (c *Replay) Run(logger *slog.Logger, rawLogger log.RawLogger, out *Output) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return c.Execute(ctx, logger, rawLogger, out)
}

// Execute replays the trace under ctx and prints the emissions.
func (c *Replay) Execute(ctx context.Context, logger *slog.Logger, rawLogger log.RawLogger, out *Output) error {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	t, err := trace.Load(c.File)
	if err != nil {
		return err
	}

	emissions, err := trace.NewReplayer(logger, rawLogger).Replay(ctx, t)
	if err != nil {
		logger.Error("replay failed", "file", c.File, "error", err)
		return fmt.Errorf("replay %s: %w", c.File, err)
	}

	if c.Format != "text" {
		return out.Encode(c.Format, map[string]any{"trace": t.Name, "emissions": emissions})
	}
	for _, e := range emissions {
		out.Line("#%-3d %s", e.Record, describe(out, e))
	}
	return nil
}

func describe(out *Output, e trace.Emission) string {
	if e.Modifiers != nil {
		return out.paint("modifiers "+e.Modifiers.String(), "cyan")
	}
	in := e.Input
	style := "red"
	if in.State == keyboard.Pressed {
		style = "green"
	}
	return fmt.Sprintf("%-12s %s scancode=0x%02x modifiers=%s",
		in.Key, out.paint(fmt.Sprintf("%-8s", in.State), style), in.Scancode, in.Modifiers)
}

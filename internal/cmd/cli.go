package cmd

import "github.com/Alia5/keynorm/internal/log"

// CLI is the root command tree.
type CLI struct {
	ConfigFile string     `name:"config" help:"Path to a json, yaml or toml configuration file" env:"KEYNORM_CONFIG" type:"path"`
	Log        log.Config `embed:"" prefix:"log."`

	Scancode Scancode      `cmd:"" help:"Map macOS hardware scancodes to virtual keys"`
	Char     Char          `cmd:"" help:"Map typed characters to virtual keys"`
	Key      Key           `cmd:"" help:"Show the character a virtual key types"`
	FnKey    FnKey         `cmd:"" name:"fnkey" help:"Decode AppKit function-key code units (F21-F24)"`
	Table    Table         `cmd:"" help:"Dump the scancode and character tables"`
	Replay   Replay        `cmd:"" help:"Replay a recorded native event trace"`
	Config   ConfigCommand `cmd:"" help:"Configuration helpers"`
}

// Package config declares the monkeys command line.
package config

import (
	"github.com/alecthomas/kong"

	"github.com/monkeys-engine/monkeys/internal/cmd"
	"github.com/monkeys-engine/monkeys/internal/codegen/common"
	"github.com/monkeys-engine/monkeys/internal/log"
)

// CLI is the root kong grammar. Flags may also come from config files and
// MONKEYS_* environment variables.
type CLI struct {
	Config  string           `help:"Path to a JSON, YAML or TOML config file" env:"MONKEYS_CONFIG" type:"path"`
	Log     log.Config       `embed:"" prefix:"log."`
	Version kong.VersionFlag `help:"Print the version and exit"`

	Generate cmd.GenerateCommand `cmd:"" help:"Generate engine code from component and event schemas"`
	Cfg      cmd.ConfigCommand   `cmd:"" name:"config" help:"Configuration file helpers"`
}

// Version is the string printed by --version.
func Version() string {
	v, err := common.GetVersion()
	if err != nil {
		return "unknown"
	}
	return v
}

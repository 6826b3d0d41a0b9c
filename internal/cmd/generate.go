package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/monkeys-engine/monkeys/internal/codegen/generator"
	"github.com/monkeys-engine/monkeys/internal/util"
)

// GenerateCommand groups the code generation subcommands.
type GenerateCommand struct {
	Components GenerateComponents `cmd:"" help:"Generate component definitions from a component schema"`
	Events     GenerateEvents     `cmd:"" help:"Generate event definitions from an event schema"`
}

// GenerateComponents compiles a component schema into one output mode.
type GenerateComponents struct {
	Build       string `arg:"" name:"build" help:"What to generate: lua definitions, C++ header (hpp) or C++ registration source (cpp)" enum:"lua,hpp,cpp"`
	Source      string `arg:"" name:"source" help:"Component schema file (.toml, .yaml)" type:"path"`
	Destination string `arg:"" name:"destination" help:"Output directory" type:"path"`
}

// Run is called by Kong when the generate components command is executed.
func (c *GenerateComponents) Run(logger *slog.Logger) error {
	gen := generator.New(c.Destination, logger)
	paths, err := gen.GenerateComponents(c.Build, c.Source)
	if err != nil {
		return err
	}
	printOutputs(os.Stdout, paths)
	return nil
}

// GenerateEvents compiles an event schema into the selected backends.
type GenerateEvents struct {
	Source      string `arg:"" name:"source" help:"Event schema file (.toml, .yaml)" type:"path"`
	Destination string `arg:"" name:"destination" help:"Output directory" type:"path"`
	Lua         bool   `help:"Generate events.lua" env:"MONKEYS_EVENTS_LUA"`
	Hpp         bool   `help:"Generate events.hpp" env:"MONKEYS_EVENTS_HPP"`
}

// Run is called by Kong when the generate events command is executed.
func (e *GenerateEvents) Run(logger *slog.Logger) error {
	if !e.Lua && !e.Hpp {
		logger.Warn("Nothing to generate, pass --lua and/or --hpp")
		return nil
	}
	gen := generator.New(e.Destination, logger)
	paths, err := gen.GenerateEvents(e.Source, e.Lua, e.Hpp)
	if err != nil {
		return err
	}
	printOutputs(os.Stdout, paths)
	return nil
}

func printOutputs(w io.Writer, paths []string) {
	out := util.NewOutput(w)
	for _, p := range paths {
		_, _ = fmt.Fprintf(w, "Outputting to: %s\n", util.Highlight(out, p))
	}
}

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tomlpretty "github.com/mbecker20/toml-pretty"
	"github.com/scott-cotton/cli"
)

const defaultMaxInline = 50

type Config struct {
	*cli.Command

	J bool `cli:"name=j aliases=json desc='read input as json'"`
	Y bool `cli:"name=y aliases=yaml desc='read input as yaml'"`

	Tab             string `cli:"name=tab desc='indentation inside multi-line arrays (default tab)'"`
	SkipEmptyString bool   `cli:"name=skip-empty-string desc='omit empty strings'"`
	KeepEmptyObject bool   `cli:"name=keep-empty-object desc='render empty objects as key = {}'"`
	Inline          bool   `cli:"name=inline desc='render every array on one line'"`
	MaxInline       int    `cli:"name=max-inline desc='character budget for inlining arrays, negative always breaks (default 50)'"`
	Verbose         bool   `cli:"name=v desc='log progress to stderr'"`
}

// MainCommand returns the tomlpretty command.
func MainCommand() *cli.Command {
	cfg := &Config{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "tomlpretty").
		WithSynopsis("tomlpretty [opts] [file|-]").
		WithDescription("tomlpretty renders a json or yaml document as flattened toml.").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *Config) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.J && cfg.Y {
		return fmt.Errorf("%w: must specify at most one of -j[son] -y[aml]", cli.ErrUsage)
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: expected at most one input file, got %d", cli.ErrUsage, len(args))
	}
	if cfg.Verbose {
		logLevel.Set(slog.LevelDebug)
	}
	name := "-"
	if len(args) == 1 {
		name = args[0]
	}
	in := cc.In
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return fmt.Errorf("error opening %s: %w", name, err)
		}
		defer f.Close()
		in = f
	}
	return cfg.convert(in, cc.Out, name)
}

func (cfg *Config) convert(r io.Reader, w io.Writer, name string) error {
	f := cfg.inputFormat(name)
	theLog.Debug("decoding input", "name", name, "format", f)
	v, err := tomlpretty.Decode(r, f)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", name, err)
	}
	opts := cfg.options()
	if obj, ok := v.(tomlpretty.Object); ok && debugEnabled() {
		theLog.Debug("flattened input", "entries", len(tomlpretty.Flatten(obj, opts.SkipEmptyObject)))
	}
	if err := tomlpretty.Write(w, v, opts); err != nil {
		return fmt.Errorf("error rendering %s: %w", name, err)
	}
	_, err = io.WriteString(w, "\n")
	return err
}

func (cfg *Config) inputFormat(name string) tomlpretty.InputFormat {
	switch {
	case cfg.J:
		return tomlpretty.JSON
	case cfg.Y:
		return tomlpretty.YAML
	case name == "-":
		return tomlpretty.YAML
	}
	return tomlpretty.InputFormatFor(name)
}

func (cfg *Config) options() tomlpretty.Options {
	opts := tomlpretty.DefaultOptions().
		WithSkipEmptyString(cfg.SkipEmptyString).
		WithSkipEmptyObject(!cfg.KeepEmptyObject).
		WithInlineArray(cfg.Inline)
	if cfg.Tab != "" {
		opts = opts.WithTab(cfg.Tab)
	}
	switch {
	case cfg.MaxInline < 0:
		opts = opts.WithMaxInlineArrayLength(-1)
	case cfg.MaxInline > 0:
		opts = opts.WithMaxInlineArrayLength(cfg.MaxInline)
	default:
		opts = opts.WithMaxInlineArrayLength(defaultMaxInline)
	}
	return opts
}

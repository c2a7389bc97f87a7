package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scott-cotton/cli"
	"github.com/mattn/go-isatty"

	"github.com/signadot/go-plate/shape"
	"github.com/signadot/go-plate/shape/gosrc"
)

type MainConfig struct {
	File    string `cli:"name=f aliases=file desc='shape description file (yaml)'"`
	Pkg     string `cli:"name=p aliases=pkg desc='go package pattern to extract shapes from'"`
	Types   string `cli:"name=T aliases=types desc='comma separated type names for -p'"`
	Color   bool   `cli:"name=color desc='force colored output'"`
	NoColor bool   `cli:"name=nocolor desc='disable colored output'"`

	Main *cli.Command
}

// load reads the shape descriptions from -f or -p, whichever was given.
func (cfg *MainConfig) load() ([]shape.TypeDef, []shape.Target, error) {
	switch {
	case cfg.File != "" && cfg.Pkg != "":
		return nil, nil, fmt.Errorf("%w: -f and -p are exclusive", cli.ErrUsage)
	case cfg.File != "":
		return shape.LoadFile(cfg.File)
	case cfg.Pkg != "":
		if cfg.Types == "" {
			return nil, nil, fmt.Errorf("%w: -p needs -T", cli.ErrUsage)
		}
		defs, err := gosrc.Load(cfg.Pkg, strings.Split(cfg.Types, ",")...)
		return defs, nil, err
	default:
		return nil, nil, fmt.Errorf("%w: one of -f, -p is required", cli.ErrUsage)
	}
}

// colorize reports whether output to w should use color.
func (cfg *MainConfig) colorize(w io.Writer) bool {
	if cfg.NoColor {
		return false
	}
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

// parseTargets reads host:to pairs from args, falling back to the targets
// declared in the description file.
func parseTargets(args []string, declared []shape.Target) ([]shape.Target, error) {
	if len(args) == 0 {
		return declared, nil
	}
	targets := make([]shape.Target, 0, len(args))
	for _, a := range args {
		host, to, ok := strings.Cut(a, ":")
		if !ok || host == "" || to == "" {
			return nil, fmt.Errorf("%w: target %q, want host:to", cli.ErrUsage, a)
		}
		targets = append(targets, shape.Target{Host: host, To: to})
	}
	return targets, nil
}

type CheckConfig struct {
	*MainConfig
	Check *cli.Command
}

type OrderConfig struct {
	*MainConfig
	Order *cli.Command
}

type FieldsConfig struct {
	*MainConfig
	All bool `cli:"name=a aliases=all desc='show skipped fields too'"`

	Fields *cli.Command
}

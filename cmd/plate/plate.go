package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/signadot/go-plate/shape"
)

func runCheck(cfg *CheckConfig, cc *cli.Context, args []string) error {
	defs, declared, err := cfg.load()
	if err != nil {
		return err
	}
	targets, err := parseTargets(args, declared)
	if err != nil {
		return err
	}
	res, err := shape.Resolve(defs, targets)
	if err != nil {
		return err
	}
	ok := stateColor(cfg.colorize(cc.Out), color.FgGreen)
	for _, t := range res.Targets() {
		fmt.Fprintf(cc.Out, "%s %s:%s\n", ok.Sprint("ok"), t.Host, t.To)
	}
	if len(res.Targets()) == 0 {
		fmt.Fprintf(cc.Out, "%s %d types\n", ok.Sprint("ok"), len(defs))
	}
	return nil
}

func runOrder(cfg *OrderConfig, cc *cli.Context, args []string) error {
	if len(args) != 0 {
		return cli.ErrUsage
	}
	defs, declared, err := cfg.load()
	if err != nil {
		return err
	}
	res, err := shape.Resolve(defs, declared)
	if err != nil {
		return err
	}
	for _, name := range res.Order() {
		fmt.Fprintln(cc.Out, name)
	}
	return nil
}

func runFields(cfg *FieldsConfig, cc *cli.Context, args []string) error {
	if len(args) == 0 {
		return cli.ErrUsage
	}
	defs, declared, err := cfg.load()
	if err != nil {
		return err
	}
	targets, err := parseTargets(args, declared)
	if err != nil {
		return err
	}
	res, err := shape.Resolve(defs, targets)
	if err != nil {
		return err
	}
	colorize := cfg.colorize(cc.Out)
	enter := stateColor(colorize, color.FgGreen)
	direct := stateColor(colorize, color.FgGreen, color.Bold)
	skip := stateColor(colorize, color.FgHiBlack)
	for _, t := range targets {
		ds, err := res.Decisions(t.Host, t.To)
		if err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "%s -> %s\n", t.Host, t.To)
		for _, d := range ds {
			switch {
			case d.Direct:
				fmt.Fprintf(cc.Out, "  %s %s.%s %s\n", direct.Sprint("target"), d.Variant, d.Field, d.Type)
			case d.Enter:
				fmt.Fprintf(cc.Out, "  %s  %s.%s %s\n", enter.Sprint("enter"), d.Variant, d.Field, d.Type)
			case cfg.All:
				fmt.Fprintf(cc.Out, "  %s   %s.%s %s\n", skip.Sprint("skip"), d.Variant, d.Field, d.Type)
			}
		}
	}
	return nil
}

func stateColor(on bool, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if on {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "plate").
		WithSynopsis("plate [opts] command [opts]").
		WithDescription("plate resolves cross-type traversal relations from shape descriptions.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return cli.ErrUsage
		}).
		WithSubs(
			CheckCommand(cfg),
			OrderCommand(cfg),
			FieldsCommand(cfg))
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("check").
		WithAliases("c").
		WithSynopsis("check [host:to ...]").
		WithDescription("check that every requested relation resolves").
		WithRun(func(cc *cli.Context, args []string) error {
			return runCheck(cfg, cc, args)
		})
	cfg.Check = cmd
	return cmd
}

func OrderCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &OrderConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("order").
		WithAliases("o", "or").
		WithSynopsis("order").
		WithDescription("print the described types, dependencies first").
		WithRun(func(cc *cli.Context, args []string) error {
			return runOrder(cfg, cc, args)
		})
	cfg.Order = cmd
	return cmd
}

func FieldsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FieldsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("fields").
		WithAliases("f", "fi").
		WithOpts(opts...).
		WithSynopsis("fields [-a] host:to [host:to ...]").
		WithDescription("show per-field walk-into decisions for relations").
		WithRun(func(cc *cli.Context, args []string) error {
			return runFields(cfg, cc, args)
		})
	cfg.Fields = cmd
	return cmd
}

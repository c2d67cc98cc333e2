package main

import (
	"fmt"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/a11ykit/introgen/cmd/introgen/internal/events"
	"github.com/a11ykit/introgen/cmd/introgen/internal/header"
)

type CLI struct {
	Version VersionCmd `cmd:"" help:"Print version information."`
	Header  header.Cmd `cmd:"" help:"Generate the C introspection definition/header file pair."`
	Events  events.Cmd `cmd:"" help:"Generate the Rust event model."`

	Verbose bool `help:"Enable debug logging." short:"v"`
}

type VersionCmd struct{}

func (c *VersionCmd) Run(*zap.Logger) error {
	fmt.Println(Version())
	return nil
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("introgen"),
		kong.Description("Generate C and Rust sources from DBus introspection XML."),
		kong.UsageOnError(),
	)

	logger := newLogger(cli.Verbose)
	defer func() { _ = logger.Sync() }()

	err := ctx.Run(logger)
	ctx.FatalIfErrorf(err)
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

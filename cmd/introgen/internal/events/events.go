// Package events implements the `introgen events` subcommand.
package events

import (
	"bytes"
	"context"
	"os"

	"go.uber.org/zap"

	"github.com/a11ykit/introgen"
	"github.com/a11ykit/introgen/sink"
)

type Cmd struct {
	Sources []string `arg:"" name:"file.xml" help:"DBus introspection XML documents, processed in order." type:"existingfile"`
	Output  string   `help:"Write to a file instead of stdout." short:"o" placeholder:"OUT.RS"`

	NoAccessors bool `help:"Skip per-field accessor functions."`
}

func (c *Cmd) Run(log *zap.Logger) error {
	cfg := introgen.Config{
		Inputs:    c.Sources,
		Accessors: !c.NoAccessors,
		Logger:    log,
	}

	ctx := context.Background()
	if c.Output == "" {
		return introgen.GenerateEvents(ctx, cfg, os.Stdout)
	}

	// Render fully before touching the output file.
	var buf bytes.Buffer
	if err := introgen.GenerateEvents(ctx, cfg, &buf); err != nil {
		return err
	}
	return sink.NewFilesystemSink().WriteFile(ctx, c.Output, buf.Bytes())
}

// Package header implements the `introgen header` subcommand.
package header

import (
	"context"

	"go.uber.org/zap"

	"github.com/a11ykit/introgen"
	"github.com/a11ykit/introgen/sink"
)

type Cmd struct {
	Sources []string `arg:"" name:"file.xml" help:"DBus introspection XML documents, processed in order." type:"existingfile"`
	COutput string   `required:"" name:"c-output" placeholder:"OUT.C" help:"Output path for the C definitions file."`
	HOutput string   `required:"" name:"h-output" placeholder:"OUT.H" help:"Output path for the declarations header."`
}

func (c *Cmd) Run(log *zap.Logger) error {
	cfg := introgen.Config{
		Inputs:    c.Sources,
		DefsPath:  c.COutput,
		DeclsPath: c.HOutput,
		Logger:    log,
	}
	return introgen.GenerateHeader(context.Background(), cfg, sink.NewFilesystemSink())
}

// Package introgen generates source text from DBus introspection XML.
//
// Two modes exist. Header mode renders a C definition/header pair in
// which every interface's introspection subtree is embedded as an
// escaped string constant. Events mode renders a Rust event model: per
// interface, an event struct per signal, a tagged enum over the signals,
// and a summary table of the protocol's positional argument slots.
//
// Both modes are pure batch transforms: parse, walk, render, write.
// Rendering completes in memory before anything is written, so a failing
// run produces no artifact at all.
package introgen

import (
	"context"
	"io"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/a11ykit/introgen/cgen"
	"github.com/a11ykit/introgen/ir"
	"github.com/a11ykit/introgen/provider"
	"github.com/a11ykit/introgen/rustgen"
	"github.com/a11ykit/introgen/sink"
)

// GenerateHeader runs header mode: it loads cfg.Inputs and writes the C
// definitions text to cfg.DefsPath and the declarations text to
// cfg.DeclsPath through out.
func GenerateHeader(ctx context.Context, cfg Config, out sink.OutputSink) error {
	if len(cfg.Inputs) == 0 {
		return errors.New("at least one input document is required")
	}
	if cfg.DefsPath == "" || cfg.DeclsPath == "" {
		return errors.New("both the definitions and declarations output paths are required")
	}

	descs, err := load(cfg)
	if err != nil {
		return err
	}

	defs, decls := cgen.Render(descs)

	if err := out.WriteFile(ctx, cfg.DefsPath, defs); err != nil {
		return errors.Wrap(err, "write definitions")
	}
	if err := out.WriteFile(ctx, cfg.DeclsPath, decls); err != nil {
		return errors.Wrap(err, "write declarations")
	}

	cfg.logger().Info("header generation complete",
		zap.Int("interfaces", len(descs)),
		zap.String("defs", cfg.DefsPath),
		zap.String("decls", cfg.DeclsPath))
	return nil
}

// GenerateEvents runs events mode: it loads cfg.Inputs and writes the
// Rust event-model text to w. Nothing reaches w unless the whole model
// rendered.
func GenerateEvents(ctx context.Context, cfg Config, w io.Writer) error {
	if len(cfg.Inputs) == 0 {
		return errors.New("at least one input document is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	descs, err := load(cfg)
	if err != nil {
		return err
	}

	text, err := rustgen.Render(descs, rustgen.Options{Accessors: cfg.Accessors})
	if err != nil {
		return err
	}

	if _, err := w.Write(text); err != nil {
		return errors.Wrap(err, "write event model")
	}

	cfg.logger().Info("event model generation complete",
		zap.Int("interfaces", len(descs)))
	return nil
}

func load(cfg Config) ([]ir.InterfaceDescriptor, error) {
	log := cfg.logger()
	descs, err := provider.Load(cfg.Inputs)
	if err != nil {
		return nil, err
	}
	for _, d := range descs {
		log.Debug("loaded interface",
			zap.String("name", d.Name),
			zap.Int("signals", len(d.Signals)),
			zap.String("source", d.SourcePath))
	}
	return descs, nil
}

package introgen

import "go.uber.org/zap"

// Config holds one generation run's inputs and options.
type Config struct {
	// Inputs are the introspection XML documents, processed in order.
	// Interfaces concatenate across documents; duplicate names are kept
	// as independent entries.
	Inputs []string

	// DefsPath and DeclsPath are the output paths for header mode: the C
	// definitions file and its extern-declarations header. Both are
	// required by GenerateHeader.
	DefsPath  string
	DeclsPath string

	// Accessors emits per-field getters in events mode.
	Accessors bool

	// Logger receives progress logging. Nil means no logging.
	Logger *zap.Logger
}

func (c Config) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

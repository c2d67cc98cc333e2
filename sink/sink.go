// Package sink provides output destinations for generated text.
//
// The generator renders everything in memory first and only then hands
// the finished artifacts to a sink, so a failed run never leaves a
// partial output file behind. The filesystem sink additionally writes
// atomically (temp file + rename) so an interrupted write cannot corrupt
// an existing artifact either.
package sink

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/cockroachdb/errors"
)

// OutputSink receives finished artifacts. Paths are caller-specified;
// implementations MUST be safe for concurrent calls.
type OutputSink interface {
	WriteFile(ctx context.Context, path string, content []byte) error
}

// FilesystemSink writes artifacts to the local filesystem at the exact
// paths it is given, creating parent directories as needed.
type FilesystemSink struct {
	// Mode is the file permission mode (default 0644).
	Mode os.FileMode
}

// NewFilesystemSink returns a FilesystemSink with default permissions.
func NewFilesystemSink() *FilesystemSink {
	return &FilesystemSink{Mode: 0644}
}

// WriteFile writes content to path atomically: the content lands in a
// temp file in the target directory, which is then renamed over path.
// Any existing file at path is replaced.
func (s *FilesystemSink) WriteFile(ctx context.Context, path string, content []byte) error {
	if path == "" {
		return errors.New("output path is empty")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "create output directory")
	}

	mode := s.Mode
	if mode == 0 {
		mode = 0644
	}

	// Temp file in the same directory so the rename stays on one filesystem.
	tmp, err := os.CreateTemp(dir, ".introgen-*.tmp")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	tmpPath := tmp.Name()

	_, writeErr := tmp.Write(content)
	closeErr := tmp.Close()
	if writeErr != nil {
		_ = os.Remove(tmpPath)
		return errors.Wrap(writeErr, "write temp file")
	}
	if closeErr != nil {
		_ = os.Remove(tmpPath)
		return errors.Wrap(closeErr, "close temp file")
	}

	if err := os.Chmod(tmpPath, mode); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Wrap(err, "set file mode")
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Wrapf(err, "rename temp file to %s", path)
	}
	return nil
}

// MemorySink stores artifacts in memory, keyed by path. Used in tests.
type MemorySink struct {
	mu    sync.RWMutex
	files map[string][]byte
}

// NewMemorySink returns an empty MemorySink.
func NewMemorySink() *MemorySink {
	return &MemorySink{files: make(map[string][]byte)}
}

// WriteFile stores a copy of content under path.
func (s *MemorySink) WriteFile(ctx context.Context, path string, content []byte) error {
	if path == "" {
		return errors.New("output path is empty")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	cp := make([]byte, len(content))
	copy(cp, content)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[path] = cp
	return nil
}

// Get returns the stored content for path, or nil if absent.
func (s *MemorySink) Get(path string) []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()

	content, ok := s.files[path]
	if !ok {
		return nil
	}
	cp := make([]byte, len(content))
	copy(cp, content)
	return cp
}

// Len returns the number of stored artifacts.
func (s *MemorySink) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.files)
}

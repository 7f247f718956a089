// Package sink materializes unpacked entries inside a destination directory.
//
// Every operation goes through an os.Root opened on the destination, so a
// path can never resolve outside of it, even through a symbolic link.
package sink

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Committer is a writer that can be committed or discarded.
type Committer interface {
	io.Writer

	// Commit finalizes the write, making content available.
	Commit() error

	// Discard aborts the write and removes the partially written file.
	Discard() error
}

// FileSink writes directories and files below a destination directory.
//
// Paths are slash-separated and relative to the destination. Callers decide
// which paths may be created; FileSink does not check for conflicts.
type FileSink struct {
	root *os.Root
}

// Open creates a FileSink rooted at destDir, which must already exist.
func Open(destDir string) (*FileSink, error) {
	root, err := os.OpenRoot(destDir)
	if err != nil {
		return nil, err
	}
	return &FileSink{root: root}, nil
}

// Mkdir creates a single directory. Its parent must already exist.
func (s *FileSink) Mkdir(path string) error {
	if err := s.root.Mkdir(filepath.FromSlash(path), dirPerm); err != nil {
		return fmt.Errorf("create directory %s: %w", path, err)
	}
	return nil
}

// Writer returns a Committer for the file at path. An existing file at path
// is truncated. The parent directory must already exist.
func (s *FileSink) Writer(path string) (Committer, error) {
	f, err := s.root.OpenFile(filepath.FromSlash(path), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return nil, fmt.Errorf("create file %s: %w", path, err)
	}
	return &fileCommitter{
		path: path,
		file: f,
		sink: s,
	}, nil
}

// Close releases the destination root.
func (s *FileSink) Close() error {
	return s.root.Close()
}

// fileCommitter writes straight to the destination file.
type fileCommitter struct {
	path string
	file *os.File
	sink *FileSink
}

// Write implements io.Writer.
func (c *fileCommitter) Write(p []byte) (int, error) {
	return c.file.Write(p)
}

// Commit closes the destination file.
func (c *fileCommitter) Commit() error {
	if err := c.file.Close(); err != nil {
		_ = c.sink.root.Remove(filepath.FromSlash(c.path)) //nolint:errcheck // best-effort cleanup
		return fmt.Errorf("close %s: %w", c.path, err)
	}
	return nil
}

// Discard closes and removes the destination file.
func (c *fileCommitter) Discard() error {
	_ = c.file.Close() //nolint:errcheck // we're cleaning up
	return c.sink.root.Remove(filepath.FromSlash(c.path))
}

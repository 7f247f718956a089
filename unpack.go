package dirzip

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/meigma/dirzip/internal/archive"
	"github.com/meigma/dirzip/internal/layout"
	"github.com/meigma/dirzip/internal/pathutil"
	"github.com/meigma/dirzip/internal/sink"
)

// Unpack extracts the archive at archivePath into a new directory destDir.
//
// destDir must not exist; Unpack creates it (along with any missing parents)
// and returns ErrDestinationExists otherwise. Entries are processed strictly
// in archive order:
//   - A directory entry creates the directory and any missing ancestors.
//   - A file entry creates missing ancestors and writes the content. A later
//     entry with the same name overwrites the earlier one.
//
// A directory required where a file was written, or a file required where a
// directory exists, aborts with a *ConflictError (ErrPathConflict). Entry
// names that are absolute or escape destDir abort with ErrInvalidEntryName.
//
// Unless UnpackWithKeepPartial is set, destDir is removed again on failure.
func Unpack(archivePath, destDir string, opts ...UnpackOption) (err error) {
	var cfg unpackConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.log()

	f, r, err := openArchive(opUnpack, archivePath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = pathErr(opUnpack, archivePath, nil, closeErr)
		}
	}()

	destDir = filepath.Clean(destDir)
	if err := createDest(destDir); err != nil {
		return err
	}
	defer func() {
		if err != nil && !cfg.keepPartial {
			_ = os.RemoveAll(destDir) //nolint:errcheck // best-effort cleanup
		}
	}()

	s, err := sink.Open(destDir)
	if err != nil {
		return pathErr(opUnpack, destDir, nil, err)
	}
	defer func() {
		if closeErr := s.Close(); closeErr != nil && err == nil {
			err = pathErr(opUnpack, destDir, nil, closeErr)
		}
	}()

	u := &unpacker{
		cfg:    &cfg,
		log:    log,
		sink:   s,
		layout: layout.New(),
		total:  r.Len(),
	}
	for {
		e, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return pathErr(opUnpack, archivePath, ErrInvalidArchive, err)
		}
		if err := u.extract(e); err != nil {
			return err
		}
	}

	log.Info("unpacked archive",
		slog.String("archive", archivePath),
		slog.String("destination", destDir),
		slog.Int("entries", u.done),
		slog.Int("paths", u.layout.Len()),
		slog.Int64("bytes", u.bytes))
	return nil
}

// openArchive opens archivePath for sequential entry reading.
func openArchive(op, archivePath string) (*os.File, *archive.Reader, error) {
	f, err := os.Open(archivePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, pathErr(op, archivePath, ErrArchiveNotFound, nil)
		}
		return nil, nil, pathErr(op, archivePath, nil, err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close() //nolint:errcheck // already failing
		return nil, nil, pathErr(op, archivePath, nil, err)
	}
	if !info.Mode().IsRegular() {
		_ = f.Close() //nolint:errcheck // already failing
		return nil, nil, pathErr(op, archivePath, ErrInvalidArchive, errors.New("not a regular file"))
	}

	r, err := archive.NewReader(f, info.Size())
	if err != nil {
		_ = f.Close() //nolint:errcheck // already failing
		return nil, nil, pathErr(op, archivePath, ErrInvalidArchive, err)
	}
	return f, r, nil
}

// createDest creates destDir exclusively, creating missing parents first.
// destDir must be clean.
func createDest(destDir string) error {
	if err := os.MkdirAll(filepath.Dir(destDir), 0o755); err != nil {
		return pathErr(opUnpack, destDir, nil, err)
	}
	if err := os.Mkdir(destDir, 0o755); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return pathErr(opUnpack, destDir, ErrDestinationExists, nil)
		}
		return pathErr(opUnpack, destDir, nil, err)
	}
	return nil
}

// unpacker holds the state of a single Unpack call.
type unpacker struct {
	cfg    *unpackConfig
	log    *slog.Logger
	sink   *sink.FileSink
	layout *layout.Layout
	total  int
	done   int
	bytes  int64
}

// extract materializes a single entry.
func (u *unpacker) extract(e *archive.Entry) error {
	path, isDir, err := pathutil.Clean(e.Name)
	if err != nil {
		return pathErr(opUnpack, e.Name, nil, err)
	}

	if isDir {
		missing, err := u.layout.PlanDir(path)
		if err != nil {
			return pathErr(opUnpack, e.Name, nil, err)
		}
		if err := u.mkdirs(missing); err != nil {
			return pathErr(opUnpack, e.Name, nil, err)
		}
		u.entryDone(e.Name, KindDir, 0)
		return nil
	}

	missing, err := u.layout.PlanFile(path)
	if err != nil {
		return pathErr(opUnpack, e.Name, nil, err)
	}
	if err := u.mkdirs(missing); err != nil {
		return pathErr(opUnpack, e.Name, nil, err)
	}
	n, err := u.writeFile(e, path)
	if err != nil {
		return pathErr(opUnpack, e.Name, nil, err)
	}
	u.layout.MarkFile(path)
	u.bytes += n
	u.entryDone(e.Name, KindFile, n)
	return nil
}

func (u *unpacker) mkdirs(paths []string) error {
	for _, p := range paths {
		if err := u.sink.Mkdir(p); err != nil {
			return err
		}
		u.layout.MarkDir(p)
	}
	return nil
}

func (u *unpacker) writeFile(e *archive.Entry, path string) (n int64, err error) {
	rc, err := e.Open()
	if err != nil {
		return 0, fmt.Errorf("open entry: %w", err)
	}
	defer func() {
		if closeErr := rc.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close entry: %w", closeErr)
		}
	}()

	w, err := u.sink.Writer(path)
	if err != nil {
		return 0, err
	}
	n, err = io.Copy(w, rc)
	if err != nil {
		_ = w.Discard() //nolint:errcheck // already failing
		return 0, fmt.Errorf("write %s: %w", path, err)
	}
	if err := w.Commit(); err != nil {
		return 0, err
	}
	return n, nil
}

func (u *unpacker) entryDone(name string, kind EntryKind, n int64) {
	u.done++
	u.log.Debug("unpacked entry",
		slog.String("path", name),
		slog.String("kind", kind.String()),
		slog.Int64("bytes", n))
	if u.cfg.progress != nil {
		u.cfg.progress(ProgressEvent{
			Stage:        StageUnpacking,
			Path:         name,
			Kind:         kind,
			Bytes:        n,
			EntriesDone:  u.done,
			EntriesTotal: u.total,
		})
	}
}

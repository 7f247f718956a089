package dirzip

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/meigma/dirzip/internal/archive"
	"github.com/meigma/dirzip/internal/pathutil"
)

var errNotDir = errors.New("not a directory")

// Pack writes every file and directory below srcDir into a new archive at
// archivePath.
//
// Entries are named by their slash-separated path relative to srcDir, and
// directory entries end in "/". Empty directories are preserved. The tree is
// walked depth-first with children in lexical order, so a directory entry
// always precedes its contents and packing the same tree twice yields the
// same entry sequence.
//
// Symbolic links are followed: a link to a file is stored as that file's
// content, a link to a directory as that directory's contents. A link that
// leads back to one of its own ancestors fails with ErrSymlinkCycle.
// Anything that is not a regular file or directory fails with
// ErrUnsupportedEntryType.
//
// archivePath must not exist; Pack creates it exclusively and returns
// ErrDestinationExists otherwise. If archivePath lies inside srcDir it is
// left out of the archive. On failure the archive is never finalized and the
// partially written file is removed.
func Pack(srcDir, archivePath string, opts ...PackOption) error {
	cfg := packConfig{compression: CompressionDeflate}
	for _, opt := range opts {
		opt(&cfg)
	}

	info, err := os.Stat(srcDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return pathErr(opPack, srcDir, ErrSourceNotFound, nil)
		}
		return pathErr(opPack, srcDir, nil, err)
	}
	if !info.IsDir() {
		return pathErr(opPack, srcDir, ErrSourceNotFound, errNotDir)
	}

	f, err := os.OpenFile(archivePath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return pathErr(opPack, archivePath, ErrDestinationExists, nil)
		}
		return pathErr(opPack, archivePath, nil, err)
	}

	p := &packer{cfg: &cfg, log: cfg.log(), archivePath: archivePath}
	if err := p.run(f, srcDir, info); err != nil {
		_ = f.Close()              //nolint:errcheck // already failing
		_ = os.Remove(archivePath) //nolint:errcheck // best-effort cleanup
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(archivePath) //nolint:errcheck // best-effort cleanup
		return pathErr(opPack, archivePath, nil, err)
	}

	p.log.Info("packed directory",
		slog.String("source", srcDir),
		slog.String("archive", archivePath),
		slog.Int("entries", p.entries),
		slog.Int64("bytes", p.bytes))
	return nil
}

// packer holds the state of a single Pack call.
type packer struct {
	cfg         *packConfig
	log         *slog.Logger
	archivePath string
	archiveInfo fs.FileInfo
	w           *archive.Writer
	entries     int
	bytes       int64
}

// run writes all entries and finalizes the archive. If it fails, the
// archive is left without a central directory.
func (p *packer) run(f *os.File, srcDir string, rootInfo fs.FileInfo) error {
	archiveInfo, err := f.Stat()
	if err != nil {
		return pathErr(opPack, p.archivePath, nil, err)
	}
	p.archiveInfo = archiveInfo

	w, err := archive.NewWriter(f, p.cfg.compression)
	if err != nil {
		return pathErr(opPack, p.archivePath, nil, err)
	}
	p.w = w

	if err := p.walkDir(srcDir, "", []fs.FileInfo{rootInfo}); err != nil {
		return err
	}

	if err := w.Close(); err != nil {
		return pathErr(opPack, p.archivePath, nil, err)
	}
	return nil
}

// walkDir writes the children of dir. rel is dir's path relative to the
// source root and ancestors holds the resolved directories from the root
// down to dir.
func (p *packer) walkDir(dir, rel string, ancestors []fs.FileInfo) error {
	children, err := os.ReadDir(dir)
	if err != nil {
		return pathErr(opPack, dir, nil, err)
	}

	for _, d := range children {
		fsPath := filepath.Join(dir, d.Name())
		relPath := filepath.Join(rel, d.Name())

		info, err := os.Stat(fsPath)
		if err != nil {
			return pathErr(opPack, fsPath, nil, err)
		}

		switch {
		case info.Mode().IsRegular():
			if os.SameFile(info, p.archiveInfo) {
				p.log.Debug("skipping output archive", slog.String("path", fsPath))
				continue
			}
			if err := p.addFile(fsPath, relPath); err != nil {
				return err
			}
		case info.IsDir():
			for _, a := range ancestors {
				if os.SameFile(a, info) {
					return pathErr(opPack, fsPath, ErrSymlinkCycle, nil)
				}
			}
			if err := p.addDir(relPath); err != nil {
				return pathErr(opPack, fsPath, nil, err)
			}
			if err := p.walkDir(fsPath, relPath, append(ancestors, info)); err != nil {
				return err
			}
		default:
			return pathErr(opPack, fsPath, ErrUnsupportedEntryType, errors.New(describeMode(info.Mode())))
		}
	}
	return nil
}

func (p *packer) addDir(rel string) error {
	name := pathutil.EntryName(rel, true)
	if err := p.w.AddDir(name); err != nil {
		return err
	}
	p.entryDone(name, KindDir, 0)
	return nil
}

func (p *packer) addFile(fsPath, rel string) error {
	src, err := os.Open(fsPath)
	if err != nil {
		return pathErr(opPack, fsPath, nil, err)
	}
	defer src.Close()

	finfo, err := src.Stat()
	if err != nil {
		return pathErr(opPack, fsPath, nil, err)
	}
	if !finfo.Mode().IsRegular() {
		return pathErr(opPack, fsPath, ErrUnsupportedEntryType, errors.New(describeMode(finfo.Mode())))
	}

	name := pathutil.EntryName(rel, false)
	n, err := p.w.AddFile(name, src)
	if err != nil {
		return pathErr(opPack, fsPath, nil, fmt.Errorf("write %s: %w", name, err))
	}
	p.bytes += n
	p.entryDone(name, KindFile, n)
	return nil
}

func (p *packer) entryDone(name string, kind EntryKind, n int64) {
	p.entries++
	p.log.Debug("packed entry",
		slog.String("path", name),
		slog.String("kind", kind.String()),
		slog.Int64("bytes", n))
	if p.cfg.progress != nil {
		p.cfg.progress(ProgressEvent{
			Stage:       StagePacking,
			Path:        name,
			Kind:        kind,
			Bytes:       n,
			EntriesDone: p.entries,
		})
	}
}

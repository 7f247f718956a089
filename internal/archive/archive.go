// Package archive adapts the zip container format to a sequential entry
// stream: entries are appended one at a time on write and yielded in the
// same order on read.
//
// Names are passed through verbatim. Callers are responsible for producing
// and validating slash-separated names; directory entries end in "/".
package archive

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zip"
	"github.com/klauspost/compress/zstd"
)

// ErrDirContent is returned when content is written to a directory entry.
var ErrDirContent = errors.New("directory entries carry no content")

// Writer appends entries to a zip container.
//
// The container is only valid once Close has returned nil. A Writer that is
// abandoned without Close leaves no central directory behind, so the output
// cannot be opened as an archive.
type Writer struct {
	zw     *zip.Writer
	method uint16
	buf    []byte
}

// NewWriter creates a Writer that stores file content with c.
func NewWriter(w io.Writer, c Compression) (*Writer, error) {
	method, err := c.method()
	if err != nil {
		return nil, err
	}
	zw := zip.NewWriter(w)
	if c == CompressionZstd {
		zw.RegisterCompressor(zstd.ZipMethodWinZip, zstd.ZipCompressor(zstd.WithEncoderConcurrency(1)))
	}
	return &Writer{
		zw:     zw,
		method: method,
		buf:    make([]byte, 32*1024),
	}, nil
}

// AddDir appends a directory entry. name must end in "/".
func (w *Writer) AddDir(name string) error {
	if !strings.HasSuffix(name, "/") {
		return fmt.Errorf("directory entry %q must end in /", name)
	}
	_, err := w.zw.CreateHeader(&zip.FileHeader{
		Name:   name,
		Method: zip.Store,
	})
	return err
}

// AddFile appends a file entry and copies r into it verbatim.
// It returns the number of uncompressed bytes written.
func (w *Writer) AddFile(name string, r io.Reader) (int64, error) {
	if strings.HasSuffix(name, "/") {
		return 0, fmt.Errorf("add %s: %w", name, ErrDirContent)
	}
	ew, err := w.zw.CreateHeader(&zip.FileHeader{
		Name:   name,
		Method: w.method,
	})
	if err != nil {
		return 0, err
	}
	return io.CopyBuffer(ew, r, w.buf)
}

// Close writes the central directory. It does not close the underlying writer.
func (w *Writer) Close() error {
	return w.zw.Close()
}

// Entry is a single archive entry yielded by Reader.Next.
type Entry struct {
	// Name is the entry name as stored, including the trailing slash of directories.
	Name string

	// IsDir reports whether this is a directory entry.
	IsDir bool

	// Size is the uncompressed content size recorded in the archive.
	Size uint64

	file *zip.File
}

// Open returns the content stream of the entry. Directory entries yield an
// empty stream. The codec verifies the CRC-32 once the stream reaches EOF.
func (e *Entry) Open() (io.ReadCloser, error) {
	if e.IsDir {
		return io.NopCloser(strings.NewReader("")), nil
	}
	return e.file.Open()
}

// Reader yields the entries of a zip container in write order.
type Reader struct {
	zr   *zip.Reader
	next int
}

// NewReader opens a zip container of the given size.
func NewReader(r io.ReaderAt, size int64) (*Reader, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, err
	}
	zr.RegisterDecompressor(zstd.ZipMethodWinZip, zstd.ZipDecompressor())
	return &Reader{zr: zr}, nil
}

// Len returns the number of entries in the container.
func (r *Reader) Len() int {
	return len(r.zr.File)
}

// Next returns the next entry, or io.EOF once all entries have been read.
func (r *Reader) Next() (*Entry, error) {
	if r.next >= len(r.zr.File) {
		return nil, io.EOF
	}
	f := r.zr.File[r.next]
	r.next++
	return &Entry{
		Name:  f.Name,
		IsDir: strings.HasSuffix(f.Name, "/"),
		Size:  f.UncompressedSize64,
		file:  f,
	}, nil
}

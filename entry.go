package dirzip

import (
	"io/fs"

	"github.com/meigma/dirzip/internal/archive"
	"github.com/meigma/dirzip/internal/layout"
)

// EntryKind distinguishes file entries from directory entries.
type EntryKind = layout.Kind

const (
	// KindFile is a regular file entry carrying content.
	KindFile = layout.KindFile

	// KindDir is a directory entry. Its name ends in "/".
	KindDir = layout.KindDir
)

// Compression identifies the method used to store file entries.
type Compression = archive.Compression

const (
	// CompressionDeflate stores files with zip Deflate. This is the default.
	CompressionDeflate = archive.CompressionDeflate

	// CompressionNone stores files uncompressed.
	CompressionNone = archive.CompressionNone

	// CompressionZstd stores files with zstd (zip method 93).
	CompressionZstd = archive.CompressionZstd
)

// ParseCompression maps "none", "deflate" or "zstd" to a Compression.
var ParseCompression = archive.ParseCompression

// EntryInfo describes a single archive entry as reported by List.
type EntryInfo struct {
	// Name is the slash-separated entry name. Directory names end in "/".
	Name string

	// Kind reports whether the entry is a file or a directory.
	Kind EntryKind

	// Size is the uncompressed content size. Directories report zero.
	Size uint64
}

// describeMode names a file type that cannot be packed.
func describeMode(mode fs.FileMode) string {
	switch {
	case mode&fs.ModeNamedPipe != 0:
		return "named pipe"
	case mode&fs.ModeSocket != 0:
		return "socket"
	case mode&fs.ModeCharDevice != 0:
		return "character device"
	case mode&fs.ModeDevice != 0:
		return "device"
	default:
		return "irregular file"
	}
}

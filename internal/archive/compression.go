package archive

import (
	"fmt"

	"github.com/klauspost/compress/zip"
	"github.com/klauspost/compress/zstd"
)

// Compression identifies the method used to store entry content.
type Compression uint8

const (
	// CompressionDeflate stores entries with the zip Deflate method.
	CompressionDeflate Compression = iota
	// CompressionNone stores entries uncompressed (zip Store).
	CompressionNone
	// CompressionZstd stores entries with zstd (zip method 93).
	CompressionZstd
)

// String returns the human-readable name of the compression method.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionDeflate:
		return "deflate"
	case CompressionZstd:
		return "zstd"
	default:
		return "unknown"
	}
}

// ParseCompression maps a name produced by String back to a Compression.
func ParseCompression(name string) (Compression, error) {
	switch name {
	case "none", "store":
		return CompressionNone, nil
	case "deflate", "":
		return CompressionDeflate, nil
	case "zstd":
		return CompressionZstd, nil
	default:
		return 0, fmt.Errorf("unknown compression %q", name)
	}
}

// method returns the zip method identifier for c.
func (c Compression) method() (uint16, error) {
	switch c {
	case CompressionNone:
		return zip.Store, nil
	case CompressionDeflate:
		return zip.Deflate, nil
	case CompressionZstd:
		return zstd.ZipMethodWinZip, nil
	default:
		return 0, fmt.Errorf("unknown compression algorithm: %d", c)
	}
}

package dirzip

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

type benchPattern string

const (
	benchPatternCompressible benchPattern = "compressible"
	benchPatternRandom       benchPattern = "random"

	benchDirCount = 16
)

var benchCases = []struct {
	name        string
	fileCount   int
	fileSize    int
	compression Compression
	pattern     benchPattern
}{
	{
		name:        "files=128/size=16k/none/compressible",
		fileCount:   128,
		fileSize:    16 << 10,
		compression: CompressionNone,
		pattern:     benchPatternCompressible,
	},
	{
		name:        "files=128/size=16k/deflate/compressible",
		fileCount:   128,
		fileSize:    16 << 10,
		compression: CompressionDeflate,
		pattern:     benchPatternCompressible,
	},
	{
		name:        "files=128/size=16k/zstd/compressible",
		fileCount:   128,
		fileSize:    16 << 10,
		compression: CompressionZstd,
		pattern:     benchPatternCompressible,
	},
	{
		name:        "files=128/size=16k/zstd/random",
		fileCount:   128,
		fileSize:    16 << 10,
		compression: CompressionZstd,
		pattern:     benchPatternRandom,
	},
	{
		name:        "files=1024/size=1k/deflate/compressible",
		fileCount:   1024,
		fileSize:    1 << 10,
		compression: CompressionDeflate,
		pattern:     benchPatternCompressible,
	},
}

func BenchmarkPack(b *testing.B) {
	for _, bc := range benchCases {
		b.Run(bc.name, func(b *testing.B) {
			src := b.TempDir()
			makeBenchFiles(b, src, bc.fileCount, bc.fileSize, bc.pattern)
			out := b.TempDir()
			b.SetBytes(int64(bc.fileCount * bc.fileSize))

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; b.Loop(); i++ {
				archivePath := filepath.Join(out, strconv.Itoa(i)+".zip")
				if err := Pack(src, archivePath, PackWithCompression(bc.compression)); err != nil {
					b.Fatal(err)
				}
				b.StopTimer()
				if err := os.Remove(archivePath); err != nil {
					b.Fatal(err)
				}
				b.StartTimer()
			}
		})
	}
}

func BenchmarkUnpack(b *testing.B) {
	for _, bc := range benchCases {
		b.Run(bc.name, func(b *testing.B) {
			src := b.TempDir()
			makeBenchFiles(b, src, bc.fileCount, bc.fileSize, bc.pattern)
			out := b.TempDir()
			archivePath := filepath.Join(out, "bench.zip")
			if err := Pack(src, archivePath, PackWithCompression(bc.compression)); err != nil {
				b.Fatal(err)
			}
			b.SetBytes(int64(bc.fileCount * bc.fileSize))

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; b.Loop(); i++ {
				dest := filepath.Join(out, strconv.Itoa(i))
				if err := Unpack(archivePath, dest); err != nil {
					b.Fatal(err)
				}
				b.StopTimer()
				if err := os.RemoveAll(dest); err != nil {
					b.Fatal(err)
				}
				b.StartTimer()
			}
		})
	}
}

func makeBenchFiles(b *testing.B, dir string, fileCount, fileSize int, pattern benchPattern) {
	b.Helper()

	rng := rand.New(rand.NewSource(1)) //nolint:gosec // reproducible benchmark content
	for i := range fileCount {
		relPath := fmt.Sprintf("dir%02d/file%05d.dat", i%benchDirCount, i)
		fullPath := filepath.Join(dir, filepath.FromSlash(relPath))
		if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
			b.Fatal(err)
		}

		content := make([]byte, fileSize)
		switch pattern {
		case benchPatternRandom:
			if _, err := rng.Read(content); err != nil {
				b.Fatal(err)
			}
		default:
			fillByte := byte('a' + (i % 26))
			for j := range content {
				content[j] = fillByte
			}
			if len(content) > 0 {
				content[0] = byte(i)
			}
		}

		if err := os.WriteFile(fullPath, content, 0o644); err != nil {
			b.Fatal(err)
		}
	}
}

package archive

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEntry struct {
	name string
	body string
}

func buildArchive(t *testing.T, c Compression, entries []testEntry) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := NewWriter(&buf, c)
	require.NoError(t, err)
	for _, e := range entries {
		if strings.HasSuffix(e.name, "/") {
			require.NoError(t, w.AddDir(e.name))
			continue
		}
		n, err := w.AddFile(e.name, strings.NewReader(e.body))
		require.NoError(t, err)
		require.Equal(t, int64(len(e.body)), n)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func readAll(t *testing.T, data []byte) []testEntry {
	t.Helper()
	r, err := NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	var got []testEntry
	for {
		e, err := r.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		rc, err := e.Open()
		require.NoError(t, err)
		body, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		assert.Equal(t, uint64(len(body)), e.Size)
		assert.Equal(t, strings.HasSuffix(e.Name, "/"), e.IsDir)
		got = append(got, testEntry{name: e.Name, body: string(body)})
	}
	return got
}

func TestWriterReaderOrder(t *testing.T) {
	entries := []testEntry{
		{name: "b/"},
		{name: "b/z.txt", body: "zzz"},
		{name: "a.txt", body: "hello"},
		{name: "b/a.txt", body: "first"},
		{name: "empty/"},
		{name: "b/a.txt", body: "second"},
	}

	for _, c := range []Compression{CompressionNone, CompressionDeflate, CompressionZstd} {
		t.Run(c.String(), func(t *testing.T) {
			data := buildArchive(t, c, entries)
			assert.Equal(t, entries, readAll(t, data))
		})
	}
}

func TestWriterBinaryContent(t *testing.T) {
	body := make([]byte, 200*1024)
	for i := range body {
		body[i] = byte(i * 7)
	}
	data := buildArchive(t, CompressionZstd, []testEntry{{name: "bin", body: string(body)}})

	got := readAll(t, data)
	require.Len(t, got, 1)
	assert.Equal(t, string(body), got[0].body)
}

func TestWriterRejectsMismatchedNames(t *testing.T) {
	w, err := NewWriter(io.Discard, CompressionDeflate)
	require.NoError(t, err)

	assert.Error(t, w.AddDir("dir"))
	_, err = w.AddFile("dir/", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrDirContent)
}

func TestUnclosedWriterIsNotAnArchive(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, CompressionDeflate)
	require.NoError(t, err)
	_, err = w.AddFile("a", strings.NewReader("content"))
	require.NoError(t, err)

	_, err = NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	assert.Error(t, err)
}

func TestReaderLen(t *testing.T) {
	data := buildArchive(t, CompressionNone, []testEntry{{name: "a/"}, {name: "a/b", body: "b"}})
	r, err := NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	assert.Equal(t, 2, r.Len())
}

func TestParseCompression(t *testing.T) {
	tests := []struct {
		in      string
		want    Compression
		wantErr bool
	}{
		{"none", CompressionNone, false},
		{"store", CompressionNone, false},
		{"deflate", CompressionDeflate, false},
		{"", CompressionDeflate, false},
		{"zstd", CompressionZstd, false},
		{"brotli", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCompression(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

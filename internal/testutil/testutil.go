// Package testutil provides helpers for building and inspecting directory
// trees and archives in tests.
package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meigma/dirzip/internal/archive"
)

// WriteTree creates files and directories below root. Keys are
// slash-separated paths; keys ending in "/" are directories, every other key
// is a file holding the mapped content. Parents are created as needed.
func WriteTree(tb testing.TB, root string, tree map[string]string) {
	tb.Helper()
	for name, content := range tree {
		path := filepath.Join(root, filepath.FromSlash(strings.TrimSuffix(name, "/")))
		if strings.HasSuffix(name, "/") {
			require.NoError(tb, os.MkdirAll(path, 0o755))
			continue
		}
		require.NoError(tb, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(tb, os.WriteFile(path, []byte(content), 0o644))
	}
}

// Snapshot returns the tree below root in the form accepted by WriteTree.
// Every directory gets a "/"-suffixed key, so empty directories show up.
// Symbolic links are not followed.
func Snapshot(tb testing.TB, root string) map[string]string {
	tb.Helper()
	tree := make(map[string]string)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		name := filepath.ToSlash(rel)
		if d.IsDir() {
			tree[name+"/"] = ""
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		tree[name] = string(data)
		return nil
	})
	require.NoError(tb, err)
	return tree
}

// Entry is an archive entry for WriteArchive. Names ending in "/" are
// directory entries and ignore Body.
type Entry struct {
	Name string
	Body string
}

// WriteArchive writes entries, in order, to a new archive at path. Unlike
// the packer it accepts any name, including duplicates and unsafe paths.
func WriteArchive(tb testing.TB, path string, entries ...Entry) {
	tb.Helper()
	f, err := os.Create(path)
	require.NoError(tb, err)
	defer f.Close()

	w, err := archive.NewWriter(f, archive.CompressionDeflate)
	require.NoError(tb, err)
	for _, e := range entries {
		if strings.HasSuffix(e.Name, "/") {
			require.NoError(tb, w.AddDir(e.Name))
			continue
		}
		_, err := w.AddFile(e.Name, strings.NewReader(e.Body))
		require.NoError(tb, err)
	}
	require.NoError(tb, w.Close())
}

// Bytes returns n deterministic bytes covering the full byte range.
func Bytes(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i*31 + i/256)
	}
	return b
}

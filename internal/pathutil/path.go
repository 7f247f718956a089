// Package pathutil provides path manipulation for slash-separated archive entry names.
package pathutil

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// ErrInvalidName is returned when an entry name is not a safe relative path.
var ErrInvalidName = errors.New("invalid entry name")

// EntryName converts an OS-specific path relative to the packed root into an
// archive entry name. Directory names get a trailing slash.
func EntryName(rel string, isDir bool) string {
	name := filepath.ToSlash(rel)
	if isDir {
		return name + "/"
	}
	return name
}

// Clean validates an archive entry name and strips the directory marker.
//
// The returned path is suitable for fs.ValidPath-based APIs such as os.Root.
// Absolute names, empty names, "." and ".." elements, backslashes and NUL
// bytes are rejected with ErrInvalidName.
func Clean(name string) (path string, isDir bool, err error) {
	isDir = strings.HasSuffix(name, "/")
	path = strings.TrimSuffix(name, "/")
	if strings.ContainsAny(path, "\\\x00") || !fs.ValidPath(path) || path == "." {
		return "", false, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return path, isDir, nil
}

// Parents returns the ancestors of a cleaned path, outermost first.
// Parents("a/b/c") returns ["a", "a/b"]; a single-element path has none.
func Parents(path string) []string {
	var parents []string
	for i := 0; i < len(path); i++ {
		if path[i] == '/' {
			parents = append(parents, path[:i])
		}
	}
	return parents
}

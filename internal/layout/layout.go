// Package layout tracks the type of every path materialized during a single
// unpack pass.
//
// Conflicts are decided from this record alone, never from the filesystem,
// so file-over-directory and directory-over-file behave the same on every
// platform.
package layout

import (
	"errors"
	"fmt"

	"github.com/meigma/dirzip/internal/pathutil"
)

// ErrConflict is returned when a path is required as one kind but already
// holds the other.
var ErrConflict = errors.New("path conflict")

// Kind is the type of a materialized path.
type Kind uint8

const (
	// KindNone means the path has not been materialized.
	KindNone Kind = iota
	// KindFile is a regular file.
	KindFile
	// KindDir is a directory.
	KindDir
)

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDir:
		return "directory"
	default:
		return "none"
	}
}

// Conflict describes a file/directory clash at a single path.
type Conflict struct {
	Path     string
	Existing Kind
	Incoming Kind
}

// Error implements error.
func (c *Conflict) Error() string {
	return fmt.Sprintf("%s at %s: %s exists, %s required", ErrConflict, c.Path, c.Existing, c.Incoming)
}

// Is reports whether target is ErrConflict.
func (c *Conflict) Is(target error) bool {
	return target == ErrConflict
}

// Layout records path kinds. The zero value is not usable; use New.
type Layout struct {
	kinds map[string]Kind
}

// New returns an empty Layout whose root already exists as a directory.
func New() *Layout {
	return &Layout{kinds: map[string]Kind{".": KindDir}}
}

// Len returns the number of recorded paths, excluding the root.
func (l *Layout) Len() int {
	return len(l.kinds) - 1
}

// PlanDir returns the directories that must be created, outermost first, so
// that path and all its ancestors exist as directories. The returned slice is
// empty if everything already exists. If any of them is recorded as a file,
// PlanDir returns a *Conflict and no plan.
func (l *Layout) PlanDir(path string) ([]string, error) {
	var missing []string
	for _, p := range append(pathutil.Parents(path), path) {
		switch l.kinds[p] {
		case KindFile:
			return nil, &Conflict{Path: p, Existing: KindFile, Incoming: KindDir}
		case KindNone:
			missing = append(missing, p)
		}
	}
	return missing, nil
}

// PlanFile returns the parent directories that must be created before a file
// can be written at path. It fails with a *Conflict if an ancestor is a file
// or path itself is a directory. A file already recorded at path is not a
// conflict: the new content replaces it.
func (l *Layout) PlanFile(path string) ([]string, error) {
	if l.kinds[path] == KindDir {
		return nil, &Conflict{Path: path, Existing: KindDir, Incoming: KindFile}
	}
	var missing []string
	for _, p := range pathutil.Parents(path) {
		switch l.kinds[p] {
		case KindFile:
			return nil, &Conflict{Path: p, Existing: KindFile, Incoming: KindDir}
		case KindNone:
			missing = append(missing, p)
		}
	}
	return missing, nil
}

// MarkDir records path as a directory.
func (l *Layout) MarkDir(path string) {
	l.kinds[path] = KindDir
}

// MarkFile records path as a file.
func (l *Layout) MarkFile(path string) {
	l.kinds[path] = KindFile
}

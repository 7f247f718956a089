package dirzip

import (
	"errors"
	"strings"

	"github.com/meigma/dirzip/internal/layout"
	"github.com/meigma/dirzip/internal/pathutil"
)

const (
	opPack   = "pack"
	opUnpack = "unpack"
	opList   = "list"
)

var (
	// ErrSourceNotFound is returned when the directory to pack does not exist
	// or is not a directory.
	ErrSourceNotFound = errors.New("source directory not found")

	// ErrDestinationExists is returned when the archive to create or the
	// directory to unpack into already exists.
	ErrDestinationExists = errors.New("destination already exists")

	// ErrUnsupportedEntryType is returned when packing meets something that is
	// neither a regular file nor a directory, such as a named pipe or socket.
	ErrUnsupportedEntryType = errors.New("unsupported entry type")

	// ErrArchiveNotFound is returned when the archive to read does not exist.
	ErrArchiveNotFound = errors.New("archive not found")

	// ErrInvalidArchive is returned when the archive cannot be decoded.
	ErrInvalidArchive = errors.New("invalid archive")

	// ErrSymlinkCycle is returned when a symbolic link leads back to one of
	// its own ancestor directories during packing.
	ErrSymlinkCycle = errors.New("symbolic link cycle")
)

// Errors re-exported from internal packages.
var (
	// ErrPathConflict is returned when unpacking requires a directory where a
	// file was written, or a file where a directory exists.
	ErrPathConflict = layout.ErrConflict

	// ErrInvalidEntryName is returned when an archive entry name is absolute,
	// escapes the destination, or is otherwise unsafe.
	ErrInvalidEntryName = pathutil.ErrInvalidName
)

// ConflictError describes a file/directory clash during unpack.
// It matches ErrPathConflict with errors.Is.
type ConflictError = layout.Conflict

// PathError records a failed operation and the path that caused it.
//
// Kind is one of the package's sentinel errors, or nil for plain I/O
// failures. errors.Is matches both Kind and anything in Err's chain.
type PathError struct {
	Op   string
	Path string
	Kind error
	Err  error
}

// Error implements error.
func (e *PathError) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	b.WriteString(" ")
	b.WriteString(e.Path)
	if e.Kind != nil {
		b.WriteString(": ")
		b.WriteString(e.Kind.Error())
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the kind and the cause.
func (e *PathError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func pathErr(op, path string, kind, err error) error {
	return &PathError{Op: op, Path: path, Kind: kind, Err: err}
}

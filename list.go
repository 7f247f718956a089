package dirzip

import (
	"errors"
	"io"
)

// List returns the entries of the archive at archivePath in archive order.
//
// Nothing is extracted. Duplicate names are reported once per occurrence,
// in the order they were written.
func List(archivePath string) (entries []EntryInfo, err error) {
	f, r, err := openArchive(opList, archivePath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = pathErr(opList, archivePath, nil, closeErr)
		}
	}()

	entries = make([]EntryInfo, 0, r.Len())
	for {
		e, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, pathErr(opList, archivePath, ErrInvalidArchive, err)
		}
		kind := KindFile
		if e.IsDir {
			kind = KindDir
		}
		entries = append(entries, EntryInfo{Name: e.Name, Kind: kind, Size: e.Size})
	}
	return entries, nil
}

// Package dirzip packs a directory tree into a single zip archive and unpacks
// such an archive back into a directory tree.
//
// # Packing
//
// Pack walks a source directory and writes one entry per file or directory,
// named by its slash-separated path relative to the source. Directory entries
// end in "/" and carry no content, so empty directories survive a round trip.
// Symbolic links are followed and their targets stored as content.
//
//	err := dirzip.Pack("./site", "site.zip",
//	    dirzip.PackWithCompression(dirzip.CompressionZstd),
//	)
//
// # Unpacking
//
// Unpack reads entries strictly in archive order and rebuilds the tree in a
// fresh directory. Missing parent directories are created on demand, a later
// file entry with the same name replaces an earlier one, and a clash between
// a file and a directory at one path fails with a *ConflictError.
//
//	err := dirzip.Unpack("site.zip", "./restored")
//	var conflict *dirzip.ConflictError
//	if errors.As(err, &conflict) {
//	    fmt.Println(conflict.Path, conflict.Existing, conflict.Incoming)
//	}
//
// # Errors
//
// Every failure is a *PathError naming the operation and the offending path.
// Use errors.Is with ErrSourceNotFound, ErrDestinationExists,
// ErrUnsupportedEntryType, ErrArchiveNotFound, ErrPathConflict and the other
// sentinel errors to classify it.
//
// Both operations are exclusive: neither overwrites an existing archive or
// directory.
package dirzip

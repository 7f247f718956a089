package dirzip

// ProgressEvent reports an entry that has just been written to the archive
// or materialized on disk.
type ProgressEvent struct {
	// Stage identifies the operation.
	Stage ProgressStage

	// Path is the entry name, slash-separated.
	Path string

	// Kind is the kind of the entry.
	Kind EntryKind

	// Bytes is the content size of the entry. Directories report zero.
	Bytes int64

	// EntriesDone is the number of entries processed so far, including this one.
	EntriesDone int

	// EntriesTotal is the total number of entries.
	// Zero indicates the total is unknown (e.g., while packing).
	EntriesTotal int
}

// ProgressStage identifies the current operation.
type ProgressStage uint8

const (
	// StagePacking indicates entries are being written to an archive.
	StagePacking ProgressStage = iota

	// StageUnpacking indicates entries are being extracted.
	StageUnpacking
)

// String returns the string representation of the stage.
func (s ProgressStage) String() string {
	switch s {
	case StagePacking:
		return "packing"
	case StageUnpacking:
		return "unpacking"
	default:
		return "unknown"
	}
}

// ProgressFunc receives progress updates. It is called synchronously from
// the goroutine running the operation.
type ProgressFunc func(ProgressEvent)

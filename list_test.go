package dirzip

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/dirzip/internal/testutil"
)

func TestListReportsEveryEntryInOrder(t *testing.T) {
	archivePath := filepath.Join(t.TempDir(), "a.zip")
	testutil.WriteArchive(t, archivePath,
		entry{Name: "b/"},
		entry{Name: "b/f", Body: "first"},
		entry{Name: "a", Body: "xyz"},
		entry{Name: "b/f", Body: "2nd"},
	)

	entries, err := List(archivePath)
	require.NoError(t, err)
	assert.Equal(t, []EntryInfo{
		{Name: "b/", Kind: KindDir},
		{Name: "b/f", Kind: KindFile, Size: 5},
		{Name: "a", Kind: KindFile, Size: 3},
		{Name: "b/f", Kind: KindFile, Size: 3},
	}, entries)
}

func TestListErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := List(filepath.Join(dir, "missing.zip"))
	assert.ErrorIs(t, err, ErrArchiveNotFound)

	_, err = List(dir)
	assert.ErrorIs(t, err, ErrInvalidArchive)
}

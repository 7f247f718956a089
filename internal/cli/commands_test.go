package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/dirzip"
	"github.com/meigma/dirzip/internal/testutil"
)

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := NewRootCmd("test")
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestPackUnpackCommands(t *testing.T) {
	work := t.TempDir()
	src := filepath.Join(work, "src")
	tree := map[string]string{"a.txt": "a", "sub/b.txt": "bb", "empty/": ""}
	testutil.WriteTree(t, src, tree)
	archivePath := filepath.Join(work, "out.zip")
	dest := filepath.Join(work, "dest")

	_, _, err := run(t, "pack", src, archivePath, "--compression", "zstd")
	require.NoError(t, err)

	_, _, err = run(t, "unpack", archivePath, dest)
	require.NoError(t, err)

	assert.Equal(t, testutil.Snapshot(t, src), testutil.Snapshot(t, dest))
}

func TestListCommand(t *testing.T) {
	archivePath := filepath.Join(t.TempDir(), "a.zip")
	testutil.WriteArchive(t, archivePath,
		testutil.Entry{Name: "d/"},
		testutil.Entry{Name: "d/f", Body: "hello"},
	)

	stdout, _, err := run(t, "list", archivePath)
	require.NoError(t, err)
	assert.Equal(t, ""+
		"directory          0  d/\n"+
		"file               5  d/f\n", stdout)
}

func TestVerboseLogsEntries(t *testing.T) {
	work := t.TempDir()
	src := filepath.Join(work, "src")
	testutil.WriteTree(t, src, map[string]string{"only.txt": "x"})

	_, stderr, err := run(t, "pack", "-v", src, filepath.Join(work, "out.zip"))
	require.NoError(t, err)
	assert.Contains(t, stderr, "packed entry")
	assert.Contains(t, stderr, "only.txt")
}

func TestCompressionFromEnvironment(t *testing.T) {
	t.Setenv("DIRZIP_COMPRESSION", "brotli")
	work := t.TempDir()
	src := filepath.Join(work, "src")
	testutil.WriteTree(t, src, map[string]string{"f": "x"})

	_, _, err := run(t, "pack", src, filepath.Join(work, "out.zip"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown compression "brotli"`)
}

func TestCommandErrors(t *testing.T) {
	work := t.TempDir()
	src := filepath.Join(work, "src")
	testutil.WriteTree(t, src, map[string]string{"f": "x"})
	archivePath := filepath.Join(work, "out.zip")
	_, _, err := run(t, "pack", src, archivePath)
	require.NoError(t, err)

	_, _, err = run(t, "pack", src, archivePath)
	assert.ErrorIs(t, err, dirzip.ErrDestinationExists)

	_, _, err = run(t, "unpack", archivePath, src)
	assert.ErrorIs(t, err, dirzip.ErrDestinationExists)

	_, _, err = run(t, "list", filepath.Join(work, "missing.zip"))
	assert.ErrorIs(t, err, dirzip.ErrArchiveNotFound)

	_, _, err = run(t, "pack", src)
	assert.Error(t, err)
}

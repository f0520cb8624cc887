package dbimport

import (
	"errors"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchiveName(t *testing.T) {
	ts := time.Date(2025, 10, 13, 10, 25, 0, 0, time.Local)
	tests := []struct {
		path string
		want string
	}{
		{"db.json", "db_20251013_102500.json"},
		{"/work/db.json", "/work/db_20251013_102500.json"},
		{"out/data", "out/data_20251013_102500"},
		{"archive.tar.gz", "archive.tar_20251013_102500.gz"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ArchiveName(tt.path, ts), "ArchiveName(%q)", tt.path)
	}
}

func TestArchiveNothingToDo(t *testing.T) {
	fsys := afero.NewMemMapFs()

	target, err := Archive(fsys, "/work/db.json", testNow)
	require.NoError(t, err)
	assert.Empty(t, target)
}

func TestArchiveRenamesExistingFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	previous := []byte(`[{"id": 0}]`)
	require.NoError(t, afero.WriteFile(fsys, "/work/db.json", previous, 0644))

	target, err := Archive(fsys, "/work/db.json", testNow)
	require.NoError(t, err)
	assert.Equal(t, "/work/db_20251013_102500.json", target)

	exists, err := afero.Exists(fsys, "/work/db.json")
	require.NoError(t, err)
	assert.False(t, exists, "original path should be free after archiving")

	archived, err := afero.ReadFile(fsys, target)
	require.NoError(t, err)
	assert.Equal(t, previous, archived, "archived content must be byte-identical")
}

func TestArchiveRenameFailure(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(base, "/work/db.json", []byte("[]"), 0644))
	fsys := afero.NewReadOnlyFs(base)

	target, err := Archive(fsys, "/work/db.json", testNow)
	require.Error(t, err)
	assert.Empty(t, target)
	assert.True(t, errors.Is(err, ErrArchive))

	var archiveErr *ArchiveError
	require.True(t, errors.As(err, &archiveErr))
	assert.Equal(t, "/work/db.json", archiveErr.Path)
	assert.Equal(t, "/work/db_20251013_102500.json", archiveErr.Target)
	assert.Contains(t, err.Error(), "renaming existing file /work/db.json")

	exists, err := afero.Exists(base, "/work/db.json")
	require.NoError(t, err)
	assert.True(t, exists)
}

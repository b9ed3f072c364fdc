// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package lfs

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFileSystemReadDir(t *testing.T) {
	ctx := context.Background()
	lfs := New(afero.NewMemMapFs())

	require.NoError(t, lfs.MkdirAll(ctx, "/saves/deep", 0755))
	require.NoError(t, afero.WriteFile(lfs.fs, "/saves/a.dat", []byte("a"), 0644))
	require.NoError(t, afero.WriteFile(lfs.fs, "/saves/deep/b.dat", []byte("bb"), 0644))

	directoryEntries, err := lfs.ReadDir(ctx, "/saves")
	require.NoError(t, err)
	require.Len(t, directoryEntries, 2)

	names := []string{}
	for _, de := range directoryEntries {
		names = append(names, de.Name())
	}
	assert.Contains(t, names, "a.dat")
	assert.Contains(t, names, "deep")
}

func TestLocalFileSystemStat(t *testing.T) {
	ctx := context.Background()
	lfs := New(afero.NewMemMapFs())

	require.NoError(t, afero.WriteFile(lfs.fs, "/saves/a.dat", []byte("abc"), 0644))

	fi, err := lfs.Stat(ctx, "/saves/a.dat")
	require.NoError(t, err)
	assert.Equal(t, "a.dat", fi.Name())
	assert.Equal(t, int64(3), fi.Size())
	assert.False(t, fi.IsDir())

	_, err = lfs.Stat(ctx, "/saves/missing.dat")
	require.Error(t, err)
	assert.True(t, lfs.IsNotExist(err))
}

func TestLocalFileSystemChtimes(t *testing.T) {
	ctx := context.Background()
	lfs := New(afero.NewMemMapFs())

	require.NoError(t, afero.WriteFile(lfs.fs, "/saves/a.dat", []byte("abc"), 0644))

	mtime := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, lfs.Chtimes(ctx, "/saves/a.dat", time.Now(), mtime))

	fi, err := lfs.Stat(ctx, "/saves/a.dat")
	require.NoError(t, err)
	assert.True(t, fi.ModTime().Equal(mtime))
}

func TestLocalFileSystemRename(t *testing.T) {
	ctx := context.Background()
	lfs := New(afero.NewMemMapFs())

	require.NoError(t, afero.WriteFile(lfs.fs, "/saves/a.dat.partial", []byte("abc"), 0644))
	require.NoError(t, lfs.Rename(ctx, "/saves/a.dat.partial", "/saves/a.dat"))

	_, err := lfs.Stat(ctx, "/saves/a.dat")
	assert.NoError(t, err)

	_, err = lfs.Stat(ctx, "/saves/a.dat.partial")
	assert.True(t, lfs.IsNotExist(err))
}

func TestLocalFileSystemOpenFile(t *testing.T) {
	ctx := context.Background()
	lfs := New(afero.NewMemMapFs())

	require.NoError(t, lfs.MkdirAll(ctx, "/saves", 0755))

	f, err := lfs.OpenFile(ctx, "/saves/a.dat", os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	require.NoError(t, err)

	_, err = f.Write([]byte("abc"))
	require.NoError(t, err)
	require.NoError(t, f.Sync())
	require.NoError(t, f.Close())

	b, err := afero.ReadFile(lfs.fs, "/saves/a.dat")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), b)
}

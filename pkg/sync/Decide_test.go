// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package sync

import (
	"context"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decksync/decksync/pkg/fs"
	"github.com/decksync/decksync/pkg/lfs"
)

func newDecideFixture(t *testing.T, localTime time.Time, remoteTime time.Time) *DecideInput {
	t.Helper()

	localAfs := afero.NewMemMapFs()
	remoteAfs := afero.NewMemMapFs()

	require.NoError(t, afero.WriteFile(localAfs, "/local/save.dat", []byte("local"), 0644))
	require.NoError(t, afero.WriteFile(remoteAfs, "/remote/save.dat", []byte("remote"), 0644))
	require.NoError(t, localAfs.Chtimes("/local/save.dat", time.Now(), localTime))
	require.NoError(t, remoteAfs.Chtimes("/remote/save.dat", time.Now(), remoteTime))

	return &DecideInput{
		LocalFileSystem:  lfs.New(localAfs),
		RemoteFileSystem: lfs.New(remoteAfs),
		Pair: Pair{
			LocalPath:  "/local/save.dat",
			RemotePath: "/remote/save.dat",
		},
		Precision: time.Second,
	}
}

func TestDecide(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

	decision, err := Decide(ctx, newDecideFixture(t, base, base))
	require.NoError(t, err)
	assert.Equal(t, UpToDate, decision)

	decision, err = Decide(ctx, newDecideFixture(t, base.Add(time.Minute), base))
	require.NoError(t, err)
	assert.Equal(t, PushToRemote, decision)

	decision, err = Decide(ctx, newDecideFixture(t, base, base.Add(time.Minute)))
	require.NoError(t, err)
	assert.Equal(t, PullToLocal, decision)
}

func TestDecidePrecision(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

	// sub-second skew is equality at second precision, not a tie-break
	decision, err := Decide(ctx, newDecideFixture(t, base.Add(400*time.Millisecond), base))
	require.NoError(t, err)
	assert.Equal(t, UpToDate, decision)
}

func TestDecideTotality(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

	for _, delta := range []time.Duration{-time.Hour, -time.Second, 0, time.Second, time.Hour} {
		decision, err := Decide(ctx, newDecideFixture(t, base.Add(delta), base))
		require.NoError(t, err)
		switch {
		case delta == 0:
			assert.Equal(t, UpToDate, decision)
		case delta > 0:
			assert.Equal(t, PushToRemote, decision)
		default:
			assert.Equal(t, PullToLocal, decision)
		}
	}
}

func TestDecideMissingLocal(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

	input := newDecideFixture(t, base, base)
	input.LocalFileSystem = lfs.New(afero.NewMemMapFs())

	_, err := Decide(ctx, input)
	require.Error(t, err)

	metadataError := &MetadataError{}
	require.ErrorAs(t, err, &metadataError)
	assert.Equal(t, SideLocal, metadataError.Side)
}

func TestDecideMissingRemote(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

	input := newDecideFixture(t, base, base)
	input.RemoteFileSystem = lfs.New(afero.NewMemMapFs())

	_, err := Decide(ctx, input)
	require.Error(t, err)

	metadataError := &MetadataError{}
	require.ErrorAs(t, err, &metadataError)
	assert.Equal(t, SideRemote, metadataError.Side)
}

var _ fs.FileSystem = (*lfs.LocalFileSystem)(nil)

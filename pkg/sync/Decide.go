// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package sync

import (
	"context"

	"github.com/decksync/decksync/pkg/fs"
)

// Decide reads the modification timestamps of both sides of a pair and
// classifies the required action.  Equal timestamps, compared at the given
// precision, mean the pair is up-to-date; otherwise the newer side wins.  A
// missing file or unreadable timestamp on either side is a hard stop for
// the pair, not a skip.
func Decide(ctx context.Context, input *DecideInput) (Decision, error) {
	localFileInfo, err := input.LocalFileSystem.Stat(ctx, input.Pair.LocalPath)
	if err != nil {
		return UpToDate, &MetadataError{Side: SideLocal, Path: input.Pair.LocalPath, Err: err}
	}

	remoteFileInfo, err := input.RemoteFileSystem.Stat(ctx, input.Pair.RemotePath)
	if err != nil {
		return UpToDate, &MetadataError{Side: SideRemote, Path: input.Pair.RemotePath, Err: err}
	}

	localTime := localFileInfo.ModTime()
	remoteTime := remoteFileInfo.ModTime()

	if fs.EqualTimestamp(localTime, remoteTime, input.Precision) {
		return UpToDate, nil
	}
	if localTime.Truncate(input.Precision).After(remoteTime.Truncate(input.Precision)) {
		return PushToRemote, nil
	}
	return PullToLocal, nil
}

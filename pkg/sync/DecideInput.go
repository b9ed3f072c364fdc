// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package sync

import (
	"time"

	"github.com/decksync/decksync/pkg/fs"
)

type DecideInput struct {
	LocalFileSystem  fs.FileSystem
	RemoteFileSystem fs.FileSystem
	Pair             Pair
	Precision        time.Duration
}

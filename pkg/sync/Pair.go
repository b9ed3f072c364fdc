// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package sync

import (
	"fmt"
)

// Pair is one concrete local/remote path correspondence.  The two paths
// differ only in their root prefix; the relative suffix is identical on both
// sides.
type Pair struct {
	LocalPath  string
	RemotePath string
}

func (p Pair) String() string {
	return fmt.Sprintf("%s <-> %s", p.LocalPath, p.RemotePath)
}

// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package sync

import (
	"time"
)

// Entry is one remote path discovered by the walker.  Entries are transient;
// nothing is persisted between runs.
type Entry struct {
	Path    string
	Dir     bool
	ModTime time.Time
	Size    int64
}

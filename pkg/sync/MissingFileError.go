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

// MissingFileError indicates an explicitly listed file did not resolve to an
// existing regular file on one side.  The listed entry is a hard error, not
// a silent skip.
type MissingFileError struct {
	Side Side
	Path string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("%s file %q does not exist", e.Side, e.Path)
}

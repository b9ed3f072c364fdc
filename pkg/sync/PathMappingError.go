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

// PathMappingError indicates a remote path was not under the location's
// remote root.  The walker only emits paths under the root, so this is a
// defensive check.
type PathMappingError struct {
	Path string
	Root string
}

func (e *PathMappingError) Error() string {
	return fmt.Sprintf("error mapping path: %q is not under root %q", e.Path, e.Root)
}

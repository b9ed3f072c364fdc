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

// DirectoryListError indicates a remote directory listing failed during the
// walk.  The walk is aborted; a partial tree is never accepted.
type DirectoryListError struct {
	Path string
	Err  error
}

func (e *DirectoryListError) Error() string {
	return fmt.Sprintf("error listing directory %q: %v", e.Path, e.Err)
}

func (e *DirectoryListError) Unwrap() error {
	return e.Err
}

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

// MetadataError indicates a timestamp could not be read on the given side.
// The pair is a hard stop; the decision is timestamp-only and cannot proceed
// without both sides.
type MetadataError struct {
	Side Side
	Path string
	Err  error
}

func (e *MetadataError) Error() string {
	return fmt.Sprintf("error reading %s metadata for %q: %v", e.Side, e.Path, e.Err)
}

func (e *MetadataError) Unwrap() error {
	return e.Err
}

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

// StreamCloseError indicates the destination stream could not be terminated
// cleanly: flushing, closing, verifying, or renaming into place failed.  The
// destination may hold a truncated or un-flushed file.
type StreamCloseError struct {
	Side Side
	Path string
	Err  error
}

func (e *StreamCloseError) Error() string {
	return fmt.Sprintf("error closing %s stream for %q: %v", e.Side, e.Path, e.Err)
}

func (e *StreamCloseError) Unwrap() error {
	return e.Err
}

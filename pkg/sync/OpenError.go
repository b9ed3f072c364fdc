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

// OpenError indicates a file could not be opened for transfer on the given
// side.
type OpenError struct {
	Side Side
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("error opening %s file %q: %v", e.Side, e.Path, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

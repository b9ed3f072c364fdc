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

// TransferIOError indicates the byte copy between the two endpoints failed
// partway through.
type TransferIOError struct {
	Source      string
	Destination string
	Err         error
}

func (e *TransferIOError) Error() string {
	return fmt.Sprintf("error copying %q to %q: %v", e.Source, e.Destination, e.Err)
}

func (e *TransferIOError) Unwrap() error {
	return e.Err
}

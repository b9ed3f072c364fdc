// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package fs

import (
	"time"
)

// EqualTimestamp compares two timestamps truncated to the given precision.
// SFTP servers commonly report modification times with second granularity,
// so comparing at full resolution would never find two sides equal.
func EqualTimestamp(a time.Time, b time.Time, d time.Duration) bool {
	return a.Truncate(d).Equal(b.Truncate(d))
}

// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package lfs

import (
	"fmt"
)

// Check returns an error if the two paths are equal or one is nested inside
// the other.  Two locations with overlapping roots would synchronize the
// shared subtree twice.
func Check(a string, b string) error {
	if a == b {
		return fmt.Errorf("paths must be different: %q", a)
	}
	aDirectories := Split(a)
	bDirectories := Split(b)
	i := 0
	for ; i < len(aDirectories) && i < len(bDirectories); i++ {
		if aDirectories[i] != bDirectories[i] {
			return nil
		}
	}
	if len(aDirectories)-i > 0 {
		return fmt.Errorf("overlapping paths: %q is a parent of %q", b, a)
	} else if len(bDirectories)-i > 0 {
		return fmt.Errorf("overlapping paths: %q is a parent of %q", a, b)
	}
	return fmt.Errorf("unknown error checking paths %q and %q", a, b)
}

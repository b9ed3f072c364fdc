// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package sync

// Side identifies which endpoint of a pair an error refers to.
type Side string

const (
	SideLocal  Side = "local"
	SideRemote Side = "remote"
)

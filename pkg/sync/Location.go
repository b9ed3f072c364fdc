// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package sync

// Location is one configured local/remote directory pair to keep
// synchronized.  A non-empty Files list restricts synchronization to exactly
// those relative paths; an empty list means the full remote tree.
type Location struct {
	Name       string
	LocalRoot  string
	RemoteRoot string
	Files      []string
}

// Explicit reports whether the location is restricted to an explicit file
// list.
func (l Location) Explicit() bool {
	return len(l.Files) > 0
}

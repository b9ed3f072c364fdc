// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package sync

import (
	"path/filepath"
	"strings"
)

// MapRemoteToLocal returns the local counterpart of a remote path by
// stripping the location's remote root prefix and rejoining the remainder
// onto the local root.  Remote paths use forward slashes; the result uses
// the separator of the local operating system.
func MapRemoteToLocal(remotePath string, loc Location) (string, error) {
	root := strings.TrimSuffix(loc.RemoteRoot, "/")
	if remotePath == root {
		return loc.LocalRoot, nil
	}
	if !strings.HasPrefix(remotePath, root+"/") {
		return "", &PathMappingError{Path: remotePath, Root: loc.RemoteRoot}
	}
	relative := strings.TrimPrefix(remotePath, root+"/")
	return filepath.Join(loc.LocalRoot, filepath.FromSlash(relative)), nil
}

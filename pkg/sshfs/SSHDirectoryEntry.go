// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package sshfs

import (
	"encoding/json"
	"os"
	"time"
)

type SSHDirectoryEntry struct {
	fi os.FileInfo
}

func (sde *SSHDirectoryEntry) IsDir() bool {
	return sde.fi.IsDir()
}

func (sde *SSHDirectoryEntry) Name() string {
	return sde.fi.Name()
}

func (sde *SSHDirectoryEntry) ModTime() time.Time {
	return sde.fi.ModTime()
}

func (sde *SSHDirectoryEntry) Size() int64 {
	return sde.fi.Size()
}

func (sde *SSHDirectoryEntry) String() string {
	return sde.fi.Name()
}

func (sde *SSHDirectoryEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"dir":     sde.IsDir(),
		"modTime": sde.ModTime(),
		"name":    sde.Name(),
		"size":    sde.Size(),
	})
}

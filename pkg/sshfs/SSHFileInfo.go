// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package sshfs

import (
	"time"
)

type SSHFileInfo struct {
	name    string
	modTime time.Time
	dir     bool
	size    int64
}

func (sfi *SSHFileInfo) IsDir() bool {
	return sfi.dir
}

func (sfi *SSHFileInfo) Name() string {
	return sfi.name
}

func (sfi *SSHFileInfo) ModTime() time.Time {
	return sfi.modTime
}

func (sfi *SSHFileInfo) Size() int64 {
	return sfi.size
}

func (sfi *SSHFileInfo) String() string {
	return sfi.name
}

func NewSSHFileInfo(name string, modTime time.Time, dir bool, size int64) *SSHFileInfo {
	return &SSHFileInfo{
		name:    name,
		modTime: modTime,
		dir:     dir,
		size:    size,
	}
}

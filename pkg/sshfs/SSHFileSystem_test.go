// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package sshfs

import (
	"errors"
	iofs "io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSSHFileSystemJoin(t *testing.T) {
	sshfs := &SSHFileSystem{}

	assert.Equal(t, "/saves/slot1/save.dat", sshfs.Join("/saves", "slot1", "save.dat"))
	assert.Equal(t, "/saves", sshfs.Join("/saves"))
	assert.Equal(t, "a/b", sshfs.Join("a", "", "b"))
}

func TestSSHFileSystemDir(t *testing.T) {
	sshfs := &SSHFileSystem{}

	assert.Equal(t, "/saves/slot1", sshfs.Dir("/saves/slot1/save.dat"))
	assert.Equal(t, "/", sshfs.Dir("/saves"))
}

func TestSSHFileSystemIsNotExist(t *testing.T) {
	sshfs := &SSHFileSystem{}

	assert.True(t, sshfs.IsNotExist(iofs.ErrNotExist))
	assert.True(t, sshfs.IsNotExist(&iofs.PathError{Op: "stat", Path: "/saves", Err: iofs.ErrNotExist}))
	assert.False(t, sshfs.IsNotExist(errors.New("connection lost")))
	assert.False(t, sshfs.IsNotExist(nil))
}

// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package sshfs

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"path"
	"time"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"

	"github.com/decksync/decksync/pkg/fs"
)

// SSHFileSystem exposes a remote host over an SFTP session.  Remote paths
// always use forward slashes regardless of the local operating system.
type SSHFileSystem struct {
	ssh  *ssh.Client
	sftp *sftp.Client
}

func (sshfs *SSHFileSystem) Chtimes(ctx context.Context, name string, atime time.Time, mtime time.Time) error {
	return sshfs.sftp.Chtimes(name, atime, mtime)
}

// Close tears down the SFTP subsystem and then the underlying secure shell
// connection.
func (sshfs *SSHFileSystem) Close() error {
	sftpError := sshfs.sftp.Close()
	sshError := sshfs.ssh.Close()
	if sftpError != nil {
		return sftpError
	}
	return sshError
}

func (sshfs *SSHFileSystem) Dir(name string) string {
	return path.Dir(name)
}

func (sshfs *SSHFileSystem) IsNotExist(err error) bool {
	return errors.Is(err, iofs.ErrNotExist) || os.IsNotExist(err)
}

func (sshfs *SSHFileSystem) Join(name ...string) string {
	return path.Join(name...)
}

func (sshfs *SSHFileSystem) MkdirAll(ctx context.Context, name string, mode os.FileMode) error {
	return sshfs.sftp.MkdirAll(name)
}

func (sshfs *SSHFileSystem) Open(ctx context.Context, name string) (fs.File, error) {
	f, err := sshfs.sftp.Open(name)
	if err != nil {
		return nil, err
	}
	return NewSSHFile(f), nil
}

func (sshfs *SSHFileSystem) OpenFile(ctx context.Context, name string, flag int, perm os.FileMode) (fs.File, error) {
	f, err := sshfs.sftp.OpenFile(name, flag)
	if err != nil {
		return nil, err
	}
	if flag&os.O_CREATE != 0 {
		if err := sshfs.sftp.Chmod(name, perm); err != nil {
			_ = f.Close()
			return nil, err
		}
	}
	return NewSSHFile(f), nil
}

func (sshfs *SSHFileSystem) ReadDir(ctx context.Context, name string) ([]fs.DirectoryEntry, error) {
	directoryEntries := []fs.DirectoryEntry{}
	readDirOutput, err := sshfs.sftp.ReadDir(name)
	if err != nil {
		return nil, err
	}
	for _, fileInfo := range readDirOutput {
		directoryEntries = append(directoryEntries, &SSHDirectoryEntry{
			fi: fileInfo,
		})
	}
	return directoryEntries, nil
}

func (sshfs *SSHFileSystem) Rename(ctx context.Context, oldpath string, newpath string) error {
	return sshfs.sftp.PosixRename(oldpath, newpath)
}

func (sshfs *SSHFileSystem) Stat(ctx context.Context, name string) (fs.FileInfo, error) {
	fi, err := sshfs.sftp.Stat(name)
	if err != nil {
		return nil, err
	}
	return NewSSHFileInfo(fi.Name(), fi.ModTime(), fi.IsDir(), fi.Size()), nil
}

func NewSSHFileSystem(sshClient *ssh.Client, sftpClient *sftp.Client) *SSHFileSystem {
	return &SSHFileSystem{
		ssh:  sshClient,
		sftp: sftpClient,
	}
}

// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package sshfs

import (
	"errors"

	"github.com/pkg/sftp"
)

type SSHFile struct {
	file *sftp.File
}

func (sf *SSHFile) Close() error {
	return sf.file.Close()
}

func (sf *SSHFile) Name() string {
	return sf.file.Name()
}

func (sf *SSHFile) Read(s []byte) (int, error) {
	return sf.file.Read(s)
}

// Sync asks the server to flush the file to stable storage.  Servers that do
// not announce the fsync@openssh.com extension cannot honor the request;
// that is not treated as a failure.
func (sf *SSHFile) Sync() error {
	err := sf.file.Sync()
	if err == nil {
		return nil
	}
	var statusError *sftp.StatusError
	if errors.As(err, &statusError) && statusError.FxCode() == sftp.ErrSSHFxOpUnsupported {
		return nil
	}
	return err
}

func (sf *SSHFile) Write(s []byte) (int, error) {
	return sf.file.Write(s)
}

func NewSSHFile(file *sftp.File) *SSHFile {
	return &SSHFile{
		file: file,
	}
}

// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package lfs

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/decksync/decksync/pkg/fs"
)

type LocalFileSystem struct {
	fs   afero.Fs
	iofs afero.IOFS
}

func (lfs *LocalFileSystem) Chtimes(ctx context.Context, name string, atime time.Time, mtime time.Time) error {
	return lfs.fs.Chtimes(name, atime, mtime)
}

func (lfs *LocalFileSystem) Dir(name string) string {
	return filepath.Dir(name)
}

func (lfs *LocalFileSystem) IsNotExist(err error) bool {
	return os.IsNotExist(err)
}

func (lfs *LocalFileSystem) Join(name ...string) string {
	return filepath.Join(name...)
}

func (lfs *LocalFileSystem) MkdirAll(ctx context.Context, name string, mode os.FileMode) error {
	return lfs.fs.MkdirAll(name, mode)
}

func (lfs *LocalFileSystem) Open(ctx context.Context, name string) (fs.File, error) {
	f, err := lfs.fs.Open(name)
	if err != nil {
		return nil, err
	}
	return NewLocalFile(f), nil
}

func (lfs *LocalFileSystem) OpenFile(ctx context.Context, name string, flag int, perm os.FileMode) (fs.File, error) {
	f, err := lfs.fs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return NewLocalFile(f), nil
}

func (lfs *LocalFileSystem) ReadDir(ctx context.Context, name string) ([]fs.DirectoryEntry, error) {
	directoryEntries := []fs.DirectoryEntry{}
	readDirOutput, err := lfs.iofs.ReadDir(name)
	if err != nil {
		return nil, err
	}
	for _, directoryEntry := range readDirOutput {
		directoryEntries = append(directoryEntries, &LocalDirectoryEntry{
			de: directoryEntry,
		})
	}
	return directoryEntries, nil
}

func (lfs *LocalFileSystem) Rename(ctx context.Context, oldpath string, newpath string) error {
	return lfs.fs.Rename(oldpath, newpath)
}

func (lfs *LocalFileSystem) Stat(ctx context.Context, name string) (fs.FileInfo, error) {
	fi, err := lfs.fs.Stat(name)
	if err != nil {
		return nil, err
	}
	return NewLocalFileInfo(fi.Name(), fi.ModTime(), fi.IsDir(), fi.Size()), nil
}

// New returns a LocalFileSystem backed by the given afero filesystem.
func New(afs afero.Fs) *LocalFileSystem {
	return &LocalFileSystem{
		fs:   afs,
		iofs: afero.NewIOFS(afs),
	}
}

// NewLocalFileSystem returns a LocalFileSystem rooted at the given path of
// the local operating system.
func NewLocalFileSystem(rootPath string) *LocalFileSystem {
	return New(afero.NewBasePathFs(afero.NewOsFs(), rootPath))
}

// NewReadOnlyLocalFileSystem returns a LocalFileSystem rooted at the given
// path that rejects all mutating operations.
func NewReadOnlyLocalFileSystem(rootPath string) *LocalFileSystem {
	return New(afero.NewBasePathFs(afero.NewReadOnlyFs(afero.NewOsFs()), rootPath))
}

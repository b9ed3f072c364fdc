// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

import (
	"io"
)

// File is an open stream on a backend.  Sync flushes pending writes to the
// backend and does not return until the backend has acknowledged them.
type File interface {
	io.Reader
	io.Writer
	io.Closer
	Name() string
	Sync() error
}

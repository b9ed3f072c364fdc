// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package sync

import (
	"github.com/decksync/decksync/pkg/fs"
)

type TransferInput struct {
	SourceName            string
	SourceFileSystem      fs.FileSystem
	SourceSide            Side
	DestinationName       string
	DestinationFileSystem fs.FileSystem
	DestinationSide       Side
	BufferSize            int
	Atomic                bool
	Logger                fs.Logger
}

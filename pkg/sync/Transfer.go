// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package sync

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"
)

const (
	// DefaultBufferSize bounds the memory used by a single transfer.  Files
	// larger than the buffer are streamed in chunks, never read whole.
	DefaultBufferSize = 1_048_576 // 1 MiB

	// DefaultFileMode is the fixed permission mode for created destination
	// files.
	DefaultFileMode = os.FileMode(0644)

	// partialSuffix marks a destination file that has not yet been renamed
	// into place.
	partialSuffix = ".partial"
)

// Transfer executes exactly one directional byte copy and leaves both
// endpoints in a clean, fully flushed state.  The destination stream is
// terminated in order: flush to the backend, close the stream, confirm the
// result by size.  When Atomic is set the bytes are written to a partial
// sibling first and renamed into place only after the termination sequence
// succeeds.  The destination modification time is then set to the source's
// so an immediately repeated run finds the pair up-to-date.
func Transfer(ctx context.Context, input *TransferInput) error {
	if input.Logger != nil {
		_ = input.Logger.Log("Copying file", map[string]interface{}{
			"src": input.SourceName,
			"dst": input.DestinationName,
		})
	}

	sourceFileInfo, err := input.SourceFileSystem.Stat(ctx, input.SourceName)
	if err != nil {
		return &MetadataError{Side: input.SourceSide, Path: input.SourceName, Err: err}
	}

	sourceFile, err := input.SourceFileSystem.Open(ctx, input.SourceName)
	if err != nil {
		return &OpenError{Side: input.SourceSide, Path: input.SourceName, Err: err}
	}

	// create the destination parent directory if it does not exist
	parent := input.DestinationFileSystem.Dir(input.DestinationName)
	if _, statError := input.DestinationFileSystem.Stat(ctx, parent); statError != nil {
		if !input.DestinationFileSystem.IsNotExist(statError) {
			_ = sourceFile.Close()
			return &OpenError{Side: input.DestinationSide, Path: parent, Err: statError}
		}
		if mkdirError := input.DestinationFileSystem.MkdirAll(ctx, parent, 0755); mkdirError != nil {
			_ = sourceFile.Close()
			return &OpenError{Side: input.DestinationSide, Path: parent, Err: mkdirError}
		}
	}

	destinationName := input.DestinationName
	if input.Atomic {
		destinationName = input.DestinationName + partialSuffix
	}

	destinationFile, err := input.DestinationFileSystem.OpenFile(ctx, destinationName, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, DefaultFileMode)
	if err != nil {
		_ = sourceFile.Close() // silently close source file
		return &OpenError{Side: input.DestinationSide, Path: destinationName, Err: err}
	}

	bufferSize := input.BufferSize
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}

	written, err := io.CopyBuffer(destinationFile, sourceFile, make([]byte, bufferSize))
	if err != nil {
		_ = sourceFile.Close()      // silently close source file
		_ = destinationFile.Close() // silently close destination file
		return &TransferIOError{Source: input.SourceName, Destination: destinationName, Err: err}
	}

	if err := sourceFile.Close(); err != nil {
		_ = destinationFile.Close() // silently close destination file
		return &TransferIOError{Source: input.SourceName, Destination: destinationName, Err: err}
	}

	// termination sequence: every step is mandatory and ordered, or the
	// destination may hold a truncated or un-flushed file.
	if err := destinationFile.Sync(); err != nil {
		_ = destinationFile.Close()
		return &StreamCloseError{Side: input.DestinationSide, Path: destinationName, Err: err}
	}
	if err := destinationFile.Close(); err != nil {
		return &StreamCloseError{Side: input.DestinationSide, Path: destinationName, Err: err}
	}
	destinationFileInfo, err := input.DestinationFileSystem.Stat(ctx, destinationName)
	if err != nil {
		return &StreamCloseError{Side: input.DestinationSide, Path: destinationName, Err: err}
	}
	if destinationFileInfo.Size() != written {
		return &StreamCloseError{
			Side: input.DestinationSide,
			Path: destinationName,
			Err:  fmt.Errorf("wrote %d bytes but destination holds %d", written, destinationFileInfo.Size()),
		}
	}

	if input.Atomic {
		if err := input.DestinationFileSystem.Rename(ctx, destinationName, input.DestinationName); err != nil {
			return &StreamCloseError{Side: input.DestinationSide, Path: destinationName, Err: err}
		}
	}

	// preserve the source modification time
	if err := input.DestinationFileSystem.Chtimes(ctx, input.DestinationName, time.Now(), sourceFileInfo.ModTime()); err != nil {
		return &StreamCloseError{Side: input.DestinationSide, Path: input.DestinationName, Err: err}
	}

	if input.Logger != nil {
		_ = input.Logger.Log("Done copying file", map[string]interface{}{
			"src":     input.SourceName,
			"dst":     input.DestinationName,
			"written": written,
		})
	}

	return nil
}

// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package sync

import (
	"context"

	"github.com/decksync/decksync/pkg/fs"
)

// Walk enumerates every entry reachable under root, files and directories
// alike, excluding the root itself.  Expansion is breadth-first: a queue of
// pending directories is drained one listing at a time, so every reachable
// file is visited exactly once regardless of tree depth.  Any listing
// failure aborts the walk; a partial tree is never returned.
func Walk(ctx context.Context, fsys fs.FileSystem, root string) ([]Entry, error) {
	entries := []Entry{}
	pending := []string{root}
	for len(pending) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		dir := pending[0]
		pending = pending[1:]
		directoryEntries, err := fsys.ReadDir(ctx, dir)
		if err != nil {
			return nil, &DirectoryListError{Path: dir, Err: err}
		}
		for _, de := range directoryEntries {
			name := fsys.Join(dir, de.Name())
			entries = append(entries, Entry{
				Path:    name,
				Dir:     de.IsDir(),
				ModTime: de.ModTime(),
				Size:    de.Size(),
			})
			if de.IsDir() {
				pending = append(pending, name)
			}
		}
	}
	return entries, nil
}

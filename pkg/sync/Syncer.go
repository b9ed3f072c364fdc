// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package sync

import (
	"context"
	"fmt"
	"time"

	"github.com/decksync/decksync/pkg/fs"
)

// Syncer drives the walker, mapper, decision, and transfer pipeline for a
// list of locations over one local filesystem and one remote session.
// Execution is fully sequential: one location at a time, one pair at a time.
type Syncer struct {
	LocalFileSystem  fs.FileSystem
	RemoteFileSystem fs.FileSystem
	Logger           fs.Logger
	// ContinueOnError controls whether a failed location aborts the run or
	// only that location.  Pair failures never stop sibling pairs.
	ContinueOnError bool
	DryRun          bool
	Atomic          bool
	BufferSize      int
	Precision       time.Duration
}

// SyncLocations processes the locations in declared order and returns a
// summary per location.  The returned error is non-nil only when the run was
// aborted early because ContinueOnError is false.
func (s *Syncer) SyncLocations(ctx context.Context, locations []Location) (*RunSummary, error) {
	run := &RunSummary{}
	for _, loc := range locations {
		summary := s.SyncLocation(ctx, loc)
		run.Locations = append(run.Locations, summary)
		if !summary.Ok() && !s.ContinueOnError {
			return run, fmt.Errorf("error syncing location %q: aborting run", loc.Name)
		}
	}
	return run, nil
}

// SyncLocation resolves the location's pair set, decides each pair, and
// executes the transfers, accumulating one outcome per pair.
func (s *Syncer) SyncLocation(ctx context.Context, loc Location) *Summary {
	summary := &Summary{
		Location: loc.Name,
		Started:  time.Now(),
	}

	if s.Logger != nil {
		_ = s.Logger.Log("Synchronizing location", map[string]interface{}{
			"location": loc.Name,
			"local":    loc.LocalRoot,
			"remote":   loc.RemoteRoot,
			"explicit": loc.Explicit(),
		})
	}

	var pairs []Pair
	if loc.Explicit() {
		var rejected []Outcome
		pairs, rejected = s.resolveExplicit(ctx, loc)
		for _, o := range rejected {
			summary.add(o)
		}
	} else {
		var err error
		pairs, err = s.resolveTree(ctx, loc)
		if err != nil {
			// a failed root or subtree listing aborts the whole location
			summary.Err = err
			summary.Finished = time.Now()
			return summary
		}
	}

	for _, pair := range pairs {
		summary.add(s.syncPair(ctx, pair))
	}

	summary.Finished = time.Now()

	if s.Logger != nil {
		_ = s.Logger.Log("Done synchronizing location", map[string]interface{}{
			"location":   loc.Name,
			"up-to-date": summary.UpToDate,
			"pushed":     summary.Pushed,
			"pulled":     summary.Pulled,
			"failed":     summary.Failed,
		})
	}

	return summary
}

// resolveTree walks the full remote tree and maps every file onto its local
// counterpart.  Directories are never transferred, only files.
func (s *Syncer) resolveTree(ctx context.Context, loc Location) ([]Pair, error) {
	entries, err := Walk(ctx, s.RemoteFileSystem, loc.RemoteRoot)
	if err != nil {
		return nil, err
	}
	pairs := []Pair{}
	for _, entry := range entries {
		if entry.Dir {
			continue
		}
		localPath, err := MapRemoteToLocal(entry.Path, loc)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, Pair{
			LocalPath:  localPath,
			RemotePath: entry.Path,
		})
	}
	return pairs, nil
}

// resolveExplicit maps each listed relative path onto both roots.  Both
// sides must independently resolve to an existing regular file, or the
// entry is rejected before any transfer is attempted.
func (s *Syncer) resolveExplicit(ctx context.Context, loc Location) ([]Pair, []Outcome) {
	pairs := []Pair{}
	rejected := []Outcome{}
	for _, relative := range loc.Files {
		pair := Pair{
			LocalPath:  s.LocalFileSystem.Join(loc.LocalRoot, relative),
			RemotePath: s.RemoteFileSystem.Join(loc.RemoteRoot, relative),
		}
		if err := s.checkRegularFile(ctx, s.LocalFileSystem, SideLocal, pair.LocalPath); err != nil {
			rejected = append(rejected, Outcome{Pair: pair, Err: err})
			continue
		}
		if err := s.checkRegularFile(ctx, s.RemoteFileSystem, SideRemote, pair.RemotePath); err != nil {
			rejected = append(rejected, Outcome{Pair: pair, Err: err})
			continue
		}
		pairs = append(pairs, pair)
	}
	return pairs, rejected
}

func (s *Syncer) checkRegularFile(ctx context.Context, fsys fs.FileSystem, side Side, name string) error {
	fi, err := fsys.Stat(ctx, name)
	if err != nil {
		if fsys.IsNotExist(err) {
			return &MissingFileError{Side: side, Path: name}
		}
		return &MetadataError{Side: side, Path: name, Err: err}
	}
	if fi.IsDir() {
		return &MissingFileError{Side: side, Path: name}
	}
	return nil
}

// syncPair decides and, unless running dry, executes one pair.  A failure is
// recorded in the outcome and does not stop sibling pairs.
func (s *Syncer) syncPair(ctx context.Context, pair Pair) Outcome {
	decision, err := Decide(ctx, &DecideInput{
		LocalFileSystem:  s.LocalFileSystem,
		RemoteFileSystem: s.RemoteFileSystem,
		Pair:             pair,
		Precision:        s.Precision,
	})
	if err != nil {
		return Outcome{Pair: pair, Err: err}
	}

	if s.DryRun || decision == UpToDate {
		return Outcome{Pair: pair, Decision: decision}
	}

	input := &TransferInput{
		BufferSize: s.BufferSize,
		Atomic:     s.Atomic,
		Logger:     s.Logger,
	}
	switch decision {
	case PushToRemote:
		input.SourceName = pair.LocalPath
		input.SourceFileSystem = s.LocalFileSystem
		input.SourceSide = SideLocal
		input.DestinationName = pair.RemotePath
		input.DestinationFileSystem = s.RemoteFileSystem
		input.DestinationSide = SideRemote
	case PullToLocal:
		input.SourceName = pair.RemotePath
		input.SourceFileSystem = s.RemoteFileSystem
		input.SourceSide = SideRemote
		input.DestinationName = pair.LocalPath
		input.DestinationFileSystem = s.LocalFileSystem
		input.DestinationSide = SideLocal
	}

	if err := Transfer(ctx, input); err != nil {
		return Outcome{Pair: pair, Decision: decision, Err: err}
	}

	return Outcome{Pair: pair, Decision: decision}
}

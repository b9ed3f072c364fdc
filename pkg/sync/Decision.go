// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package sync

// Decision is the action required to reconcile a pair, computed from the two
// modification timestamps alone.
type Decision int

const (
	UpToDate Decision = iota
	PushToRemote
	PullToLocal
)

func (d Decision) String() string {
	switch d {
	case PushToRemote:
		return "push"
	case PullToLocal:
		return "pull"
	default:
		return "up-to-date"
	}
}

// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package sync

// Outcome records what happened to one pair.
type Outcome struct {
	Pair     Pair
	Decision Decision
	Err      error
}

func (o Outcome) Ok() bool {
	return o.Err == nil
}

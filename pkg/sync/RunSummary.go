// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package sync

// RunSummary aggregates the summaries of every attempted location.
type RunSummary struct {
	Locations []*Summary
}

// Ok reports whether every location and every pair within it succeeded or
// was up-to-date.
func (r *RunSummary) Ok() bool {
	for _, s := range r.Locations {
		if !s.Ok() {
			return false
		}
	}
	return true
}

// Failed returns the total number of failed pairs plus failed locations.
func (r *RunSummary) Failed() int {
	failed := 0
	for _, s := range r.Locations {
		failed += s.Failed
		if s.Err != nil {
			failed++
		}
	}
	return failed
}

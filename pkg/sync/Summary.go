// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package sync

import (
	"time"
)

// Summary aggregates the outcomes of one location.  Err is set only
// for a location-level failure, such as a failed root listing, in which case
// no pairs were attempted beyond those already recorded.
type Summary struct {
	Location string
	UpToDate int
	Pushed   int
	Pulled   int
	Failed   int
	Outcomes []Outcome
	Err      error
	Started  time.Time
	Finished time.Time
}

func (s *Summary) Ok() bool {
	return s.Err == nil && s.Failed == 0
}

// FailedOutcomes returns the outcomes of the pairs that failed.
func (s *Summary) FailedOutcomes() []Outcome {
	failed := []Outcome{}
	for _, o := range s.Outcomes {
		if !o.Ok() {
			failed = append(failed, o)
		}
	}
	return failed
}

func (s *Summary) add(o Outcome) {
	s.Outcomes = append(s.Outcomes, o)
	if !o.Ok() {
		s.Failed++
		return
	}
	switch o.Decision {
	case PushToRemote:
		s.Pushed++
	case PullToLocal:
		s.Pulled++
	default:
		s.UpToDate++
	}
}

// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEqualTimestamp(t *testing.T) {
	a := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, EqualTimestamp(a, a, time.Second))
	assert.True(t, EqualTimestamp(a, a.Add(500*time.Millisecond), time.Second))
	assert.False(t, EqualTimestamp(a, a.Add(time.Second), time.Second))
	assert.False(t, EqualTimestamp(a, a.Add(time.Nanosecond), 0))
	assert.True(t, EqualTimestamp(a, a.In(time.FixedZone("UTC+2", 2*60*60)), time.Second))
}

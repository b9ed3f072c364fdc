// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleLoggerText(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewSimpleLogger(buf)

	require.NoError(t, logger.Log("Copying file", map[string]interface{}{
		"src": "/local/a.dat",
		"dst": "/remote/a.dat",
	}))

	assert.Equal(t, "Copying file dst=/remote/a.dat src=/local/a.dat\n", buf.String())
}

func TestSimpleLoggerJSONL(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewSimpleLoggerWithFormat(buf, FormatJSONL)

	require.NoError(t, logger.Log("Copying file", map[string]interface{}{
		"src": "/local/a.dat",
	}))

	event := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &event))
	assert.Equal(t, "Copying file", event["msg"])
	assert.Equal(t, "/local/a.dat", event["src"])
	assert.NotEmpty(t, event["ts"])
}

// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDocument = `{
  "auto_sync": true,
  "remote": "steamdeck.local",
  "user": "deck",
  "locations": [
    {
      "name": "elden-ring",
      "local_path": "/home/user/saves/elden-ring",
      "remote_path": "/home/deck/saves/elden-ring",
      "files": ["ER0000.sl2", "ER0000.sl2.bak"]
    },
    {
      "name": "hollow-knight",
      "local_path": "/home/user/saves/hollow-knight",
      "remote_path": "/home/deck/saves/hollow-knight",
      "files": []
    }
  ]
}`

func writeTestConfig(t *testing.T, document string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(document), 0600))
	return path
}

func TestLoad(t *testing.T) {
	c, err := Load(writeTestConfig(t, testDocument))
	require.NoError(t, err)

	assert.True(t, c.AutoSync)
	assert.Equal(t, "steamdeck.local", c.Remote)
	assert.Equal(t, "deck", c.User)
	require.Len(t, c.Locations, 2)
	assert.Equal(t, []string{"ER0000.sl2", "ER0000.sl2.bak"}, c.Locations[0].Files)
	assert.Empty(t, c.Locations[1].Files)

	require.NoError(t, c.Validate())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	c, err := Load(writeTestConfig(t, testDocument))
	require.NoError(t, err)

	c.Remote = ""
	assert.Error(t, c.Validate())

	c, _ = Load(writeTestConfig(t, testDocument))
	c.User = ""
	assert.Error(t, c.Validate())

	c, _ = Load(writeTestConfig(t, testDocument))
	c.Locations = nil
	assert.Error(t, c.Validate())

	c, _ = Load(writeTestConfig(t, testDocument))
	c.Locations[0].LocalPath = "relative/path"
	assert.Error(t, c.Validate())

	c, _ = Load(writeTestConfig(t, testDocument))
	c.Locations[0].Files = []string{"../escape.dat"}
	assert.Error(t, c.Validate())

	c, _ = Load(writeTestConfig(t, testDocument))
	c.Locations[1].Name = c.Locations[0].Name
	assert.Error(t, c.Validate())

	// nested local roots
	c, _ = Load(writeTestConfig(t, testDocument))
	c.Locations[1].LocalPath = c.Locations[0].LocalPath + "/nested"
	assert.Error(t, c.Validate())
}

func TestSyncLocations(t *testing.T) {
	c, err := Load(writeTestConfig(t, testDocument))
	require.NoError(t, err)

	locations := c.SyncLocations()
	require.Len(t, locations, 2)
	assert.Equal(t, "elden-ring", locations[0].Name)
	assert.Equal(t, "/home/user/saves/elden-ring", locations[0].LocalRoot)
	assert.Equal(t, "/home/deck/saves/elden-ring", locations[0].RemoteRoot)
	assert.True(t, locations[0].Explicit())
	assert.False(t, locations[1].Explicit())
}

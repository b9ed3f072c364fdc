// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/decksync/decksync/pkg/lfs"
	"github.com/decksync/decksync/pkg/sync"
)

// Config is the parsed configuration document.  The sync engine never reads
// the file itself; it consumes the validated, strongly typed model.
type Config struct {
	AutoSync  bool       `mapstructure:"auto_sync"`
	Remote    string     `mapstructure:"remote"`
	User      string     `mapstructure:"user"`
	Locations []Location `mapstructure:"locations"`
}

type Location struct {
	Name       string   `mapstructure:"name"`
	LocalPath  string   `mapstructure:"local_path"`
	RemotePath string   `mapstructure:"remote_path"`
	Files      []string `mapstructure:"files"`
}

// Load reads and parses the configuration file at the given path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %q: %w", path, err)
	}
	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("error parsing config file %q: %w", path, err)
	}
	return c, nil
}

// Validate checks the document once at the boundary, so the engine can trust
// every location it receives.
func (c *Config) Validate() error {
	if len(c.Remote) == 0 {
		return fmt.Errorf("remote host is missing")
	}
	if len(c.User) == 0 {
		return fmt.Errorf("user is missing")
	}
	if len(c.Locations) == 0 {
		return fmt.Errorf("no locations configured")
	}
	names := map[string]struct{}{}
	for i, loc := range c.Locations {
		if len(loc.Name) == 0 {
			return fmt.Errorf("location %d: name is missing", i)
		}
		if _, ok := names[loc.Name]; ok {
			return fmt.Errorf("location %q: name is not unique", loc.Name)
		}
		names[loc.Name] = struct{}{}
		if !filepath.IsAbs(loc.LocalPath) {
			return fmt.Errorf("location %q: local path %q is not absolute", loc.Name, loc.LocalPath)
		}
		if !strings.HasPrefix(loc.RemotePath, "/") {
			return fmt.Errorf("location %q: remote path %q is not absolute", loc.Name, loc.RemotePath)
		}
		for _, f := range loc.Files {
			if len(f) == 0 {
				return fmt.Errorf("location %q: empty file entry", loc.Name)
			}
			if strings.HasPrefix(f, "/") || strings.Contains(f, "..") {
				return fmt.Errorf("location %q: file %q is not a relative path inside the location", loc.Name, f)
			}
		}
	}
	// overlapping local roots would synchronize the shared subtree twice
	for i := 0; i < len(c.Locations); i++ {
		for j := i + 1; j < len(c.Locations); j++ {
			if err := lfs.Check(c.Locations[i].LocalPath, c.Locations[j].LocalPath); err != nil {
				return fmt.Errorf(
					"locations %q and %q: %w",
					c.Locations[i].Name,
					c.Locations[j].Name,
					err,
				)
			}
		}
	}
	return nil
}

// SyncLocations returns the locations as the model consumed by the engine.
func (c *Config) SyncLocations() []sync.Location {
	locations := make([]sync.Location, 0, len(c.Locations))
	for _, loc := range c.Locations {
		locations = append(locations, sync.Location{
			Name:       loc.Name,
			LocalRoot:  loc.LocalPath,
			RemoteRoot: loc.RemotePath,
			Files:      loc.Files,
		})
	}
	return locations
}

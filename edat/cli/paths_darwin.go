package cli

import (
	"os"
	"path/filepath"
)

func (a appPaths) ConfigDir() string {
	c, err := os.UserConfigDir()
	if err != nil {
		c = filepath.Join(a.home, "Library", "Application Support")
	}
	return filepath.Join(c, a.tag)
}

func (a appPaths) LogDir() string {
	if a.home == "" {
		return ""
	}
	return filepath.Join(a.home, "Library", "Logs", a.tag)
}

func (a appPaths) CacheDir() string {
	c, err := os.UserCacheDir()
	if err != nil {
		if a.home == "" {
			return ""
		}
		c = filepath.Join(a.home, "Library", "Caches")
	}
	return filepath.Join(c, a.tag)
}

package cli

import (
	"os"
	"path/filepath"
)

func (a appPaths) ConfigDir() string {
	c, err := os.UserConfigDir()
	if err != nil {
		c = a.home
	}
	return filepath.Join(c, a.tag)
}

func (a appPaths) LogDir() string {
	return filepath.Join(a.CacheDir(), "Logs")
}

func (a appPaths) CacheDir() string {
	c, err := os.UserCacheDir() // %LocalAppData%
	if err != nil {
		c = a.home
	}
	return filepath.Join(c, a.tag)
}

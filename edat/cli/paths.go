package cli

import (
	"os"
	"path/filepath"
)

// AppPaths is an interface to determine application specific paths for configuration,
// logging/tracing and cached state such as the REPL history.
type AppPaths interface {
	ConfigDir() string
	LogDir() string
	CacheDir() string
}

// DefaultAppPaths returns an AppPaths instance with platform-dependent defaults
// set, given appTag. appTag is a string specific to a client's application to identify it.
func DefaultAppPaths(appTag string) (AppPaths, error) {
	a := appPaths{tag: appTag}
	home, err := os.UserHomeDir()
	if err != nil {
		return a, err
	}
	a.home = home
	return a, nil
}

type appPaths struct {
	tag  string
	home string
}

var _ AppPaths = appPaths{}

// historyFile returns the path of the REPL history file, creating its
// directory if necessary. It falls back to the system temp directory.
func historyFile(paths AppPaths, toolname string) string {
	name := toolname + "-repl-history"
	if paths != nil {
		if dir := paths.CacheDir(); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err == nil {
				return filepath.Join(dir, name)
			}
			tracer().Infof("cannot create cache directory %q", dir)
		}
	}
	return filepath.Join(os.TempDir(), name+".tmp")
}

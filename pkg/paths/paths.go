package paths

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/gcroots/pkg/types"
)

// Directory and file names below the XDG base directories
const (
	// AppDirName is the directory name for gcroots-specific files
	AppDirName = "gcroots"

	// GCRootsDir is the cache subdirectory holding one directory per project
	GCRootsDir = "gc_roots"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "gcroots.log"
)

// Paths resolves gcroots' own files
type Paths struct {
	cacheDir string
}

// New creates a Paths. An empty cacheDir selects $XDG_CACHE_HOME/gcroots.
func New(cacheDir string) Paths {
	if cacheDir == "" {
		cacheDir = filepath.Join(xdg.CacheHome, AppDirName)
	}
	return Paths{cacheDir: cacheDir}
}

// CacheDir returns the gcroots cache directory
func (p Paths) CacheDir() string {
	return p.cacheDir
}

// ProjectGCRootDir returns the private cache directory of the project with
// the given id. The directory is not created.
func (p Paths) ProjectGCRootDir(projectID string) (types.AbsPath, error) {
	dir, err := filepath.Abs(filepath.Join(p.cacheDir, GCRootsDir, projectID))
	if err != nil {
		return types.AbsPath{}, err
	}
	return types.NewAbsPath(dir)
}

// ConfigFilePath returns the default location of the user config file
func ConfigFilePath() string {
	return filepath.Join(xdg.ConfigHome, AppDirName, ConfigFileName)
}

// LogFilePath returns the location of the log file
func LogFilePath() string {
	return filepath.Join(xdg.StateHome, AppDirName, LogFileName)
}

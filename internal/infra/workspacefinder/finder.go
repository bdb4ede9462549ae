package workspacefinder

import (
	"os"
	"path/filepath"

	"github.com/aalvaropc/zoneinfo/internal/domain"
)

// Finder locates the directory holding a zoneinfo configuration file by searching upward.
type Finder struct {
	ConfigFile string // defaults to ".zoneinfo.yaml"
}

func NewFinder(configFile string) *Finder {
	if configFile == "" {
		configFile = ".zoneinfo.yaml"
	}
	return &Finder{ConfigFile: configFile}
}

// FindRoot returns the nearest directory at or above startDir holding the config file.
func (f *Finder) FindRoot(startDir string) (string, error) {
	const op = "workspacefinder.findroot"
	if startDir == "" {
		return "", domain.ConfigurationError(op, "startDir is empty")
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{Op: op, Kind: domain.KindConfiguration, Path: startDir, Err: err}
	}

	// If user passes a file path, use its directory.
	info, statErr := os.Stat(abs)
	if statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	cur := filepath.Clean(abs)
	for {
		cfgPath := filepath.Join(cur, f.ConfigFile)
		if st, err := os.Stat(cfgPath); err == nil && !st.IsDir() {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			// Reached filesystem root.
			return "", &domain.OpError{Op: op, Kind: domain.KindNotFound, Path: startDir, Err: domain.ErrNotFound}
		}
		cur = parent
	}
}

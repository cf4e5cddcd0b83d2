package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/Calebjackson-photonics/structured-light-education/internal/domain"
)

// DefaultFileName is the config file picked up when --config is not given.
const DefaultFileName = "vortex.yaml"

// Finder locates a vortex.yaml by searching upward from a directory.
type Finder struct {
	FileName string // defaults to "vortex.yaml"
}

func NewFinder() *Finder {
	return &Finder{FileName: DefaultFileName}
}

// FindConfig returns the path of the nearest config file at or above startDir.
func (f *Finder) FindConfig(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "config.find",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "config.find",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	// If user passes a file path, use its directory.
	info, statErr := os.Stat(abs)
	if statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	name := f.FileName
	if name == "" {
		name = DefaultFileName
	}

	cur := filepath.Clean(abs)
	for {
		candidate := filepath.Join(cur, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{
				Op:   "config.find",
				Kind: domain.KindNotFound,
				Path: abs,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}

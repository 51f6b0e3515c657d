//go:build !linux && !windows

package dolphin

import "github.com/bfbbtools/gamehook/go/models"

type unsupportedPlatform struct{}

// DefaultPlatform returns the Platform for the running OS.
func DefaultPlatform(cfg *models.Config) Platform {
	return unsupportedPlatform{}
}

func (unsupportedPlatform) FindRegion(pid int, size uint64) (uint64, error) {
	return 0, models.ErrUnsupported
}

func (unsupportedPlatform) Open(pid int) (models.Process, error) {
	return nil, models.ErrUnsupported
}

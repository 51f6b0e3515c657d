package dolphin

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/process"

	"github.com/bfbbtools/gamehook/go/models"
)

// Lister enumerates running processes.
type Lister interface {
	Processes() ([]models.ProcessInfo, error)
}

// Platform finds and opens the emulated memory of a process.
type Platform interface {
	// FindRegion returns the host address of the mapping of the given size
	// that holds emulated memory, or ErrRegionNotFound.
	FindRegion(pid int, size uint64) (uint64, error)
	Open(pid int) (models.Process, error)
}

// GopsutilLister lists processes with gopsutil.
type GopsutilLister struct{}

func (GopsutilLister) Processes() ([]models.ProcessInfo, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, errors.Wrap(err, "listing processes")
	}
	infos := make([]models.ProcessInfo, 0, len(procs))
	for _, p := range procs {
		name, err := p.Name()
		if err != nil {
			// exited while we were listing
			continue
		}
		infos = append(infos, models.ProcessInfo{Pid: int(p.Pid), Name: name})
	}
	return infos, nil
}

func matchName(name string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(name, p) {
			return true
		}
	}
	return false
}

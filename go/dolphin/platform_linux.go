//go:build linux

package dolphin

import (
	"strings"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/prometheus/procfs"
	"golang.org/x/sys/unix"

	"github.com/bfbbtools/gamehook/go/models"
)

type linuxPlatform struct {
	hint string
}

// DefaultPlatform returns the Platform for the running OS.
func DefaultPlatform(cfg *models.Config) Platform {
	return &linuxPlatform{hint: cfg.RegionPathHint}
}

// FindRegion scans /proc/<pid>/maps. Several mappings can match; the last
// one is the live one.
func (l *linuxPlatform) FindRegion(pid int, size uint64) (uint64, error) {
	proc, err := procfs.NewProc(pid)
	if err != nil {
		return 0, errors.Wrapf(err, "opening /proc/%d", pid)
	}
	maps, err := proc.ProcMaps()
	if err != nil {
		return 0, errors.Wrapf(err, "reading /proc/%d/maps", pid)
	}
	return pickRegion(maps, size, l.hint)
}

// pickRegion returns the start of the last mapping that is exactly size
// bytes long and whose path contains hint.
func pickRegion(maps []*procfs.ProcMap, size uint64, hint string) (uint64, error) {
	for i := len(maps) - 1; i >= 0; i-- {
		m := maps[i]
		if uint64(m.EndAddr-m.StartAddr) == size && strings.Contains(m.Pathname, hint) {
			return uint64(m.StartAddr), nil
		}
	}
	return 0, models.ErrRegionNotFound
}

func (l *linuxPlatform) Open(pid int) (models.Process, error) {
	if err := unix.Kill(pid, 0); err != nil && err != unix.EPERM {
		return nil, errors.Wrapf(err, "opening pid %d", pid)
	}
	return &linuxProcess{pid: pid}, nil
}

// linuxProcess does memory I/O with process_vm_readv(2) and
// process_vm_writev(2). There is no handle to hold open.
type linuxProcess struct {
	pid    int
	closed atomic.Bool
}

var errClosed = errors.New("process handle closed")

func (p *linuxProcess) Pid() int { return p.pid }

func (p *linuxProcess) MemReadInto(buf []byte, addr uint64) error {
	if p.closed.Load() {
		return errClosed
	}
	if len(buf) == 0 {
		return nil
	}
	local := []unix.Iovec{{Base: &buf[0]}}
	local[0].SetLen(len(buf))
	remote := []unix.RemoteIovec{{Base: uintptr(addr), Len: len(buf)}}
	n, err := unix.ProcessVMReadv(p.pid, local, remote, 0)
	if err != nil {
		return errors.Wrap(err, "process_vm_readv")
	}
	if n != len(buf) {
		return errors.Errorf("short read: %d of %d bytes", n, len(buf))
	}
	return nil
}

func (p *linuxProcess) MemWrite(addr uint64, buf []byte) error {
	if p.closed.Load() {
		return errClosed
	}
	if len(buf) == 0 {
		return nil
	}
	local := []unix.Iovec{{Base: &buf[0]}}
	local[0].SetLen(len(buf))
	remote := []unix.RemoteIovec{{Base: uintptr(addr), Len: len(buf)}}
	n, err := unix.ProcessVMWritev(p.pid, local, remote, 0)
	if err != nil {
		return errors.Wrap(err, "process_vm_writev")
	}
	if n != len(buf) {
		return errors.Errorf("short write: %d of %d bytes", n, len(buf))
	}
	return nil
}

func (p *linuxProcess) Close() error {
	p.closed.Store(true)
	return nil
}

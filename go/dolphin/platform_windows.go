//go:build windows

package dolphin

import (
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"

	"github.com/bfbbtools/gamehook/go/models"
)

// MEM_MAPPED, missing from x/sys/windows
const memMapped = 0x40000

const processAccess = windows.PROCESS_QUERY_INFORMATION | windows.PROCESS_VM_OPERATION |
	windows.PROCESS_VM_READ | windows.PROCESS_VM_WRITE

type windowsPlatform struct{}

// DefaultPlatform returns the Platform for the running OS.
func DefaultPlatform(cfg *models.Config) Platform {
	return windowsPlatform{}
}

// FindRegion walks the address space for a mapped view of the right size
// that is resident in the working set.
func (windowsPlatform) FindRegion(pid int, size uint64) (uint64, error) {
	h, err := windows.OpenProcess(processAccess, false, uint32(pid))
	if err != nil {
		return 0, errors.Wrapf(err, "OpenProcess(%d)", pid)
	}
	defer windows.CloseHandle(h)

	var mbi windows.MemoryBasicInformation
	var addr uintptr
	for windows.VirtualQueryEx(h, addr, &mbi, unsafe.Sizeof(mbi)) == nil {
		if uint64(mbi.RegionSize) == size && mbi.Type == memMapped {
			ws := windows.PSAPI_WORKING_SET_EX_INFORMATION{
				VirtualAddress: windows.Pointer(unsafe.Pointer(mbi.BaseAddress)),
			}
			err := windows.QueryWorkingSetEx(h, uintptr(unsafe.Pointer(&ws)), uint32(unsafe.Sizeof(ws)))
			if err == nil && ws.VirtualAttributes.Valid() {
				return uint64(mbi.BaseAddress), nil
			}
		}
		next := mbi.BaseAddress + mbi.RegionSize
		if next <= addr {
			break
		}
		addr = next
	}
	return 0, models.ErrRegionNotFound
}

func (windowsPlatform) Open(pid int) (models.Process, error) {
	h, err := windows.OpenProcess(processAccess, false, uint32(pid))
	if err != nil {
		return nil, errors.Wrapf(err, "OpenProcess(%d)", pid)
	}
	return &windowsProcess{pid: pid, handle: h}, nil
}

type windowsProcess struct {
	pid    int
	handle windows.Handle
}

func (p *windowsProcess) Pid() int { return p.pid }

func (p *windowsProcess) MemReadInto(buf []byte, addr uint64) error {
	if len(buf) == 0 {
		return nil
	}
	var n uintptr
	if err := windows.ReadProcessMemory(p.handle, uintptr(addr), &buf[0], uintptr(len(buf)), &n); err != nil {
		return errors.Wrap(err, "ReadProcessMemory")
	}
	if int(n) != len(buf) {
		return errors.Errorf("short read: %d of %d bytes", n, len(buf))
	}
	return nil
}

func (p *windowsProcess) MemWrite(addr uint64, buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	var n uintptr
	if err := windows.WriteProcessMemory(p.handle, uintptr(addr), &buf[0], uintptr(len(buf)), &n); err != nil {
		return errors.Wrap(err, "WriteProcessMemory")
	}
	if int(n) != len(buf) {
		return errors.Errorf("short write: %d of %d bytes", n, len(buf))
	}
	return nil
}

func (p *windowsProcess) Close() error {
	if p.handle == 0 {
		return nil
	}
	err := windows.CloseHandle(p.handle)
	p.handle = 0
	return err
}

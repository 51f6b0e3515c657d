// Package dolphin hooks a running Dolphin emulator and exposes the game's
// variables over its emulated memory.
package dolphin

import (
	"github.com/pkg/errors"

	"github.com/bfbbtools/gamehook/go/endian"
	"github.com/bfbbtools/gamehook/go/models"
)

// GCNBase is the first address of GameCube main memory as seen by the game.
const GCNBase = 0x80000000

// translate maps an emulated address into the host process, given the host
// address of the start of emulated memory.
func translate(emu, region uint64) (uint64, error) {
	if emu < GCNBase {
		return 0, errors.Wrapf(models.ErrInvalidPointer, "%#x is outside emulated memory", emu)
	}
	return emu - GCNBase + region, nil
}

// Resolve follows a pointer path and returns the host address it ends at.
//
// Every element but the last is added to the running address, which is then
// dereferenced as a 4 byte big-endian pointer. The last element is the offset
// of the field itself and is never dereferenced.
func Resolve(mem models.MemIO, region uint64, path []uint64) (uint64, error) {
	if len(path) == 0 {
		return 0, errors.Wrap(models.ErrInvalidPointer, "empty pointer path")
	}
	var addr uint64
	var buf [4]byte
	for _, off := range path[:len(path)-1] {
		host, err := translate(addr+off, region)
		if err != nil {
			return 0, err
		}
		if err := mem.MemReadInto(buf[:], host); err != nil {
			return 0, models.Unhooked("read", host, err)
		}
		ptr, err := endian.Decode[uint32](buf[:])
		if err != nil {
			return 0, err
		}
		addr = uint64(ptr)
	}
	return translate(addr+path[len(path)-1], region)
}

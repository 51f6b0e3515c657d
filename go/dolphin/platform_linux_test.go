package dolphin

import (
	"testing"

	"github.com/prometheus/procfs"
	"github.com/stretchr/testify/require"

	"github.com/bfbbtools/gamehook/go/models"
)

func mapping(start, size uintptr, path string) *procfs.ProcMap {
	return &procfs.ProcMap{StartAddr: start, EndAddr: start + size, Pathname: path}
}

var regionTests = []struct {
	name string
	maps []*procfs.ProcMap
	hint string
	want uint64
	err  error
}{
	{"last of several", []*procfs.ProcMap{
		mapping(0x10000000, models.RegionSize, "/dev/shm/dolphin-emu.1"),
		mapping(0x20000000, 0x1000, "/usr/bin/dolphin-emu"),
		mapping(0x30000000, models.RegionSize, "/dev/shm/dolphin-emu.2"),
		mapping(0x40000000, models.RegionSize, "[heap]"),
	}, "dolphin-emu", 0x30000000, nil},
	{"wrong hint", []*procfs.ProcMap{
		mapping(0x10000000, models.RegionSize, "/memfd:other"),
	}, "dolphin-emu", 0, models.ErrRegionNotFound},
	{"wrong size", []*procfs.ProcMap{
		mapping(0x10000000, models.RegionSize-0x1000, "/dev/shm/dolphin-emu"),
		mapping(0x20000000, models.RegionSize*2, "/dev/shm/dolphin-emu"),
	}, "dolphin-emu", 0, models.ErrRegionNotFound},
	{"empty hint", []*procfs.ProcMap{
		mapping(0x10000000, models.RegionSize, "/dev/shm/dolphin-emu"),
		mapping(0x20000000, models.RegionSize, ""),
		mapping(0x30000000, 0x1000, ""),
	}, "", 0x20000000, nil},
	{"no mappings", nil, "", 0, models.ErrRegionNotFound},
}

func TestPickRegion(t *testing.T) {
	for _, test := range regionTests {
		t.Run(test.name, func(t *testing.T) {
			got, err := pickRegion(test.maps, models.RegionSize, test.hint)
			if test.err != nil {
				require.ErrorIs(t, err, test.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.want, got)
		})
	}
}

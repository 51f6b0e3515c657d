package dolphin

import (
	"github.com/bfbbtools/gamehook/go/game"
	"github.com/bfbbtools/gamehook/go/gamevar"
	"github.com/bfbbtools/gamehook/go/models"
)

// Family is the backend marker for a live Dolphin process.
type Family struct{}

func (Family) Backend() string { return "dolphin" }

// Interface is a GameInterface backed by Dolphin.
type Interface = gamevar.GameInterface[Family]

// Addresses for the US GameCube release.
const (
	LoadingAddr      = 0x803CB7B3
	GameStateAddr    = 0x803CAB43
	GameModeAddr     = 0x803CB8AB
	GameOstrichAddr  = 0x803CB8AF
	PowersAddr       = 0x803C0F17
	ScenePtrAddr     = 0x803C2518
	SpatulaCountAddr = 0x803C205C
	LabDoorAddr      = 0x804F6CB8

	// sWorld is the pause menu's table of worlds and their tasks.
	sWorldAddr      = 0x802F63C8
	sizeOfMenuWorld = 0x24C
	sizeOfMenuTask  = 0x48
)

// TaskCounterAddr is the address of the pointer to a task's menu counter.
func TaskCounterAddr(s game.Spatula) uint64 {
	world, idx := s.Menu()
	return sWorldAddr + uint64(world)*sizeOfMenuWorld + 0xC + uint64(idx)*sizeOfMenuTask + 0x14
}

func newTasks(mem models.MemIO, region uint64) gamevar.Tasks {
	tasks := make(gamevar.Tasks, game.SpatulaCount)
	for _, s := range game.Spatulas() {
		t := &gamevar.Task{
			MenuCount: NewDataMember[int16](mem, region, TaskCounterAddr(s), 0x14),
		}
		if off, ok := s.Offset(); ok {
			// entries of the scene's entity array are 4 byte pointers
			off *= 4
			t.Flags = NewDataMember[uint8](mem, region, ScenePtrAddr, 0x78, off, 0x18)
			t.State = NewDataMember[uint32](mem, region, ScenePtrAddr, 0x78, off, 0x16C)
		}
		tasks[s] = t
	}
	return tasks
}

// NewInterface builds every variable over mem, where region is the host
// address of emulated main memory.
func NewInterface(mem models.MemIO, region uint64) *Interface {
	return &Interface{
		IsLoading:     NewDataMember[bool](mem, region, LoadingAddr),
		GameState:     NewDataMember[game.State](mem, region, GameStateAddr),
		GameMode:      NewDataMember[game.Mode](mem, region, GameModeAddr),
		GameOstrich:   NewDataMember[game.Ostrich](mem, region, GameOstrichAddr),
		InitialPowers: NewDataMember[[2]byte](mem, region, PowersAddr),
		SceneID:       NewDataMember[[4]byte](mem, region, ScenePtrAddr, 0),
		SpatulaCount:  NewDataMember[uint32](mem, region, SpatulaCountAddr),
		Tasks:         newTasks(mem, region),
		LabDoorCost:   NewDataMember[uint32](mem, region, LabDoorAddr),
	}
}

package gamevar

import (
	"github.com/pkg/errors"

	"github.com/bfbbtools/gamehook/go/game"
	"github.com/bfbbtools/gamehook/go/models"
)

// Task groups the variables belonging to one spatula. Flags and State are
// nil for spatulas that are not scene entities.
type Task struct {
	MenuCount Mut[int16]
	Flags     Mut[uint8]
	State     Mut[uint32]
}

type Tasks map[game.Spatula]*Task

// Menu counter values.
const (
	taskUnlocked = 1
	taskComplete = 2
)

// Entity bits touched when collecting a spatula.
const (
	flagEnabled     = 1
	stateCollecting = 4
	stateVisible    = 2
	stateCollected  = 8
)

// GameInterface bundles every variable the library knows about.
type GameInterface[F Family] struct {
	IsLoading     Var[bool]
	GameState     Mut[game.State]
	GameMode      Mut[game.Mode]
	GameOstrich   Var[game.Ostrich]
	InitialPowers Mut[[2]byte]
	SceneID       Var[[4]byte]
	SpatulaCount  Mut[uint32]
	Tasks         Tasks
	LabDoorCost   Mut[uint32]
}

func (g *GameInterface[F]) task(s game.Spatula) (*Task, error) {
	t, ok := g.Tasks[s]
	if !ok {
		return nil, errors.Errorf("no task for spatula %d", int(s))
	}
	return t, nil
}

// StartNewGame starts a new game. It only has an effect on the title screen.
func (g *GameInterface[F]) StartNewGame() error {
	return g.GameMode.Set(game.ModeGame)
}

// UnlockPowers gives the player the Bubble Bowl and the Cruise Bubble.
func (g *GameInterface[F]) UnlockPowers() error {
	return g.InitialPowers.Set([2]byte{1, 1})
}

// CurrentLevel reports the loaded scene. An unknown scene id is
// ErrInvalidData.
func (g *GameInterface[F]) CurrentLevel() (game.Level, error) {
	id, err := g.SceneID.Get()
	if err != nil {
		return 0, err
	}
	level, ok := game.LevelFromSceneID(id)
	if !ok {
		return 0, errors.Wrapf(models.ErrInvalidData, "unknown scene id %q", id[:])
	}
	return level, nil
}

// UnlockTask makes a task visible in the pause menu without completing it.
func (g *GameInterface[F]) UnlockTask(s game.Spatula) error {
	t, err := g.task(s)
	if err != nil {
		return err
	}
	count, err := t.MenuCount.Get()
	if err != nil {
		return err
	}
	if count == taskComplete {
		return nil
	}
	return t.MenuCount.Set(taskUnlocked)
}

// MarkTaskComplete shows the task as gold in the pause menu, which enables
// its warp.
func (g *GameInterface[F]) MarkTaskComplete(s game.Spatula) error {
	t, err := g.task(s)
	if err != nil {
		return err
	}
	return t.MenuCount.Set(taskComplete)
}

func (g *GameInterface[F]) IsTaskComplete(s game.Spatula) (bool, error) {
	t, err := g.task(s)
	if err != nil {
		return false, err
	}
	count, err := t.MenuCount.Get()
	return count == taskComplete, err
}

// CollectSpatula removes a spatula entity from the world. It does not
// complete the task or touch the counter. Nothing is written unless current
// is the spatula's level and the spatula is an entity.
func (g *GameInterface[F]) CollectSpatula(s game.Spatula, current game.Level) error {
	t, err := g.task(s)
	if err != nil {
		return err
	}
	if current != s.Level() || t.Flags == nil || t.State == nil {
		return nil
	}
	flags, err := t.Flags.Get()
	if err != nil {
		return err
	}
	state, err := t.State.Get()
	if err != nil {
		return err
	}
	flags &^= flagEnabled
	state = state&^(stateCollecting|stateVisible) | stateCollected
	if err := t.Flags.Set(flags); err != nil {
		return err
	}
	return t.State.Set(state)
}

// IsSpatulaBeingCollected is true while the collect animation plays.
func (g *GameInterface[F]) IsSpatulaBeingCollected(s game.Spatula, current game.Level) (bool, error) {
	t, err := g.task(s)
	if err != nil {
		return false, err
	}
	if current != s.Level() || t.State == nil {
		return false, nil
	}
	state, err := t.State.Get()
	return state&stateCollecting != 0, err
}

// SetLabDoor changes how many spatulas open the Chum Bucket Lab. It only
// writes while the Chum Bucket is loaded.
func (g *GameInterface[F]) SetLabDoor(value uint32, current game.Level) error {
	if value == 0 {
		return errors.New("lab door cost must be at least 1")
	}
	if current != game.ChumBucket {
		return nil
	}
	// the game compares with >, so store one less
	return g.LabDoorCost.Set(value - 1)
}

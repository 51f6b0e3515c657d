package gamevar

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/bfbbtools/gamehook/go/game"
	"github.com/bfbbtools/gamehook/go/models"
)

// Field is one rendered variable.
type Field struct {
	Name  string
	Value string
}

// Snapshot reads every scalar variable once. Variables that hold invalid
// data or sit behind an invalid pointer are rendered as such; a
// connectivity error aborts the snapshot.
func (g *GameInterface[F]) Snapshot() ([]Field, error) {
	var fields []Field
	add := func(name string, value any, err error) error {
		switch {
		case err == nil:
			fields = append(fields, Field{name, fmt.Sprint(value)})
		case errors.Is(err, models.ErrInvalidData):
			fields = append(fields, Field{name, "<invalid data>"})
		case errors.Is(err, models.ErrInvalidPointer):
			fields = append(fields, Field{name, "<invalid pointer>"})
		default:
			return errors.Wrap(err, name)
		}
		return nil
	}
	loading, err := g.IsLoading.Get()
	if err := add("loading", loading, err); err != nil {
		return nil, err
	}
	state, err := g.GameState.Get()
	if err := add("state", state, err); err != nil {
		return nil, err
	}
	mode, err := g.GameMode.Get()
	if err := add("mode", mode, err); err != nil {
		return nil, err
	}
	ostrich, err := g.GameOstrich.Get()
	if err := add("ostrich", ostrich, err); err != nil {
		return nil, err
	}
	powers, err := g.InitialPowers.Get()
	if err := add("powers", fmt.Sprintf("%d %d", powers[0], powers[1]), err); err != nil {
		return nil, err
	}
	var level any
	lvl, err := g.CurrentLevel()
	if err == nil {
		id := lvl.SceneID()
		level = fmt.Sprintf("%s (%s)", lvl, id[:])
	}
	if err := add("level", level, err); err != nil {
		return nil, err
	}
	spatulas, err := g.SpatulaCount.Get()
	if err := add("spatulas", spatulas, err); err != nil {
		return nil, err
	}
	complete := 0
	for _, s := range game.Spatulas() {
		done, err := g.IsTaskComplete(s)
		if err != nil {
			if models.IsConnectivity(err) {
				return nil, err
			}
			continue
		}
		if done {
			complete++
		}
	}
	fields = append(fields, Field{"tasks", fmt.Sprintf("%d/%d", complete, game.SpatulaCount)})
	cost, err := g.LabDoorCost.Get()
	if err := add("lab door", cost+1, err); err != nil {
		return nil, err
	}
	return fields, nil
}

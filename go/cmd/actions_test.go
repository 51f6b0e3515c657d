package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bfbbtools/gamehook/go/game"
	"github.com/bfbbtools/gamehook/go/mock"
)

func TestApplyScalars(t *testing.T) {
	g := mock.NewGameInterface()
	_, err := Apply(g, []string{"spatulas", "0x20"})
	require.NoError(t, err)
	require.EqualValues(t, 32, mock.Of[uint32](g.SpatulaCount).Value())

	_, err = Apply(g, []string{"mode", "game"})
	require.NoError(t, err)
	require.Equal(t, game.ModeGame, mock.Of[game.Mode](g.GameMode).Value())

	_, err = Apply(g, []string{"powers"})
	require.NoError(t, err)
	require.Equal(t, [2]byte{1, 1}, mock.Of[[2]byte](g.InitialPowers).Value())
}

func TestApplyTasks(t *testing.T) {
	g := mock.NewGameInterface()
	msg, err := Apply(g, []string{"complete", "1", "1"})
	require.NoError(t, err)
	require.Contains(t, msg, game.OnTopOfThePineapple.String())
	done, err := g.IsTaskComplete(game.OnTopOfThePineapple)
	require.NoError(t, err)
	require.True(t, done)

	_, err = Apply(g, []string{"unlock", "1", "1"})
	require.NoError(t, err)
	require.EqualValues(t, 2, mock.Of[int16](g.Tasks[game.OnTopOfThePineapple].MenuCount).Value())

	_, err = Apply(g, []string{"complete", "1", "99"})
	require.Error(t, err)
}

func TestApplyLabDoor(t *testing.T) {
	g := mock.NewGameInterface()
	mock.Of[[4]byte](g.SceneID).Set(game.ChumBucket.SceneID())
	_, err := Apply(g, []string{"lab-door", "40"})
	require.NoError(t, err)
	require.EqualValues(t, 39, mock.Of[uint32](g.LabDoorCost).Value())

	mock.Of[[4]byte](g.SceneID).Set(game.BikiniBottom.SceneID())
	msg, err := Apply(g, []string{"lab-door", "10"})
	require.NoError(t, err)
	require.Contains(t, msg, "unchanged")
	require.EqualValues(t, 39, mock.Of[uint32](g.LabDoorCost).Value())
}

func TestApplyErrors(t *testing.T) {
	g := mock.NewGameInterface()
	_, err := Apply(g, nil)
	require.Error(t, err)
	_, err = Apply(g, []string{"fly"})
	require.Error(t, err)
	_, err = Apply(g, []string{"spatulas"})
	require.Error(t, err)
	_, err = Apply(g, []string{"spatulas", "lots"})
	require.Error(t, err)
	_, err = Apply(g, []string{"state", "nowhere"})
	require.Error(t, err)
}

func TestActionUsage(t *testing.T) {
	usage := ActionUsage()
	for name := range actions {
		require.Contains(t, usage, name)
	}
}

package mock

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bfbbtools/gamehook/go/game"
	"github.com/bfbbtools/gamehook/go/models"
)

func TestDefaults(t *testing.T) {
	g := NewGameInterface()
	state, err := g.GameState.Get()
	require.NoError(t, err)
	require.Equal(t, game.StateFirstTime, state)
	mode, err := g.GameMode.Get()
	require.NoError(t, err)
	require.Equal(t, game.ModeBoot, mode)
	ostrich, err := g.GameOstrich.Get()
	require.NoError(t, err)
	require.Equal(t, game.OstrichInScene, ostrich)
	require.Len(t, g.Tasks, game.SpatulaCount)
}

func TestVarFail(t *testing.T) {
	v := NewVar[uint32](3)
	require.NoError(t, v.Set(4))
	v.Fail(models.ErrUnhooked)
	_, err := v.Get()
	require.ErrorIs(t, err, models.ErrUnhooked)
	require.ErrorIs(t, v.Set(5), models.ErrUnhooked)
	require.EqualValues(t, 4, v.Value())
	v.Fail(nil)
	got, err := v.Get()
	require.NoError(t, err)
	require.EqualValues(t, 4, got)
}

func TestProvider(t *testing.T) {
	p := NewProvider()
	require.True(t, p.IsAvailable())
	require.NoError(t, p.DoWithInterface(func(g *Interface) error {
		return g.SpatulaCount.Set(10)
	}))
	require.EqualValues(t, 10, Of[uint32](p.Interface.SpatulaCount).Value())
}

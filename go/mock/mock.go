// Package mock is an in-memory backend for gamevar. It is useful for testing
// logic against a known game state.
package mock

import (
	"github.com/bfbbtools/gamehook/go/game"
	"github.com/bfbbtools/gamehook/go/gamevar"
)

// Family is the mock backend marker.
type Family struct{}

func (Family) Backend() string { return "mock" }

// Var holds a value in memory.
type Var[T any] struct {
	value T
	err   error
}

var _ gamevar.Mut[uint32] = (*Var[uint32])(nil)

func NewVar[T any](value T) *Var[T] {
	return &Var[T]{value: value}
}

func (v *Var[T]) Get() (T, error) {
	if v.err != nil {
		var zero T
		return zero, v.err
	}
	return v.value, nil
}

func (v *Var[T]) Set(value T) error {
	if v.err != nil {
		return v.err
	}
	v.value = value
	return nil
}

// Fail makes every later Get and Set return err. Fail(nil) heals the var.
func (v *Var[T]) Fail(err error) {
	v.err = err
}

// Value returns the stored value, ignoring any primed error.
func (v *Var[T]) Value() T {
	return v.value
}

// Interface is a GameInterface whose variables are all *Var.
type Interface = gamevar.GameInterface[Family]

// NewGameInterface returns an interface at the title screen state.
func NewGameInterface() *Interface {
	tasks := make(gamevar.Tasks, game.SpatulaCount)
	for _, s := range game.Spatulas() {
		tasks[s] = &gamevar.Task{
			MenuCount: NewVar[int16](0),
			Flags:     NewVar[uint8](0),
			State:     NewVar[uint32](0),
		}
	}
	return &Interface{
		IsLoading:     NewVar(false),
		GameState:     NewVar(game.StateFirstTime),
		GameMode:      NewVar(game.ModeBoot),
		GameOstrich:   NewVar(game.OstrichInScene),
		InitialPowers: NewVar([2]byte{}),
		SceneID:       NewVar([4]byte{}),
		SpatulaCount:  NewVar[uint32](0),
		Tasks:         tasks,
		LabDoorCost:   NewVar[uint32](0),
	}
}

// Provider is always available and hands out the same interface.
type Provider struct {
	Interface *Interface
}

var _ gamevar.Provider[Family] = (*Provider)(nil)

func NewProvider() *Provider {
	return &Provider{Interface: NewGameInterface()}
}

func (p *Provider) DoWithInterface(fn func(*Interface) error) error {
	return fn(p.Interface)
}

func (p *Provider) IsAvailable() bool { return true }

// Of returns the mock behind a variable of the interface so tests can prime
// it. It panics if v was not created by this package.
func Of[T any](v any) *Var[T] {
	return v.(*Var[T])
}

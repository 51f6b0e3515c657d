// Package gamevar defines game variables independently of where they live.
//
// A GameInterface is parameterised by a Family, a marker type naming the
// backend that produced it. Code written against GameInterface[F] for any F
// runs unchanged on a live emulator or on the in-memory mock.
package gamevar

// Var is a readable game variable.
type Var[T any] interface {
	Get() (T, error)
}

// Mut is a game variable that can also be written.
type Mut[T any] interface {
	Var[T]
	Set(T) error
}

// Family marks a backend. Implementations are empty structs.
type Family interface {
	Backend() string
}

// Provider hands out a GameInterface, hooking the backend on demand.
type Provider[F Family] interface {
	// DoWithInterface runs fn against the current interface. Any error
	// from hooking or from fn is returned unchanged.
	DoWithInterface(fn func(*GameInterface[F]) error) error
	// IsAvailable reports whether an interface can be had right now.
	IsAvailable() bool
}

// With is DoWithInterface for functions that produce a value.
func With[F Family, T any](p Provider[F], fn func(*GameInterface[F]) (T, error)) (T, error) {
	var out T
	err := p.DoWithInterface(func(g *GameInterface[F]) error {
		var err error
		out, err = fn(g)
		return err
	})
	return out, err
}

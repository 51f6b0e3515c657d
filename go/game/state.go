// Package game holds the static tables describing the game: its state
// enumerations, levels and spatulas.
package game

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Ostrich is mostly useful to tell whether a scene is active.
type Ostrich uint8

const (
	OstrichLoading Ostrich = iota
	OstrichPlayingMovie
	OstrichInScene
)

var ostrichNames = [...]string{"Loading", "PlayingMovie", "InScene"}

func (o Ostrich) Valid() bool { return int(o) < len(ostrichNames) }

func (o Ostrich) String() string {
	if !o.Valid() {
		return fmt.Sprintf("Ostrich(%d)", uint8(o))
	}
	return ostrichNames[o]
}

// Mode is the macro-level game mode.
type Mode uint8

const (
	ModeBoot Mode = iota
	ModeIntro
	ModeTitle
	ModeStart
	// Switching to ModeLoad on the title screen opens the load menu.
	ModeLoad
	ModeOptions
	ModeSave
	ModePause
	ModeStall
	ModeWorldMap
	ModeMonsterGallery
	ModeConceptArtGallery
	// Switching to ModeGame on the title screen starts a new game.
	ModeGame
)

var modeNames = [...]string{
	"Boot", "Intro", "Title", "Start", "Load", "Options", "Save", "Pause",
	"Stall", "WorldMap", "MonsterGallery", "ConceptArtGallery", "Game",
}

func (m Mode) Valid() bool { return int(m) < len(modeNames) }

func (m Mode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
	return modeNames[m]
}

// State tracks gameplay state.
type State uint8

const (
	StateFirstTime State = iota
	StatePlay
	// Switching to StateLoseChance reloads the level as if the player died.
	StateLoseChance
	StateGameOver
	StateGameStats
	// StateSceneSwitch is set by the game while loading. Setting it by hand
	// crashes the game.
	StateSceneSwitch
	StateDead
	// Switching to StateExit returns to the title screen.
	StateExit
)

var stateNames = [...]string{
	"FirstTime", "Play", "LoseChance", "GameOver", "GameStats", "SceneSwitch", "Dead", "Exit",
}

func (s State) Valid() bool { return int(s) < len(stateNames) }

func (s State) String() string {
	if !s.Valid() {
		return fmt.Sprintf("State(%d)", uint8(s))
	}
	return stateNames[s]
}

// ParseMode looks a Mode up by name, ignoring case.
func ParseMode(name string) (Mode, error) {
	for i, n := range modeNames {
		if strings.EqualFold(n, name) {
			return Mode(i), nil
		}
	}
	return 0, errors.Errorf("unknown game mode %q", name)
}

// ParseState looks a State up by name, ignoring case.
func ParseState(name string) (State, error) {
	for i, n := range stateNames {
		if strings.EqualFold(n, name) {
			return State(i), nil
		}
	}
	return 0, errors.Errorf("unknown game state %q", name)
}

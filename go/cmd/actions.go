package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/bfbbtools/gamehook/go/game"
	"github.com/bfbbtools/gamehook/go/gamevar"
)

type action struct {
	args  string
	desc  string
	nargs int
	run   func(g actionTarget, args []string) (string, error)
}

// actionTarget is the non-generic view of a GameInterface the actions need.
type actionTarget struct {
	spatulaCount func(uint32) error
	state        func(game.State) error
	mode         func(game.Mode) error
	powers       func() error
	newGame      func() error
	level        func() (game.Level, error)
	labDoor      func(uint32, game.Level) error
	unlockTask   func(game.Spatula) error
	completeTask func(game.Spatula) error
	collect      func(game.Spatula, game.Level) error
}

func target[F gamevar.Family](g *gamevar.GameInterface[F]) actionTarget {
	return actionTarget{
		spatulaCount: g.SpatulaCount.Set,
		state:        g.GameState.Set,
		mode:         g.GameMode.Set,
		powers:       g.UnlockPowers,
		newGame:      g.StartNewGame,
		level:        g.CurrentLevel,
		labDoor:      g.SetLabDoor,
		unlockTask:   g.UnlockTask,
		completeTask: g.MarkTaskComplete,
		collect:      g.CollectSpatula,
	}
}

var actions = map[string]action{
	"spatulas": {"<n>", "set the spatula counter", 1, func(g actionTarget, args []string) (string, error) {
		n, err := parseUint32(args[0])
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("spatulas = %d", n), g.spatulaCount(n)
	}},
	"state": {"<name>", "set the global game state", 1, func(g actionTarget, args []string) (string, error) {
		s, err := game.ParseState(args[0])
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("state = %s", s), g.state(s)
	}},
	"mode": {"<name>", "set the game mode", 1, func(g actionTarget, args []string) (string, error) {
		m, err := game.ParseMode(args[0])
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("mode = %s", m), g.mode(m)
	}},
	"powers": {"", "unlock the Bubble Bowl and Cruise Bubble for new games", 0, func(g actionTarget, args []string) (string, error) {
		return "powers unlocked", g.powers()
	}},
	"new-game": {"", "start a new game from the title screen", 0, func(g actionTarget, args []string) (string, error) {
		return "starting new game", g.newGame()
	}},
	"lab-door": {"<n>", "set the spatulas needed to open the Chum Bucket Lab", 1, func(g actionTarget, args []string) (string, error) {
		n, err := parseUint32(args[0])
		if err != nil {
			return "", err
		}
		level, err := g.level()
		if err != nil {
			return "", err
		}
		if level != game.ChumBucket {
			return fmt.Sprintf("not in %s, lab door unchanged", game.ChumBucket), g.labDoor(n, level)
		}
		return fmt.Sprintf("lab door = %d", n), g.labDoor(n, level)
	}},
	"unlock": {"<world> <task>", "unlock a task in the pause menu", 2, func(g actionTarget, args []string) (string, error) {
		s, err := parseSpatula(args)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("unlocked %s", s), g.unlockTask(s)
	}},
	"complete": {"<world> <task>", "mark a task complete in the pause menu", 2, func(g actionTarget, args []string) (string, error) {
		s, err := parseSpatula(args)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("completed %s", s), g.completeTask(s)
	}},
	"collect": {"<world> <task>", "remove a spatula from the current level", 2, func(g actionTarget, args []string) (string, error) {
		s, err := parseSpatula(args)
		if err != nil {
			return "", err
		}
		level, err := g.level()
		if err != nil {
			return "", err
		}
		if level != s.Level() {
			return fmt.Sprintf("%s is not in %s", s, level), nil
		}
		return fmt.Sprintf("collected %s", s), g.collect(s, level)
	}},
}

// Apply runs one named action against g and describes what it did.
func Apply[F gamevar.Family](g *gamevar.GameInterface[F], args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("missing action")
	}
	a, ok := actions[args[0]]
	if !ok {
		return "", errors.Errorf("unknown action %q", args[0])
	}
	if len(args)-1 != a.nargs {
		return "", errors.Errorf("usage: %s %s", args[0], a.args)
	}
	return a.run(target(g), args[1:])
}

// ActionUsage lists every action for help text.
func ActionUsage() string {
	names := make([]string, 0, len(actions))
	for name := range actions {
		names = append(names, name)
	}
	sort.Strings(names)
	var lines []string
	for _, name := range names {
		a := actions[name]
		lines = append(lines, fmt.Sprintf("  %-24s %s", strings.TrimSpace(name+" "+a.args), a.desc))
	}
	return strings.Join(lines, "\n")
}

func parseUint32(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "bad number %q", s)
	}
	return uint32(n), nil
}

// parseSpatula takes the 1-based world and task numbers shown in the pause
// menu.
func parseSpatula(args []string) (game.Spatula, error) {
	world, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, errors.Wrapf(err, "bad world %q", args[0])
	}
	index, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, errors.Wrapf(err, "bad task %q", args[1])
	}
	s, ok := game.SpatulaFromMenu(world-1, index-1)
	if !ok {
		return 0, errors.Errorf("no task %d in world %d", index, world)
	}
	return s, nil
}

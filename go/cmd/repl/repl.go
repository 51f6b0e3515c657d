// Package repl is an interactive shell over a hooked game.
package repl

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/shibukawa/configdir"
	"github.com/spf13/cobra"

	"github.com/bfbbtools/gamehook/go/cmd"
	"github.com/bfbbtools/gamehook/go/dolphin"
	"github.com/bfbbtools/gamehook/go/gamevar"
	"github.com/bfbbtools/gamehook/go/mock"
)

func init() {
	cmd.Register(&cobra.Command{
		Use:   "repl",
		Short: "Interactive shell for reading and changing game variables",
		Args:  cobra.NoArgs,
		RunE:  cmd.RunE(cmd.Both(run[dolphin.Family], run[mock.Family])),
	})
}

func run[F gamevar.Family](c *cmd.GameCmd, p gamevar.Provider[F], args []string) error {
	// get history path
	configDirs := configdir.New("gamehook", "repl")
	cacheDir := configDirs.QueryCacheFolder()
	historyPath := ""
	if err := cacheDir.MkdirAll(); err == nil {
		historyPath = filepath.Join(cacheDir.Path, "history")
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		HistoryFile:     historyPath,
		AutoComplete:    completer(),
	})
	if err != nil {
		return err
	}
	defer rl.Close()
	r := &Repl[F]{Provider: p, Output: rl.Stdout(), Color: c.Color()}
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		} else if err != nil {
			return nil
		}
		if !r.Exec(line) {
			return nil
		}
	}
}

func completer() *readline.PrefixCompleter {
	items := []readline.PrefixCompleterInterface{
		readline.PcItem("status"),
		readline.PcItem("diff"),
		readline.PcItem("hooked"),
		readline.PcItem("help"),
		readline.PcItem("exit"),
	}
	for _, line := range strings.Split(cmd.ActionUsage(), "\n") {
		if f := strings.Fields(line); len(f) > 0 {
			items = append(items, readline.PcItem(f[0]))
		}
	}
	return readline.NewPrefixCompleter(items...)
}

type Repl[F gamevar.Family] struct {
	Provider gamevar.Provider[F]
	Output   io.Writer
	Color    bool

	diff cmd.StatusDiff
}

const help = `  status                   print every variable
  diff                     print variables changed since the last status or diff
  hooked                   report whether the emulator is hooked
  exit                     leave the shell
`

// Exec runs one line. It returns false when the shell should exit.
func (r *Repl[F]) Exec(line string) bool {
	args := strings.Fields(line)
	if len(args) == 0 {
		return true
	}
	switch args[0] {
	case "exit", "quit":
		return false
	case "help", "?":
		fmt.Fprintf(r.Output, "%s%s\n", help, cmd.ActionUsage())
	case "hooked":
		fmt.Fprintln(r.Output, r.Provider.IsAvailable())
	case "status", "diff":
		fields, err := gamevar.With(r.Provider, (*gamevar.GameInterface[F]).Snapshot)
		if err != nil {
			r.diff.Reset()
			fmt.Fprintf(r.Output, "error: %s\n", err)
			break
		}
		fmt.Fprint(r.Output, r.diff.Changes(fields, args[0] == "diff").String(r.Color))
	default:
		msg, err := gamevar.With(r.Provider, func(g *gamevar.GameInterface[F]) (string, error) {
			return cmd.Apply(g, args)
		})
		if err != nil {
			fmt.Fprintf(r.Output, "error: %s\n", err)
		} else {
			fmt.Fprintln(r.Output, msg)
		}
	}
	return true
}

package set

import (
	"github.com/spf13/cobra"

	"github.com/bfbbtools/gamehook/go/cmd"
	"github.com/bfbbtools/gamehook/go/dolphin"
	"github.com/bfbbtools/gamehook/go/gamevar"
	"github.com/bfbbtools/gamehook/go/mock"
)

func init() {
	cmd.Register(&cobra.Command{
		Use:   "set <action> [args...]",
		Short: "Change a game variable",
		Long:  "Change a game variable. Actions:\n\n" + cmd.ActionUsage(),
		Args:  cobra.MinimumNArgs(1),
		RunE:  cmd.RunE(cmd.Both(run[dolphin.Family], run[mock.Family])),
	})
}

func run[F gamevar.Family](c *cmd.GameCmd, p gamevar.Provider[F], args []string) error {
	msg, err := gamevar.With(p, func(g *gamevar.GameInterface[F]) (string, error) {
		return cmd.Apply(g, args)
	})
	if err != nil {
		return err
	}
	c.Printf("%s\n", msg)
	return nil
}

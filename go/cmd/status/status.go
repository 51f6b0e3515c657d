package status

import (
	"github.com/spf13/cobra"

	"github.com/bfbbtools/gamehook/go/cmd"
	"github.com/bfbbtools/gamehook/go/dolphin"
	"github.com/bfbbtools/gamehook/go/gamevar"
	"github.com/bfbbtools/gamehook/go/mock"
)

func init() {
	cmd.Register(&cobra.Command{
		Use:   "status",
		Short: "Print every game variable once",
		Args:  cobra.NoArgs,
		RunE:  cmd.RunE(cmd.Both(run[dolphin.Family], run[mock.Family])),
	})
}

func run[F gamevar.Family](c *cmd.GameCmd, p gamevar.Provider[F], args []string) error {
	fields, err := gamevar.With(p, (*gamevar.GameInterface[F]).Snapshot)
	if err != nil {
		return err
	}
	var diff cmd.StatusDiff
	c.Printf("%s", diff.Changes(fields, false).String(c.Color()))
	return nil
}

package cmd

import (
	"os"

	"github.com/apex/log"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

var commands []*cobra.Command

// Register adds a subcommand. Subcommand packages call it from init.
func Register(c *cobra.Command) {
	commands = append(commands, c)
}

func Main() {
	root := &cobra.Command{
		Use:           "gamehook",
		Short:         "Read and change the state of Battle for Bikini Bottom running in Dolphin",
		Example:       "  gamehook status\n  gamehook watch --interval 500ms\n  gamehook set spatulas 75",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			return global.setup()
		},
	}
	fs := root.PersistentFlags()
	fs.BoolVarP(&global.Verbose, "verbose", "v", false, "verbose output")
	fs.BoolVar(&global.Mock, "mock", false, "run against an in-memory game instead of Dolphin")
	fs.BoolVar(&global.NoColor, "no-color", false, "disable colored output")
	fs.StringSliceVar(&global.ProcessNames, "process", nil, "emulator process name(s) to look for")
	root.AddCommand(commands...)

	if err := root.Execute(); err != nil {
		if global.Config == nil || !global.Config.Verbose {
			log.WithError(err).Error("failed")
		} else {
			PrintError(os.Stderr, err)
		}
		atexit.Exit(1)
	}
	atexit.Exit(0)
}

func init() {
	global.Output = os.Stdout
}

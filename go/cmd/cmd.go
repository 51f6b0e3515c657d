package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/bfbbtools/gamehook/go/dolphin"
	"github.com/bfbbtools/gamehook/go/gamevar"
	"github.com/bfbbtools/gamehook/go/mock"
	"github.com/bfbbtools/gamehook/go/models"
)

// GameCmd is the state shared by every subcommand.
type GameCmd struct {
	Config *models.Config
	Output io.Writer

	Verbose      bool
	Mock         bool
	NoColor      bool
	ProcessNames []string
}

var global GameCmd

// Color reports whether output should be colored.
func (c *GameCmd) Color() bool {
	return c.Config != nil && c.Config.Color
}

func (c *GameCmd) setup() error {
	cfg := models.DefaultConfig()
	env, err := models.LoadEnv("cli")
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(env); err != nil {
		return err
	}
	if len(c.ProcessNames) > 0 {
		cfg.ProcessNames = c.ProcessNames
	}
	cfg.Verbose = cfg.Verbose || c.Verbose
	if f, ok := c.Output.(*os.File); ok && !c.NoColor {
		cfg.Color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	c.Config = cfg

	log.SetHandler(cli.New(cfg.Output))
	if cfg.Verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
	return nil
}

// RunFunc is the body of a subcommand for one backend.
type RunFunc[F gamevar.Family] func(c *GameCmd, p gamevar.Provider[F], args []string) error

// Runner pairs the live and mock instantiations of one generic RunFunc.
type Runner struct {
	live RunFunc[dolphin.Family]
	fake RunFunc[mock.Family]
}

func Both(live RunFunc[dolphin.Family], fake RunFunc[mock.Family]) Runner {
	return Runner{live: live, fake: fake}
}

// Run picks a backend according to c and runs r against it.
func (c *GameCmd) Run(r Runner, args []string) error {
	if c.Mock {
		return r.fake(c, mock.NewProvider(), args)
	}
	p := dolphin.MakeBuilder().WithConfig(c.Config).Build()
	atexit.Register(func() { p.Close() })
	defer p.Close()
	return r.live(c, p, args)
}

// RunE adapts a Runner to cobra.
func RunE(r Runner) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, args []string) error {
		return global.Run(r, args)
	}
}

func (c *GameCmd) Printf(format string, a ...any) {
	fmt.Fprintf(c.Output, format, a...)
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// PrintError writes err and, when its chain carries one, the first stack trace
// up to main.main.
func PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %s\n", err)
	var st stackTracer
	if !errors.As(err, &st) {
		return
	}
	var frames []errors.Frame
	for _, f := range st.StackTrace() {
		frames = append(frames, f)
		if fmt.Sprintf("%n", f) == "main" {
			break
		}
	}
	width := 0
	for _, f := range frames {
		width = max(width, len(fmt.Sprintf("%s:%d", f, f)))
	}
	for _, f := range frames {
		fmt.Fprintf(w, "  %-*s  %n()\n", width, fmt.Sprintf("%s:%d", f, f), f)
	}
}

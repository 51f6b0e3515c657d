// Package watch polls the game and prints variables as they change.
package watch

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/apex/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bfbbtools/gamehook/go/cmd"
	"github.com/bfbbtools/gamehook/go/dolphin"
	"github.com/bfbbtools/gamehook/go/gamevar"
	"github.com/bfbbtools/gamehook/go/mock"
	"github.com/bfbbtools/gamehook/go/models"
)

var (
	interval time.Duration
	count    int
)

func init() {
	c := &cobra.Command{
		Use:   "watch",
		Short: "Poll the game and print variables as they change",
		Args:  cobra.NoArgs,
		RunE:  cmd.RunE(cmd.Both(run[dolphin.Family], run[mock.Family])),
	}
	c.Flags().DurationVarP(&interval, "interval", "i", 250*time.Millisecond, "time between polls")
	c.Flags().IntVarP(&count, "count", "n", 0, "stop after this many polls (0 runs until interrupted)")
	cmd.Register(c)
}

func run[F gamevar.Family](c *cmd.GameCmd, p gamevar.Provider[F], args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	w := &Watcher[F]{
		Provider: p,
		Output:   c.Output,
		Color:    c.Color(),
		Interval: interval,
		Log:      log.Log,
	}
	return w.Run(ctx, count)
}

// Watcher prints a full snapshot whenever the game is hooked and then only
// the fields that changed.
type Watcher[F gamevar.Family] struct {
	Provider gamevar.Provider[F]
	Output   io.Writer
	Color    bool
	Interval time.Duration
	Log      log.Interface

	diff   cmd.StatusDiff
	hooked bool
}

// Run polls until ctx is done or n polls have happened. n <= 0 means no
// limit.
func (w *Watcher[F]) Run(ctx context.Context, n int) error {
	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()
	for i := 0; n <= 0 || i < n; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
			}
		}
		if err := w.Poll(); err != nil {
			return err
		}
	}
	return nil
}

// Poll takes one snapshot. Losing or not finding the game is not an error.
func (w *Watcher[F]) Poll() error {
	fields, err := gamevar.With(w.Provider, (*gamevar.GameInterface[F]).Snapshot)
	switch {
	case err == nil:
	case waiting(err):
		if w.hooked {
			w.Log.WithError(err).Warn("lost game")
		} else {
			w.Log.WithError(err).Debug("waiting for game")
		}
		w.hooked = false
		w.diff.Reset()
		return nil
	default:
		return err
	}
	changes := w.diff.Changes(fields, w.hooked)
	if !w.hooked {
		w.Log.Info("watching")
		w.hooked = true
	}
	if len(changes.Changes) > 0 {
		fmt.Fprint(w.Output, changes.String(w.Color))
	}
	return nil
}

func waiting(err error) bool {
	return models.IsConnectivity(err) ||
		errors.Is(err, models.ErrProcessNotFound) ||
		errors.Is(err, models.ErrRegionNotFound) ||
		errors.Is(err, models.ErrWrongGame)
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ManuelC292/SnakeIA/internal/core"
	"github.com/ManuelC292/SnakeIA/internal/platform/tui"
	"github.com/ManuelC292/SnakeIA/internal/render"
	"github.com/ManuelC292/SnakeIA/internal/replay"
	"github.com/ManuelC292/SnakeIA/internal/storage"
)

var flagWatch bool

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-run a recorded game",
	Long: `Re-run a recorded game from the journal. The id may be any unique
prefix of the full replay id, as shown by "snake replays".

Without --watch the game is re-simulated instantly and the final board is
printed. With --watch it plays back on screen at the recorded speed.

Examples:
  snake replay 3f2a
  snake replay 3f2a --watch`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagWatch, "watch", false, "Play the recording back on screen")
}

func runReplay(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagJournal)
	if err != nil {
		return err
	}
	rec, err := replay.Load(store, args[0])
	store.Close()
	if err != nil {
		return err
	}

	if flagWatch {
		return watchReplay(rec)
	}

	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	res, err := replay.Play(rec)
	if err != nil {
		return err
	}
	logger.Debug("replay finished", "id", rec.ID, "restarts", res.Restarts)

	printResult(cmd.OutOrStdout(), rec, res)
	return nil
}

func watchReplay(rec replay.Recording) error {
	logger, closeLog, err := newFileLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := terminalSize()
	_, err = tui.Run(tui.Options{
		Config: rec.Config,
		Watch:  &rec,
		Logger: logger,
		Width:  width,
		Height: height,
	})
	return err
}

func printResult(w io.Writer, rec replay.Recording, res replay.Result) {
	snap := res.Final
	fmt.Fprintf(w, "Replay   %s\n", rec.ID)
	fmt.Fprintf(w, "Recorded %s\n", rec.CreatedAt.Local().Format("2006-01-02 15:04"))
	fmt.Fprintf(w, "Seed     %d\n", rec.Seed)
	fmt.Fprintf(w, "Ticks    %d (%d inputs, %d restarts)\n", rec.Ticks, len(rec.Inputs), res.Restarts)
	fmt.Fprintf(w, "Duration %s\n", res.Elapsed)
	fmt.Fprintf(w, "Score    %d  length %d  speed %d\n", snap.Score, snap.Len(), snap.Speed)
	fmt.Fprintf(w, "State    %s\n", snap.State)
	fmt.Fprintln(w)

	opts := render.Options{CellWidth: rec.Config.Grid.CellWidth}
	bw, bh := render.RequiredSize(snap.Grid, opts)
	screen := core.NewScreen(bw, bh)
	render.Draw(screen, snap, opts)
	fmt.Fprintln(w, screen.String())
}

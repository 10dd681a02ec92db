package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ManuelC292/SnakeIA/internal/config"
	"github.com/ManuelC292/SnakeIA/internal/platform/tui"
	"github.com/ManuelC292/SnakeIA/internal/replay"
	"github.com/ManuelC292/SnakeIA/internal/storage"
)

var flagRecord bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game on a 20x20 board.

Controls:
  Arrows/WASD - Steer
  Enter       - Restart (after game over)
  Ctrl+S      - Save a text screenshot to ~/.snake/screenshots
  Q/Esc       - Quit

Examples:
  snake play
  snake play --seed 42
  snake play --config ./fast.yaml
  snake play --record=false`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagRecord, "record", true, "Record the session to the replay journal")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	logger, closeLog, err := newFileLogger()
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Info("config loaded", "source", source)

	width, height := terminalSize()
	m, err := tui.Run(tui.Options{
		Config: cfg,
		Seed:   flagSeed,
		Record: flagRecord,
		Logger: logger,
		Width:  width,
		Height: height,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Score: %d\n", m.Session().Score())

	rec, ok := m.Recording()
	if !ok || rec.Ticks == 0 {
		return nil
	}

	store, err := storage.Open(flagJournal)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := replay.Save(store, rec); err != nil {
		return err
	}
	logger.Info("replay saved", "id", rec.ID, "ticks", rec.Ticks, "inputs", len(rec.Inputs))
	fmt.Fprintf(out, "Replay saved: %s (snake replay %s)\n", rec.ID, rec.ID[:8])
	return nil
}

package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/ManuelC292/SnakeIA/internal/storage"
)

var flagLimit int

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "List recorded games",
	Long: `Show the most recent games in the replay journal.

Examples:
  snake replays
  snake replays --limit 50
  snake replays rm 3f2a`,
	Args: cobra.NoArgs,
	RunE: runReplays,
}

var replaysRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a recorded game",
	Args:  cobra.ExactArgs(1),
	RunE:  runReplaysRm,
}

func init() {
	replaysCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of replays to show")
	replaysCmd.AddCommand(replaysRmCmd)
}

func runReplays(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagJournal)
	if err != nil {
		return err
	}
	defer store.Close()

	list, err := store.ListReplays(flagLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(list) == 0 {
		fmt.Fprintln(out, "No replays recorded yet.")
		fmt.Fprintln(out, "Run 'snake play' to record one.")
		return nil
	}

	fmt.Fprintln(out, replayTable(list))
	return nil
}

func replayTable(list []storage.ReplaySummary) *table.Table {
	rows := make([][]string, len(list))
	for i, r := range list {
		rows[i] = []string{
			r.ID[:min(8, len(r.ID))],
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
			strconv.FormatInt(r.Seed, 10),
			strconv.FormatUint(r.Ticks, 10),
			strconv.Itoa(r.InputCount),
		}
	}

	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		}).
		Headers("ID", "RECORDED", "SEED", "TICKS", "INPUTS").
		Rows(rows...)
}

func runReplaysRm(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagJournal)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.DeleteReplay(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
	return nil
}

/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/SvenDH/hearthchess/game"
	"github.com/SvenDH/hearthchess/store"
)

var historyLimit int

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently finished games",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := settings(cmd)
		if err != nil {
			return err
		}
		defer log.Sync()

		repo, err := store.Open(cfg.History)
		if err != nil {
			return err
		}
		defer repo.Close()

		matches, err := repo.Recent(cmd.Context(), historyLimit)
		if err != nil {
			return err
		}
		stats, err := repo.Stats(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "white %d - %d black\n\n", stats[game.White], stats[game.Black])
		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tENDED\tWINNER\tTURNS\tHEALTH\tLENGTH")
		for _, m := range matches {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d-%d\t%s\n",
				m.Id, m.Ended.Format(time.DateTime), m.Winner, m.Turns,
				m.WhiteHealth, m.BlackHealth, m.Duration().Round(time.Second))
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "number of games to show")
}

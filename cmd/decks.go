/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/SvenDH/hearthchess/game"
)

// decksCmd represents the decks command
var decksCmd = &cobra.Command{
	Use:   "decks [file]",
	Short: "Check a deck file and show its contents",
	Long: `Validates a deck file against the card catalogue and prints the
cards and mana curve of each side. Without a file the built-in armies
are shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat := game.DefaultCatalogue()
		d := game.DefaultDecks()
		if len(args) == 1 {
			var err error
			if d, err = game.LoadDecks(args[0], cat); err != nil {
				return err
			}
		}
		out := cmd.OutOrStdout()
		for _, side := range []game.Side{game.White, game.Black} {
			name := d.WhiteName
			if side == game.Black {
				name = d.BlackName
			}
			cards := d.For(side)
			count := map[string]int{}
			total := 0
			for _, c := range cards {
				count[c.Kind()]++
				cost, err := cat.Cost(c)
				if err != nil {
					return err
				}
				total += cost
			}
			kinds := make([]string, 0, len(count))
			for k := range count {
				kinds = append(kinds, k)
			}
			sort.Strings(kinds)

			fmt.Fprintf(out, "%s (%s): %d cards, average cost %.2f\n", name, side, len(cards), float64(total)/float64(len(cards)))
			for _, k := range kinds {
				fmt.Fprintf(out, "  %2d x %s\n", count[k], k)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(decksCmd)
}

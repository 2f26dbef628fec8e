/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/SvenDH/hearthchess/game"
)

// cardsCmd represents the cards command
var cardsCmd = &cobra.Command{
	Use:   "cards",
	Short: "List the card catalogue",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tCOST\tTYPE\tEFFECT")
		for _, def := range game.DefaultCatalogue().Cards {
			effect := ""
			if def.Effect != nil && def.Effect.GainMana > 0 {
				effect = fmt.Sprintf("gain %d mana", def.Effect.GainMana)
			}
			fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", def.Name, def.Cost, def.Type, effect)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(cardsCmd)
}

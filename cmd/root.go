/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SvenDH/hearthchess/config"
	"github.com/SvenDH/hearthchess/game"
	"github.com/SvenDH/hearthchess/logging"
)

var (
	configPath string
	logLevel   string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hearthchess",
	Short: "Chess pieces as a collectible card game",
	Long: `HearthChess is a two player card game where the decks are chess
armies. Pieces cost mana and become minions on the board.

Run "hearthchess play" to start a game against the computer.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "hearthchess.yaml", "settings file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level, overrides the settings file")
}

// settings loads the config file and builds the logger for a command.
func settings(cmd *cobra.Command) (config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, nil, err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, log, nil
}

// decks returns the deck file from the settings, or the built-in armies.
func decks(cfg config.Config) (game.Decks, error) {
	if cfg.Decks == "" {
		return game.DefaultDecks(), nil
	}
	return game.LoadDecks(cfg.Decks, game.DefaultCatalogue())
}

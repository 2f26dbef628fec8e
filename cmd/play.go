/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SvenDH/hearthchess/assets"
	"github.com/SvenDH/hearthchess/game"
	"github.com/SvenDH/hearthchess/layout"
	"github.com/SvenDH/hearthchess/store"
	"github.com/SvenDH/hearthchess/ui"
	"github.com/SvenDH/hearthchess/ui/screens"
)

var (
	assetsDir  string
	fullscreen bool
	noHistory  bool
)

// playCmd represents the play command
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game as white against the computer",
	Long: `Opens the game window. Art is read from <assets>/img/<name>.png;
missing images are replaced by generated placeholders. Finished games
are stored in the history database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := settings(cmd)
		if err != nil {
			return err
		}
		defer log.Sync()
		if cmd.Flags().Changed("assets") {
			cfg.Assets = assetsDir
		}
		if cmd.Flags().Changed("fullscreen") {
			cfg.Window.Fullscreen = fullscreen
		}

		d, err := decks(cfg)
		if err != nil {
			return err
		}
		g := game.New(d,
			game.WithConfig(cfg.Game()),
			game.WithLogger(log.Named("game")),
		)
		log.Info("new game",
			zap.Stringer("id", g.Id),
			zap.String("white", d.WhiteName),
			zap.String("black", d.BlackName),
		)

		var art fs.FS
		if cfg.Assets != "" {
			art = os.DirFS(cfg.Assets)
		}
		loader := assets.NewLoader(art, assets.Manifest(g.Catalogue()), log)

		var rec screens.Recorder
		if !noHistory && cfg.History != "" {
			repo, err := store.Open(cfg.History)
			if err != nil {
				return err
			}
			defer repo.Close()
			rec = repo
		}

		match := screens.NewMatch(g, loader, rec, log)
		prog := &ui.Program{
			M:         match,
			Width:     layout.ScreenWidth,
			Height:    layout.ScreenHeight,
			ShowDebug: cfg.Window.ShowDebug,
		}
		ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
		ebiten.SetWindowTitle("HearthChess")
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
		ebiten.SetFullscreen(cfg.Window.Fullscreen)
		if err := ebiten.RunGame(prog); err != nil {
			return err
		}
		return match.Err
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().StringVar(&assetsDir, "assets", "", "directory containing img/*.png")
	playCmd.Flags().BoolVar(&fullscreen, "fullscreen", false, "start in fullscreen")
	playCmd.Flags().BoolVar(&noHistory, "no-history", false, "do not record the game")
}

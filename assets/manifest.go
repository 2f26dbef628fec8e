// Package assets preloads the table art. Images are decoded into plain
// image.Image values so the loader runs without a graphics context; the
// ui package uploads them to the GPU.
package assets

import (
	"fmt"
	"strings"

	"github.com/SvenDH/hearthchess/game"
	"github.com/SvenDH/hearthchess/layout"
)

type Kind int8

const (
	KindPlain Kind = iota
	KindCard
	KindToken
	KindBack
	KindMana
)

// Spec is one image the game needs and the size it is drawn at.
type Spec struct {
	Name string
	W, H int
	Kind Kind
	// Label is printed on generated placeholder art.
	Label string
}

var tableArt = []Spec{
	{Name: "board", W: layout.ScreenWidth, H: layout.ScreenHeight},
	{Name: "enemy_turn", W: 600, H: 160, Label: "ENEMY TURN"},
	{Name: "discard", W: 190, H: 256, Label: "X"},
	{Name: "confirm", W: int(layout.Confirm.W), H: int(layout.Confirm.H), Label: "CONFIRM"},
	{Name: "end_turn", W: int(layout.EndTurn.W), H: int(layout.EndTurn.H), Label: "END TURN"},
	{Name: "arrow", W: 256, H: 48},
	{Name: "mana_full", W: layout.ManaSize, H: layout.ManaSize, Kind: KindMana},
	{Name: "mana_empty", W: layout.ManaSize, H: layout.ManaSize, Kind: KindMana},
	{Name: "summon", W: layout.TokenWidth, H: layout.TokenHeight},
	{Name: "back", W: layout.CardWidth, H: layout.CardHeight, Kind: KindBack},
}

// Manifest lists every image for the catalogue: the fixed table pieces,
// a card for each side and kind, and a board token for every minion.
func Manifest(cat *game.Catalogue) []Spec {
	specs := append([]Spec{}, tableArt...)
	for _, def := range cat.Cards {
		if !def.IsMinion() {
			specs = append(specs, Spec{
				Name: strings.ToLower(def.Name), W: layout.CardWidth, H: layout.CardHeight,
				Kind: KindCard, Label: cardLabel(def),
			})
			continue
		}
		for _, side := range []game.Side{game.White, game.Black} {
			id := game.NewCardID(side, def.Name)
			specs = append(specs,
				Spec{Name: string(id), W: layout.CardWidth, H: layout.CardHeight, Kind: KindCard, Label: cardLabel(def)},
				Spec{Name: id.Token(), W: layout.TokenWidth, H: layout.TokenHeight, Kind: KindToken, Label: def.Name},
			)
		}
	}
	return specs
}

func cardLabel(def *game.CardDef) string {
	return fmt.Sprintf("%s {%d}", def.Name, def.Cost)
}

package game

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed decks.yaml
var decksYAML []byte

// Rand is the source of randomness for draws.
type Rand interface {
	IntN(n int) int
}

type Deck struct {
	cards []CardID
}

func NewDeck(cards ...CardID) *Deck {
	return &Deck{cards: append([]CardID{}, cards...)}
}

func (d *Deck) Len() int { return len(d.cards) }

func (d *Deck) Cards() []CardID {
	return append([]CardID{}, d.cards...)
}

// Draw removes a uniformly random card. ok is false for an empty deck.
func (d *Deck) Draw(rng Rand) (CardID, bool) {
	if len(d.cards) == 0 {
		return "", false
	}
	i := rng.IntN(len(d.cards))
	card := d.cards[i]
	d.cards = append(d.cards[:i], d.cards[i+1:]...)
	return card, true
}

// Return puts a card back at the bottom of the deck.
func (d *Deck) Return(card CardID) {
	d.cards = append(d.cards, card)
}

// DeckFile is the YAML layout of a deck list.
type DeckFile struct {
	Decks []DeckEntry `yaml:"decks"`
}

type DeckEntry struct {
	Name  string      `yaml:"name"`
	Side  string      `yaml:"side"`
	Cards []CardEntry `yaml:"cards"`
}

type CardEntry struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

// Decks holds one starting deck list per side.
type Decks struct {
	White, Black []CardID
	WhiteName    string
	BlackName    string
}

func (d Decks) For(side Side) []CardID {
	if side == Black {
		return d.Black
	}
	return d.White
}

// ParseDecks reads a deck file and checks it against the catalogue: each
// side appears exactly once and only holds minions.
func ParseDecks(data []byte, cat *Catalogue) (Decks, error) {
	var df DeckFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return Decks{}, fmt.Errorf("parse deck YAML: %w", err)
	}
	var decks Decks
	seen := map[Side]bool{}
	for _, entry := range df.Decks {
		side, ok := ParseSide(entry.Side)
		if !ok {
			return Decks{}, fmt.Errorf("%w: deck %q has unknown side %q", ErrInvalidDeck, entry.Name, entry.Side)
		}
		if seen[side] {
			return Decks{}, fmt.Errorf("%w: more than one %s deck", ErrInvalidDeck, side)
		}
		seen[side] = true
		var cards []CardID
		for _, c := range entry.Cards {
			def, ok := cat.Lookup(c.Name)
			if !ok {
				return Decks{}, fmt.Errorf("%w: deck %q: %w: %s", ErrInvalidDeck, entry.Name, ErrUnknownCard, c.Name)
			}
			if !def.IsMinion() {
				return Decks{}, fmt.Errorf("%w: deck %q: %s is not a minion", ErrInvalidDeck, entry.Name, c.Name)
			}
			if c.Count < 1 {
				return Decks{}, fmt.Errorf("%w: deck %q: %s has count %d", ErrInvalidDeck, entry.Name, c.Name, c.Count)
			}
			for range c.Count {
				cards = append(cards, NewCardID(side, def.Name))
			}
		}
		if side == White {
			decks.White, decks.WhiteName = cards, entry.Name
		} else {
			decks.Black, decks.BlackName = cards, entry.Name
		}
	}
	if !seen[White] || !seen[Black] {
		return Decks{}, fmt.Errorf("%w: need one white and one black deck", ErrInvalidDeck)
	}
	return decks, nil
}

func LoadDecks(path string, cat *Catalogue) (Decks, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Decks{}, err
	}
	return ParseDecks(data, cat)
}

// DefaultDecks is the built-in fifteen card army for each side.
func DefaultDecks() Decks {
	decks, err := ParseDecks(decksYAML, DefaultCatalogue())
	if err != nil {
		panic(err)
	}
	return decks
}

package game

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

//go:embed cards.txt
var cardsText string

type CardType string

const (
	TypeMinion CardType = "minion"
	TypeSpell  CardType = "spell"
)

// SpellEffect is what a spell does when played.
type SpellEffect struct {
	GainMana int `parser:"'gain' '{' @Int '}'"`
}

// CardDef is one line of the catalogue: `Name {cost} minion` or
// `Name {cost} spell: gain {n}`.
type CardDef struct {
	Name   string       `parser:"@Ident"`
	Cost   int          `parser:"'{' @Int '}'"`
	Type   CardType     `parser:"@('minion' | 'spell')"`
	Effect *SpellEffect `parser:"(':' @@)?"`
}

func (d *CardDef) IsMinion() bool { return d.Type == TypeMinion }

type Catalogue struct {
	Cards []*CardDef `parser:"@@*"`

	index map[string]*CardDef
}

var catalogueParser = participle.MustBuild[Catalogue](
	participle.Lexer(lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `#[^\n]*`},
		{Name: "Whitespace", Pattern: `[\s]+`},
		{Name: "Ident", Pattern: `[a-zA-Z]\w*`},
		{Name: "Int", Pattern: `\d+`},
		{Name: "Punct", Pattern: `[{}:]`},
	})),
	participle.Elide("Comment", "Whitespace"),
	participle.CaseInsensitive("Ident"),
)

var defaultCatalogue = mustParseCatalogue(cardsText)

func ParseCatalogue(text string) (*Catalogue, error) {
	c, err := catalogueParser.ParseString("", text)
	if err != nil {
		return nil, fmt.Errorf("parse catalogue: %w", err)
	}
	c.index = make(map[string]*CardDef, len(c.Cards))
	for _, d := range c.Cards {
		d.Type = CardType(strings.ToLower(string(d.Type)))
		key := strings.ToLower(d.Name)
		if _, dup := c.index[key]; dup {
			return nil, fmt.Errorf("parse catalogue: duplicate card %q", d.Name)
		}
		c.index[key] = d
	}
	return c, nil
}

func mustParseCatalogue(text string) *Catalogue {
	c, err := ParseCatalogue(text)
	if err != nil {
		panic(err)
	}
	return c
}

// DefaultCatalogue is the built-in set of chess piece cards and the coin.
func DefaultCatalogue() *Catalogue {
	return defaultCatalogue
}

func (c *Catalogue) Lookup(kind string) (*CardDef, bool) {
	d, ok := c.index[strings.ToLower(kind)]
	return d, ok
}

// Def resolves a card to its catalogue entry.
func (c *Catalogue) Def(id CardID) (*CardDef, error) {
	d, ok := c.Lookup(id.Kind())
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCard, id)
	}
	return d, nil
}

func (c *Catalogue) Cost(id CardID) (int, error) {
	d, err := c.Def(id)
	if err != nil {
		return 0, err
	}
	return d.Cost, nil
}

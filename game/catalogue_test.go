package game

import (
	"errors"
	"testing"
)

func TestDefaultCatalogueCosts(t *testing.T) {
	cat := DefaultCatalogue()
	costs := map[CardID]int{
		"w_pawn":   1,
		"b_bishop": 3,
		"w_rook":   3,
		"b_knight": 4,
		"w_queen":  7,
		Coin:       0,
	}
	for id, want := range costs {
		got, err := cat.Cost(id)
		if err != nil {
			t.Fatalf("Cost(%s): %v", id, err)
		}
		if got != want {
			t.Fatalf("Cost(%s) = %d, want %d", id, got, want)
		}
	}
	if _, err := cat.Cost("w_king"); !errors.Is(err, ErrUnknownCard) {
		t.Fatalf("expected ErrUnknownCard, got %v", err)
	}
	coin, _ := cat.Def(Coin)
	if coin.IsMinion() || coin.Effect == nil || coin.Effect.GainMana != 1 {
		t.Fatalf("unexpected coin definition %+v", coin)
	}
}

func TestParseCatalogue(t *testing.T) {
	cat, err := ParseCatalogue(`
# a comment
Archer {2} MINION
Bolt {1} spell: gain {3}
`)
	if err != nil {
		t.Fatalf("ParseCatalogue: %v", err)
	}
	archer, ok := cat.Lookup("archer")
	if !ok || archer.Cost != 2 || !archer.IsMinion() {
		t.Fatalf("unexpected archer %+v", archer)
	}
	if _, err := ParseCatalogue("A {1} minion\na {2} minion"); err == nil {
		t.Fatalf("expected duplicate card error")
	}
	if _, err := ParseCatalogue("A {x} minion"); err == nil {
		t.Fatalf("expected syntax error")
	}
}

func TestCardID(t *testing.T) {
	id := NewCardID(Black, "Knight")
	if id != "b_knight" {
		t.Fatalf("unexpected id %s", id)
	}
	if side, ok := id.Side(); !ok || side != Black {
		t.Fatalf("expected black side")
	}
	if id.Kind() != "knight" || id.Token() != "b_m_knight" {
		t.Fatalf("unexpected kind %q token %q", id.Kind(), id.Token())
	}
	if _, ok := Coin.Side(); ok {
		t.Fatalf("coin has no side")
	}
	if Coin.Kind() != "coin" || Coin.Token() != "" {
		t.Fatalf("unexpected coin kind %q token %q", Coin.Kind(), Coin.Token())
	}
}

func TestDefaultDecks(t *testing.T) {
	decks := DefaultDecks()
	for _, side := range []Side{White, Black} {
		cards := decks.For(side)
		if len(cards) != 15 {
			t.Fatalf("%s deck has %d cards", side, len(cards))
		}
		count := map[string]int{}
		for _, c := range cards {
			if s, _ := c.Side(); s != side {
				t.Fatalf("%s deck holds %s", side, c)
			}
			count[c.Kind()]++
		}
		if count["pawn"] != 8 || count["rook"] != 2 || count["knight"] != 2 || count["bishop"] != 2 || count["queen"] != 1 {
			t.Fatalf("unexpected %s deck %v", side, count)
		}
	}
}

func TestParseDecksRejects(t *testing.T) {
	cat := DefaultCatalogue()
	cases := map[string]string{
		"unknown card": `
decks:
  - {name: a, side: white, cards: [{name: king, count: 1}]}
  - {name: b, side: black, cards: [{name: pawn, count: 1}]}`,
		"spell in deck": `
decks:
  - {name: a, side: white, cards: [{name: coin, count: 1}]}
  - {name: b, side: black, cards: [{name: pawn, count: 1}]}`,
		"missing side": `
decks:
  - {name: a, side: white, cards: [{name: pawn, count: 1}]}`,
		"bad side": `
decks:
  - {name: a, side: red, cards: [{name: pawn, count: 1}]}`,
		"zero count": `
decks:
  - {name: a, side: white, cards: [{name: pawn, count: 0}]}
  - {name: b, side: black, cards: [{name: pawn, count: 1}]}`,
	}
	for name, data := range cases {
		if _, err := ParseDecks([]byte(data), cat); !errors.Is(err, ErrInvalidDeck) {
			t.Fatalf("%s: expected ErrInvalidDeck, got %v", name, err)
		}
	}
}

type seqRand struct{ picks []int }

func (r *seqRand) IntN(n int) int {
	i := r.picks[0] % n
	r.picks = r.picks[1:]
	return i
}

func TestDeckDrawAndReturn(t *testing.T) {
	d := NewDeck(ids(White, "pawn", "rook", "queen")...)
	card, ok := d.Draw(&seqRand{picks: []int{1}})
	if !ok || card != "w_rook" {
		t.Fatalf("expected rook, got %s", card)
	}
	d.Return(card)
	if got := d.Cards(); got[len(got)-1] != "w_rook" {
		t.Fatalf("expected rook at the bottom, got %v", got)
	}
	empty := NewDeck()
	if _, ok := empty.Draw(firstRand{}); ok {
		t.Fatalf("expected empty deck draw to fail")
	}
}

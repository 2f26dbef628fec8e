package game

import (
	"errors"
	"testing"
	"time"
)

// firstRand always draws the top card so tests can predict hands.
type firstRand struct{}

func (firstRand) IntN(int) int { return 0 }

var epoch = time.Unix(1_700_000_000, 0)

func ids(side Side, kinds ...string) []CardID {
	cards := make([]CardID, len(kinds))
	for i, k := range kinds {
		cards[i] = NewCardID(side, k)
	}
	return cards
}

func newTestGame(t *testing.T, decks Decks) *Game {
	t.Helper()
	return New(decks, WithRand(firstRand{}))
}

func startTurns(t *testing.T, g *Game) {
	t.Helper()
	if err := g.SetState(StateTurnWhite, epoch); err != nil {
		t.Fatalf("SetState: %v", err)
	}
}

func TestNewDealsOpeningHands(t *testing.T) {
	g := newTestGame(t, DefaultDecks())

	if g.State != StateLoading {
		t.Fatalf("expected loading state, got %s", g.State)
	}
	if len(g.White.Hand) != 3 {
		t.Fatalf("expected white to hold 3 cards, got %d", len(g.White.Hand))
	}
	if len(g.Black.Hand) != 5 {
		t.Fatalf("expected black to hold 5 cards, got %d", len(g.Black.Hand))
	}
	if g.Black.Hand[4] != Coin {
		t.Fatalf("expected black's last card to be the coin, got %s", g.Black.Hand[4])
	}
	if g.White.Deck.Len() != 12 || g.Black.Deck.Len() != 11 {
		t.Fatalf("unexpected deck sizes %d/%d", g.White.Deck.Len(), g.Black.Deck.Len())
	}
	if g.White.Health != 20 || g.Black.Health != 30 {
		t.Fatalf("unexpected health %d/%d", g.White.Health, g.Black.Health)
	}
	if len(g.Mulligan.Marked) != 3 {
		t.Fatalf("expected 3 mulligan marks, got %d", len(g.Mulligan.Marked))
	}
	if n := len(g.EventsOfType(EventDeal)); n != 2 {
		t.Fatalf("expected 2 deal events, got %d", n)
	}
}

func TestStateNames(t *testing.T) {
	for _, name := range []string{"loading", "mulligan", "mulligan_anim", "turn_w", "turn_b", "game_over"} {
		s, err := ParseState(name)
		if err != nil {
			t.Fatalf("ParseState(%q): %v", name, err)
		}
		if s.String() != name {
			t.Fatalf("expected %q, got %q", name, s.String())
		}
	}
	if _, err := ParseState("turn_x"); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
	g := newTestGame(t, DefaultDecks())
	if err := g.SetStateName("bogus", epoch); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
	if g.State != StateLoading {
		t.Fatalf("state changed after invalid name: %s", g.State)
	}
}

func TestMulliganReplacesMarkedCardsInPlace(t *testing.T) {
	decks := Decks{
		White: ids(White, "queen", "pawn", "pawn", "rook"),
		Black: ids(Black, "pawn", "pawn", "pawn", "pawn", "pawn"),
	}
	g := newTestGame(t, decks)
	g.SetState(StateMulligan, epoch)

	if err := g.ToggleMulligan(0); err != nil {
		t.Fatalf("ToggleMulligan: %v", err)
	}
	if err := g.ToggleMulligan(3); !errors.Is(err, ErrNoSuchCard) {
		t.Fatalf("expected ErrNoSuchCard, got %v", err)
	}
	if err := g.ConfirmMulligan(epoch); err != nil {
		t.Fatalf("ConfirmMulligan: %v", err)
	}

	if g.State != StateMulliganAnim {
		t.Fatalf("expected mulligan_anim, got %s", g.State)
	}
	if g.White.Hand[0] != "w_rook" {
		t.Fatalf("expected the queen to be replaced by the rook, got %s", g.White.Hand[0])
	}
	if g.Mulligan.PreHand[0] != "w_queen" {
		t.Fatalf("expected pre-mulligan hand to keep the queen, got %s", g.Mulligan.PreHand[0])
	}
	if cards := g.White.Deck.Cards(); len(cards) != 1 || cards[0] != "w_queen" {
		t.Fatalf("expected the queen back in the deck, got %v", cards)
	}
	if err := g.ToggleMulligan(0); !errors.Is(err, ErrWrongState) {
		t.Fatalf("expected ErrWrongState, got %v", err)
	}
}

func TestMulliganAnimationStartsFirstTurn(t *testing.T) {
	g := newTestGame(t, DefaultDecks())
	g.SetState(StateMulligan, epoch)
	g.ConfirmMulligan(epoch)

	g.Tick(epoch.Add(3900 * time.Millisecond))
	if g.State != StateMulliganAnim {
		t.Fatalf("animation ended early: %s", g.State)
	}
	now := epoch.Add(4 * time.Second)
	g.Tick(now)
	if g.State != StateTurnWhite {
		t.Fatalf("expected turn_w, got %s", g.State)
	}
	if g.Turn != 1 || g.White.MaxMana != 1 || g.White.Mana != 1 {
		t.Fatalf("unexpected turn %d mana %d/%d", g.Turn, g.White.Mana, g.White.MaxMana)
	}
	if len(g.White.Hand) != 4 {
		t.Fatalf("expected a card drawn at turn start, hand is %d", len(g.White.Hand))
	}
	if g.Anim.Kind != AnimDraw || g.Anim.Index != 3 {
		t.Fatalf("expected draw animation on the new card, got %+v", g.Anim)
	}
	g.Tick(now.Add(500 * time.Millisecond))
	if g.Anim.Kind != AnimNone {
		t.Fatalf("expected draw animation to finish, got %+v", g.Anim)
	}
}

func TestPlayMinion(t *testing.T) {
	g := newTestGame(t, DefaultDecks())
	startTurns(t, g)

	slot, err := g.PlayCard(White, 0, 0, epoch)
	if err != nil {
		t.Fatalf("PlayCard: %v", err)
	}
	if slot != 0 || len(g.White.Board) != 1 || g.White.Board[0].Card != "w_pawn" {
		t.Fatalf("unexpected board %+v", g.White.Board)
	}
	if g.White.Mana != 0 {
		t.Fatalf("expected mana spent, have %d", g.White.Mana)
	}
	if g.Anim.Kind != AnimSummon || g.Anim.Index != 0 {
		t.Fatalf("expected summon animation, got %+v", g.Anim)
	}
	if _, err := g.PlayCard(White, 0, 0, epoch); !errors.Is(err, ErrNotEnoughMana) {
		t.Fatalf("expected ErrNotEnoughMana, got %v", err)
	}
	if _, err := g.PlayCard(Black, 0, 0, epoch); !errors.Is(err, ErrNotYourTurn) {
		t.Fatalf("expected ErrNotYourTurn, got %v", err)
	}
	if _, err := g.PlayCard(White, 42, 0, epoch); !errors.Is(err, ErrNoSuchCard) {
		t.Fatalf("expected ErrNoSuchCard, got %v", err)
	}
}

func TestPlayMiddleCardShiftsHand(t *testing.T) {
	g := newTestGame(t, DefaultDecks())
	startTurns(t, g)
	g.White.Hand = ids(White, "pawn", "rook", "bishop", "knight")
	g.White.Mana = 3

	if _, err := g.PlayCard(White, 1, 0, epoch); err != nil {
		t.Fatalf("PlayCard: %v", err)
	}
	want := ids(White, "pawn", "bishop", "knight")
	if len(g.White.Hand) != len(want) {
		t.Fatalf("expected hand %v, got %v", want, g.White.Hand)
	}
	for i, card := range want {
		if g.White.Hand[i] != card {
			t.Fatalf("expected hand %v, got %v", want, g.White.Hand)
		}
	}
	if g.White.Board[0].Card != "w_rook" {
		t.Fatalf("expected the rook on the board, got %v", g.White.Board)
	}
}

func TestPlayOutsideTurn(t *testing.T) {
	g := newTestGame(t, DefaultDecks())
	if _, err := g.PlayCard(White, 0, 0, epoch); !errors.Is(err, ErrWrongState) {
		t.Fatalf("expected ErrWrongState, got %v", err)
	}
}

func TestSummonInsertsAtSlot(t *testing.T) {
	p := NewPlayer(White, nil, 20)
	p.Summon("w_pawn", 0)
	p.Summon("w_rook", 5)
	at := p.Summon("w_queen", 1)

	if at != 1 {
		t.Fatalf("expected slot 1, got %d", at)
	}
	want := []CardID{"w_pawn", "w_queen", "w_rook"}
	for i, m := range p.Board {
		if m.Card != want[i] {
			t.Fatalf("slot %d: expected %s, got %s", i, want[i], m.Card)
		}
	}
	if p.Board[0].Id == p.Board[1].Id {
		t.Fatalf("expected distinct minion ids")
	}
}

func TestBoardFull(t *testing.T) {
	g := newTestGame(t, DefaultDecks())
	startTurns(t, g)
	for range MaxBoard {
		g.White.Summon("w_pawn", 0)
	}
	g.White.Mana = 10
	if _, err := g.PlayCard(White, 0, 0, epoch); !errors.Is(err, ErrBoardFull) {
		t.Fatalf("expected ErrBoardFull, got %v", err)
	}
}

func TestUpkeepCapsMana(t *testing.T) {
	p := NewPlayer(White, nil, 20)
	for range 12 {
		p.Upkeep()
	}
	if p.MaxMana != MaxMana || p.Mana != MaxMana {
		t.Fatalf("expected mana capped at %d, got %d/%d", MaxMana, p.Mana, p.MaxMana)
	}
}

func TestCoinGainsMana(t *testing.T) {
	g := newTestGame(t, DefaultDecks())
	startTurns(t, g)
	g.EndTurn(White, epoch)

	coin := len(g.Black.Hand) - 2
	if g.Black.Hand[coin] != Coin {
		t.Fatalf("expected coin at %d, hand %v", coin, g.Black.Hand)
	}
	slot, err := g.PlayCard(Black, coin, 0, epoch)
	if err != nil {
		t.Fatalf("PlayCard: %v", err)
	}
	if slot != -1 {
		t.Fatalf("expected spell to return -1, got %d", slot)
	}
	if g.Black.Mana != 2 {
		t.Fatalf("expected 2 mana after the coin, got %d", g.Black.Mana)
	}
	if len(g.Black.Board) != 0 {
		t.Fatalf("coin must not reach the board")
	}
}

func TestHeroPower(t *testing.T) {
	g := newTestGame(t, DefaultDecks())
	startTurns(t, g)

	if err := g.UseHeroPower(White, epoch); !errors.Is(err, ErrNotEnoughMana) {
		t.Fatalf("expected ErrNotEnoughMana, got %v", err)
	}
	g.White.Mana = 4
	if err := g.UseHeroPower(White, epoch); err != nil {
		t.Fatalf("UseHeroPower: %v", err)
	}
	if g.Black.Health != 29 || g.White.Mana != 2 {
		t.Fatalf("unexpected health %d mana %d", g.Black.Health, g.White.Mana)
	}
	if err := g.UseHeroPower(White, epoch); !errors.Is(err, ErrPowerUsed) {
		t.Fatalf("expected ErrPowerUsed, got %v", err)
	}
}

func TestGameOver(t *testing.T) {
	g := newTestGame(t, DefaultDecks())
	if _, ok := g.Result(); ok {
		t.Fatalf("expected no result before the game ends")
	}
	startTurns(t, g)
	g.White.Mana = 2
	g.Black.Health = 1

	end := epoch.Add(time.Minute)
	if err := g.UseHeroPower(White, end); err != nil {
		t.Fatalf("UseHeroPower: %v", err)
	}
	if g.State != StateGameOver || g.Winner != White {
		t.Fatalf("expected white to win, got state %s winner %s", g.State, g.Winner)
	}
	res, ok := g.Result()
	if !ok {
		t.Fatalf("expected a result")
	}
	if res.Id != g.Id || res.Turns != 1 || res.BlackHealth != 0 || !res.Ended.Equal(end) {
		t.Fatalf("unexpected result %+v", res)
	}
	if err := g.EndTurn(White, end); !errors.Is(err, ErrWrongState) {
		t.Fatalf("expected ErrWrongState after game over, got %v", err)
	}
}

func TestDrawFromEmptyDeck(t *testing.T) {
	decks := Decks{
		White: ids(White, "pawn", "pawn", "pawn"),
		Black: ids(Black, "pawn", "pawn", "pawn", "pawn"),
	}
	g := newTestGame(t, decks)
	startTurns(t, g)

	if len(g.White.Hand) != 3 {
		t.Fatalf("expected no card from an empty deck, hand is %d", len(g.White.Hand))
	}
	if g.Anim.Kind != AnimNone {
		t.Fatalf("expected no draw animation, got %+v", g.Anim)
	}
	if n := len(g.EventsOfType(EventFatigue)); n != 1 {
		t.Fatalf("expected 1 fatigue event, got %d", n)
	}
}

func TestFullHandBurnsCard(t *testing.T) {
	g := newTestGame(t, DefaultDecks())
	for len(g.White.Hand) < MaxHand {
		g.White.Hand = append(g.White.Hand, "w_pawn")
	}
	before := g.White.Deck.Len()
	startTurns(t, g)

	if len(g.White.Hand) != MaxHand {
		t.Fatalf("hand grew past %d", MaxHand)
	}
	if g.White.Deck.Len() != before-1 {
		t.Fatalf("expected the burned card to leave the deck")
	}
	if n := len(g.EventsOfType(EventBurn)); n != 1 {
		t.Fatalf("expected 1 burn event, got %d", n)
	}
}

func TestBotPlaysItsTurn(t *testing.T) {
	g := newTestGame(t, DefaultDecks())
	startTurns(t, g)
	if err := g.EndTurn(White, epoch); err != nil {
		t.Fatalf("EndTurn: %v", err)
	}
	if g.State != StateTurnBlack || g.Black.Mana != 1 {
		t.Fatalf("expected black turn with 1 mana, got %s %d", g.State, g.Black.Mana)
	}

	delay := g.Config().BotDelay
	g.Tick(epoch.Add(delay / 2))
	if len(g.Black.Board) != 0 {
		t.Fatalf("bot acted before its delay")
	}

	now := epoch
	for i := 0; i < 10 && g.State == StateTurnBlack; i++ {
		now = now.Add(delay)
		g.Tick(now)
	}
	if g.State != StateTurnWhite {
		t.Fatalf("expected the bot to end its turn, got %s", g.State)
	}
	if len(g.Black.Board) != 2 {
		t.Fatalf("expected two pawns (one bought with the coin), got %d", len(g.Black.Board))
	}
	for _, c := range g.Black.Hand {
		if c == Coin {
			t.Fatalf("expected the coin to be spent")
		}
	}
	if g.Turn != 2 {
		t.Fatalf("expected turn 2, got %d", g.Turn)
	}
}

func blackTurn(t *testing.T) *Game {
	t.Helper()
	g := newTestGame(t, DefaultDecks())
	startTurns(t, g)
	if err := g.EndTurn(White, epoch); err != nil {
		t.Fatalf("EndTurn: %v", err)
	}
	return g
}

func TestBotCoinUnlocksDearerMinion(t *testing.T) {
	g := blackTurn(t)
	g.Black.Hand = []CardID{"b_pawn", "b_bishop", Coin}
	g.Black.Mana = 2

	if !g.botStep(epoch) {
		t.Fatalf("expected the bot to act")
	}
	if len(g.Black.Board) != 0 || g.Black.Mana != 3 {
		t.Fatalf("expected the coin first, board %v mana %d", g.Black.Board, g.Black.Mana)
	}
	if !g.botStep(epoch) {
		t.Fatalf("expected the bot to act")
	}
	if len(g.Black.Board) != 1 || g.Black.Board[0].Card != "b_bishop" {
		t.Fatalf("expected the bishop on the board, got %v", g.Black.Board)
	}
	if g.Black.Mana != 0 {
		t.Fatalf("expected all mana spent, have %d", g.Black.Mana)
	}
}

func TestBotUsesHeroPower(t *testing.T) {
	g := blackTurn(t)
	g.Black.Hand = []CardID{"b_queen"}
	g.Black.Mana = 2

	if !g.botStep(epoch) {
		t.Fatalf("expected the bot to act")
	}
	if !g.Black.PowerUsed || g.White.Health != 19 {
		t.Fatalf("expected the hero power on white, health %d", g.White.Health)
	}
	if g.botStep(epoch) {
		t.Fatalf("expected nothing left to do")
	}
}

package catalog

import (
	"github.com/louisbranch/chance/internal/core/dice"
	"github.com/louisbranch/chance/internal/core/selection"
)

// PokerHandSize is the number of cards PokerHand deals.
const PokerHandSize = 5

// Deck returns the cards set shuffled.
func (c *Catalog) Deck() []string {
	return selection.Shuffle(c.engine, c.stringValues(SetCards))
}

// Card returns a value from the cards set.
func (c *Catalog) Card() string {
	return c.drawString(SetCards)
}

// PokerHand deals distinct cards from the cards set. It fails when the set
// holds fewer than PokerHandSize cards.
func (c *Catalog) PokerHand() ([]string, error) {
	return selection.PickUnique(c.engine, c.stringValues(SetCards), PokerHandSize)
}

// Dice rolls dice notation such as "3d6+2".
func (c *Catalog) Dice(notation string) (dice.Result, error) {
	return dice.RollNotation(c.engine, notation)
}

// D4 through D100 roll a single die with that many sides.
func (c *Catalog) D4() int   { return c.engine.Roll(4) }
func (c *Catalog) D6() int   { return c.engine.Roll(6) }
func (c *Catalog) D8() int   { return c.engine.Roll(8) }
func (c *Catalog) D10() int  { return c.engine.Roll(10) }
func (c *Catalog) D12() int  { return c.engine.Roll(12) }
func (c *Catalog) D20() int  { return c.engine.Roll(20) }
func (c *Catalog) D100() int { return c.engine.Roll(100) }

package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_constants(t *testing.T) {
	assert.Equal(t, 11, Jack)
	assert.Equal(t, 12, Queen)
	assert.Equal(t, 13, King)
	assert.Equal(t, 14, Ace)
}

func TestCard_String(t *testing.T) {
	assert.Equal(t, "2♡", (&Card{Rank: 2, Suit: Hearts}).String())
	assert.Equal(t, "J♣", (&Card{Rank: Jack, Suit: Clubs}).String())
	assert.Equal(t, "Q♢", (&Card{Rank: Queen, Suit: Diamonds}).String())
	assert.Equal(t, "K♠", (&Card{Rank: King, Suit: Spades}).String())
	assert.Equal(t, "A♠", (&Card{Rank: Ace, Suit: Spades}).String())
}

func TestCardFromString(t *testing.T) {
	a := assert.New(t)
	a.Nil(CardFromString(""))
	a.Equal(&Card{Rank: 10, Suit: Hearts}, CardFromString("10h"))
	a.Equal(&Card{Rank: Ace, Suit: Clubs}, CardFromString("14C"))

	a.PanicsWithValue("could not parse card: 1c", func() {
		CardFromString("1c")
	})
	a.PanicsWithValue("could not parse card: 15s", func() {
		CardFromString("15s")
	})
}

func TestCardsToString(t *testing.T) {
	cards := CardsFromString("2c,13d,14s,9h")
	assert.Equal(t, "2c,13d,14s,9h", CardsToString(cards))
	assert.Equal(t, "", CardsToString(CardsFromString("")))
	assert.Equal(t, "", CardToString(nil))
}

func TestHand(t *testing.T) {
	a := assert.New(t)
	h := make(Hand, 0)
	h.AddCard(CardFromString("14s"))
	h.AddCard(CardFromString("3c"))
	a.Equal("14s,3c", h.String())
	a.True(h.HasCard(CardFromString("3c")))
	a.False(h.HasCard(CardFromString("3s")))

	clone := h.Clone()
	clone.AddCard(CardFromString("4d"))
	a.Len(h, 2)
	a.Len(clone, 3)

	var empty Hand
	a.Nil(empty.Clone())
}

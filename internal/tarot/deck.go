package tarot

import "math/rand"

// Card is one entry in the major arcana catalog.
type Card struct {
	Name        string
	Description string
	ImagePath   string
}

// Deck holds the immutable card catalog. Draws are independent and
// uniformly random; no history is kept between them. The intn hook lets
// tests pin the draw, the default is the package-level math/rand source,
// which is safe to call from concurrent handlers.
type Deck struct {
	cards []Card
	intn  func(n int) int
}

func NewDeck() *Deck {
	return &Deck{cards: majorArcana, intn: rand.Intn}
}

// NewDeckWithRand builds a deck with a custom random index function.
func NewDeckWithRand(intn func(n int) int) *Deck {
	return &Deck{cards: majorArcana, intn: intn}
}

// Draw picks a card uniformly at random and returns it with its
// 1-based position in the catalog.
func (d *Deck) Draw() (Card, int) {
	i := d.intn(len(d.cards))
	return d.cards[i], i + 1
}

func (d *Deck) Size() int {
	return len(d.cards)
}

var majorArcana = []Card{
	{
		Name:        "The Fool",
		Description: "A new journey begins with an open heart and empty hands. Trust the path even when you cannot see where it leads.",
		ImagePath:   "/tarot-images/the-fool.jpg",
	},
	{
		Name:        "The Magician",
		Description: "Everything you need is already within your reach. Will and intention turn raw possibility into form.",
		ImagePath:   "/tarot-images/the-magician.jpg",
	},
	{
		Name:        "The High Priestess",
		Description: "Quiet knowing lives beneath the noise of the mind. Listen inward before seeking answers outside.",
		ImagePath:   "/tarot-images/the-high-priestess.jpg",
	},
	{
		Name:        "The Empress",
		Description: "Abundance grows where attention is given with love. Nurture what is tender and it will flourish.",
		ImagePath:   "/tarot-images/the-empress.jpg",
	},
	{
		Name:        "The Emperor",
		Description: "Structure gives freedom its shape. Build firm foundations so that what matters can stand.",
		ImagePath:   "/tarot-images/the-emperor.jpg",
	},
	{
		Name:        "The Hierophant",
		Description: "Old teachings carry the weight of many travelers before you. Tradition can be a doorway rather than a cage.",
		ImagePath:   "/tarot-images/the-hierophant.jpg",
	},
	{
		Name:        "The Lovers",
		Description: "A meaningful choice stands before you, asking for alignment of heart and action. Union begins with honesty.",
		ImagePath:   "/tarot-images/the-lovers.jpg",
	},
	{
		Name:        "The Chariot",
		Description: "Opposing forces can be harnessed rather than fought. Victory comes through focused, steady will.",
		ImagePath:   "/tarot-images/the-chariot.jpg",
	},
	{
		Name:        "Strength",
		Description: "True strength is gentle and patient. The lion within is tamed by compassion, not by force.",
		ImagePath:   "/tarot-images/strength.jpg",
	},
	{
		Name:        "The Hermit",
		Description: "Withdraw for a while and carry your own lamp. Solitude reveals what company obscures.",
		ImagePath:   "/tarot-images/the-hermit.jpg",
	},
	{
		Name:        "Wheel of Fortune",
		Description: "The wheel turns for everyone, lifting and lowering in season. Hold lightly to both fortune and loss.",
		ImagePath:   "/tarot-images/wheel-of-fortune.jpg",
	},
	{
		Name:        "Justice",
		Description: "Every action seeks its balance. Truth asks to be weighed with clear eyes and a steady hand.",
		ImagePath:   "/tarot-images/justice.jpg",
	},
	{
		Name:        "The Hanged Man",
		Description: "Surrender is not defeat but a new way of seeing. What seems like waiting may be ripening.",
		ImagePath:   "/tarot-images/the-hanged-man.jpg",
	},
	{
		Name:        "Death",
		Description: "An ending clears the ground for what must come next. Release what has completed its purpose.",
		ImagePath:   "/tarot-images/death.jpg",
	},
	{
		Name:        "Temperance",
		Description: "Blend opposites slowly and with care. The middle way is found by patient adjustment, not by haste.",
		ImagePath:   "/tarot-images/temperance.jpg",
	},
	{
		Name:        "The Devil",
		Description: "Chains often hold only because we believe in them. Look honestly at what binds you.",
		ImagePath:   "/tarot-images/the-devil.jpg",
	},
	{
		Name:        "The Tower",
		Description: "What is built on illusion must eventually fall. Sudden change clears the way for truth.",
		ImagePath:   "/tarot-images/the-tower.jpg",
	},
	{
		Name:        "The Star",
		Description: "After the storm, a quiet light returns. Hope is poured out freely for those who look up.",
		ImagePath:   "/tarot-images/the-star.jpg",
	},
	{
		Name:        "The Moon",
		Description: "Not everything seen in the half-light is real. Walk gently through uncertainty and let intuition guide.",
		ImagePath:   "/tarot-images/the-moon.jpg",
	},
	{
		Name:        "The Sun",
		Description: "Clarity and warmth return to what was hidden. Joy is a form of wisdom too.",
		ImagePath:   "/tarot-images/the-sun.jpg",
	},
	{
		Name:        "Judgement",
		Description: "A call rises from deep within, asking you to wake. Forgive what was, and answer who you are becoming.",
		ImagePath:   "/tarot-images/judgement.jpg",
	},
	{
		Name:        "The World",
		Description: "A cycle completes and the dance comes full circle. Wholeness is the gift of the long road.",
		ImagePath:   "/tarot-images/the-world.jpg",
	},
}

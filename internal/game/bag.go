package game

import "math/rand"

// PreviewLen is the number of upcoming pieces visible to the player.
const PreviewLen = 3

// Bag deals pieces with the 7-bag rule: every run of seven draws is a
// uniform shuffle of the full catalog, so no variant can starve. A
// fixed look-ahead window is kept ahead of the deal for the NEXT
// preview. Two bags built from the same seed deal identical infinite
// sequences, which is what keeps both peers' simulations aligned.
type Bag struct {
	rng  *rand.Rand
	next []Variant // look-ahead queue, front is dealt first
	rest []Variant // remainder of the current bag, drawn from the back
}

// NewBag creates a seeded dealer with the look-ahead already primed.
func NewBag(seed uint64) *Bag {
	b := &Bag{rng: rand.New(rand.NewSource(int64(seed)))}
	bag := b.shuffle()
	b.next = bag[NumVariants-PreviewLen:]
	b.rest = bag[:NumVariants-PreviewLen]
	return b
}

// shuffle returns a fresh uniformly shuffled bag of all variants.
func (b *Bag) shuffle() []Variant {
	bag := make([]Variant, NumVariants)
	for i := range bag {
		bag[i] = Variant(i)
	}
	b.rng.Shuffle(len(bag), func(i, j int) {
		bag[i], bag[j] = bag[j], bag[i]
	})
	return bag
}

// Next deals the next piece in its spawn pose and advances the
// look-ahead window, reshuffling a new bag when the current one runs
// out.
func (b *Bag) Next() Piece {
	b.next = append(b.next, b.rest[len(b.rest)-1])
	b.rest = b.rest[:len(b.rest)-1]
	if len(b.rest) == 0 {
		b.rest = b.shuffle()
	}
	v := b.next[0]
	b.next = b.next[1:]
	return NewPiece(v)
}

// Preview returns the upcoming variants, soonest first.
func (b *Bag) Preview() []Variant {
	out := make([]Variant, len(b.next))
	copy(out, b.next)
	return out
}

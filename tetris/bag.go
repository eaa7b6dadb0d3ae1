package tetris

import "math/rand/v2"

// BagSize is the number of pieces in one bag.
const BagSize = len(Kinds)

// Bag is one shuffled batch holding each kind exactly once.
type Bag [BagSize]Kind

// NewBag returns the seven kinds in a uniformly random order.
func NewBag(rng *rand.Rand) Bag {
	bag := Bag(Kinds)
	rng.Shuffle(len(bag), func(i, j int) {
		bag[i], bag[j] = bag[j], bag[i]
	})
	return bag
}

// NewRand returns a PCG-backed generator. A zero seed picks a random one.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Sequence deals pieces from two bags. The current bag is consumed in order;
// once exhausted the next bag takes its place and a fresh one is shuffled in
// behind it, so a lookahead never reaches past the second bag.
type Sequence struct {
	current Bag
	next    Bag
	// index of the next piece in current; BagSize means exhausted
	index int
	rng   *rand.Rand
}

// NewSequence returns a sequence starting with two freshly shuffled bags.
func NewSequence(rng *rand.Rand) *Sequence {
	return &Sequence{
		current: NewBag(rng),
		next:    NewBag(rng),
		rng:     rng,
	}
}

// NewSequenceFrom returns a sequence that deals current, then next, then bags
// shuffled by rng.
func NewSequenceFrom(current, next Bag, rng *rand.Rand) *Sequence {
	return &Sequence{
		current: current,
		next:    next,
		rng:     rng,
	}
}

// Next deals the next piece.
func (s *Sequence) Next() Kind {
	if s.index >= BagSize {
		s.current = s.next
		s.next = NewBag(s.rng)
		s.index = 0
	}
	k := s.current[s.index]
	s.index++
	return k
}

// Peek returns the next n pieces without dealing them. n is capped at BagSize.
func (s *Sequence) Peek(n int) []Kind {
	n = min(n, BagSize)
	out := make([]Kind, 0, n)
	for i := s.index; i < s.index+n; i++ {
		if i < BagSize {
			out = append(out, s.current[i])
		} else {
			out = append(out, s.next[i-BagSize])
		}
	}
	return out
}

// Bags returns the current and next bags and the cursor into the current one.
func (s *Sequence) Bags() (current, next Bag, index int) {
	return s.current, s.next, s.index
}

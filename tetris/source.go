package tetris

import "math/rand/v2"

// Source supplies the kind of each newly spawned piece.
type Source interface {
	Next() Kind
}

// SourceFunc adapts a function to Source.
type SourceFunc func() Kind

func (f SourceFunc) Next() Kind { return f() }

// RandomSource picks every kind uniformly and independently.
type RandomSource struct {
	rng *rand.Rand
}

// NewRandomSource returns a uniform source. A nil rng uses the global
// generator.
func NewRandomSource(rng *rand.Rand) *RandomSource {
	return &RandomSource{rng: rng}
}

func (s *RandomSource) Next() Kind {
	if s.rng == nil {
		return Kinds[rand.IntN(KindCount)]
	}
	return Kinds[s.rng.IntN(KindCount)]
}

// BagSource deals all seven kinds in a shuffled order before reshuffling,
// so no kind can be absent for more than twelve spawns.
type BagSource struct {
	rng *rand.Rand
	bag []Kind
}

// NewBagSource returns a 7-bag source. A nil rng uses the global generator.
func NewBagSource(rng *rand.Rand) *BagSource {
	return &BagSource{rng: rng}
}

func (s *BagSource) Next() Kind {
	if len(s.bag) == 0 {
		s.refill()
	}
	k := s.bag[0]
	s.bag = s.bag[1:]
	return k
}

func (s *BagSource) refill() {
	bag := Kinds
	swap := func(i, j int) {
		bag[i], bag[j] = bag[j], bag[i]
	}
	if s.rng == nil {
		rand.Shuffle(len(bag), swap)
	} else {
		s.rng.Shuffle(len(bag), swap)
	}
	s.bag = bag[:]
}

// SequenceSource replays a fixed list of kinds, wrapping at the end.
type SequenceSource struct {
	kinds []Kind
	next  int
}

// NewSequenceSource returns a source cycling through kinds. It panics on an
// empty list.
func NewSequenceSource(kinds ...Kind) *SequenceSource {
	if len(kinds) == 0 {
		panic("tetris: sequence source needs at least one kind")
	}
	return &SequenceSource{kinds: append([]Kind(nil), kinds...)}
}

func (s *SequenceSource) Next() Kind {
	k := s.kinds[s.next]
	s.next = (s.next + 1) % len(s.kinds)
	return k
}

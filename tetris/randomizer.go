package tetris

import "math/rand/v2"

// Randomizer supplies the kind of each queued piece.
type Randomizer interface {
	Next() PieceKind
}

type uniformRandomizer struct {
	rng *rand.Rand
}

// NewUniformRandomizer picks every kind independently and uniformly. Repeats
// and long droughts are possible; there is no bag.
func NewUniformRandomizer(seed uint64) Randomizer {
	return &uniformRandomizer{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (u *uniformRandomizer) Next() PieceKind {
	return Kinds[u.rng.IntN(kindCount)]
}

// Sequence replays a fixed list of kinds, cycling when exhausted.
type Sequence struct {
	Kinds []PieceKind
	pos   int
}

// NewSequence returns a Randomizer yielding kinds in order. It panics on an
// empty list.
func NewSequence(kinds ...PieceKind) *Sequence {
	if len(kinds) == 0 {
		panic("tetris: empty piece sequence")
	}
	for _, k := range kinds {
		mustKind(k)
	}
	return &Sequence{Kinds: kinds}
}

func (s *Sequence) Next() PieceKind {
	k := s.Kinds[s.pos%len(s.Kinds)]
	s.pos++
	return k
}

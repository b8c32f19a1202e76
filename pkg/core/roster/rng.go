package roster

import "math/rand"

// rngSource wraps math/rand.Rand so every "ascending X, random tie-break"
// sort in the spec draws from one seeded source per attempt (§5, §9 Design
// Notes: "do not collapse to deterministic tie-break").
type rngSource struct {
	r *rand.Rand
}

func newRNG(seed int64) *rngSource {
	return &rngSource{r: rand.New(rand.NewSource(seed))}
}

func (s *rngSource) Float64() float64 { return s.r.Float64() }

func (s *rngSource) Shuffle(n int, swap func(i, j int)) {
	s.r.Shuffle(n, swap)
}

// shuffleInts shuffles a slice of ints in place using this source.
func (s *rngSource) shuffleInts(vs []int) {
	s.Shuffle(len(vs), func(i, j int) { vs[i], vs[j] = vs[j], vs[i] })
}

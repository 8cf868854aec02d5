// Package rng provides the deterministic random source every level
// generation run draws from. The sequence is ISAAC64 as seeded by NetHack,
// so a given seed replays the same draws on any platform.
package rng

// Source is a seeded ISAAC64 stream. The zero value is not usable; call New.
// A Source must not be shared between goroutines.
type Source struct {
	st    isaac64
	draws uint64
}

// New seeds a Source from the eight little-endian bytes of seed.
func New(seed uint64) *Source {
	var b [8]byte
	for i := range b {
		b[i] = byte(seed >> (8 * i))
	}
	s := &Source{}
	s.st.seed(b[:])
	return s
}

// Clone returns an independent copy that replays the same future draws.
func (s *Source) Clone() *Source {
	c := *s
	return &c
}

// Draws reports how many 64-bit words have been consumed, rejections included.
func (s *Source) Draws() uint64 { return s.draws }

// Uint64 returns the next raw word.
func (s *Source) Uint64() uint64 {
	s.draws++
	return s.st.next()
}

// Below returns a uniform value in [0, n). Below(0) returns 0 without
// consuming a draw.
func (s *Source) Below(n uint32) uint32 {
	if n == 0 {
		return 0
	}
	for {
		r := s.Uint64()
		v := r % uint64(n)
		if d := r - v; d+uint64(n)-1 >= d {
			return uint32(v)
		}
	}
}

// Die rolls count dice of the given number of sides and returns the total.
func (s *Source) Die(count, sides uint32) uint32 {
	if count == 0 || sides == 0 {
		return count
	}
	total := count
	for _i, _n := uint32(0), count; _i < _n; _i++ {
		total += s.Below(sides)
	}
	return total
}

// OneIn reports true with probability 1/n.
func (s *Source) OneIn(n uint32) bool {
	return s.Below(n) == 0
}

// Percent reports true with probability p/100.
func (s *Source) Percent(p uint32) bool {
	return s.Below(100) < p
}

// Intn is Below for int arguments; non-positive n yields 0 and no draw.
func (s *Source) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(s.Below(uint32(n)))
}

// Rnd returns a value in [1, n]; non-positive n yields 1 and no draw.
func (s *Source) Rnd(n int) int {
	if n <= 0 {
		return 1
	}
	return s.Intn(n) + 1
}

package rng

const (
	isaacSizeLog = 8
	isaacSize    = 1 << isaacSizeLog
	golden       = 0x9E3779B97F4A7C13
)

var mixShift = [8]uint{9, 9, 23, 15, 14, 20, 17, 14}

// isaac64 is Bob Jenkins' ISAAC64 generator in the byte-for-byte layout
// NetHack 3.6 ships (isaac64.c by Timothy B. Terriberry).
type isaac64 struct {
	n       int
	r       [isaacSize]uint64
	m       [isaacSize]uint64
	a, b, c uint64
}

func lowerBits(x uint64) uint64 { return (x >> 3) & (isaacSize - 1) }

func upperBits(y uint64) uint64 { return (y >> (isaacSizeLog + 3)) & (isaacSize - 1) }

func (s *isaac64) update() {
	m, r := &s.m, &s.r
	a := s.a
	s.c++
	b := s.b + s.c

	step := func(i int, mixed uint64, other int) {
		x := m[i]
		a = mixed + m[other]
		y := m[lowerBits(x)] + a + b
		m[i] = y
		b = m[upperBits(y)] + x
		r[i] = b
	}
	const half = isaacSize / 2
	for i := 0; i < half; i += 4 {
		step(i, ^(a ^ a<<21), i+half)
		step(i+1, a^a>>5, i+1+half)
		step(i+2, a^a<<12, i+2+half)
		step(i+3, a^a>>33, i+3+half)
	}
	for i := half; i < isaacSize; i += 4 {
		step(i, ^(a ^ a<<21), i-half)
		step(i+1, a^a>>5, i+1-half)
		step(i+2, a^a<<12, i+2-half)
		step(i+3, a^a>>33, i+3-half)
	}
	s.a, s.b = a, b
	s.n = isaacSize
}

func mix(x *[8]uint64) {
	for i := 0; i < 8; i += 2 {
		x[i] -= x[(i+4)&7]
		x[(i+5)&7] ^= x[(i+7)&7] >> mixShift[i]
		x[(i+7)&7] += x[i]
		j := i + 1
		x[j] -= x[(j+4)&7]
		x[(j+5)&7] ^= x[(j+7)&7] << mixShift[j]
		x[(j+7)&7] += x[j]
	}
}

// seed resets the generator from up to 2048 seed bytes.
func (s *isaac64) seed(seed []byte) {
	*s = isaac64{}
	if len(seed) > isaacSize*8 {
		seed = seed[:isaacSize*8]
	}
	for i := 0; i*8 < len(seed); i++ {
		var w uint64
		for j := 0; j < 8 && i*8+j < len(seed); j++ {
			w |= uint64(seed[i*8+j]) << (8 * j)
		}
		s.r[i] ^= w
	}

	var x [8]uint64
	for i := range x {
		x[i] = golden
	}
	for _i, _n := 0, 4; _i < _n; _i++ {
		mix(&x)
	}
	for i := 0; i < isaacSize; i += 8 {
		for j := range x {
			x[j] += s.r[i+j]
		}
		mix(&x)
		copy(s.m[i:i+8], x[:])
	}
	for i := 0; i < isaacSize; i += 8 {
		for j := range x {
			x[j] += s.m[i+j]
		}
		mix(&x)
		copy(s.m[i:i+8], x[:])
	}
	s.update()
}

func (s *isaac64) next() uint64 {
	if s.n == 0 {
		s.update()
	}
	s.n--
	return s.r[s.n]
}

package world

// DefaultSeed is the seed of the reference world.
const DefaultSeed uint64 = 0x7af07af07af07af0

const splitMixGamma = 0x9E3779B97F4A7C15

// Stream is a deterministic SplitMix64 generator.
// The same seed always yields the same sequence of draws.
type Stream struct {
	state uint64
}

// NewStream creates a stream whose internal state starts at seed.
func NewStream(seed uint64) *Stream {
	return &Stream{state: seed}
}

// Uint32 returns the next 32-bit draw.
// 32-bit draws use Stafford's Mix4 finalizer and keep the high half.
func (s *Stream) Uint32() uint32 {
	s.state += splitMixGamma
	z := s.state
	z = (z ^ (z >> 33)) * 0x62A9D9ED799705F5
	z = (z ^ (z >> 28)) * 0xCB24D0A5C88C35B3
	return uint32(z >> 32)
}

// Uint16 returns the low 16 bits of one 32-bit draw.
func (s *Stream) Uint16() uint16 {
	return uint16(s.Uint32())
}

// Uint8 returns the low 8 bits of one 32-bit draw.
func (s *Stream) Uint8() uint8 {
	return uint8(s.Uint32())
}

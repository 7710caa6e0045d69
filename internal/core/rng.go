package core

import "math/rand/v2"

// Seeded returns a PCG source so that a board drawn from the same seed is
// always the same board.
func Seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// FillBinary sets every cell of buf to 0 or 1 with equal odds.
func FillBinary(r *rand.Rand, buf []uint8) {
	for i := range buf {
		buf[i] = uint8(r.IntN(2))
	}
}

package sentence

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"time"
)

// Source is the randomness the generator draws from.
type Source interface {
	// Float64 returns a uniform number in [0, 1).
	Float64() float64
	// IntN returns a uniform integer in [0, n). n is always positive.
	IntN(n int) int
}

// NewSource returns a ChaCha8 source seeded from crypto/rand. When the
// crypto source fails (e.g. in restricted sandboxes) the seed falls back to
// the current time.
func NewSource() Source {
	var seed [32]byte
	if _, err := cryptorand.Read(seed[:]); err != nil {
		binary.LittleEndian.PutUint64(seed[:], uint64(time.Now().UnixNano()))
	}
	return rand.New(rand.NewChaCha8(seed))
}

package random

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand/v2"
	"sync"
)

// CryptoPicker draws from crypto/rand so winners cannot be predicted from earlier draws.
type CryptoPicker struct{}

func NewCryptoPicker() *CryptoPicker {
	return &CryptoPicker{}
}

func (CryptoPicker) Intn(n int) int {
	if n <= 1 {
		return 0
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand only fails when the OS source is broken
		panic("random: crypto source unavailable: " + err.Error())
	}
	return int(v.Int64())
}

// SeededPicker is deterministic for a given seed and safe for concurrent use.
type SeededPicker struct {
	mu  sync.Mutex
	rng *mrand.Rand
}

func NewSeededPicker(seed uint64) *SeededPicker {
	return &SeededPicker{rng: mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (p *SeededPicker) Intn(n int) int {
	if n <= 1 {
		return 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rng.IntN(n)
}

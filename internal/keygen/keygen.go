// Package keygen produces random key material for the encryption
// commands. Keys come from math/rand and are exercise material, not
// secrets.
package keygen

import (
	"math/rand"
	"time"
)

// Generator produces randomized keys.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSeeded returns a Generator with a fixed seed, for reproducible keys.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Key returns size random bytes spanning the whole byte range.
func (g *Generator) Key(size int) []byte {
	key := make([]byte, size)
	for i := range key {
		key[i] = byte(g.rnd.Intn(256))
	}
	return key
}

const printableSet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// PrintableKey returns a size-byte key restricted to letters and digits,
// for keys that must survive a shell or a config file.
func (g *Generator) PrintableKey(size int) []byte {
	key := make([]byte, size)
	for i := range key {
		key[i] = printableSet[g.rnd.Intn(len(printableSet))]
	}
	return key
}

// KeySize picks a size uniformly between min and max inclusive.
func (g *Generator) KeySize(min, max int) int {
	if max <= min {
		return min
	}
	return min + g.rnd.Intn(max-min+1)
}

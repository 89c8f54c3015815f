// Package xor implements XOR combination primitives and bit distance.
package xor

import (
	"crypto/cipher"
	"errors"
	"fmt"
	"math/bits"
)

// ErrLengthMismatch reports that two buffers differ in length where equal
// lengths are required.
var ErrLengthMismatch = errors.New("buffers differ in length")

// Fixed XORs two equal-length buffers into a fresh slice. Unequal lengths
// are an error, never a silent truncation.
func Fixed(a, b []byte) ([]byte, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("failed to combine %d bytes with %d bytes: %w", len(a), len(b), ErrLengthMismatch)
	}
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out, nil
}

// SingleByte XORs src against one repeated key byte into dst. dst must be
// at least as long as src; dst and src may be the same slice.
func SingleByte(dst, src []byte, key byte) {
	for i, b := range src {
		dst[i] = b ^ key
	}
}

// HammingDistance counts the differing bits between two equal-length
// buffers.
func HammingDistance(a, b []byte) (int, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("failed to compare %d bytes with %d bytes: %w", len(a), len(b), ErrLengthMismatch)
	}
	var n int
	for i := range a {
		n += bits.OnesCount8(a[i] ^ b[i])
	}
	return n, nil
}

// repeatingCipher XORs a stream against a cycling key.
type repeatingCipher struct {
	key []byte
	pos int
}

// NewCipher returns a cipher.Stream that XORs with key, cycling it across
// the stream. XOR is self-inverse, so the same stream encrypts and
// decrypts. Panics on an empty key.
func NewCipher(key []byte) cipher.Stream {
	if len(key) == 0 {
		panic("xor: NewCipher called with empty key")
	}
	k := make([]byte, len(key))
	copy(k, key)
	return &repeatingCipher{key: k}
}

// XORKeyStream XORs src into dst, advancing the key position across calls.
func (c *repeatingCipher) XORKeyStream(dst, src []byte) {
	for i := range src {
		dst[i] = src[i] ^ c.key[c.pos]
		c.pos++
		if c.pos == len(c.key) {
			c.pos = 0
		}
	}
}

// Repeating XORs src against a cycling key into a fresh slice.
func Repeating(key, src []byte) []byte {
	out := make([]byte, len(src))
	NewCipher(key).XORKeyStream(out, src)
	return out
}

package breaker

import (
	"fmt"
	"sort"

	"github.com/Yug-Shah/cryptoPals/internal/model"
	"github.com/Yug-Shah/cryptoPals/internal/xor"
)

// MinKeySize and MaxKeySize bound the default key length search range.
const (
	MinKeySize = 2
	MaxKeySize = 40
)

// sampleBlocks caps how many leading blocks feed the distance estimate.
const sampleBlocks = 4

// KeySizes ranks candidate key lengths from min to max inclusive by the
// normalized Hamming distance between leading ciphertext blocks, best
// first. Equal distances rank the smaller length first. Lengths without
// at least two full blocks are excluded, so the result is empty when the
// ciphertext is too short for every candidate.
func (b *Breaker) KeySizes(ciphertext []byte, min, max int) ([]model.KeySizeCandidate, error) {
	if min < 1 || max < min {
		return nil, fmt.Errorf("invalid key size range %d..%d", min, max)
	}

	candidates := make([]model.KeySizeCandidate, 0, max-min+1)
	for size := min; size <= max; size++ {
		distance, ok := normalizedDistance(ciphertext, size)
		if !ok {
			continue
		}
		candidates = append(candidates, model.KeySizeCandidate{KeySize: size, Distance: distance})
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Distance != candidates[j].Distance {
			return candidates[i].Distance < candidates[j].Distance
		}
		return candidates[i].KeySize < candidates[j].KeySize
	})
	return candidates, nil
}

// KeySize returns the most likely key length over the default range.
func (b *Breaker) KeySize(ciphertext []byte) (int, error) {
	candidates, err := b.KeySizes(ciphertext, MinKeySize, MaxKeySize)
	if err != nil {
		return 0, err
	}
	if len(candidates) == 0 {
		return 0, fmt.Errorf("failed to rank key sizes for %d bytes: %w", len(ciphertext), ErrInsufficientData)
	}
	return candidates[0].KeySize, nil
}

// normalizedDistance averages the pairwise bit distance of up to the
// first four size-length blocks, divided by size. ok is false when fewer
// than two full blocks exist.
func normalizedDistance(ciphertext []byte, size int) (float64, bool) {
	blocks := leadingBlocks(ciphertext, size, sampleBlocks)
	if len(blocks) < 2 {
		return 0, false
	}

	var sum, pairs int
	for i := 0; i < len(blocks); i++ {
		for j := i + 1; j < len(blocks); j++ {
			d, err := xor.HammingDistance(blocks[i], blocks[j])
			if err != nil {
				return 0, false
			}
			sum += d
			pairs++
		}
	}
	return float64(sum) / float64(pairs*size), true
}

// leadingBlocks chunks the front of buf into full size-length blocks,
// truncating any partial remainder.
func leadingBlocks(buf []byte, size, max int) [][]byte {
	blocks := make([][]byte, 0, max)
	for i := 0; i+size <= len(buf) && len(blocks) < max; i += size {
		blocks = append(blocks, buf[i:i+size])
	}
	return blocks
}

package breaker

import (
	"sort"

	"github.com/Yug-Shah/cryptoPals/internal/model"
	"github.com/Yug-Shah/cryptoPals/internal/xor"
)

// SingleByte tries all 256 single-byte keys against the ciphertext and
// returns the best-scoring candidate. Only a strictly better score
// replaces the current best, so ties resolve to the lowest key byte.
// Empty input yields key 0 with score 0.
func (b *Breaker) SingleByte(ciphertext []byte) model.Candidate {
	buf := make([]byte, len(ciphertext))

	xor.SingleByte(buf, ciphertext, 0)
	best := model.Candidate{
		Score:     b.table.ScoreBytes(buf),
		Key:       0,
		Plaintext: append([]byte(nil), buf...),
	}

	for key := 1; key < 256; key++ {
		xor.SingleByte(buf, ciphertext, byte(key))
		score := b.table.ScoreBytes(buf)
		if score > best.Score {
			best = model.Candidate{
				Score:     score,
				Key:       byte(key),
				Plaintext: append([]byte(nil), buf...),
			}
		}
	}
	return best
}

// DetectSingleByte breaks every line independently and returns the hits
// sorted best first. The top hit names the line most likely hiding a
// single-byte XOR plaintext.
func (b *Breaker) DetectSingleByte(lines [][]byte) []model.DetectHit {
	hits := make([]model.DetectHit, 0, len(lines))
	for i, line := range lines {
		hits = append(hits, model.DetectHit{Line: i, Candidate: b.SingleByte(line)})
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Candidate.Score != hits[j].Candidate.Score {
			return hits[i].Candidate.Score > hits[j].Candidate.Score
		}
		return hits[i].Line < hits[j].Line
	})
	return hits
}

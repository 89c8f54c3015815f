package breaker

import (
	"fmt"
	"sync"

	"github.com/Yug-Shah/cryptoPals/internal/model"
	"github.com/Yug-Shah/cryptoPals/internal/xor"
)

// RepeatingKey recovers a repeating key of the given size and decrypts
// the ciphertext with it. Bytes sharing a key position form a column and
// each column is broken independently, so the columns run concurrently
// with a result identical to a sequential pass. A size larger than the
// ciphertext degrades recovery but is not an error; the key is always
// returned, even when the plaintext later fails strict text validation.
func (b *Breaker) RepeatingKey(keySize int, ciphertext []byte) (model.Recovery, error) {
	if keySize < 1 {
		return model.Recovery{}, fmt.Errorf("key size must be at least 1, got %d", keySize)
	}

	columns := transpose(ciphertext, keySize)
	key := make([]byte, keySize)

	var wg sync.WaitGroup
	for i, column := range columns {
		wg.Add(1)
		go func() {
			defer wg.Done()
			key[i] = b.SingleByte(column).Key
		}()
	}
	wg.Wait()

	plaintext := xor.Repeating(key, ciphertext)
	return model.Recovery{
		Key:       key,
		Score:     b.table.ScoreBytes(plaintext),
		Plaintext: plaintext,
	}, nil
}

// Break estimates the key length over the default range and recovers the
// key with it.
func (b *Breaker) Break(ciphertext []byte) (model.Recovery, error) {
	size, err := b.KeySize(ciphertext)
	if err != nil {
		return model.Recovery{}, err
	}
	return b.RepeatingKey(size, ciphertext)
}

// transpose groups ciphertext bytes by key position. A ragged final block
// fills only the columns it reaches; with fewer bytes than columns, the
// trailing columns stay empty.
func transpose(buf []byte, keySize int) [][]byte {
	columns := make([][]byte, keySize)
	for i, b := range buf {
		columns[i%keySize] = append(columns[i%keySize], b)
	}
	return columns
}

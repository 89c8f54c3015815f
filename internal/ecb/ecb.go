// Package ecb handles the AES-ECB side of the toolkit: encryption,
// decryption, PKCS#7 padding, and the duplicate-block fingerprint that
// betrays the mode.
package ecb

import (
	"crypto/aes"
	"fmt"
	"sort"

	ecbmode "github.com/andreburgaud/crypt2go/ecb"
	"github.com/andreburgaud/crypt2go/padding"
)

// Pad applies PKCS#7 padding up to blockSize. A buffer already at a block
// boundary grows by one full padding block.
func Pad(buf []byte, blockSize int) ([]byte, error) {
	padded, err := padding.NewPkcs7Padding(blockSize).Pad(buf)
	if err != nil {
		return nil, fmt.Errorf("failed to pad: %w", err)
	}
	return padded, nil
}

// Unpad strips and validates PKCS#7 padding.
func Unpad(buf []byte, blockSize int) ([]byte, error) {
	unpadded, err := padding.NewPkcs7Padding(blockSize).Unpad(buf)
	if err != nil {
		return nil, fmt.Errorf("failed to strip padding: %w", err)
	}
	return unpadded, nil
}

// Encrypt encrypts plaintext with AES in ECB mode, padding it first.
func Encrypt(key, plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to init cipher: %w", err)
	}
	padded, err := Pad(plaintext, block.BlockSize())
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(padded))
	ecbmode.NewECBEncrypter(block).CryptBlocks(out, padded)
	return out, nil
}

// DecryptBlocks decrypts AES-ECB ciphertext, leaving any padding in
// place.
func DecryptBlocks(key, ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to init cipher: %w", err)
	}
	if len(ciphertext)%block.BlockSize() != 0 {
		return nil, fmt.Errorf("ciphertext length %d is not a multiple of the block size", len(ciphertext))
	}
	out := make([]byte, len(ciphertext))
	ecbmode.NewECBDecrypter(block).CryptBlocks(out, ciphertext)
	return out, nil
}

// Decrypt decrypts AES-ECB ciphertext and strips the PKCS#7 padding.
func Decrypt(key, ciphertext []byte) ([]byte, error) {
	out, err := DecryptBlocks(key, ciphertext)
	if err != nil {
		return nil, err
	}
	return Unpad(out, aes.BlockSize)
}

// DuplicateBlocks counts repeated blockSize-length blocks in buf,
// ignoring a trailing partial block. Identical plaintext blocks encrypt
// identically under ECB, so repetition is a strong mode fingerprint.
func DuplicateBlocks(buf []byte, blockSize int) int {
	if blockSize < 1 {
		return 0
	}
	seen := make(map[string]int)
	for i := 0; i+blockSize <= len(buf); i += blockSize {
		seen[string(buf[i:i+blockSize])]++
	}
	dups := 0
	for _, n := range seen {
		dups += n - 1
	}
	return dups
}

// Suspect flags one input line and its duplicate block count.
type Suspect struct {
	Line       int
	Duplicates int
}

// Detect scans lines for ECB suspects, returning every line with at
// least one duplicate block, most duplicates first.
func Detect(lines [][]byte, blockSize int) []Suspect {
	var suspects []Suspect
	for i, line := range lines {
		if n := DuplicateBlocks(line, blockSize); n > 0 {
			suspects = append(suspects, Suspect{Line: i, Duplicates: n})
		}
	}
	sort.Slice(suspects, func(i, j int) bool {
		if suspects[i].Duplicates != suspects[j].Duplicates {
			return suspects[i].Duplicates > suspects[j].Duplicates
		}
		return suspects[i].Line < suspects[j].Line
	})
	return suspects
}
